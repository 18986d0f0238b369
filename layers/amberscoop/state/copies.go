// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package state

import (
	"sync"

	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
)

// BufferCopy is one recorded vkCmdCopyBuffer.
type BufferCopy struct {
	Src     vulkan.VkBuffer
	Dst     vulkan.VkBuffer
	Regions []vulkan.VkBufferCopy
}

// Copies is the append-only list of buffer copies seen in the session.
type Copies struct {
	mu     sync.RWMutex
	copies []BufferCopy
}

// Add appends bc to the list.
func (c *Copies) Add(bc BufferCopy) {
	c.mu.Lock()
	defer c.mu.Unlock()
	bc.Regions = append([]vulkan.VkBufferCopy(nil), bc.Regions...)
	c.copies = append(c.copies, bc)
}

// Find returns the earliest copy whose destination is dst.
func (c *Copies) Find(dst vulkan.VkBuffer) (BufferCopy, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, bc := range c.copies {
		if bc.Dst == dst {
			return bc, true
		}
	}
	return BufferCopy{}, false
}

// Len returns the number of recorded copies.
func (c *Copies) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.copies)
}
