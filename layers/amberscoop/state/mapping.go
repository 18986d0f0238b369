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

// Mapping is a host-visible window onto a device memory object.
type Mapping struct {
	Offset vulkan.VkDeviceSize
	Size   vulkan.VkDeviceSize
	Flags  vulkan.VkMemoryMapFlags
	// Data holds the window contents. While Mapped is true it aliases the
	// driver's mapped memory, so reads see the application's latest writes.
	// After unmap it is a private snapshot.
	Data   []byte
	Mapped bool
}

// Mappings tracks the host mappings of device memory objects.
type Mappings struct {
	mu      sync.RWMutex
	entries map[vulkan.VkDeviceMemory]Mapping
}

// NewMappings returns an empty mapping table.
func NewMappings() *Mappings {
	return &Mappings{entries: map[vulkan.VkDeviceMemory]Mapping{}}
}

// Put records a new mapping of memory, replacing any earlier one.
func (m *Mappings) Put(memory vulkan.VkDeviceMemory, mapping Mapping) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mapping.Mapped = true
	m.entries[memory] = mapping
}

// Get returns the latest mapping of memory.
func (m *Mappings) Get(memory vulkan.VkDeviceMemory) (Mapping, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mapping, ok := m.entries[memory]
	return mapping, ok
}

// Unmap replaces the live window of memory with a copy of its current
// contents. Later reads see the data as it was when the memory was unmapped.
func (m *Mappings) Unmap(memory vulkan.VkDeviceMemory) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mapping, ok := m.entries[memory]
	if !ok || !mapping.Mapped {
		return
	}
	mapping.Data = append([]byte(nil), mapping.Data...)
	mapping.Mapped = false
	m.entries[memory] = mapping
}

// Free forgets memory.
func (m *Mappings) Free(memory vulkan.VkDeviceMemory) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, memory)
}
