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

package command

import (
	"sync"

	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
)

// Recorder owns the command log of every command buffer.
type Recorder struct {
	mu   sync.Mutex
	logs map[vulkan.VkCommandBuffer][]Cmd
}

// NewRecorder returns a recorder with no logs.
func NewRecorder() *Recorder {
	return &Recorder{logs: map[vulkan.VkCommandBuffer][]Cmd{}}
}

// Record appends cmd to the log of cb, creating the log on first use.
func (r *Recorder) Record(cb vulkan.VkCommandBuffer, cmd Cmd) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs[cb] = append(r.logs[cb], cmd)
}

// Log returns the commands recorded for cb in recording order.
func (r *Recorder) Log(cb vulkan.VkCommandBuffer) ([]Cmd, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.logs[cb]
	return append([]Cmd(nil), l...), ok
}

// Reset drops the log of cb. It is called when the command buffer is begun,
// reset or freed, after which the handle may name a new recording.
func (r *Recorder) Reset(cb vulkan.VkCommandBuffer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.logs, cb)
}
