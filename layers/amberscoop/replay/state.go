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

// Package replay folds a recorded command log into the binding state that is
// current at each draw call.
package replay

import (
	"fmt"

	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
)

// MalformedCommandStream is returned when a log does not describe a valid
// sequence of commands, such as a draw outside a render pass.
type MalformedCommandStream struct {
	Reason string
}

func (e MalformedCommandStream) Error() string {
	return fmt.Sprintf("malformed command stream: %s", e.Reason)
}

// VertexBinding is a buffer bound to a vertex input binding.
type VertexBinding struct {
	Buffer vulkan.VkBuffer
	Offset vulkan.VkDeviceSize
}

// IndexBinding is the bound index buffer.
type IndexBinding struct {
	Buffer    vulkan.VkBuffer
	Offset    vulkan.VkDeviceSize
	IndexType vulkan.VkIndexType
}

// State is the graphics binding state accumulated while folding a log.
type State struct {
	PipelineBound bool
	Pipeline      vulkan.VkPipeline
	// RenderPass is nil until a render pass has been begun.
	RenderPass     *vulkan.VkRenderPassBeginInfo
	Subpass        uint32
	DescriptorSets map[uint32]vulkan.VkDescriptorSet
	VertexBuffers  map[uint32]VertexBinding
	IndexBuffer    *IndexBinding
}

// NewState returns the state at the start of a command buffer.
func NewState() *State {
	return &State{
		DescriptorSets: map[uint32]vulkan.VkDescriptorSet{},
		VertexBuffers:  map[uint32]VertexBinding{},
	}
}

// Clone returns a snapshot of s that later folding does not affect.
func (s *State) Clone() *State {
	out := &State{
		PipelineBound:  s.PipelineBound,
		Pipeline:       s.Pipeline,
		Subpass:        s.Subpass,
		DescriptorSets: make(map[uint32]vulkan.VkDescriptorSet, len(s.DescriptorSets)),
		VertexBuffers:  make(map[uint32]VertexBinding, len(s.VertexBuffers)),
	}
	if s.RenderPass != nil {
		rp := s.RenderPass.Clone()
		out.RenderPass = &rp
	}
	for k, v := range s.DescriptorSets {
		out.DescriptorSets[k] = v
	}
	for k, v := range s.VertexBuffers {
		out.VertexBuffers[k] = v
	}
	if s.IndexBuffer != nil {
		ib := *s.IndexBuffer
		out.IndexBuffer = &ib
	}
	return out
}
