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

// MemoryBinding is the device memory backing a buffer.
type MemoryBinding struct {
	Memory vulkan.VkDeviceMemory
	Offset vulkan.VkDeviceSize
}

// Store is the resource metadata of one capture session.
type Store struct {
	Buffers              *Table[vulkan.VkBuffer, vulkan.VkBufferCreateInfo]
	BufferMemory         *Table[vulkan.VkBuffer, MemoryBinding]
	DescriptorSetLayouts *Table[vulkan.VkDescriptorSetLayout, vulkan.VkDescriptorSetLayoutCreateInfo]
	DescriptorSets       *Table[vulkan.VkDescriptorSet, vulkan.VkDescriptorSetLayout]
	GraphicsPipelines    *Table[vulkan.VkPipeline, vulkan.VkGraphicsPipelineCreateInfo]
	PipelineLayouts      *Table[vulkan.VkPipelineLayout, vulkan.VkPipelineLayoutCreateInfo]
	RenderPasses         *Table[vulkan.VkRenderPass, vulkan.VkRenderPassCreateInfo]
	Framebuffers         *Table[vulkan.VkFramebuffer, vulkan.VkFramebufferCreateInfo]
	ShaderModules        *Table[vulkan.VkShaderModule, vulkan.VkShaderModuleCreateInfo]

	Mappings *Mappings
	Copies   *Copies

	descMu            sync.RWMutex
	descriptorBuffers map[vulkan.VkDescriptorSet]map[uint32]vulkan.VkDescriptorBufferInfo
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		Buffers:              NewTable[vulkan.VkBuffer, vulkan.VkBufferCreateInfo]("VkBuffer"),
		BufferMemory:         NewTable[vulkan.VkBuffer, MemoryBinding]("VkBuffer memory binding"),
		DescriptorSetLayouts: NewTable[vulkan.VkDescriptorSetLayout, vulkan.VkDescriptorSetLayoutCreateInfo]("VkDescriptorSetLayout"),
		DescriptorSets:       NewTable[vulkan.VkDescriptorSet, vulkan.VkDescriptorSetLayout]("VkDescriptorSet"),
		GraphicsPipelines:    NewTable[vulkan.VkPipeline, vulkan.VkGraphicsPipelineCreateInfo]("VkPipeline"),
		PipelineLayouts:      NewTable[vulkan.VkPipelineLayout, vulkan.VkPipelineLayoutCreateInfo]("VkPipelineLayout"),
		RenderPasses:         NewTable[vulkan.VkRenderPass, vulkan.VkRenderPassCreateInfo]("VkRenderPass"),
		Framebuffers:         NewTable[vulkan.VkFramebuffer, vulkan.VkFramebufferCreateInfo]("VkFramebuffer"),
		ShaderModules:        NewTable[vulkan.VkShaderModule, vulkan.VkShaderModuleCreateInfo]("VkShaderModule"),
		Mappings:             NewMappings(),
		Copies:               &Copies{},
		descriptorBuffers:    map[vulkan.VkDescriptorSet]map[uint32]vulkan.VkDescriptorBufferInfo{},
	}
}

// SetDescriptorBuffer records the buffer written to binding of set.
func (s *Store) SetDescriptorBuffer(set vulkan.VkDescriptorSet, binding uint32, info vulkan.VkDescriptorBufferInfo) {
	s.descMu.Lock()
	defer s.descMu.Unlock()
	bindings, ok := s.descriptorBuffers[set]
	if !ok {
		bindings = map[uint32]vulkan.VkDescriptorBufferInfo{}
		s.descriptorBuffers[set] = bindings
	}
	bindings[binding] = info
}

// DescriptorBuffers returns a copy of the buffer bindings written to set.
func (s *Store) DescriptorBuffers(set vulkan.VkDescriptorSet) map[uint32]vulkan.VkDescriptorBufferInfo {
	s.descMu.RLock()
	defer s.descMu.RUnlock()
	out := make(map[uint32]vulkan.VkDescriptorBufferInfo, len(s.descriptorBuffers[set]))
	for b, info := range s.descriptorBuffers[set] {
		out[b] = info
	}
	return out
}

// FreeDescriptorSet forgets the layout and the buffer bindings of set.
func (s *Store) FreeDescriptorSet(set vulkan.VkDescriptorSet) {
	s.DescriptorSets.Delete(set)
	s.descMu.Lock()
	defer s.descMu.Unlock()
	delete(s.descriptorBuffers, set)
}
