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

// Package vulkan mirrors the subset of the Vulkan API that the capture layer
// intercepts. Handles are opaque 64 bit values: they are compared and used as
// map keys, but never dereferenced.
package vulkan

type (
	VkInstance            uint64
	VkPhysicalDevice      uint64
	VkDevice              uint64
	VkQueue               uint64
	VkCommandPool         uint64
	VkCommandBuffer       uint64
	VkBuffer              uint64
	VkBufferView          uint64
	VkDeviceMemory        uint64
	VkImageView           uint64
	VkSampler             uint64
	VkDescriptorPool      uint64
	VkDescriptorSet       uint64
	VkDescriptorSetLayout uint64
	VkPipeline            uint64
	VkPipelineCache       uint64
	VkPipelineLayout      uint64
	VkRenderPass          uint64
	VkFramebuffer         uint64
	VkShaderModule        uint64
	VkFence               uint64
	VkSemaphore           uint64
)

// VkDeviceSize is a device memory size or offset.
type VkDeviceSize uint64

// VK_WHOLE_SIZE selects the remainder of a buffer or memory object.
const VK_WHOLE_SIZE = VkDeviceSize(^uint64(0))

// VkMemoryMapFlags is reserved by the API and always zero.
type VkMemoryMapFlags uint32

// VkBool32 is the API boolean.
type VkBool32 uint32
