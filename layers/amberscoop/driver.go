// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package amberscoop captures the state behind Vulkan draw calls and turns
// each draw into a standalone AMBER script.
//
// A Layer sits between an application and the next Driver. It forwards every
// call and records what later draws depend on into a Session. When command
// buffers are submitted the Session replays their logs and emits one script
// per draw.
package amberscoop

import (
	"context"

	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
)

// Driver is the set of Vulkan entry points the capture layer intercepts.
// Output handles are returned rather than written through pointers, and
// mapped memory is exposed as a byte slice aliasing the mapping.
type Driver interface {
	CreateBuffer(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkBufferCreateInfo) (vulkan.VkBuffer, vulkan.VkResult)
	DestroyBuffer(ctx context.Context, device vulkan.VkDevice, buffer vulkan.VkBuffer)
	AllocateMemory(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkMemoryAllocateInfo) (vulkan.VkDeviceMemory, vulkan.VkResult)
	FreeMemory(ctx context.Context, device vulkan.VkDevice, memory vulkan.VkDeviceMemory)
	BindBufferMemory(ctx context.Context, device vulkan.VkDevice, buffer vulkan.VkBuffer, memory vulkan.VkDeviceMemory, offset vulkan.VkDeviceSize) vulkan.VkResult
	MapMemory(ctx context.Context, device vulkan.VkDevice, memory vulkan.VkDeviceMemory, offset, size vulkan.VkDeviceSize, flags vulkan.VkMemoryMapFlags) ([]byte, vulkan.VkResult)
	UnmapMemory(ctx context.Context, device vulkan.VkDevice, memory vulkan.VkDeviceMemory)

	CreateDescriptorSetLayout(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkDescriptorSetLayoutCreateInfo) (vulkan.VkDescriptorSetLayout, vulkan.VkResult)
	AllocateDescriptorSets(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkDescriptorSetAllocateInfo) ([]vulkan.VkDescriptorSet, vulkan.VkResult)
	FreeDescriptorSets(ctx context.Context, device vulkan.VkDevice, pool vulkan.VkDescriptorPool, sets []vulkan.VkDescriptorSet) vulkan.VkResult
	UpdateDescriptorSets(ctx context.Context, device vulkan.VkDevice, writes []vulkan.VkWriteDescriptorSet, copies []vulkan.VkCopyDescriptorSet) error

	CreatePipelineLayout(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkPipelineLayoutCreateInfo) (vulkan.VkPipelineLayout, vulkan.VkResult)
	CreateRenderPass(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkRenderPassCreateInfo) (vulkan.VkRenderPass, vulkan.VkResult)
	CreateFramebuffer(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkFramebufferCreateInfo) (vulkan.VkFramebuffer, vulkan.VkResult)
	CreateShaderModule(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkShaderModuleCreateInfo) (vulkan.VkShaderModule, vulkan.VkResult)
	CreateGraphicsPipelines(ctx context.Context, device vulkan.VkDevice, cache vulkan.VkPipelineCache, infos []vulkan.VkGraphicsPipelineCreateInfo) ([]vulkan.VkPipeline, vulkan.VkResult)

	AllocateCommandBuffers(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkCommandBufferAllocateInfo) ([]vulkan.VkCommandBuffer, vulkan.VkResult)
	FreeCommandBuffers(ctx context.Context, device vulkan.VkDevice, pool vulkan.VkCommandPool, buffers []vulkan.VkCommandBuffer)
	BeginCommandBuffer(ctx context.Context, cb vulkan.VkCommandBuffer, info *vulkan.VkCommandBufferBeginInfo) vulkan.VkResult
	EndCommandBuffer(ctx context.Context, cb vulkan.VkCommandBuffer) vulkan.VkResult
	ResetCommandBuffer(ctx context.Context, cb vulkan.VkCommandBuffer, flags uint32) vulkan.VkResult

	CmdBeginRenderPass(ctx context.Context, cb vulkan.VkCommandBuffer, info *vulkan.VkRenderPassBeginInfo, contents vulkan.VkSubpassContents)
	CmdBindDescriptorSets(ctx context.Context, cb vulkan.VkCommandBuffer, bindPoint vulkan.VkPipelineBindPoint, layout vulkan.VkPipelineLayout, firstSet uint32, sets []vulkan.VkDescriptorSet, dynamicOffsets []uint32)
	CmdBindIndexBuffer(ctx context.Context, cb vulkan.VkCommandBuffer, buffer vulkan.VkBuffer, offset vulkan.VkDeviceSize, indexType vulkan.VkIndexType)
	CmdBindPipeline(ctx context.Context, cb vulkan.VkCommandBuffer, bindPoint vulkan.VkPipelineBindPoint, pipeline vulkan.VkPipeline)
	CmdBindVertexBuffers(ctx context.Context, cb vulkan.VkCommandBuffer, firstBinding uint32, buffers []vulkan.VkBuffer, offsets []vulkan.VkDeviceSize)
	CmdCopyBuffer(ctx context.Context, cb vulkan.VkCommandBuffer, src, dst vulkan.VkBuffer, regions []vulkan.VkBufferCopy)
	CmdDraw(ctx context.Context, cb vulkan.VkCommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32)
	CmdDrawIndexed(ctx context.Context, cb vulkan.VkCommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32)

	QueueSubmit(ctx context.Context, queue vulkan.VkQueue, submits []vulkan.VkSubmitInfo, fence vulkan.VkFence) vulkan.VkResult
}
