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

package amberscoop

import (
	"context"

	"github.com/NeoTim/graphicsfuzz/core/fault"
	"github.com/NeoTim/graphicsfuzz/core/log"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/command"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/state"
	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
	"github.com/pkg/errors"
)

// InvalidDescriptorWrite is returned by UpdateDescriptorSets for descriptor
// copies and for writes that are not a single descriptor at array element 0.
const InvalidDescriptorWrite = fault.Const("unsupported descriptor set update")

// Layer is a Driver that records the calls it forwards to the next Driver.
type Layer struct {
	Driver
	session  *Session
	delivery *delivery
}

var _ Driver = (*Layer)(nil)

// NewLayer returns a layer forwarding to next and recording into session.
// Every draw of every successful submit is passed to sink.
func NewLayer(next Driver, session *Session, options Options, sink Sink) *Layer {
	return &Layer{
		Driver:   next,
		session:  session,
		delivery: &delivery{sink: sink, options: options},
	}
}

// Session returns the session the layer records into.
func (l *Layer) Session() *Session { return l.session }

func (l *Layer) store() *state.Store { return l.session.Store }

func (l *Layer) record(cb vulkan.VkCommandBuffer, cmd command.Cmd) {
	l.session.Recorder.Record(cb, cmd)
}

func (l *Layer) CreateBuffer(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkBufferCreateInfo) (vulkan.VkBuffer, vulkan.VkResult) {
	buffer, res := l.Driver.CreateBuffer(ctx, device, info)
	if res == vulkan.VkResult_VK_SUCCESS {
		l.store().Buffers.Put(buffer, info.Clone())
	}
	return buffer, res
}

func (l *Layer) DestroyBuffer(ctx context.Context, device vulkan.VkDevice, buffer vulkan.VkBuffer) {
	l.Driver.DestroyBuffer(ctx, device, buffer)
	l.store().Buffers.Delete(buffer)
	l.store().BufferMemory.Delete(buffer)
}

func (l *Layer) FreeMemory(ctx context.Context, device vulkan.VkDevice, memory vulkan.VkDeviceMemory) {
	l.Driver.FreeMemory(ctx, device, memory)
	l.store().Mappings.Free(memory)
}

func (l *Layer) BindBufferMemory(ctx context.Context, device vulkan.VkDevice, buffer vulkan.VkBuffer, memory vulkan.VkDeviceMemory, offset vulkan.VkDeviceSize) vulkan.VkResult {
	res := l.Driver.BindBufferMemory(ctx, device, buffer, memory, offset)
	if res == vulkan.VkResult_VK_SUCCESS {
		l.store().BufferMemory.Put(buffer, state.MemoryBinding{Memory: memory, Offset: offset})
	}
	return res
}

func (l *Layer) MapMemory(ctx context.Context, device vulkan.VkDevice, memory vulkan.VkDeviceMemory, offset, size vulkan.VkDeviceSize, flags vulkan.VkMemoryMapFlags) ([]byte, vulkan.VkResult) {
	data, res := l.Driver.MapMemory(ctx, device, memory, offset, size, flags)
	if res == vulkan.VkResult_VK_SUCCESS {
		l.store().Mappings.Put(memory, state.Mapping{Offset: offset, Size: size, Flags: flags, Data: data})
	}
	return data, res
}

// UnmapMemory snapshots the mapped bytes before the next driver invalidates
// them.
func (l *Layer) UnmapMemory(ctx context.Context, device vulkan.VkDevice, memory vulkan.VkDeviceMemory) {
	l.store().Mappings.Unmap(memory)
	l.Driver.UnmapMemory(ctx, device, memory)
}

func (l *Layer) CreateDescriptorSetLayout(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkDescriptorSetLayoutCreateInfo) (vulkan.VkDescriptorSetLayout, vulkan.VkResult) {
	layout, res := l.Driver.CreateDescriptorSetLayout(ctx, device, info)
	if res == vulkan.VkResult_VK_SUCCESS {
		l.store().DescriptorSetLayouts.Put(layout, info.Clone())
	}
	return layout, res
}

func (l *Layer) AllocateDescriptorSets(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkDescriptorSetAllocateInfo) ([]vulkan.VkDescriptorSet, vulkan.VkResult) {
	sets, res := l.Driver.AllocateDescriptorSets(ctx, device, info)
	if res == vulkan.VkResult_VK_SUCCESS {
		for i, set := range sets {
			if i < len(info.SetLayouts) {
				l.store().DescriptorSets.Put(set, info.SetLayouts[i])
			}
		}
	}
	return sets, res
}

func (l *Layer) FreeDescriptorSets(ctx context.Context, device vulkan.VkDevice, pool vulkan.VkDescriptorPool, sets []vulkan.VkDescriptorSet) vulkan.VkResult {
	res := l.Driver.FreeDescriptorSets(ctx, device, pool, sets)
	if res == vulkan.VkResult_VK_SUCCESS {
		for _, set := range sets {
			l.store().FreeDescriptorSet(set)
		}
	}
	return res
}

// UpdateDescriptorSets records the buffer written by every single descriptor
// write. Unsupported writes and copies are reported with
// InvalidDescriptorWrite after the valid writes have been recorded.
func (l *Layer) UpdateDescriptorSets(ctx context.Context, device vulkan.VkDevice, writes []vulkan.VkWriteDescriptorSet, copies []vulkan.VkCopyDescriptorSet) error {
	if err := l.Driver.UpdateDescriptorSets(ctx, device, writes, copies); err != nil {
		return err
	}
	var errs fault.List
	if len(copies) > 0 {
		errs.Collect(errors.Wrapf(InvalidDescriptorWrite, "%d descriptor copies", len(copies)))
	}
	for i, w := range writes {
		if w.DstArrayElement != 0 || w.DescriptorCount != 1 {
			errs.Collect(errors.Wrapf(InvalidDescriptorWrite, "write %d to set 0x%x binding %d: array element %d, count %d",
				i, w.DstSet, w.DstBinding, w.DstArrayElement, w.DescriptorCount))
			continue
		}
		if !w.DescriptorType.IsBuffer() {
			log.V(ctx, "Ignoring %v write to set 0x%x binding %d", w.DescriptorType, w.DstSet, w.DstBinding)
			continue
		}
		if len(w.BufferInfo) == 0 {
			errs.Collect(errors.Wrapf(InvalidDescriptorWrite, "write %d to set 0x%x binding %d has no buffer info", i, w.DstSet, w.DstBinding))
			continue
		}
		l.store().SetDescriptorBuffer(w.DstSet, w.DstBinding, w.BufferInfo[0])
	}
	return errs.Err()
}

func (l *Layer) CreatePipelineLayout(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkPipelineLayoutCreateInfo) (vulkan.VkPipelineLayout, vulkan.VkResult) {
	layout, res := l.Driver.CreatePipelineLayout(ctx, device, info)
	if res == vulkan.VkResult_VK_SUCCESS {
		l.store().PipelineLayouts.Put(layout, info.Clone())
	}
	return layout, res
}

func (l *Layer) CreateRenderPass(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkRenderPassCreateInfo) (vulkan.VkRenderPass, vulkan.VkResult) {
	pass, res := l.Driver.CreateRenderPass(ctx, device, info)
	if res == vulkan.VkResult_VK_SUCCESS {
		l.store().RenderPasses.Put(pass, info.Clone())
	}
	return pass, res
}

func (l *Layer) CreateFramebuffer(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkFramebufferCreateInfo) (vulkan.VkFramebuffer, vulkan.VkResult) {
	fb, res := l.Driver.CreateFramebuffer(ctx, device, info)
	if res == vulkan.VkResult_VK_SUCCESS {
		l.store().Framebuffers.Put(fb, info.Clone())
	}
	return fb, res
}

func (l *Layer) CreateShaderModule(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkShaderModuleCreateInfo) (vulkan.VkShaderModule, vulkan.VkResult) {
	module, res := l.Driver.CreateShaderModule(ctx, device, info)
	if res == vulkan.VkResult_VK_SUCCESS {
		l.store().ShaderModules.Put(module, info.Clone())
	}
	return module, res
}

func (l *Layer) CreateGraphicsPipelines(ctx context.Context, device vulkan.VkDevice, cache vulkan.VkPipelineCache, infos []vulkan.VkGraphicsPipelineCreateInfo) ([]vulkan.VkPipeline, vulkan.VkResult) {
	pipelines, res := l.Driver.CreateGraphicsPipelines(ctx, device, cache, infos)
	if res == vulkan.VkResult_VK_SUCCESS {
		for i, p := range pipelines {
			if i < len(infos) {
				l.store().GraphicsPipelines.Put(p, infos[i].Clone())
			}
		}
	}
	return pipelines, res
}

func (l *Layer) FreeCommandBuffers(ctx context.Context, device vulkan.VkDevice, pool vulkan.VkCommandPool, buffers []vulkan.VkCommandBuffer) {
	l.Driver.FreeCommandBuffers(ctx, device, pool, buffers)
	for _, cb := range buffers {
		l.session.Recorder.Reset(cb)
	}
}

func (l *Layer) BeginCommandBuffer(ctx context.Context, cb vulkan.VkCommandBuffer, info *vulkan.VkCommandBufferBeginInfo) vulkan.VkResult {
	res := l.Driver.BeginCommandBuffer(ctx, cb, info)
	if res == vulkan.VkResult_VK_SUCCESS {
		l.session.Recorder.Reset(cb)
	}
	return res
}

func (l *Layer) ResetCommandBuffer(ctx context.Context, cb vulkan.VkCommandBuffer, flags uint32) vulkan.VkResult {
	res := l.Driver.ResetCommandBuffer(ctx, cb, flags)
	if res == vulkan.VkResult_VK_SUCCESS {
		l.session.Recorder.Reset(cb)
	}
	return res
}

func (l *Layer) CmdBeginRenderPass(ctx context.Context, cb vulkan.VkCommandBuffer, info *vulkan.VkRenderPassBeginInfo, contents vulkan.VkSubpassContents) {
	l.Driver.CmdBeginRenderPass(ctx, cb, info, contents)
	l.record(cb, command.NewBeginRenderPass(*info, contents))
}

func (l *Layer) CmdBindDescriptorSets(ctx context.Context, cb vulkan.VkCommandBuffer, bindPoint vulkan.VkPipelineBindPoint, layout vulkan.VkPipelineLayout, firstSet uint32, sets []vulkan.VkDescriptorSet, dynamicOffsets []uint32) {
	l.Driver.CmdBindDescriptorSets(ctx, cb, bindPoint, layout, firstSet, sets, dynamicOffsets)
	l.record(cb, command.NewBindDescriptorSets(bindPoint, layout, firstSet, sets, dynamicOffsets))
}

func (l *Layer) CmdBindIndexBuffer(ctx context.Context, cb vulkan.VkCommandBuffer, buffer vulkan.VkBuffer, offset vulkan.VkDeviceSize, indexType vulkan.VkIndexType) {
	l.Driver.CmdBindIndexBuffer(ctx, cb, buffer, offset, indexType)
	l.record(cb, &command.BindIndexBuffer{Buffer: buffer, Offset: offset, IndexType: indexType})
}

func (l *Layer) CmdBindPipeline(ctx context.Context, cb vulkan.VkCommandBuffer, bindPoint vulkan.VkPipelineBindPoint, pipeline vulkan.VkPipeline) {
	l.Driver.CmdBindPipeline(ctx, cb, bindPoint, pipeline)
	l.record(cb, &command.BindPipeline{BindPoint: bindPoint, Pipeline: pipeline})
}

func (l *Layer) CmdBindVertexBuffers(ctx context.Context, cb vulkan.VkCommandBuffer, firstBinding uint32, buffers []vulkan.VkBuffer, offsets []vulkan.VkDeviceSize) {
	l.Driver.CmdBindVertexBuffers(ctx, cb, firstBinding, buffers, offsets)
	l.record(cb, command.NewBindVertexBuffers(firstBinding, buffers, offsets))
}

func (l *Layer) CmdCopyBuffer(ctx context.Context, cb vulkan.VkCommandBuffer, src, dst vulkan.VkBuffer, regions []vulkan.VkBufferCopy) {
	l.Driver.CmdCopyBuffer(ctx, cb, src, dst, regions)
	l.record(cb, command.NewCopyBuffer(src, dst, regions))
}

func (l *Layer) CmdDraw(ctx context.Context, cb vulkan.VkCommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	l.Driver.CmdDraw(ctx, cb, vertexCount, instanceCount, firstVertex, firstInstance)
	l.record(cb, &command.Draw{
		VertexCount:   vertexCount,
		InstanceCount: instanceCount,
		FirstVertex:   firstVertex,
		FirstInstance: firstInstance,
	})
}

func (l *Layer) CmdDrawIndexed(ctx context.Context, cb vulkan.VkCommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	l.Driver.CmdDrawIndexed(ctx, cb, indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
	l.record(cb, &command.DrawIndexed{
		IndexCount:    indexCount,
		InstanceCount: instanceCount,
		FirstIndex:    firstIndex,
		VertexOffset:  vertexOffset,
		FirstInstance: firstInstance,
	})
}

// QueueSubmit emits a script for every draw in the submitted command buffers
// once the next driver has accepted the submission.
func (l *Layer) QueueSubmit(ctx context.Context, queue vulkan.VkQueue, submits []vulkan.VkSubmitInfo, fence vulkan.VkFence) vulkan.VkResult {
	res := l.Driver.QueueSubmit(ctx, queue, submits, fence)
	if res != vulkan.VkResult_VK_SUCCESS {
		log.W(ctx, "QueueSubmit failed with %v, no draws captured", res)
		return res
	}
	ctx = log.Enter(ctx, "QueueSubmit")
	l.delivery.deliver(ctx, l.session.Submit(ctx, submits))
	return res
}
