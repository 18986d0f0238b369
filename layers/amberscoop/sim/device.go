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

// Package sim provides an in-memory Driver that stands in for a Vulkan
// implementation. It backs device memory with byte slices, hands out
// sequential handles and executes buffer copies at submit time, which is
// enough to drive the capture layer without a GPU.
package sim

import (
	"context"
	"sync"

	"github.com/NeoTim/graphicsfuzz/core/log"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop"
	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
	"github.com/pkg/errors"
)

type buffer struct {
	size   vulkan.VkDeviceSize
	memory vulkan.VkDeviceMemory
	offset vulkan.VkDeviceSize
	bound  bool
}

type copyCmd struct {
	src, dst vulkan.VkBuffer
	regions  []vulkan.VkBufferCopy
}

// Device is a Driver that needs no GPU.
type Device struct {
	mu       sync.Mutex
	next     uint64
	memory   map[vulkan.VkDeviceMemory][]byte
	mapped   map[vulkan.VkDeviceMemory]bool
	buffers  map[vulkan.VkBuffer]*buffer
	copies   map[vulkan.VkCommandBuffer][]copyCmd
	failures map[string]vulkan.VkResult
	calls    []string
}

var _ amberscoop.Driver = (*Device)(nil)

// New returns an empty device.
func New() *Device {
	return &Device{
		memory:   map[vulkan.VkDeviceMemory][]byte{},
		mapped:   map[vulkan.VkDeviceMemory]bool{},
		buffers:  map[vulkan.VkBuffer]*buffer{},
		copies:   map[vulkan.VkCommandBuffer][]copyCmd{},
		failures: map[string]vulkan.VkResult{},
	}
}

// Fail makes every later call of the named entry point, such as
// "CreateBuffer", return result. Passing VK_SUCCESS clears the failure.
func (d *Device) Fail(call string, result vulkan.VkResult) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if result == vulkan.VkResult_VK_SUCCESS {
		delete(d.failures, call)
		return
	}
	d.failures[call] = result
}

// Calls returns the names of the entry points called so far, in order.
func (d *Device) Calls() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.calls...)
}

// enter logs the call and returns the result it was told to fail with. The
// caller must hold d.mu.
func (d *Device) enter(call string) vulkan.VkResult {
	d.calls = append(d.calls, call)
	if res, ok := d.failures[call]; ok {
		return res
	}
	return vulkan.VkResult_VK_SUCCESS
}

func (d *Device) handle() uint64 {
	d.next++
	return d.next
}

func (d *Device) CreateBuffer(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkBufferCreateInfo) (vulkan.VkBuffer, vulkan.VkResult) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.enter("CreateBuffer"); res != vulkan.VkResult_VK_SUCCESS {
		return 0, res
	}
	b := vulkan.VkBuffer(d.handle())
	d.buffers[b] = &buffer{size: info.Size}
	return b, vulkan.VkResult_VK_SUCCESS
}

func (d *Device) DestroyBuffer(ctx context.Context, device vulkan.VkDevice, b vulkan.VkBuffer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enter("DestroyBuffer")
	delete(d.buffers, b)
}

func (d *Device) AllocateMemory(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkMemoryAllocateInfo) (vulkan.VkDeviceMemory, vulkan.VkResult) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.enter("AllocateMemory"); res != vulkan.VkResult_VK_SUCCESS {
		return 0, res
	}
	m := vulkan.VkDeviceMemory(d.handle())
	d.memory[m] = make([]byte, info.AllocationSize)
	return m, vulkan.VkResult_VK_SUCCESS
}

func (d *Device) FreeMemory(ctx context.Context, device vulkan.VkDevice, memory vulkan.VkDeviceMemory) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enter("FreeMemory")
	delete(d.memory, memory)
	delete(d.mapped, memory)
}

func (d *Device) BindBufferMemory(ctx context.Context, device vulkan.VkDevice, b vulkan.VkBuffer, memory vulkan.VkDeviceMemory, offset vulkan.VkDeviceSize) vulkan.VkResult {
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.enter("BindBufferMemory"); res != vulkan.VkResult_VK_SUCCESS {
		return res
	}
	buf, ok := d.buffers[b]
	mem, found := d.memory[memory]
	if !ok || !found || buf.bound || offset+buf.size > vulkan.VkDeviceSize(len(mem)) {
		return vulkan.VkResult_VK_ERROR_OUT_OF_DEVICE_MEMORY
	}
	buf.memory, buf.offset, buf.bound = memory, offset, true
	return vulkan.VkResult_VK_SUCCESS
}

// MapMemory returns a slice aliasing the device memory, so writes through it
// are visible to later copies and to the capture layer.
func (d *Device) MapMemory(ctx context.Context, device vulkan.VkDevice, memory vulkan.VkDeviceMemory, offset, size vulkan.VkDeviceSize, flags vulkan.VkMemoryMapFlags) ([]byte, vulkan.VkResult) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.enter("MapMemory"); res != vulkan.VkResult_VK_SUCCESS {
		return nil, res
	}
	mem, ok := d.memory[memory]
	if !ok || d.mapped[memory] || offset > vulkan.VkDeviceSize(len(mem)) {
		return nil, vulkan.VkResult_VK_ERROR_MEMORY_MAP_FAILED
	}
	end := vulkan.VkDeviceSize(len(mem))
	if size != vulkan.VK_WHOLE_SIZE {
		if offset+size > end {
			return nil, vulkan.VkResult_VK_ERROR_MEMORY_MAP_FAILED
		}
		end = offset + size
	}
	d.mapped[memory] = true
	return mem[offset:end:end], vulkan.VkResult_VK_SUCCESS
}

func (d *Device) UnmapMemory(ctx context.Context, device vulkan.VkDevice, memory vulkan.VkDeviceMemory) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enter("UnmapMemory")
	delete(d.mapped, memory)
}

func (d *Device) CreateDescriptorSetLayout(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkDescriptorSetLayoutCreateInfo) (vulkan.VkDescriptorSetLayout, vulkan.VkResult) {
	h, res := d.create("CreateDescriptorSetLayout")
	return vulkan.VkDescriptorSetLayout(h), res
}

func (d *Device) AllocateDescriptorSets(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkDescriptorSetAllocateInfo) ([]vulkan.VkDescriptorSet, vulkan.VkResult) {
	hs, res := d.createN("AllocateDescriptorSets", len(info.SetLayouts))
	return handles[vulkan.VkDescriptorSet](hs), res
}

func (d *Device) FreeDescriptorSets(ctx context.Context, device vulkan.VkDevice, pool vulkan.VkDescriptorPool, sets []vulkan.VkDescriptorSet) vulkan.VkResult {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.enter("FreeDescriptorSets")
}

// UpdateDescriptorSets fails with an error whose cause is the configured
// result.
func (d *Device) UpdateDescriptorSets(ctx context.Context, device vulkan.VkDevice, writes []vulkan.VkWriteDescriptorSet, copies []vulkan.VkCopyDescriptorSet) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.enter("UpdateDescriptorSets"); res != vulkan.VkResult_VK_SUCCESS {
		return errors.Wrap(res, "UpdateDescriptorSets")
	}
	return nil
}

func (d *Device) CreatePipelineLayout(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkPipelineLayoutCreateInfo) (vulkan.VkPipelineLayout, vulkan.VkResult) {
	h, res := d.create("CreatePipelineLayout")
	return vulkan.VkPipelineLayout(h), res
}

func (d *Device) CreateRenderPass(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkRenderPassCreateInfo) (vulkan.VkRenderPass, vulkan.VkResult) {
	h, res := d.create("CreateRenderPass")
	return vulkan.VkRenderPass(h), res
}

func (d *Device) CreateFramebuffer(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkFramebufferCreateInfo) (vulkan.VkFramebuffer, vulkan.VkResult) {
	h, res := d.create("CreateFramebuffer")
	return vulkan.VkFramebuffer(h), res
}

func (d *Device) CreateShaderModule(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkShaderModuleCreateInfo) (vulkan.VkShaderModule, vulkan.VkResult) {
	h, res := d.create("CreateShaderModule")
	return vulkan.VkShaderModule(h), res
}

func (d *Device) CreateGraphicsPipelines(ctx context.Context, device vulkan.VkDevice, cache vulkan.VkPipelineCache, infos []vulkan.VkGraphicsPipelineCreateInfo) ([]vulkan.VkPipeline, vulkan.VkResult) {
	hs, res := d.createN("CreateGraphicsPipelines", len(infos))
	return handles[vulkan.VkPipeline](hs), res
}

func (d *Device) AllocateCommandBuffers(ctx context.Context, device vulkan.VkDevice, info *vulkan.VkCommandBufferAllocateInfo) ([]vulkan.VkCommandBuffer, vulkan.VkResult) {
	hs, res := d.createN("AllocateCommandBuffers", int(info.CommandBufferCount))
	return handles[vulkan.VkCommandBuffer](hs), res
}

func (d *Device) FreeCommandBuffers(ctx context.Context, device vulkan.VkDevice, pool vulkan.VkCommandPool, buffers []vulkan.VkCommandBuffer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enter("FreeCommandBuffers")
	for _, cb := range buffers {
		delete(d.copies, cb)
	}
}

func (d *Device) BeginCommandBuffer(ctx context.Context, cb vulkan.VkCommandBuffer, info *vulkan.VkCommandBufferBeginInfo) vulkan.VkResult {
	return d.reset("BeginCommandBuffer", cb)
}

func (d *Device) EndCommandBuffer(ctx context.Context, cb vulkan.VkCommandBuffer) vulkan.VkResult {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.enter("EndCommandBuffer")
}

func (d *Device) ResetCommandBuffer(ctx context.Context, cb vulkan.VkCommandBuffer, flags uint32) vulkan.VkResult {
	return d.reset("ResetCommandBuffer", cb)
}

func (d *Device) CmdBeginRenderPass(ctx context.Context, cb vulkan.VkCommandBuffer, info *vulkan.VkRenderPassBeginInfo, contents vulkan.VkSubpassContents) {
	d.command("CmdBeginRenderPass")
}

func (d *Device) CmdBindDescriptorSets(ctx context.Context, cb vulkan.VkCommandBuffer, bindPoint vulkan.VkPipelineBindPoint, layout vulkan.VkPipelineLayout, firstSet uint32, sets []vulkan.VkDescriptorSet, dynamicOffsets []uint32) {
	d.command("CmdBindDescriptorSets")
}

func (d *Device) CmdBindIndexBuffer(ctx context.Context, cb vulkan.VkCommandBuffer, b vulkan.VkBuffer, offset vulkan.VkDeviceSize, indexType vulkan.VkIndexType) {
	d.command("CmdBindIndexBuffer")
}

func (d *Device) CmdBindPipeline(ctx context.Context, cb vulkan.VkCommandBuffer, bindPoint vulkan.VkPipelineBindPoint, pipeline vulkan.VkPipeline) {
	d.command("CmdBindPipeline")
}

func (d *Device) CmdBindVertexBuffers(ctx context.Context, cb vulkan.VkCommandBuffer, firstBinding uint32, buffers []vulkan.VkBuffer, offsets []vulkan.VkDeviceSize) {
	d.command("CmdBindVertexBuffers")
}

// CmdCopyBuffer defers the copy until the command buffer is submitted.
func (d *Device) CmdCopyBuffer(ctx context.Context, cb vulkan.VkCommandBuffer, src, dst vulkan.VkBuffer, regions []vulkan.VkBufferCopy) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enter("CmdCopyBuffer")
	d.copies[cb] = append(d.copies[cb], copyCmd{src, dst, append([]vulkan.VkBufferCopy(nil), regions...)})
}

func (d *Device) CmdDraw(ctx context.Context, cb vulkan.VkCommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	d.command("CmdDraw")
}

func (d *Device) CmdDrawIndexed(ctx context.Context, cb vulkan.VkCommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	d.command("CmdDrawIndexed")
}

// QueueSubmit executes the buffer copies recorded into the submitted command
// buffers. Copies touching unbound buffers or out of range bytes are skipped.
func (d *Device) QueueSubmit(ctx context.Context, queue vulkan.VkQueue, submits []vulkan.VkSubmitInfo, fence vulkan.VkFence) vulkan.VkResult {
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.enter("QueueSubmit"); res != vulkan.VkResult_VK_SUCCESS {
		return res
	}
	for _, s := range submits {
		for _, cb := range s.CommandBuffers {
			for _, c := range d.copies[cb] {
				d.execute(ctx, c)
			}
		}
	}
	return vulkan.VkResult_VK_SUCCESS
}

func (d *Device) execute(ctx context.Context, c copyCmd) {
	src, dst := d.bytes(c.src), d.bytes(c.dst)
	for _, r := range c.regions {
		if src == nil || dst == nil ||
			r.SrcOffset+r.Size > vulkan.VkDeviceSize(len(src)) ||
			r.DstOffset+r.Size > vulkan.VkDeviceSize(len(dst)) {
			log.W(ctx, "Skipping copy of %d bytes from 0x%x to 0x%x", r.Size, c.src, c.dst)
			continue
		}
		copy(dst[r.DstOffset:r.DstOffset+r.Size], src[r.SrcOffset:r.SrcOffset+r.Size])
	}
}

// bytes returns the memory backing b, or nil if b is not bound.
func (d *Device) bytes(b vulkan.VkBuffer) []byte {
	buf, ok := d.buffers[b]
	if !ok || !buf.bound {
		return nil
	}
	mem := d.memory[buf.memory]
	if mem == nil {
		return nil
	}
	return mem[buf.offset : buf.offset+buf.size]
}

func (d *Device) create(call string) (uint64, vulkan.VkResult) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.enter(call); res != vulkan.VkResult_VK_SUCCESS {
		return 0, res
	}
	return d.handle(), vulkan.VkResult_VK_SUCCESS
}

func (d *Device) createN(call string, n int) ([]uint64, vulkan.VkResult) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if res := d.enter(call); res != vulkan.VkResult_VK_SUCCESS {
		return nil, res
	}
	out := make([]uint64, n)
	for i := range out {
		out[i] = d.handle()
	}
	return out, vulkan.VkResult_VK_SUCCESS
}

func (d *Device) reset(call string, cb vulkan.VkCommandBuffer) vulkan.VkResult {
	d.mu.Lock()
	defer d.mu.Unlock()
	res := d.enter(call)
	if res == vulkan.VkResult_VK_SUCCESS {
		delete(d.copies, cb)
	}
	return res
}

func (d *Device) command(call string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enter(call)
}

func handles[H ~uint64](hs []uint64) []H {
	if hs == nil {
		return nil
	}
	out := make([]H, len(hs))
	for i, h := range hs {
		out[i] = H(h)
	}
	return out
}
