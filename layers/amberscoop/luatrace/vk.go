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

package luatrace

import (
	"github.com/NeoTim/graphicsfuzz/core/data/binary"
	"github.com/NeoTim/graphicsfuzz/core/log"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/sim"
	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
	lua "github.com/yuin/gopher-lua"
)

// deviceHandle is passed as the device of every call.
const deviceHandle = vulkan.VkDevice(1)

func (r *runner) functions() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"create_buffer":                r.createBuffer,
		"destroy_buffer":               r.destroyBuffer,
		"allocate_memory":              r.allocateMemory,
		"free_memory":                  r.freeMemory,
		"bind_buffer_memory":           r.bindBufferMemory,
		"map_memory":                   r.mapMemory,
		"unmap_memory":                 r.unmapMemory,
		"write_floats":                 r.writeFloats,
		"write_uint16s":                r.writeUint16s,
		"write_uint32s":                r.writeUint32s,
		"create_descriptor_set_layout": r.createDescriptorSetLayout,
		"allocate_descriptor_sets":     r.allocateDescriptorSets,
		"free_descriptor_sets":         r.freeDescriptorSets,
		"update_descriptor_sets":       r.updateDescriptorSets,
		"create_pipeline_layout":       r.createPipelineLayout,
		"create_render_pass":           r.createRenderPass,
		"create_framebuffer":           r.createFramebuffer,
		"create_shader_module":         r.createShaderModule,
		"create_graphics_pipeline":     r.createGraphicsPipeline,
		"allocate_command_buffers":     r.allocateCommandBuffers,
		"free_command_buffers":         r.freeCommandBuffers,
		"begin_command_buffer":         r.beginCommandBuffer,
		"end_command_buffer":           r.endCommandBuffer,
		"reset_command_buffer":         r.resetCommandBuffer,
		"cmd_begin_render_pass":        r.cmdBeginRenderPass,
		"cmd_bind_descriptor_sets":     r.cmdBindDescriptorSets,
		"cmd_bind_index_buffer":        r.cmdBindIndexBuffer,
		"cmd_bind_pipeline":            r.cmdBindPipeline,
		"cmd_bind_vertex_buffers":      r.cmdBindVertexBuffers,
		"cmd_copy_buffer":              r.cmdCopyBuffer,
		"cmd_draw":                     r.cmdDraw,
		"cmd_draw_indexed":             r.cmdDrawIndexed,
		"queue_submit":                 r.queueSubmit,
		"fail":                         r.fail,
	}
}

// vk.create_buffer{size = n, usage = {"VERTEX_BUFFER_BIT", ...}}
func (r *runner) createBuffer(L *lua.LState) int {
	t := L.CheckTable(1)
	info := vulkan.VkBufferCreateInfo{Size: vulkan.VkDeviceSize(number(L, t, "size", 0))}
	for _, u := range list(L, t, "usage") {
		info.Usage |= vulkan.VkBufferUsageFlags(enum(L, vulkan.ParseVkBufferUsageFlagBits, u.String()))
	}
	b, res := r.layer.CreateBuffer(r.ctx, deviceHandle, &info)
	return result(L, uint64(b), res)
}

func (r *runner) destroyBuffer(L *lua.LState) int {
	r.layer.DestroyBuffer(r.ctx, deviceHandle, vulkan.VkBuffer(checkHandle(L, 1)))
	return 0
}

// vk.allocate_memory{size = n}
func (r *runner) allocateMemory(L *lua.LState) int {
	t := L.CheckTable(1)
	info := vulkan.VkMemoryAllocateInfo{
		AllocationSize:  vulkan.VkDeviceSize(number(L, t, "size", 0)),
		MemoryTypeIndex: uint32(number(L, t, "type", 0)),
	}
	m, res := r.layer.AllocateMemory(r.ctx, deviceHandle, &info)
	return result(L, uint64(m), res)
}

func (r *runner) freeMemory(L *lua.LState) int {
	m := vulkan.VkDeviceMemory(checkHandle(L, 1))
	r.layer.FreeMemory(r.ctx, deviceHandle, m)
	delete(r.mapped, m)
	return 0
}

func (r *runner) bindBufferMemory(L *lua.LState) int {
	res := r.layer.BindBufferMemory(r.ctx, deviceHandle,
		vulkan.VkBuffer(checkHandle(L, 1)),
		vulkan.VkDeviceMemory(checkHandle(L, 2)),
		vulkan.VkDeviceSize(L.OptNumber(3, 0)))
	return status(L, res)
}

// vk.map_memory(memory[, offset[, size]]) maps the rest of the memory when
// size is omitted.
func (r *runner) mapMemory(L *lua.LState) int {
	m := vulkan.VkDeviceMemory(checkHandle(L, 1))
	offset := vulkan.VkDeviceSize(L.OptNumber(2, 0))
	size := vulkan.VK_WHOLE_SIZE
	if L.GetTop() >= 3 {
		size = vulkan.VkDeviceSize(L.CheckNumber(3))
	}
	data, res := r.layer.MapMemory(r.ctx, deviceHandle, m, offset, size, 0)
	if res == vulkan.VkResult_VK_SUCCESS {
		r.mapped[m] = data
	}
	return status(L, res)
}

func (r *runner) unmapMemory(L *lua.LState) int {
	m := vulkan.VkDeviceMemory(checkHandle(L, 1))
	r.layer.UnmapMemory(r.ctx, deviceHandle, m)
	delete(r.mapped, m)
	return 0
}

// write stores values at offset into the current mapping of the memory
// given as the first argument. Offsets are relative to the mapping.
func (r *runner) write(L *lua.LState, encode func(w binary.Writer, vs []lua.LValue)) int {
	m := vulkan.VkDeviceMemory(checkHandle(L, 1))
	offset := uint64(L.CheckNumber(2))
	vs := values(L.CheckTable(3))
	data, ok := r.mapped[m]
	if !ok {
		L.RaiseError("memory 0x%x is not mapped", m)
	}
	err := sim.Write(data, offset, func(w binary.Writer) { encode(w, vs) })
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (r *runner) writeFloats(L *lua.LState) int {
	return r.write(L, func(w binary.Writer, vs []lua.LValue) {
		for _, v := range numbers[float32](L, vs) {
			w.Float32(v)
		}
	})
}

func (r *runner) writeUint16s(L *lua.LState) int {
	return r.write(L, func(w binary.Writer, vs []lua.LValue) {
		for _, v := range numbers[uint32](L, vs) {
			w.Uint16(uint16(v))
		}
	})
}

func (r *runner) writeUint32s(L *lua.LState) int {
	return r.write(L, func(w binary.Writer, vs []lua.LValue) {
		for _, v := range numbers[uint32](L, vs) {
			w.Uint32(v)
		}
	})
}

// vk.create_descriptor_set_layout{bindings = {{binding = 0, type = "UNIFORM_BUFFER", count = 1}}}
func (r *runner) createDescriptorSetLayout(L *lua.LState) int {
	t := L.CheckTable(1)
	info := vulkan.VkDescriptorSetLayoutCreateInfo{}
	for _, b := range tables(L, list(L, t, "bindings")) {
		binding := vulkan.VkDescriptorSetLayoutBinding{
			Binding:         uint32(number(L, b, "binding", 0)),
			DescriptorType:  enum(L, vulkan.ParseVkDescriptorType, str(L, b, "type", "UNIFORM_BUFFER")),
			DescriptorCount: uint32(number(L, b, "count", 1)),
		}
		for _, s := range list(L, b, "stages") {
			binding.StageFlags |= vulkan.VkShaderStageFlags(enum(L, vulkan.ParseVkShaderStageFlagBits, s.String()))
		}
		info.Bindings = append(info.Bindings, binding)
	}
	l, res := r.layer.CreateDescriptorSetLayout(r.ctx, deviceHandle, &info)
	return result(L, uint64(l), res)
}

// vk.allocate_descriptor_sets{layouts = {layout, ...}} returns one set per
// layout.
func (r *runner) allocateDescriptorSets(L *lua.LState) int {
	t := L.CheckTable(1)
	info := vulkan.VkDescriptorSetAllocateInfo{
		DescriptorPool: vulkan.VkDescriptorPool(number(L, t, "pool", 0)),
		SetLayouts:     numbers[vulkan.VkDescriptorSetLayout](L, list(L, t, "layouts")),
	}
	sets, res := r.layer.AllocateDescriptorSets(r.ctx, deviceHandle, &info)
	return handles(L, sets, res)
}

func (r *runner) freeDescriptorSets(L *lua.LState) int {
	sets := numbers[vulkan.VkDescriptorSet](L, values(L.CheckTable(1)))
	return status(L, r.layer.FreeDescriptorSets(r.ctx, deviceHandle, 0, sets))
}

// vk.update_descriptor_sets{writes = {{set = s, binding = 0, buffer = b, range = n}}}
// returns nil, or the error message when some updates were rejected.
func (r *runner) updateDescriptorSets(L *lua.LState) int {
	t := L.CheckTable(1)
	var writes []vulkan.VkWriteDescriptorSet
	for _, w := range tables(L, list(L, t, "writes")) {
		write := vulkan.VkWriteDescriptorSet{
			DstSet:          vulkan.VkDescriptorSet(number(L, w, "set", 0)),
			DstBinding:      uint32(number(L, w, "binding", 0)),
			DstArrayElement: uint32(number(L, w, "element", 0)),
			DescriptorCount: uint32(number(L, w, "count", 1)),
			DescriptorType:  enum(L, vulkan.ParseVkDescriptorType, str(L, w, "type", "UNIFORM_BUFFER")),
		}
		if b := number(L, w, "buffer", 0); b != 0 {
			write.BufferInfo = []vulkan.VkDescriptorBufferInfo{{
				Buffer: vulkan.VkBuffer(b),
				Offset: vulkan.VkDeviceSize(number(L, w, "offset", 0)),
				Range:  vulkan.VkDeviceSize(number(L, w, "range", uint64(vulkan.VK_WHOLE_SIZE))),
			}}
		}
		writes = append(writes, write)
	}
	var copies []vulkan.VkCopyDescriptorSet
	for _, c := range tables(L, list(L, t, "copies")) {
		copies = append(copies, vulkan.VkCopyDescriptorSet{
			SrcSet:          vulkan.VkDescriptorSet(number(L, c, "src_set", 0)),
			SrcBinding:      uint32(number(L, c, "src_binding", 0)),
			DstSet:          vulkan.VkDescriptorSet(number(L, c, "dst_set", 0)),
			DstBinding:      uint32(number(L, c, "dst_binding", 0)),
			DescriptorCount: uint32(number(L, c, "count", 1)),
		})
	}
	if err := r.layer.UpdateDescriptorSets(r.ctx, deviceHandle, writes, copies); err != nil {
		log.W(r.ctx, "UpdateDescriptorSets: %v", err)
		L.Push(lua.LString(err.Error()))
		return 1
	}
	L.Push(lua.LNil)
	return 1
}

// vk.create_pipeline_layout{set_layouts = {layout, ...}}
func (r *runner) createPipelineLayout(L *lua.LState) int {
	t := L.OptTable(1, L.NewTable())
	info := vulkan.VkPipelineLayoutCreateInfo{
		SetLayouts: numbers[vulkan.VkDescriptorSetLayout](L, list(L, t, "set_layouts")),
	}
	l, res := r.layer.CreatePipelineLayout(r.ctx, deviceHandle, &info)
	return result(L, uint64(l), res)
}

// vk.create_render_pass{attachments = {"B8G8R8A8_UNORM"}, subpasses = {{colors = {0}}}}
func (r *runner) createRenderPass(L *lua.LState) int {
	t := L.CheckTable(1)
	info := vulkan.VkRenderPassCreateInfo{}
	for _, a := range list(L, t, "attachments") {
		info.Attachments = append(info.Attachments, vulkan.VkAttachmentDescription{
			Format: enum(L, vulkan.ParseVkFormat, a.String()),
		})
	}
	for _, s := range tables(L, list(L, t, "subpasses")) {
		subpass := vulkan.VkSubpassDescription{
			PipelineBindPoint: vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS,
		}
		for _, c := range numbers[uint32](L, list(L, s, "colors")) {
			subpass.ColorAttachments = append(subpass.ColorAttachments, vulkan.VkAttachmentReference{Attachment: c})
		}
		info.Subpasses = append(info.Subpasses, subpass)
	}
	p, res := r.layer.CreateRenderPass(r.ctx, deviceHandle, &info)
	return result(L, uint64(p), res)
}

// vk.create_framebuffer{render_pass = p, width = w, height = h}
func (r *runner) createFramebuffer(L *lua.LState) int {
	t := L.CheckTable(1)
	info := vulkan.VkFramebufferCreateInfo{
		RenderPass: vulkan.VkRenderPass(number(L, t, "render_pass", 0)),
		Width:      uint32(number(L, t, "width", 0)),
		Height:     uint32(number(L, t, "height", 0)),
		Layers:     uint32(number(L, t, "layers", 1)),
	}
	fb, res := r.layer.CreateFramebuffer(r.ctx, deviceHandle, &info)
	return result(L, uint64(fb), res)
}

// vk.create_shader_module{code = {0x07230203, ...}}
func (r *runner) createShaderModule(L *lua.LState) int {
	t := L.CheckTable(1)
	info := vulkan.VkShaderModuleCreateInfo{Code: numbers[uint32](L, list(L, t, "code"))}
	m, res := r.layer.CreateShaderModule(r.ctx, deviceHandle, &info)
	return result(L, uint64(m), res)
}

//	vk.create_graphics_pipeline{
//	  stages = {{stage = "VERTEX_BIT", module = m}},
//	  bindings = {{binding = 0, stride = 8}},
//	  attributes = {{location = 0, binding = 0, format = "R32G32_SFLOAT", offset = 0}},
//	  topology = "TRIANGLE_LIST", layout = l, render_pass = p,
//	}
func (r *runner) createGraphicsPipeline(L *lua.LState) int {
	t := L.CheckTable(1)
	info := vulkan.VkGraphicsPipelineCreateInfo{
		VertexInputState: &vulkan.VkPipelineVertexInputStateCreateInfo{},
		InputAssemblyState: &vulkan.VkPipelineInputAssemblyStateCreateInfo{
			Topology: enum(L, vulkan.ParseVkPrimitiveTopology, str(L, t, "topology", "TRIANGLE_LIST")),
		},
		Layout:     vulkan.VkPipelineLayout(number(L, t, "layout", 0)),
		RenderPass: vulkan.VkRenderPass(number(L, t, "render_pass", 0)),
		Subpass:    uint32(number(L, t, "subpass", 0)),
	}
	for _, s := range tables(L, list(L, t, "stages")) {
		info.Stages = append(info.Stages, vulkan.VkPipelineShaderStageCreateInfo{
			Stage:  enum(L, vulkan.ParseVkShaderStageFlagBits, str(L, s, "stage", "")),
			Module: vulkan.VkShaderModule(number(L, s, "module", 0)),
			Name:   str(L, s, "name", "main"),
		})
	}
	input := info.VertexInputState
	for _, b := range tables(L, list(L, t, "bindings")) {
		input.VertexBindingDescriptions = append(input.VertexBindingDescriptions, vulkan.VkVertexInputBindingDescription{
			Binding:   uint32(number(L, b, "binding", 0)),
			Stride:    uint32(number(L, b, "stride", 0)),
			InputRate: enum(L, vulkan.ParseVkVertexInputRate, str(L, b, "rate", "VERTEX")),
		})
	}
	for _, a := range tables(L, list(L, t, "attributes")) {
		input.VertexAttributeDescriptions = append(input.VertexAttributeDescriptions, vulkan.VkVertexInputAttributeDescription{
			Location: uint32(number(L, a, "location", 0)),
			Binding:  uint32(number(L, a, "binding", 0)),
			Format:   enum(L, vulkan.ParseVkFormat, str(L, a, "format", "")),
			Offset:   uint32(number(L, a, "offset", 0)),
		})
	}
	ps, res := r.layer.CreateGraphicsPipelines(r.ctx, deviceHandle, 0, []vulkan.VkGraphicsPipelineCreateInfo{info})
	if res != vulkan.VkResult_VK_SUCCESS {
		return result(L, 0, res)
	}
	return result(L, uint64(ps[0]), res)
}

// vk.allocate_command_buffers([count]) returns count command buffers.
func (r *runner) allocateCommandBuffers(L *lua.LState) int {
	info := vulkan.VkCommandBufferAllocateInfo{
		Level:              vulkan.VkCommandBufferLevel_VK_COMMAND_BUFFER_LEVEL_PRIMARY,
		CommandBufferCount: optUint(L, 1, 1),
	}
	cbs, res := r.layer.AllocateCommandBuffers(r.ctx, deviceHandle, &info)
	return handles(L, cbs, res)
}

func (r *runner) freeCommandBuffers(L *lua.LState) int {
	cbs := make([]vulkan.VkCommandBuffer, L.GetTop())
	for i := range cbs {
		cbs[i] = vulkan.VkCommandBuffer(checkHandle(L, i+1))
	}
	r.layer.FreeCommandBuffers(r.ctx, deviceHandle, 0, cbs)
	return 0
}

func commandBuffer(L *lua.LState) vulkan.VkCommandBuffer {
	return vulkan.VkCommandBuffer(checkHandle(L, 1))
}

func (r *runner) beginCommandBuffer(L *lua.LState) int {
	return status(L, r.layer.BeginCommandBuffer(r.ctx, commandBuffer(L), &vulkan.VkCommandBufferBeginInfo{}))
}

func (r *runner) endCommandBuffer(L *lua.LState) int {
	return status(L, r.layer.EndCommandBuffer(r.ctx, commandBuffer(L)))
}

func (r *runner) resetCommandBuffer(L *lua.LState) int {
	return status(L, r.layer.ResetCommandBuffer(r.ctx, commandBuffer(L), optUint(L, 2, 0)))
}

// vk.cmd_begin_render_pass(cb, {render_pass = p, framebuffer = fb})
func (r *runner) cmdBeginRenderPass(L *lua.LState) int {
	t := L.CheckTable(2)
	info := vulkan.VkRenderPassBeginInfo{
		RenderPass:  vulkan.VkRenderPass(number(L, t, "render_pass", 0)),
		Framebuffer: vulkan.VkFramebuffer(number(L, t, "framebuffer", 0)),
		RenderArea: vulkan.VkRect2D{Extent: vulkan.VkExtent2D{
			Width:  uint32(number(L, t, "width", 0)),
			Height: uint32(number(L, t, "height", 0)),
		}},
	}
	r.layer.CmdBeginRenderPass(r.ctx, commandBuffer(L), &info, vulkan.VkSubpassContents_VK_SUBPASS_CONTENTS_INLINE)
	return 0
}

// vk.cmd_bind_descriptor_sets(cb, layout, first_set, {set, ...})
func (r *runner) cmdBindDescriptorSets(L *lua.LState) int {
	sets := numbers[vulkan.VkDescriptorSet](L, values(L.CheckTable(4)))
	r.layer.CmdBindDescriptorSets(r.ctx, commandBuffer(L),
		vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS,
		vulkan.VkPipelineLayout(checkHandle(L, 2)),
		uint32(L.CheckNumber(3)), sets, nil)
	return 0
}

// vk.cmd_bind_index_buffer(cb, buffer, offset, "UINT16")
func (r *runner) cmdBindIndexBuffer(L *lua.LState) int {
	r.layer.CmdBindIndexBuffer(r.ctx, commandBuffer(L),
		vulkan.VkBuffer(checkHandle(L, 2)),
		vulkan.VkDeviceSize(L.OptNumber(3, 0)),
		enum(L, vulkan.ParseVkIndexType, L.OptString(4, "UINT16")))
	return 0
}

func (r *runner) cmdBindPipeline(L *lua.LState) int {
	r.layer.CmdBindPipeline(r.ctx, commandBuffer(L),
		vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS,
		vulkan.VkPipeline(checkHandle(L, 2)))
	return 0
}

// vk.cmd_bind_vertex_buffers(cb, first_binding, {buffer, ...}[, {offset, ...}])
func (r *runner) cmdBindVertexBuffers(L *lua.LState) int {
	buffers := numbers[vulkan.VkBuffer](L, values(L.CheckTable(3)))
	offsets := make([]vulkan.VkDeviceSize, len(buffers))
	if t := L.OptTable(4, nil); t != nil {
		copy(offsets, numbers[vulkan.VkDeviceSize](L, values(t)))
	}
	r.layer.CmdBindVertexBuffers(r.ctx, commandBuffer(L), uint32(L.CheckNumber(2)), buffers, offsets)
	return 0
}

// vk.cmd_copy_buffer(cb, src, dst, {{src_offset = 0, dst_offset = 0, size = n}})
func (r *runner) cmdCopyBuffer(L *lua.LState) int {
	var regions []vulkan.VkBufferCopy
	for _, t := range tables(L, values(L.CheckTable(4))) {
		regions = append(regions, vulkan.VkBufferCopy{
			SrcOffset: vulkan.VkDeviceSize(number(L, t, "src_offset", 0)),
			DstOffset: vulkan.VkDeviceSize(number(L, t, "dst_offset", 0)),
			Size:      vulkan.VkDeviceSize(number(L, t, "size", 0)),
		})
	}
	r.layer.CmdCopyBuffer(r.ctx, commandBuffer(L),
		vulkan.VkBuffer(checkHandle(L, 2)),
		vulkan.VkBuffer(checkHandle(L, 3)),
		regions)
	return 0
}

// vk.cmd_draw(cb, vertex_count[, instance_count[, first_vertex[, first_instance]]])
func (r *runner) cmdDraw(L *lua.LState) int {
	r.layer.CmdDraw(r.ctx, commandBuffer(L),
		uint32(L.CheckNumber(2)), optUint(L, 3, 1), optUint(L, 4, 0), optUint(L, 5, 0))
	return 0
}

// vk.cmd_draw_indexed(cb, index_count[, instance_count[, first_index[, vertex_offset[, first_instance]]]])
func (r *runner) cmdDrawIndexed(L *lua.LState) int {
	r.layer.CmdDrawIndexed(r.ctx, commandBuffer(L),
		uint32(L.CheckNumber(2)), optUint(L, 3, 1), optUint(L, 4, 0),
		int32(L.OptNumber(5, 0)), optUint(L, 6, 0))
	return 0
}

// vk.queue_submit({cb, ...})
func (r *runner) queueSubmit(L *lua.LState) int {
	cbs := numbers[vulkan.VkCommandBuffer](L, values(L.CheckTable(1)))
	submits := []vulkan.VkSubmitInfo{{CommandBuffers: cbs}}
	return status(L, r.layer.QueueSubmit(r.ctx, 0, submits, 0))
}

// vk.fail("CreateBuffer", "ERROR_OUT_OF_DEVICE_MEMORY") makes later calls of
// the entry point fail. Passing "SUCCESS" clears the failure.
func (r *runner) fail(L *lua.LState) int {
	if r.device == nil {
		L.RaiseError("vk.fail needs a simulated device")
	}
	r.device.Fail(L.CheckString(1), enum(L, vulkan.ParseVkResult, L.CheckString(2)))
	return 0
}
