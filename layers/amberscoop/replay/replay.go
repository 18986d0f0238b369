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

package replay

import (
	"context"

	"github.com/NeoTim/graphicsfuzz/core/log"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/command"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/state"
	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
)

// Draw is a draw call found in a log, with the state it was issued in.
type Draw struct {
	CommandBuffer vulkan.VkCommandBuffer
	// Index is the position of the draw command in the log.
	Index int
	Kind  command.Kind
	// IndexCount is zero for non-indexed draws.
	IndexCount  uint32
	VertexCount uint32
	State       *State
}

// Indexed returns true if the draw reads an index buffer.
func (d Draw) Indexed() bool { return d.IndexCount > 0 }

// Replayer folds command logs. Buffer copies are added to the copy list of the
// session, as later logs may draw from buffers filled by earlier ones.
type Replayer struct {
	Copies *state.Copies
}

// Replay folds log in order and returns every draw issued while a graphics
// pipeline was bound. Draws without a bound pipeline are skipped.
func (r Replayer) Replay(ctx context.Context, cb vulkan.VkCommandBuffer, cmds []command.Cmd) []Draw {
	draws := []Draw{}
	r.Walk(ctx, cb, cmds, func(d Draw) { draws = append(draws, d) })
	return draws
}

// Walk folds log in order and calls visit for each draw as it is reached.
// Commands after the draw, including buffer copies, have not been folded yet
// when visit runs.
func (r Replayer) Walk(ctx context.Context, cb vulkan.VkCommandBuffer, cmds []command.Cmd, visit func(Draw)) {
	f := &folder{ctx: ctx, cb: cb, copies: r.Copies, state: NewState(), visit: visit}
	for i, cmd := range cmds {
		f.index = i
		cmd.Accept(f)
	}
}

type folder struct {
	ctx    context.Context
	cb     vulkan.VkCommandBuffer
	copies *state.Copies
	state  *State
	index  int
	visit  func(Draw)
}

func (f *folder) BeginRenderPass(c *command.BeginRenderPass) {
	info := c.Info.Clone()
	f.state.RenderPass = &info
	f.state.Subpass = 0
}

func (f *folder) BindDescriptorSets(c *command.BindDescriptorSets) {
	if c.BindPoint != vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS {
		return
	}
	for i, set := range c.Sets {
		f.state.DescriptorSets[c.FirstSet+uint32(i)] = set
	}
}

func (f *folder) BindIndexBuffer(c *command.BindIndexBuffer) {
	f.state.IndexBuffer = &IndexBinding{Buffer: c.Buffer, Offset: c.Offset, IndexType: c.IndexType}
}

func (f *folder) BindPipeline(c *command.BindPipeline) {
	if c.BindPoint != vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS {
		return
	}
	f.state.PipelineBound = true
	f.state.Pipeline = c.Pipeline
}

func (f *folder) BindVertexBuffers(c *command.BindVertexBuffers) {
	for i, buffer := range c.Buffers {
		f.state.VertexBuffers[c.FirstBinding+uint32(i)] = VertexBinding{Buffer: buffer, Offset: c.Offsets[i]}
	}
}

func (f *folder) CopyBuffer(c *command.CopyBuffer) {
	f.copies.Add(state.BufferCopy{Src: c.Src, Dst: c.Dst, Regions: c.Regions})
}

func (f *folder) Draw(c *command.Draw) {
	f.draw(command.KindDraw, c.VertexCount, 0)
}

func (f *folder) DrawIndexed(c *command.DrawIndexed) {
	f.draw(command.KindDrawIndexed, 0, c.IndexCount)
}

func (f *folder) draw(kind command.Kind, vertexCount, indexCount uint32) {
	if !f.state.PipelineBound {
		log.D(f.ctx, "%v %d of command buffer 0x%x has no graphics pipeline bound", kind, f.index, f.cb)
		return
	}
	f.visit(Draw{
		CommandBuffer: f.cb,
		Index:         f.index,
		Kind:          kind,
		IndexCount:    indexCount,
		VertexCount:   vertexCount,
		State:         f.state.Clone(),
	})
}
