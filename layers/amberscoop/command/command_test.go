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

package command_test

import (
	"testing"

	"github.com/NeoTim/graphicsfuzz/core/assert"
	"github.com/NeoTim/graphicsfuzz/core/log"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/command"
	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
)

func TestRecordKeepsOrder(t *testing.T) {
	ctx := log.Testing(t)
	r := command.NewRecorder()
	r.Record(1, &command.BindPipeline{Pipeline: 3})
	r.Record(2, &command.Draw{VertexCount: 1})
	r.Record(1, &command.Draw{VertexCount: 3})

	got, ok := r.Log(1)
	assert.For(ctx, "exists").ThatBoolean(ok).IsTrue()
	kinds := []command.Kind{}
	for _, c := range got {
		kinds = append(kinds, c.Kind())
	}
	assert.For(ctx, "kinds").ThatSlice(kinds).Equals([]command.Kind{command.KindBindPipeline, command.KindDraw})

	r.Reset(1)
	_, ok = r.Log(1)
	assert.For(ctx, "reset").ThatBoolean(ok).IsFalse()
	other, _ := r.Log(2)
	assert.For(ctx, "other log").ThatSlice(other).IsLength(1)
}

func TestConstructorsCopyArrays(t *testing.T) {
	ctx := log.Testing(t)
	buffers := []vulkan.VkBuffer{1, 2}
	offsets := []vulkan.VkDeviceSize{16}
	bind := command.NewBindVertexBuffers(0, buffers, offsets)
	buffers[0], offsets[0] = 9, 99
	assert.For(ctx, "buffers").ThatSlice(bind.Buffers).Equals([]vulkan.VkBuffer{1, 2})
	assert.For(ctx, "offsets").ThatSlice(bind.Offsets).Equals([]vulkan.VkDeviceSize{16, 0})

	sets := []vulkan.VkDescriptorSet{4}
	ds := command.NewBindDescriptorSets(vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS, 1, 0, sets, nil)
	sets[0] = 5
	assert.For(ctx, "sets").ThatSlice(ds.Sets).Equals([]vulkan.VkDescriptorSet{4})

	regions := []vulkan.VkBufferCopy{{SrcOffset: 4}}
	cp := command.NewCopyBuffer(1, 2, regions)
	regions[0].SrcOffset = 8
	assert.For(ctx, "regions").That(cp.Regions[0].SrcOffset).Equals(vulkan.VkDeviceSize(4))

	info := vulkan.VkRenderPassBeginInfo{ClearValues: []vulkan.VkClearValue{{Depth: 1}}}
	rp := command.NewBeginRenderPass(info, vulkan.VkSubpassContents_VK_SUBPASS_CONTENTS_INLINE)
	info.ClearValues[0].Depth = 0
	assert.For(ctx, "clear").That(rp.Info.ClearValues[0].Depth).Equals(float32(1))
}

type counter map[command.Kind]int

func (c counter) BeginRenderPass(*command.BeginRenderPass)       { c[command.KindBeginRenderPass]++ }
func (c counter) BindDescriptorSets(*command.BindDescriptorSets) { c[command.KindBindDescriptorSets]++ }
func (c counter) BindIndexBuffer(*command.BindIndexBuffer)       { c[command.KindBindIndexBuffer]++ }
func (c counter) BindPipeline(*command.BindPipeline)             { c[command.KindBindPipeline]++ }
func (c counter) BindVertexBuffers(*command.BindVertexBuffers)   { c[command.KindBindVertexBuffers]++ }
func (c counter) CopyBuffer(*command.CopyBuffer)                 { c[command.KindCopyBuffer]++ }
func (c counter) Draw(*command.Draw)                             { c[command.KindDraw]++ }
func (c counter) DrawIndexed(*command.DrawIndexed)               { c[command.KindDrawIndexed]++ }

func TestAcceptDispatchesByVariant(t *testing.T) {
	ctx := log.Testing(t)
	cmds := []command.Cmd{
		&command.BeginRenderPass{}, &command.BindDescriptorSets{}, &command.BindIndexBuffer{},
		&command.BindPipeline{}, &command.BindVertexBuffers{}, &command.CopyBuffer{},
		&command.Draw{}, &command.DrawIndexed{},
	}
	c := counter{}
	for _, cmd := range cmds {
		cmd.Accept(c)
	}
	for _, cmd := range cmds {
		assert.For(ctx, "%v", cmd.Kind()).That(c[cmd.Kind()]).Equals(1)
	}
	assert.For(ctx, "name").ThatString(command.KindDrawIndexed.String()).Equals("vkCmdDrawIndexed")
}
