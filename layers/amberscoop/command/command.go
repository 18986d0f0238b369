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

// Package command holds the recorded form of the vkCmd* calls that affect
// draw state, and the per command buffer logs they are appended to.
package command

import (
	"fmt"

	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
)

// Kind identifies a command variant.
type Kind int

const (
	KindBeginRenderPass Kind = iota
	KindBindDescriptorSets
	KindBindIndexBuffer
	KindBindPipeline
	KindBindVertexBuffers
	KindCopyBuffer
	KindDraw
	KindDrawIndexed
)

var kindNames = [...]string{
	"vkCmdBeginRenderPass",
	"vkCmdBindDescriptorSets",
	"vkCmdBindIndexBuffer",
	"vkCmdBindPipeline",
	"vkCmdBindVertexBuffers",
	"vkCmdCopyBuffer",
	"vkCmdDraw",
	"vkCmdDrawIndexed",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Cmd is a recorded command. The set of implementations is closed: every
// variant is declared in this package and handled by Visitor.
type Cmd interface {
	Kind() Kind
	// Accept calls the Visitor method for the variant.
	Accept(Visitor)
	isCmd()
}

// Visitor has one method per command variant. Adding a variant adds a method
// here, so every consumer fails to compile until it handles it.
type Visitor interface {
	BeginRenderPass(*BeginRenderPass)
	BindDescriptorSets(*BindDescriptorSets)
	BindIndexBuffer(*BindIndexBuffer)
	BindPipeline(*BindPipeline)
	BindVertexBuffers(*BindVertexBuffers)
	CopyBuffer(*CopyBuffer)
	Draw(*Draw)
	DrawIndexed(*DrawIndexed)
}

type BeginRenderPass struct {
	Info     vulkan.VkRenderPassBeginInfo
	Contents vulkan.VkSubpassContents
}

// NewBeginRenderPass copies info.
func NewBeginRenderPass(info vulkan.VkRenderPassBeginInfo, contents vulkan.VkSubpassContents) *BeginRenderPass {
	return &BeginRenderPass{Info: info.Clone(), Contents: contents}
}

type BindDescriptorSets struct {
	BindPoint      vulkan.VkPipelineBindPoint
	Layout         vulkan.VkPipelineLayout
	FirstSet       uint32
	Sets           []vulkan.VkDescriptorSet
	DynamicOffsets []uint32
}

// NewBindDescriptorSets copies sets and dynamicOffsets.
func NewBindDescriptorSets(bindPoint vulkan.VkPipelineBindPoint, layout vulkan.VkPipelineLayout,
	firstSet uint32, sets []vulkan.VkDescriptorSet, dynamicOffsets []uint32) *BindDescriptorSets {
	return &BindDescriptorSets{
		BindPoint:      bindPoint,
		Layout:         layout,
		FirstSet:       firstSet,
		Sets:           append([]vulkan.VkDescriptorSet(nil), sets...),
		DynamicOffsets: append([]uint32(nil), dynamicOffsets...),
	}
}

type BindIndexBuffer struct {
	Buffer    vulkan.VkBuffer
	Offset    vulkan.VkDeviceSize
	IndexType vulkan.VkIndexType
}

type BindPipeline struct {
	BindPoint vulkan.VkPipelineBindPoint
	Pipeline  vulkan.VkPipeline
}

type BindVertexBuffers struct {
	FirstBinding uint32
	Buffers      []vulkan.VkBuffer
	Offsets      []vulkan.VkDeviceSize
}

// NewBindVertexBuffers copies buffers and offsets. A missing offset is
// treated as zero.
func NewBindVertexBuffers(firstBinding uint32, buffers []vulkan.VkBuffer, offsets []vulkan.VkDeviceSize) *BindVertexBuffers {
	c := &BindVertexBuffers{
		FirstBinding: firstBinding,
		Buffers:      append([]vulkan.VkBuffer(nil), buffers...),
		Offsets:      make([]vulkan.VkDeviceSize, len(buffers)),
	}
	copy(c.Offsets, offsets)
	return c
}

type CopyBuffer struct {
	Src     vulkan.VkBuffer
	Dst     vulkan.VkBuffer
	Regions []vulkan.VkBufferCopy
}

// NewCopyBuffer copies regions.
func NewCopyBuffer(src, dst vulkan.VkBuffer, regions []vulkan.VkBufferCopy) *CopyBuffer {
	return &CopyBuffer{Src: src, Dst: dst, Regions: append([]vulkan.VkBufferCopy(nil), regions...)}
}

type Draw struct {
	VertexCount   uint32
	InstanceCount uint32
	FirstVertex   uint32
	FirstInstance uint32
}

type DrawIndexed struct {
	IndexCount    uint32
	InstanceCount uint32
	FirstIndex    uint32
	VertexOffset  int32
	FirstInstance uint32
}

func (*BeginRenderPass) Kind() Kind    { return KindBeginRenderPass }
func (*BindDescriptorSets) Kind() Kind { return KindBindDescriptorSets }
func (*BindIndexBuffer) Kind() Kind    { return KindBindIndexBuffer }
func (*BindPipeline) Kind() Kind       { return KindBindPipeline }
func (*BindVertexBuffers) Kind() Kind  { return KindBindVertexBuffers }
func (*CopyBuffer) Kind() Kind         { return KindCopyBuffer }
func (*Draw) Kind() Kind               { return KindDraw }
func (*DrawIndexed) Kind() Kind        { return KindDrawIndexed }

func (c *BeginRenderPass) Accept(v Visitor)    { v.BeginRenderPass(c) }
func (c *BindDescriptorSets) Accept(v Visitor) { v.BindDescriptorSets(c) }
func (c *BindIndexBuffer) Accept(v Visitor)    { v.BindIndexBuffer(c) }
func (c *BindPipeline) Accept(v Visitor)       { v.BindPipeline(c) }
func (c *BindVertexBuffers) Accept(v Visitor)  { v.BindVertexBuffers(c) }
func (c *CopyBuffer) Accept(v Visitor)         { v.CopyBuffer(c) }
func (c *Draw) Accept(v Visitor)               { v.Draw(c) }
func (c *DrawIndexed) Accept(v Visitor)        { v.DrawIndexed(c) }

func (*BeginRenderPass) isCmd()    {}
func (*BindDescriptorSets) isCmd() {}
func (*BindIndexBuffer) isCmd()    {}
func (*BindPipeline) isCmd()       {}
func (*BindVertexBuffers) isCmd()  {}
func (*CopyBuffer) isCmd()         {}
func (*Draw) isCmd()               {}
func (*DrawIndexed) isCmd()        {}
