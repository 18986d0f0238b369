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

// Package amber turns the state captured for one draw call into a self
// contained AMBER script.
package amber

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/NeoTim/graphicsfuzz/core/log"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/codec"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/replay"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/spirv"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/state"
	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
	"github.com/pkg/errors"
)

const textureBootstrap = `# Shaders for creating a 2x2 texture.
SHADER vertex vert_shader PASSTHROUGH
SHADER fragment frag_shader_red GLSL
#version 430
layout(location = 0) out vec4 color_out;
void main() {
  color_out = vec4(1.0, 0.0, 0.0, 1.0);
}
END

BUFFER texture FORMAT R8G8B8A8_UNORM
SAMPLER sampler

PIPELINE graphics texture_create_pipeline
  ATTACH vert_shader
  ATTACH frag_shader_red
  FRAMEBUFFER_SIZE 2 2
  BIND BUFFER texture AS color LOCATION 0
END

`

const textureGeneration = `# Generate a 2x2 texture with a one pixel sized chessboard pattern.
CLEAR_COLOR texture_create_pipeline 0 0 255 255
CLEAR texture_create_pipeline
RUN texture_create_pipeline DRAW_RECT POS 0 0 SIZE 1 1
RUN texture_create_pipeline DRAW_RECT POS 1 1 SIZE 1 1

`

// The bootstrap texture and sampler are bound at these slots of set 0.
const (
	samplerBinding = 1
	textureBinding = 2
)

// Emitter writes AMBER scripts for replayed draw calls.
type Emitter struct {
	Store        *state.Store
	Codec        codec.Codec
	Disassembler spirv.Disassembler
}

// script collects the sections of a script that are built out of order.
type script struct {
	buffers  strings.Builder
	colors   strings.Builder
	bindings strings.Builder
	inputs   strings.Builder
	used     map[uint32]bool // set 0 bindings
}

func malformed(format string, args ...interface{}) error {
	return replay.MalformedCommandStream{Reason: fmt.Sprintf(format, args...)}
}

// Emit returns the script reproducing draw.
func (e Emitter) Emit(ctx context.Context, draw replay.Draw) (string, error) {
	ctx = log.Enter(ctx, "Emit")
	s := draw.State
	if s == nil || !s.PipelineBound {
		return "", malformed("%v with no graphics pipeline bound", draw.Kind)
	}
	if s.RenderPass == nil {
		return "", malformed("%v outside a render pass", draw.Kind)
	}
	pipeline, err := e.Store.GraphicsPipelines.Get(s.Pipeline)
	if err != nil {
		return "", err
	}
	if pipeline.InputAssemblyState == nil {
		return "", malformed("pipeline 0x%x has no input assembly state", s.Pipeline)
	}
	topology, err := Topology(pipeline.InputAssemblyState.Topology)
	if err != nil {
		return "", err
	}

	out := &strings.Builder{}
	out.WriteString("#!amber\n\n")
	if err := e.shaders(out, pipeline); err != nil {
		return "", err
	}
	out.WriteString(textureBootstrap)

	sc := &script{used: map[uint32]bool{}}
	if err := e.vertices(ctx, sc, pipeline, s); err != nil {
		return "", err
	}
	if draw.Indexed() {
		if err := e.indices(sc, s, draw.IndexCount); err != nil {
			return "", err
		}
	}
	if err := e.descriptors(sc, s); err != nil {
		return "", err
	}
	framebuffer, err := e.attachments(sc, s)
	if err != nil {
		return "", err
	}

	out.WriteString(sc.buffers.String())
	out.WriteString("PIPELINE graphics pipeline\n")
	out.WriteString("  ATTACH vertex_shader\n")
	out.WriteString("  ATTACH fragment_shader\n")
	fmt.Fprintf(out, "  FRAMEBUFFER_SIZE %d %d\n", framebuffer.Width, framebuffer.Height)
	out.WriteString(sc.colors.String())
	out.WriteString(sc.bindings.String())
	out.WriteString(sc.inputs.String())
	if sc.used[samplerBinding] || sc.used[textureBinding] {
		log.W(ctx, "Set 0 binding %d or %d is in use, the bootstrap texture is not bound", samplerBinding, textureBinding)
	} else {
		fmt.Fprintf(out, "  BIND SAMPLER sampler DESCRIPTOR_SET 0 BINDING %d\n", samplerBinding)
		fmt.Fprintf(out, "  BIND BUFFER texture AS sampled_image DESCRIPTOR_SET 0 BINDING %d\n", textureBinding)
	}
	out.WriteString("END\n\n")

	out.WriteString("CLEAR_COLOR pipeline 0 0 0 255\n\n")
	out.WriteString(textureGeneration)
	out.WriteString("CLEAR pipeline\n")
	if draw.Indexed() {
		fmt.Fprintf(out, "RUN pipeline DRAW_ARRAY AS %s INDEXED\n", topology)
	} else {
		fmt.Fprintf(out, "RUN pipeline DRAW_ARRAY AS %s\n", topology)
	}
	return out.String(), nil
}

func (e Emitter) shaders(out *strings.Builder, pipeline vulkan.VkGraphicsPipelineCreateInfo) error {
	var vertex, fragment vulkan.VkShaderModule
	for _, stage := range pipeline.Stages {
		switch stage.Stage {
		case vulkan.VkShaderStageFlagBits_VK_SHADER_STAGE_VERTEX_BIT:
			vertex = stage.Module
		case vulkan.VkShaderStageFlagBits_VK_SHADER_STAGE_FRAGMENT_BIT:
			fragment = stage.Module
		default:
			return UnsupportedShaderStage{stage.Stage}
		}
	}
	if vertex == 0 || fragment == 0 {
		return malformed("graphics pipeline needs both a vertex and a fragment shader")
	}
	for _, s := range []struct {
		kind, name string
		module     vulkan.VkShaderModule
	}{
		{"vertex", "vertex_shader", vertex},
		{"fragment", "fragment_shader", fragment},
	} {
		info, err := e.Store.ShaderModules.Get(s.module)
		if err != nil {
			return err
		}
		text, err := e.Disassembler.Disassemble(info.Code)
		if err != nil {
			return errors.Wrapf(err, "disassembling %s shader 0x%x", s.kind, s.module)
		}
		fmt.Fprintf(out, "SHADER %s %s SPIRV-ASM\n", s.kind, s.name)
		out.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			out.WriteString("\n")
		}
		out.WriteString("END\n\n")
	}
	return nil
}

func writeData(out *strings.Builder, name, dataType string, values []string) {
	fmt.Fprintf(out, "BUFFER %s DATA_TYPE %s DATA\n", name, dataType)
	fmt.Fprintf(out, "  %s\n", strings.Join(values, " "))
	out.WriteString("END\n\n")
}

func (e Emitter) vertices(ctx context.Context, sc *script, pipeline vulkan.VkGraphicsPipelineCreateInfo, s *replay.State) error {
	bindings := make([]uint32, 0, len(s.VertexBuffers))
	for b := range s.VertexBuffers {
		bindings = append(bindings, b)
	}
	sort.Slice(bindings, func(i, j int) bool { return bindings[i] < bindings[j] })

	for _, binding := range bindings {
		vb := s.VertexBuffers[binding]
		if info, ok := e.Store.Buffers.Lookup(vb.Buffer); ok &&
			!info.Usage.Has(vulkan.VkBufferUsageFlagBits_VK_BUFFER_USAGE_VERTEX_BUFFER_BIT) {
			log.W(ctx, "Buffer 0x%x bound to vertex binding %d was not created for vertex data", vb.Buffer, binding)
		}
		attrs, err := e.Codec.Vertices(pipeline.VertexInputState, binding, vb)
		if err != nil {
			return errors.Wrapf(err, "vertex binding %d", binding)
		}
		if len(attrs) == 0 {
			log.D(ctx, "Vertex binding %d is not used by the pipeline", binding)
		}
		for _, a := range attrs {
			name := fmt.Sprintf("vert_%d_%d", a.Binding, a.Location)
			writeData(&sc.buffers, name, a.Format.DataType(), a.Values)
			fmt.Fprintf(&sc.inputs, "  VERTEX_DATA %s LOCATION %d\n", name, a.Location)
		}
	}
	return nil
}

func (e Emitter) indices(sc *script, s *replay.State, count uint32) error {
	if s.IndexBuffer == nil {
		return malformed("indexed draw with no index buffer bound")
	}
	indices, err := e.Codec.Indices(*s.IndexBuffer, count)
	if err != nil {
		return errors.Wrap(err, "index buffer")
	}
	values := make([]string, len(indices))
	for i, v := range indices {
		values[i] = strconv.FormatUint(uint64(v), 10)
	}
	writeData(&sc.buffers, "index_buffer", "uint32", values)
	sc.inputs.WriteString("  INDEX_DATA index_buffer\n")
	return nil
}

func (e Emitter) descriptors(sc *script, s *replay.State) error {
	numbers := make([]uint32, 0, len(s.DescriptorSets))
	for n := range s.DescriptorSets {
		numbers = append(numbers, n)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })

	for _, n := range numbers {
		set := s.DescriptorSets[n]
		layoutHandle, err := e.Store.DescriptorSets.Get(set)
		if err != nil {
			return err
		}
		layout, err := e.Store.DescriptorSetLayouts.Get(layoutHandle)
		if err != nil {
			return err
		}
		buffers := e.Store.DescriptorBuffers(set)
		bindings := make([]uint32, 0, len(buffers))
		for b := range buffers {
			bindings = append(bindings, b)
		}
		sort.Slice(bindings, func(i, j int) bool { return bindings[i] < bindings[j] })

		for _, b := range bindings {
			lb, ok := layout.Binding(b)
			if !ok {
				return malformed("binding %d written to descriptor set 0x%x is not in its layout", b, set)
			}
			as, ok := descriptorTypes[lb.DescriptorType]
			if !ok {
				return malformed("buffer written to binding %d of descriptor set 0x%x with type %v", b, set, lb.DescriptorType)
			}
			values, err := e.Codec.Floats(buffers[b])
			if err != nil {
				return errors.Wrapf(err, "descriptor set %d binding %d", n, b)
			}
			name := fmt.Sprintf("buf_%d_%d", n, b)
			writeData(&sc.buffers, name, "float", values)
			fmt.Fprintf(&sc.bindings, "  BIND BUFFER %s AS %s DESCRIPTOR_SET %d BINDING %d\n", name, as, n, b)
			if n == 0 {
				sc.used[b] = true
			}
		}
	}
	return nil
}

func (e Emitter) attachments(sc *script, s *replay.State) (vulkan.VkFramebufferCreateInfo, error) {
	pass, err := e.Store.RenderPasses.Get(s.RenderPass.RenderPass)
	if err != nil {
		return vulkan.VkFramebufferCreateInfo{}, err
	}
	if int(s.Subpass) >= len(pass.Subpasses) {
		return vulkan.VkFramebufferCreateInfo{}, malformed("subpass %d of render pass 0x%x with %d subpasses",
			s.Subpass, s.RenderPass.RenderPass, len(pass.Subpasses))
	}
	framebuffer, err := e.Store.Framebuffers.Get(s.RenderPass.Framebuffer)
	if err != nil {
		return vulkan.VkFramebufferCreateInfo{}, err
	}
	for i, ref := range pass.Subpasses[s.Subpass].ColorAttachments {
		format := defaultAttachmentFormat
		if ref.Attachment != vulkan.VK_ATTACHMENT_UNUSED && int(ref.Attachment) < len(pass.Attachments) {
			format = attachmentFormat(pass.Attachments[ref.Attachment].Format)
		}
		fmt.Fprintf(&sc.buffers, "BUFFER framebuffer_%d FORMAT %s\n\n", i, format)
		fmt.Fprintf(&sc.colors, "  BIND BUFFER framebuffer_%d AS color LOCATION %d\n", i, i)
	}
	return framebuffer, nil
}
