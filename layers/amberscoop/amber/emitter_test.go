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

package amber

import (
	eb "encoding/binary"
	"fmt"
	"math"
	"testing"

	"github.com/NeoTim/graphicsfuzz/core/assert"
	"github.com/NeoTim/graphicsfuzz/core/log"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/codec"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/command"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/replay"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/state"
	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
)

type wordCounter struct{}

func (wordCounter) Disassemble(code []uint32) (string, error) {
	return fmt.Sprintf("; %d words\n", len(code)), nil
}

const (
	vertexBuffer  vulkan.VkBuffer              = 1
	vertexMemory  vulkan.VkDeviceMemory        = 2
	uniformBuffer vulkan.VkBuffer              = 5
	uniformMemory vulkan.VkDeviceMemory        = 6
	indexBuffer   vulkan.VkBuffer              = 7
	indexMemory   vulkan.VkDeviceMemory        = 8
	pipeline      vulkan.VkPipeline            = 10
	vertexModule  vulkan.VkShaderModule        = 20
	fragModule    vulkan.VkShaderModule        = 21
	renderPass    vulkan.VkRenderPass          = 30
	framebuffer   vulkan.VkFramebuffer         = 31
	setLayout     vulkan.VkDescriptorSetLayout = 40
	set           vulkan.VkDescriptorSet       = 41
)

func floatBytes(values ...float32) []byte {
	out := make([]byte, 4*len(values))
	for i, f := range values {
		eb.LittleEndian.PutUint32(out[4*i:], math.Float32bits(f))
	}
	return out
}

func hostBuffer(s *state.Store, buffer vulkan.VkBuffer, memory vulkan.VkDeviceMemory, usage vulkan.VkBufferUsageFlagBits, data []byte) {
	s.Buffers.Put(buffer, vulkan.VkBufferCreateInfo{Size: vulkan.VkDeviceSize(len(data)), Usage: vulkan.VkBufferUsageFlags(usage)})
	s.BufferMemory.Put(buffer, state.MemoryBinding{Memory: memory})
	s.Mappings.Put(memory, state.Mapping{Size: vulkan.VkDeviceSize(len(data)), Data: data})
}

// fixture records a pipeline drawing two vertices with a vec2 and a float
// attribute, and one uniform buffer at set 0.
func fixture(topology vulkan.VkPrimitiveTopology, uniformBinding uint32) (Emitter, replay.Draw) {
	s := state.NewStore()
	hostBuffer(s, vertexBuffer, vertexMemory, vulkan.VkBufferUsageFlagBits_VK_BUFFER_USAGE_VERTEX_BUFFER_BIT,
		floatBytes(0, 1, 2, 3, 4, 5))
	hostBuffer(s, uniformBuffer, uniformMemory, vulkan.VkBufferUsageFlagBits_VK_BUFFER_USAGE_UNIFORM_BUFFER_BIT,
		floatBytes(0.5, 2))
	s.GraphicsPipelines.Put(pipeline, vulkan.VkGraphicsPipelineCreateInfo{
		Stages: []vulkan.VkPipelineShaderStageCreateInfo{
			{Stage: vulkan.VkShaderStageFlagBits_VK_SHADER_STAGE_VERTEX_BIT, Module: vertexModule, Name: "main"},
			{Stage: vulkan.VkShaderStageFlagBits_VK_SHADER_STAGE_FRAGMENT_BIT, Module: fragModule, Name: "main"},
		},
		VertexInputState: &vulkan.VkPipelineVertexInputStateCreateInfo{
			VertexBindingDescriptions: []vulkan.VkVertexInputBindingDescription{{Binding: 0, Stride: 12}},
			VertexAttributeDescriptions: []vulkan.VkVertexInputAttributeDescription{
				{Location: 1, Binding: 0, Format: vulkan.VkFormat_VK_FORMAT_R32_SFLOAT, Offset: 8},
				{Location: 0, Binding: 0, Format: vulkan.VkFormat_VK_FORMAT_R32G32_SFLOAT, Offset: 0},
			},
		},
		InputAssemblyState: &vulkan.VkPipelineInputAssemblyStateCreateInfo{Topology: topology},
		RenderPass:         renderPass,
	})
	s.ShaderModules.Put(vertexModule, vulkan.VkShaderModuleCreateInfo{Code: []uint32{1, 2}})
	s.ShaderModules.Put(fragModule, vulkan.VkShaderModuleCreateInfo{Code: []uint32{3}})
	s.RenderPasses.Put(renderPass, vulkan.VkRenderPassCreateInfo{
		Attachments: []vulkan.VkAttachmentDescription{{Format: vulkan.VkFormat_VK_FORMAT_R8G8B8A8_UNORM}},
		Subpasses: []vulkan.VkSubpassDescription{
			{ColorAttachments: []vulkan.VkAttachmentReference{{Attachment: 0}}},
		},
	})
	s.Framebuffers.Put(framebuffer, vulkan.VkFramebufferCreateInfo{RenderPass: renderPass, Width: 64, Height: 32})
	s.DescriptorSetLayouts.Put(setLayout, vulkan.VkDescriptorSetLayoutCreateInfo{
		Bindings: []vulkan.VkDescriptorSetLayoutBinding{{
			Binding:        uniformBinding,
			DescriptorType: vulkan.VkDescriptorType_VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER,
		}},
	})
	s.DescriptorSets.Put(set, setLayout)
	s.SetDescriptorBuffer(set, uniformBinding, vulkan.VkDescriptorBufferInfo{Buffer: uniformBuffer, Range: 8})

	st := replay.NewState()
	st.PipelineBound = true
	st.Pipeline = pipeline
	st.RenderPass = &vulkan.VkRenderPassBeginInfo{RenderPass: renderPass, Framebuffer: framebuffer}
	st.DescriptorSets[0] = set
	st.VertexBuffers[0] = replay.VertexBinding{Buffer: vertexBuffer}

	e := Emitter{Store: s, Codec: codec.Codec{Store: s}, Disassembler: wordCounter{}}
	return e, replay.Draw{CommandBuffer: 100, Kind: command.KindDraw, VertexCount: 2, State: st}
}

func TestEmitDraw(t *testing.T) {
	ctx := log.Testing(t)
	e, draw := fixture(vulkan.VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST, 0)
	got, err := e.Emit(ctx, draw)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	expect := `#!amber

SHADER vertex vertex_shader SPIRV-ASM
; 2 words
END

SHADER fragment fragment_shader SPIRV-ASM
; 1 words
END

` + textureBootstrap + `BUFFER vert_0_0 DATA_TYPE vec2<float> DATA
  0 1 3 4
END

BUFFER vert_0_1 DATA_TYPE float DATA
  2 5
END

BUFFER buf_0_0 DATA_TYPE float DATA
  0.5 2
END

BUFFER framebuffer_0 FORMAT R8G8B8A8_UNORM

PIPELINE graphics pipeline
  ATTACH vertex_shader
  ATTACH fragment_shader
  FRAMEBUFFER_SIZE 64 32
  BIND BUFFER framebuffer_0 AS color LOCATION 0
  BIND BUFFER buf_0_0 AS uniform DESCRIPTOR_SET 0 BINDING 0
  VERTEX_DATA vert_0_0 LOCATION 0
  VERTEX_DATA vert_0_1 LOCATION 1
  BIND SAMPLER sampler DESCRIPTOR_SET 0 BINDING 1
  BIND BUFFER texture AS sampled_image DESCRIPTOR_SET 0 BINDING 2
END

CLEAR_COLOR pipeline 0 0 0 255

` + textureGeneration + `CLEAR pipeline
RUN pipeline DRAW_ARRAY AS TRIANGLE_LIST
`
	assert.For(ctx, "script").ThatString(got).Equals(expect)
}

func TestEmitIndexedDraw(t *testing.T) {
	ctx := log.Testing(t)
	e, draw := fixture(vulkan.VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP, samplerBinding)
	data := make([]byte, 6)
	for i, v := range []uint16{2, 0, 1} {
		eb.LittleEndian.PutUint16(data[2*i:], v)
	}
	hostBuffer(e.Store, indexBuffer, indexMemory, vulkan.VkBufferUsageFlagBits_VK_BUFFER_USAGE_INDEX_BUFFER_BIT, data)
	draw.State.IndexBuffer = &replay.IndexBinding{Buffer: indexBuffer, IndexType: vulkan.VkIndexType_VK_INDEX_TYPE_UINT16}
	draw.Kind, draw.IndexCount = command.KindDrawIndexed, 3

	got, err := e.Emit(ctx, draw)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "indices").ThatString(got).Contains("BUFFER index_buffer DATA_TYPE uint32 DATA\n  2 0 1\nEND\n")
	assert.For(ctx, "index data").ThatString(got).Contains("  VERTEX_DATA vert_0_1 LOCATION 1\n  INDEX_DATA index_buffer\n")
	assert.For(ctx, "run").ThatString(got).HasSuffix("RUN pipeline DRAW_ARRAY AS TRIANGLE_STRIP INDEXED\n")
	assert.For(ctx, "bootstrap binds").ThatString(got).DoesNotContain("BIND SAMPLER")
	assert.For(ctx, "uniform").ThatString(got).Contains("BIND BUFFER buf_0_1 AS uniform DESCRIPTOR_SET 0 BINDING 1\n")
}

func TestEmitErrors(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		name   string
		mutate func(e Emitter, d *replay.Draw)
		expect error
	}{
		{"topology", func(e Emitter, d *replay.Draw) {
			p, _ := e.Store.GraphicsPipelines.Get(pipeline)
			p.InputAssemblyState.Topology = 99
			e.Store.GraphicsPipelines.Put(pipeline, p)
		}, UnsupportedTopology{}},
		{"stage", func(e Emitter, d *replay.Draw) {
			p, _ := e.Store.GraphicsPipelines.Get(pipeline)
			p.Stages = append(p.Stages, vulkan.VkPipelineShaderStageCreateInfo{
				Stage: vulkan.VkShaderStageFlagBits_VK_SHADER_STAGE_GEOMETRY_BIT,
			})
			e.Store.GraphicsPipelines.Put(pipeline, p)
		}, UnsupportedShaderStage{}},
		{"render pass", func(e Emitter, d *replay.Draw) {
			d.State.RenderPass = nil
		}, replay.MalformedCommandStream{}},
		{"subpass", func(e Emitter, d *replay.Draw) {
			d.State.Subpass = 1
		}, replay.MalformedCommandStream{}},
		{"index buffer", func(e Emitter, d *replay.Draw) {
			d.IndexCount = 3
		}, replay.MalformedCommandStream{}},
		{"format", func(e Emitter, d *replay.Draw) {
			p, _ := e.Store.GraphicsPipelines.Get(pipeline)
			p.VertexInputState.VertexAttributeDescriptions[0].Format = vulkan.VkFormat_VK_FORMAT_R8G8B8A8_UNORM
			e.Store.GraphicsPipelines.Put(pipeline, p)
		}, codec.UnsupportedFormat{}},
		{"unrecorded pipeline", func(e Emitter, d *replay.Draw) {
			d.State.Pipeline = 11
		}, state.ResourceNotRecorded{}},
	} {
		ctx := log.Enter(ctx, test.name)
		e, draw := fixture(vulkan.VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST, 0)
		test.mutate(e, &draw)
		_, err := e.Emit(ctx, draw)
		assert.For(ctx, "err").ThatError(err).HasCauseOfType(test.expect)
	}
}
