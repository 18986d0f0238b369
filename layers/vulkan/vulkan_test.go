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

package vulkan_test

import (
	"testing"

	"github.com/NeoTim/graphicsfuzz/core/assert"
	"github.com/NeoTim/graphicsfuzz/core/log"
	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
)

func TestGraphicsPipelineCloneIsDeep(t *testing.T) {
	ctx := log.Testing(t)
	info := vulkan.VkGraphicsPipelineCreateInfo{
		Stages: []vulkan.VkPipelineShaderStageCreateInfo{
			{Stage: vulkan.VkShaderStageFlagBits_VK_SHADER_STAGE_VERTEX_BIT, Module: 1, Name: "main"},
		},
		VertexInputState: &vulkan.VkPipelineVertexInputStateCreateInfo{
			VertexAttributeDescriptions: []vulkan.VkVertexInputAttributeDescription{
				{Location: 0, Format: vulkan.VkFormat_VK_FORMAT_R32G32_SFLOAT},
			},
		},
		InputAssemblyState: &vulkan.VkPipelineInputAssemblyStateCreateInfo{
			Topology: vulkan.VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST,
		},
	}
	clone := info.Clone()
	info.Stages[0].Module = 2
	info.VertexInputState.VertexAttributeDescriptions[0].Format = vulkan.VkFormat_VK_FORMAT_R8G8B8A8_UNORM
	info.InputAssemblyState.Topology = vulkan.VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_POINT_LIST

	assert.For(ctx, "module").That(clone.Stages[0].Module).Equals(vulkan.VkShaderModule(1))
	assert.For(ctx, "format").That(clone.VertexInputState.VertexAttributeDescriptions[0].Format).
		Equals(vulkan.VkFormat_VK_FORMAT_R32G32_SFLOAT)
	assert.For(ctx, "topology").That(clone.InputAssemblyState.Topology).
		Equals(vulkan.VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST)
}

func TestRenderPassCloneIsDeep(t *testing.T) {
	ctx := log.Testing(t)
	info := vulkan.VkRenderPassCreateInfo{
		Subpasses: []vulkan.VkSubpassDescription{
			{ColorAttachments: []vulkan.VkAttachmentReference{{Attachment: 0}}},
		},
	}
	clone := info.Clone()
	info.Subpasses[0].ColorAttachments[0].Attachment = 7
	assert.For(ctx, "attachment").That(clone.Subpasses[0].ColorAttachments[0].Attachment).Equals(uint32(0))
	assert.For(ctx, "nil stays nil").That(clone.Attachments).IsNil()
}

func TestEnumNames(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "format").ThatString(vulkan.VkFormat_VK_FORMAT_R32G32B32_SFLOAT.String()).
		Equals("VK_FORMAT_R32G32B32_SFLOAT")
	assert.For(ctx, "unknown").ThatString(vulkan.VkFormat(9999).String()).Equals("vulkan.VkFormat(9999)")
	assert.For(ctx, "result").ThatString(vulkan.VkResult_VK_ERROR_OUT_OF_DEVICE_MEMORY.String()).
		Equals("VK_ERROR_OUT_OF_DEVICE_MEMORY")

	for _, test := range []struct {
		name   string
		expect vulkan.VkFormat
	}{
		{"VK_FORMAT_R32_UINT", vulkan.VkFormat_VK_FORMAT_R32_UINT},
		{"R32G32B32A32_SINT", vulkan.VkFormat_VK_FORMAT_R32G32B32A32_SINT},
	} {
		got, err := vulkan.ParseVkFormat(test.name)
		assert.For(ctx, "parse %v", test.name).ThatError(err).Succeeded()
		assert.For(ctx, "parse %v", test.name).That(got).Equals(test.expect)
	}
	_, err := vulkan.ParseVkFormat("R1_BOGUS")
	assert.For(ctx, "bogus").ThatError(err).Failed()

	topo, err := vulkan.ParseVkPrimitiveTopology("TRIANGLE_STRIP")
	assert.For(ctx, "topology err").ThatError(err).Succeeded()
	assert.For(ctx, "topology").That(topo).Equals(vulkan.VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP)
}

func TestBufferUsage(t *testing.T) {
	ctx := log.Testing(t)
	usage := vulkan.VkBufferUsageFlags(vulkan.VkBufferUsageFlagBits_VK_BUFFER_USAGE_VERTEX_BUFFER_BIT |
		vulkan.VkBufferUsageFlagBits_VK_BUFFER_USAGE_TRANSFER_DST_BIT)
	assert.For(ctx, "vertex").ThatBoolean(usage.Has(vulkan.VkBufferUsageFlagBits_VK_BUFFER_USAGE_VERTEX_BUFFER_BIT)).IsTrue()
	assert.For(ctx, "index").ThatBoolean(usage.Has(vulkan.VkBufferUsageFlagBits_VK_BUFFER_USAGE_INDEX_BUFFER_BIT)).IsFalse()
	assert.For(ctx, "uniform is buffer").ThatBoolean(vulkan.VkDescriptorType_VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER.IsBuffer()).IsTrue()
	assert.For(ctx, "sampler is buffer").ThatBoolean(vulkan.VkDescriptorType_VK_DESCRIPTOR_TYPE_SAMPLER.IsBuffer()).IsFalse()
}
