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

package vulkan

import (
	"fmt"

	"github.com/pkg/errors"
)

type VkResult int32

const (
	VkResult_VK_SUCCESS                       VkResult = 0
	VkResult_VK_NOT_READY                     VkResult = 1
	VkResult_VK_TIMEOUT                       VkResult = 2
	VkResult_VK_ERROR_OUT_OF_HOST_MEMORY      VkResult = -1
	VkResult_VK_ERROR_OUT_OF_DEVICE_MEMORY    VkResult = -2
	VkResult_VK_ERROR_INITIALIZATION_FAILED   VkResult = -3
	VkResult_VK_ERROR_DEVICE_LOST             VkResult = -4
	VkResult_VK_ERROR_MEMORY_MAP_FAILED       VkResult = -5
	VkResult_VK_ERROR_FEATURE_NOT_PRESENT     VkResult = -8
	VkResult_VK_ERROR_FORMAT_NOT_SUPPORTED    VkResult = -11
	VkResult_VK_ERROR_INVALID_SHADER_NV       VkResult = -1000012000
	VkResult_VK_ERROR_OUT_OF_POOL_MEMORY      VkResult = -1000069000
	VkResult_VK_ERROR_INVALID_EXTERNAL_HANDLE VkResult = -1000072003
	VkResult_VK_ERROR_FRAGMENTED_POOL         VkResult = -12
	VkResult_VK_ERROR_UNKNOWN                 VkResult = -13
	VkResult_VK_ERROR_TOO_MANY_OBJECTS        VkResult = -10
	VkResult_VK_ERROR_INCOMPATIBLE_DRIVER     VkResult = -9
	VkResult_VK_ERROR_EXTENSION_NOT_PRESENT   VkResult = -7
	VkResult_VK_ERROR_LAYER_NOT_PRESENT       VkResult = -6
)

var resultNames = map[VkResult]string{
	VkResult_VK_SUCCESS:                       "VK_SUCCESS",
	VkResult_VK_NOT_READY:                     "VK_NOT_READY",
	VkResult_VK_TIMEOUT:                       "VK_TIMEOUT",
	VkResult_VK_ERROR_OUT_OF_HOST_MEMORY:      "VK_ERROR_OUT_OF_HOST_MEMORY",
	VkResult_VK_ERROR_OUT_OF_DEVICE_MEMORY:    "VK_ERROR_OUT_OF_DEVICE_MEMORY",
	VkResult_VK_ERROR_INITIALIZATION_FAILED:   "VK_ERROR_INITIALIZATION_FAILED",
	VkResult_VK_ERROR_DEVICE_LOST:             "VK_ERROR_DEVICE_LOST",
	VkResult_VK_ERROR_MEMORY_MAP_FAILED:       "VK_ERROR_MEMORY_MAP_FAILED",
	VkResult_VK_ERROR_FEATURE_NOT_PRESENT:     "VK_ERROR_FEATURE_NOT_PRESENT",
	VkResult_VK_ERROR_FORMAT_NOT_SUPPORTED:    "VK_ERROR_FORMAT_NOT_SUPPORTED",
	VkResult_VK_ERROR_INVALID_SHADER_NV:       "VK_ERROR_INVALID_SHADER_NV",
	VkResult_VK_ERROR_OUT_OF_POOL_MEMORY:      "VK_ERROR_OUT_OF_POOL_MEMORY",
	VkResult_VK_ERROR_INVALID_EXTERNAL_HANDLE: "VK_ERROR_INVALID_EXTERNAL_HANDLE",
	VkResult_VK_ERROR_FRAGMENTED_POOL:         "VK_ERROR_FRAGMENTED_POOL",
	VkResult_VK_ERROR_UNKNOWN:                 "VK_ERROR_UNKNOWN",
	VkResult_VK_ERROR_TOO_MANY_OBJECTS:        "VK_ERROR_TOO_MANY_OBJECTS",
	VkResult_VK_ERROR_INCOMPATIBLE_DRIVER:     "VK_ERROR_INCOMPATIBLE_DRIVER",
	VkResult_VK_ERROR_EXTENSION_NOT_PRESENT:   "VK_ERROR_EXTENSION_NOT_PRESENT",
	VkResult_VK_ERROR_LAYER_NOT_PRESENT:       "VK_ERROR_LAYER_NOT_PRESENT",
}

func (r VkResult) String() string { return enumName(resultNames, r) }

// ParseVkResult returns the result with the given name.
func ParseVkResult(name string) (VkResult, error) {
	return parseEnum(resultNames, "VkResult", "VK_", name)
}

// Error lets a failing VkResult be returned as an error.
func (r VkResult) Error() string { return r.String() }

type VkFormat uint32

const (
	VkFormat_VK_FORMAT_UNDEFINED           VkFormat = 0
	VkFormat_VK_FORMAT_R8G8B8A8_UNORM      VkFormat = 37
	VkFormat_VK_FORMAT_R8G8B8A8_UINT       VkFormat = 41
	VkFormat_VK_FORMAT_R8G8B8A8_SRGB       VkFormat = 43
	VkFormat_VK_FORMAT_B8G8R8A8_UNORM      VkFormat = 44
	VkFormat_VK_FORMAT_B8G8R8A8_SRGB       VkFormat = 50
	VkFormat_VK_FORMAT_R16_UINT            VkFormat = 74
	VkFormat_VK_FORMAT_R16G16_SFLOAT       VkFormat = 83
	VkFormat_VK_FORMAT_R16G16B16A16_SFLOAT VkFormat = 97
	VkFormat_VK_FORMAT_R32_UINT            VkFormat = 98
	VkFormat_VK_FORMAT_R32_SINT            VkFormat = 99
	VkFormat_VK_FORMAT_R32_SFLOAT          VkFormat = 100
	VkFormat_VK_FORMAT_R32G32_UINT         VkFormat = 101
	VkFormat_VK_FORMAT_R32G32_SINT         VkFormat = 102
	VkFormat_VK_FORMAT_R32G32_SFLOAT       VkFormat = 103
	VkFormat_VK_FORMAT_R32G32B32_UINT      VkFormat = 104
	VkFormat_VK_FORMAT_R32G32B32_SINT      VkFormat = 105
	VkFormat_VK_FORMAT_R32G32B32_SFLOAT    VkFormat = 106
	VkFormat_VK_FORMAT_R32G32B32A32_UINT   VkFormat = 107
	VkFormat_VK_FORMAT_R32G32B32A32_SINT   VkFormat = 108
	VkFormat_VK_FORMAT_R32G32B32A32_SFLOAT VkFormat = 109
	VkFormat_VK_FORMAT_R64_UINT            VkFormat = 110
	VkFormat_VK_FORMAT_R64_SINT            VkFormat = 111
	VkFormat_VK_FORMAT_R64_SFLOAT          VkFormat = 112
	VkFormat_VK_FORMAT_D16_UNORM           VkFormat = 124
	VkFormat_VK_FORMAT_D32_SFLOAT          VkFormat = 126
)

var formatNames = map[VkFormat]string{
	VkFormat_VK_FORMAT_UNDEFINED:           "VK_FORMAT_UNDEFINED",
	VkFormat_VK_FORMAT_R8G8B8A8_UNORM:      "VK_FORMAT_R8G8B8A8_UNORM",
	VkFormat_VK_FORMAT_R8G8B8A8_UINT:       "VK_FORMAT_R8G8B8A8_UINT",
	VkFormat_VK_FORMAT_R8G8B8A8_SRGB:       "VK_FORMAT_R8G8B8A8_SRGB",
	VkFormat_VK_FORMAT_B8G8R8A8_UNORM:      "VK_FORMAT_B8G8R8A8_UNORM",
	VkFormat_VK_FORMAT_B8G8R8A8_SRGB:       "VK_FORMAT_B8G8R8A8_SRGB",
	VkFormat_VK_FORMAT_R16_UINT:            "VK_FORMAT_R16_UINT",
	VkFormat_VK_FORMAT_R16G16_SFLOAT:       "VK_FORMAT_R16G16_SFLOAT",
	VkFormat_VK_FORMAT_R16G16B16A16_SFLOAT: "VK_FORMAT_R16G16B16A16_SFLOAT",
	VkFormat_VK_FORMAT_R32_UINT:            "VK_FORMAT_R32_UINT",
	VkFormat_VK_FORMAT_R32_SINT:            "VK_FORMAT_R32_SINT",
	VkFormat_VK_FORMAT_R32_SFLOAT:          "VK_FORMAT_R32_SFLOAT",
	VkFormat_VK_FORMAT_R32G32_UINT:         "VK_FORMAT_R32G32_UINT",
	VkFormat_VK_FORMAT_R32G32_SINT:         "VK_FORMAT_R32G32_SINT",
	VkFormat_VK_FORMAT_R32G32_SFLOAT:       "VK_FORMAT_R32G32_SFLOAT",
	VkFormat_VK_FORMAT_R32G32B32_UINT:      "VK_FORMAT_R32G32B32_UINT",
	VkFormat_VK_FORMAT_R32G32B32_SINT:      "VK_FORMAT_R32G32B32_SINT",
	VkFormat_VK_FORMAT_R32G32B32_SFLOAT:    "VK_FORMAT_R32G32B32_SFLOAT",
	VkFormat_VK_FORMAT_R32G32B32A32_UINT:   "VK_FORMAT_R32G32B32A32_UINT",
	VkFormat_VK_FORMAT_R32G32B32A32_SINT:   "VK_FORMAT_R32G32B32A32_SINT",
	VkFormat_VK_FORMAT_R32G32B32A32_SFLOAT: "VK_FORMAT_R32G32B32A32_SFLOAT",
	VkFormat_VK_FORMAT_R64_UINT:            "VK_FORMAT_R64_UINT",
	VkFormat_VK_FORMAT_R64_SINT:            "VK_FORMAT_R64_SINT",
	VkFormat_VK_FORMAT_R64_SFLOAT:          "VK_FORMAT_R64_SFLOAT",
	VkFormat_VK_FORMAT_D16_UNORM:           "VK_FORMAT_D16_UNORM",
	VkFormat_VK_FORMAT_D32_SFLOAT:          "VK_FORMAT_D32_SFLOAT",
}

func (f VkFormat) String() string { return enumName(formatNames, f) }

// ParseVkFormat returns the format with the given name.
func ParseVkFormat(name string) (VkFormat, error) {
	return parseEnum(formatNames, "VkFormat", "VK_FORMAT_", name)
}

type VkPrimitiveTopology uint32

const (
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_POINT_LIST                    VkPrimitiveTopology = 0
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_LINE_LIST                     VkPrimitiveTopology = 1
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_LINE_STRIP                    VkPrimitiveTopology = 2
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST                 VkPrimitiveTopology = 3
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP                VkPrimitiveTopology = 4
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_FAN                  VkPrimitiveTopology = 5
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_LINE_LIST_WITH_ADJACENCY      VkPrimitiveTopology = 6
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_LINE_STRIP_WITH_ADJACENCY     VkPrimitiveTopology = 7
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST_WITH_ADJACENCY  VkPrimitiveTopology = 8
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP_WITH_ADJACENCY VkPrimitiveTopology = 9
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_PATCH_LIST                    VkPrimitiveTopology = 10
)

var topologyNames = map[VkPrimitiveTopology]string{
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_POINT_LIST:                    "VK_PRIMITIVE_TOPOLOGY_POINT_LIST",
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_LINE_LIST:                     "VK_PRIMITIVE_TOPOLOGY_LINE_LIST",
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_LINE_STRIP:                    "VK_PRIMITIVE_TOPOLOGY_LINE_STRIP",
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST:                 "VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST",
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP:                "VK_PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP",
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_FAN:                  "VK_PRIMITIVE_TOPOLOGY_TRIANGLE_FAN",
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_LINE_LIST_WITH_ADJACENCY:      "VK_PRIMITIVE_TOPOLOGY_LINE_LIST_WITH_ADJACENCY",
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_LINE_STRIP_WITH_ADJACENCY:     "VK_PRIMITIVE_TOPOLOGY_LINE_STRIP_WITH_ADJACENCY",
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST_WITH_ADJACENCY:  "VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST_WITH_ADJACENCY",
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP_WITH_ADJACENCY: "VK_PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP_WITH_ADJACENCY",
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_PATCH_LIST:                    "VK_PRIMITIVE_TOPOLOGY_PATCH_LIST",
}

func (t VkPrimitiveTopology) String() string { return enumName(topologyNames, t) }

// ParseVkPrimitiveTopology returns the topology with the given name.
func ParseVkPrimitiveTopology(name string) (VkPrimitiveTopology, error) {
	return parseEnum(topologyNames, "VkPrimitiveTopology", "VK_PRIMITIVE_TOPOLOGY_", name)
}

type VkIndexType uint32

const (
	VkIndexType_VK_INDEX_TYPE_UINT16    VkIndexType = 0
	VkIndexType_VK_INDEX_TYPE_UINT32    VkIndexType = 1
	VkIndexType_VK_INDEX_TYPE_UINT8_EXT VkIndexType = 1000265000
)

var indexTypeNames = map[VkIndexType]string{
	VkIndexType_VK_INDEX_TYPE_UINT16:    "VK_INDEX_TYPE_UINT16",
	VkIndexType_VK_INDEX_TYPE_UINT32:    "VK_INDEX_TYPE_UINT32",
	VkIndexType_VK_INDEX_TYPE_UINT8_EXT: "VK_INDEX_TYPE_UINT8_EXT",
}

func (t VkIndexType) String() string { return enumName(indexTypeNames, t) }

// ParseVkIndexType returns the index type with the given name.
func ParseVkIndexType(name string) (VkIndexType, error) {
	return parseEnum(indexTypeNames, "VkIndexType", "VK_INDEX_TYPE_", name)
}

type VkPipelineBindPoint uint32

const (
	VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS VkPipelineBindPoint = 0
	VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_COMPUTE  VkPipelineBindPoint = 1
)

var bindPointNames = map[VkPipelineBindPoint]string{
	VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS: "VK_PIPELINE_BIND_POINT_GRAPHICS",
	VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_COMPUTE:  "VK_PIPELINE_BIND_POINT_COMPUTE",
}

func (p VkPipelineBindPoint) String() string { return enumName(bindPointNames, p) }

// ParseVkPipelineBindPoint returns the bind point with the given name.
func ParseVkPipelineBindPoint(name string) (VkPipelineBindPoint, error) {
	return parseEnum(bindPointNames, "VkPipelineBindPoint", "VK_PIPELINE_BIND_POINT_", name)
}

type VkDescriptorType uint32

const (
	VkDescriptorType_VK_DESCRIPTOR_TYPE_SAMPLER                VkDescriptorType = 0
	VkDescriptorType_VK_DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER VkDescriptorType = 1
	VkDescriptorType_VK_DESCRIPTOR_TYPE_SAMPLED_IMAGE          VkDescriptorType = 2
	VkDescriptorType_VK_DESCRIPTOR_TYPE_STORAGE_IMAGE          VkDescriptorType = 3
	VkDescriptorType_VK_DESCRIPTOR_TYPE_UNIFORM_TEXEL_BUFFER   VkDescriptorType = 4
	VkDescriptorType_VK_DESCRIPTOR_TYPE_STORAGE_TEXEL_BUFFER   VkDescriptorType = 5
	VkDescriptorType_VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER         VkDescriptorType = 6
	VkDescriptorType_VK_DESCRIPTOR_TYPE_STORAGE_BUFFER         VkDescriptorType = 7
	VkDescriptorType_VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER_DYNAMIC VkDescriptorType = 8
	VkDescriptorType_VK_DESCRIPTOR_TYPE_STORAGE_BUFFER_DYNAMIC VkDescriptorType = 9
	VkDescriptorType_VK_DESCRIPTOR_TYPE_INPUT_ATTACHMENT       VkDescriptorType = 10
)

var descriptorTypeNames = map[VkDescriptorType]string{
	VkDescriptorType_VK_DESCRIPTOR_TYPE_SAMPLER:                "VK_DESCRIPTOR_TYPE_SAMPLER",
	VkDescriptorType_VK_DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER: "VK_DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER",
	VkDescriptorType_VK_DESCRIPTOR_TYPE_SAMPLED_IMAGE:          "VK_DESCRIPTOR_TYPE_SAMPLED_IMAGE",
	VkDescriptorType_VK_DESCRIPTOR_TYPE_STORAGE_IMAGE:          "VK_DESCRIPTOR_TYPE_STORAGE_IMAGE",
	VkDescriptorType_VK_DESCRIPTOR_TYPE_UNIFORM_TEXEL_BUFFER:   "VK_DESCRIPTOR_TYPE_UNIFORM_TEXEL_BUFFER",
	VkDescriptorType_VK_DESCRIPTOR_TYPE_STORAGE_TEXEL_BUFFER:   "VK_DESCRIPTOR_TYPE_STORAGE_TEXEL_BUFFER",
	VkDescriptorType_VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER:         "VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER",
	VkDescriptorType_VK_DESCRIPTOR_TYPE_STORAGE_BUFFER:         "VK_DESCRIPTOR_TYPE_STORAGE_BUFFER",
	VkDescriptorType_VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER_DYNAMIC: "VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER_DYNAMIC",
	VkDescriptorType_VK_DESCRIPTOR_TYPE_STORAGE_BUFFER_DYNAMIC: "VK_DESCRIPTOR_TYPE_STORAGE_BUFFER_DYNAMIC",
	VkDescriptorType_VK_DESCRIPTOR_TYPE_INPUT_ATTACHMENT:       "VK_DESCRIPTOR_TYPE_INPUT_ATTACHMENT",
}

func (t VkDescriptorType) String() string { return enumName(descriptorTypeNames, t) }

// ParseVkDescriptorType returns the descriptor type with the given name.
func ParseVkDescriptorType(name string) (VkDescriptorType, error) {
	return parseEnum(descriptorTypeNames, "VkDescriptorType", "VK_DESCRIPTOR_TYPE_", name)
}

// IsBuffer returns true for the descriptor types whose writes carry
// VkDescriptorBufferInfo records.
func (t VkDescriptorType) IsBuffer() bool {
	switch t {
	case VkDescriptorType_VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER,
		VkDescriptorType_VK_DESCRIPTOR_TYPE_STORAGE_BUFFER,
		VkDescriptorType_VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER_DYNAMIC,
		VkDescriptorType_VK_DESCRIPTOR_TYPE_STORAGE_BUFFER_DYNAMIC:
		return true
	}
	return false
}

type (
	VkShaderStageFlagBits uint32
	VkShaderStageFlags    uint32
)

const (
	VkShaderStageFlagBits_VK_SHADER_STAGE_VERTEX_BIT                  VkShaderStageFlagBits = 0x00000001
	VkShaderStageFlagBits_VK_SHADER_STAGE_TESSELLATION_CONTROL_BIT    VkShaderStageFlagBits = 0x00000002
	VkShaderStageFlagBits_VK_SHADER_STAGE_TESSELLATION_EVALUATION_BIT VkShaderStageFlagBits = 0x00000004
	VkShaderStageFlagBits_VK_SHADER_STAGE_GEOMETRY_BIT                VkShaderStageFlagBits = 0x00000008
	VkShaderStageFlagBits_VK_SHADER_STAGE_FRAGMENT_BIT                VkShaderStageFlagBits = 0x00000010
	VkShaderStageFlagBits_VK_SHADER_STAGE_COMPUTE_BIT                 VkShaderStageFlagBits = 0x00000020
)

var shaderStageNames = map[VkShaderStageFlagBits]string{
	VkShaderStageFlagBits_VK_SHADER_STAGE_VERTEX_BIT:                  "VK_SHADER_STAGE_VERTEX_BIT",
	VkShaderStageFlagBits_VK_SHADER_STAGE_TESSELLATION_CONTROL_BIT:    "VK_SHADER_STAGE_TESSELLATION_CONTROL_BIT",
	VkShaderStageFlagBits_VK_SHADER_STAGE_TESSELLATION_EVALUATION_BIT: "VK_SHADER_STAGE_TESSELLATION_EVALUATION_BIT",
	VkShaderStageFlagBits_VK_SHADER_STAGE_GEOMETRY_BIT:                "VK_SHADER_STAGE_GEOMETRY_BIT",
	VkShaderStageFlagBits_VK_SHADER_STAGE_FRAGMENT_BIT:                "VK_SHADER_STAGE_FRAGMENT_BIT",
	VkShaderStageFlagBits_VK_SHADER_STAGE_COMPUTE_BIT:                 "VK_SHADER_STAGE_COMPUTE_BIT",
}

func (s VkShaderStageFlagBits) String() string { return enumName(shaderStageNames, s) }

// ParseVkShaderStageFlagBits returns the shader stage with the given name.
func ParseVkShaderStageFlagBits(name string) (VkShaderStageFlagBits, error) {
	return parseEnum(shaderStageNames, "VkShaderStageFlagBits", "VK_SHADER_STAGE_", name)
}

type (
	VkBufferUsageFlagBits uint32
	VkBufferUsageFlags    uint32
)

const (
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_TRANSFER_SRC_BIT   VkBufferUsageFlagBits = 0x00000001
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_TRANSFER_DST_BIT   VkBufferUsageFlagBits = 0x00000002
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_UNIFORM_BUFFER_BIT VkBufferUsageFlagBits = 0x00000010
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_STORAGE_BUFFER_BIT VkBufferUsageFlagBits = 0x00000020
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_INDEX_BUFFER_BIT   VkBufferUsageFlagBits = 0x00000040
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_VERTEX_BUFFER_BIT  VkBufferUsageFlagBits = 0x00000080
)

var bufferUsageNames = map[VkBufferUsageFlagBits]string{
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_TRANSFER_SRC_BIT:   "VK_BUFFER_USAGE_TRANSFER_SRC_BIT",
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_TRANSFER_DST_BIT:   "VK_BUFFER_USAGE_TRANSFER_DST_BIT",
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_UNIFORM_BUFFER_BIT: "VK_BUFFER_USAGE_UNIFORM_BUFFER_BIT",
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_STORAGE_BUFFER_BIT: "VK_BUFFER_USAGE_STORAGE_BUFFER_BIT",
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_INDEX_BUFFER_BIT:   "VK_BUFFER_USAGE_INDEX_BUFFER_BIT",
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_VERTEX_BUFFER_BIT:  "VK_BUFFER_USAGE_VERTEX_BUFFER_BIT",
}

func (b VkBufferUsageFlagBits) String() string { return enumName(bufferUsageNames, b) }

// ParseVkBufferUsageFlagBits returns the usage bit with the given name.
func ParseVkBufferUsageFlagBits(name string) (VkBufferUsageFlagBits, error) {
	return parseEnum(bufferUsageNames, "VkBufferUsageFlagBits", "VK_BUFFER_USAGE_", name)
}

// Has returns true if bit is set in f.
func (f VkBufferUsageFlags) Has(bit VkBufferUsageFlagBits) bool {
	return f&VkBufferUsageFlags(bit) != 0
}

type VkVertexInputRate uint32

const (
	VkVertexInputRate_VK_VERTEX_INPUT_RATE_VERTEX   VkVertexInputRate = 0
	VkVertexInputRate_VK_VERTEX_INPUT_RATE_INSTANCE VkVertexInputRate = 1
)

var inputRateNames = map[VkVertexInputRate]string{
	VkVertexInputRate_VK_VERTEX_INPUT_RATE_VERTEX:   "VK_VERTEX_INPUT_RATE_VERTEX",
	VkVertexInputRate_VK_VERTEX_INPUT_RATE_INSTANCE: "VK_VERTEX_INPUT_RATE_INSTANCE",
}

func (r VkVertexInputRate) String() string { return enumName(inputRateNames, r) }

// ParseVkVertexInputRate returns the input rate with the given name.
func ParseVkVertexInputRate(name string) (VkVertexInputRate, error) {
	return parseEnum(inputRateNames, "VkVertexInputRate", "VK_VERTEX_INPUT_RATE_", name)
}

type VkSubpassContents uint32

const (
	VkSubpassContents_VK_SUBPASS_CONTENTS_INLINE                    VkSubpassContents = 0
	VkSubpassContents_VK_SUBPASS_CONTENTS_SECONDARY_COMMAND_BUFFERS VkSubpassContents = 1
)

type VkCommandBufferLevel uint32

const (
	VkCommandBufferLevel_VK_COMMAND_BUFFER_LEVEL_PRIMARY   VkCommandBufferLevel = 0
	VkCommandBufferLevel_VK_COMMAND_BUFFER_LEVEL_SECONDARY VkCommandBufferLevel = 1
)

func enumName[E ~int32 | ~uint32](names map[E]string, v E) string {
	if n, ok := names[v]; ok {
		return n
	}
	return fmt.Sprintf("%T(%d)", v, v)
}

func parseEnum[E ~int32 | ~uint32](names map[E]string, kind, prefix, name string) (E, error) {
	for v, n := range names {
		if n == name || n == prefix+name {
			return v, nil
		}
	}
	var zero E
	return zero, errors.Errorf("unknown %s %q", kind, name)
}
