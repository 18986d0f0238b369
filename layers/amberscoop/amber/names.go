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
	"strings"

	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
)

var topologies = map[vulkan.VkPrimitiveTopology]string{
	vulkan.VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_POINT_LIST:                    "POINT_LIST",
	vulkan.VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_LINE_LIST:                     "LINE_LIST",
	vulkan.VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_LINE_STRIP:                    "LINE_STRIP",
	vulkan.VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST:                 "TRIANGLE_LIST",
	vulkan.VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP:                "TRIANGLE_STRIP",
	vulkan.VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_FAN:                  "TRIANGLE_FAN",
	vulkan.VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_LINE_LIST_WITH_ADJACENCY:      "LINE_LIST_WITH_ADJACENCY",
	vulkan.VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_LINE_STRIP_WITH_ADJACENCY:     "LINE_STRIP_WITH_ADJACENCY",
	vulkan.VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST_WITH_ADJACENCY:  "TRIANGLE_LIST_WITH_ADJACENCY",
	vulkan.VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP_WITH_ADJACENCY: "TRIANGLE_STRIP_WITH_ADJACENCY",
	vulkan.VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_PATCH_LIST:                    "PATCH_LIST",
}

// Topology returns the AMBER name of a primitive topology.
func Topology(t vulkan.VkPrimitiveTopology) (string, error) {
	if name, ok := topologies[t]; ok {
		return name, nil
	}
	return "", UnsupportedTopology{t}
}

var descriptorTypes = map[vulkan.VkDescriptorType]string{
	vulkan.VkDescriptorType_VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER:         "uniform",
	vulkan.VkDescriptorType_VK_DESCRIPTOR_TYPE_STORAGE_BUFFER:         "storage",
	vulkan.VkDescriptorType_VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER_DYNAMIC: "uniform_dynamic",
	vulkan.VkDescriptorType_VK_DESCRIPTOR_TYPE_STORAGE_BUFFER_DYNAMIC: "storage_dynamic",
}

// defaultAttachmentFormat is used for attachments whose format has no name.
const defaultAttachmentFormat = "B8G8R8A8_UNORM"

func attachmentFormat(f vulkan.VkFormat) string {
	if f == vulkan.VkFormat_VK_FORMAT_UNDEFINED {
		return defaultAttachmentFormat
	}
	name := f.String()
	if !strings.HasPrefix(name, "VK_FORMAT_") {
		return defaultAttachmentFormat
	}
	return strings.TrimPrefix(name, "VK_FORMAT_")
}
