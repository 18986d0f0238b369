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
	"fmt"

	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
)

// UnsupportedTopology is returned for primitive topologies AMBER cannot draw.
type UnsupportedTopology struct {
	Topology vulkan.VkPrimitiveTopology
}

func (e UnsupportedTopology) Error() string {
	return fmt.Sprintf("unsupported primitive topology %v", e.Topology)
}

// UnsupportedShaderStage is returned for pipelines with stages other than a
// vertex and a fragment shader.
type UnsupportedShaderStage struct {
	Stage vulkan.VkShaderStageFlagBits
}

func (e UnsupportedShaderStage) Error() string {
	return fmt.Sprintf("unsupported shader stage %v", e.Stage)
}
