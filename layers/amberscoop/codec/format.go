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

package codec

import (
	"fmt"
	"strconv"

	"github.com/NeoTim/graphicsfuzz/core/data/binary"
	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
)

// ComponentType is the scalar type of a vertex attribute component.
type ComponentType int

const (
	Float ComponentType = iota
	Int32
	Uint32
)

var componentTypeNames = [...]string{"float", "int32", "uint32"}

func (t ComponentType) String() string { return componentTypeNames[t] }

// Format describes the layout of a vertex attribute format.
type Format struct {
	Type       ComponentType
	Components int
	// Width is the size of one component in bytes.
	Width int
}

// Size returns the size of one attribute value in bytes.
func (f Format) Size() int { return f.Components * f.Width }

// DataType returns the AMBER data type of the format, such as float or
// vec3<float>.
func (f Format) DataType() string {
	if f.Components == 1 {
		return f.Type.String()
	}
	return fmt.Sprintf("vec%d<%v>", f.Components, f.Type)
}

func (f Format) read(r binary.Reader) string {
	switch f.Type {
	case Float:
		return strconv.FormatFloat(float64(r.Float32()), 'g', -1, 32)
	case Int32:
		return strconv.FormatInt(int64(r.Int32()), 10)
	default:
		return strconv.FormatUint(uint64(r.Uint32()), 10)
	}
}

var formats = map[vulkan.VkFormat]Format{
	vulkan.VkFormat_VK_FORMAT_R32_SFLOAT:          {Float, 1, 4},
	vulkan.VkFormat_VK_FORMAT_R32G32_SFLOAT:       {Float, 2, 4},
	vulkan.VkFormat_VK_FORMAT_R32G32B32_SFLOAT:    {Float, 3, 4},
	vulkan.VkFormat_VK_FORMAT_R32G32B32A32_SFLOAT: {Float, 4, 4},
	vulkan.VkFormat_VK_FORMAT_R32_SINT:            {Int32, 1, 4},
	vulkan.VkFormat_VK_FORMAT_R32G32_SINT:         {Int32, 2, 4},
	vulkan.VkFormat_VK_FORMAT_R32G32B32_SINT:      {Int32, 3, 4},
	vulkan.VkFormat_VK_FORMAT_R32G32B32A32_SINT:   {Int32, 4, 4},
	vulkan.VkFormat_VK_FORMAT_R32_UINT:            {Uint32, 1, 4},
	vulkan.VkFormat_VK_FORMAT_R32G32_UINT:         {Uint32, 2, 4},
	vulkan.VkFormat_VK_FORMAT_R32G32B32_UINT:      {Uint32, 3, 4},
	vulkan.VkFormat_VK_FORMAT_R32G32B32A32_UINT:   {Uint32, 4, 4},
}

// LookupFormat returns the layout of a vertex attribute format, or
// UnsupportedFormat.
func LookupFormat(format vulkan.VkFormat) (Format, error) {
	f, ok := formats[format]
	if !ok {
		return Format{}, UnsupportedFormat{format}
	}
	return f, nil
}
