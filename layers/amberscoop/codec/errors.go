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

	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
)

// UnsupportedFormat is returned for vertex attribute formats outside the
// 32 bit float, signed and unsigned integer formats.
type UnsupportedFormat struct {
	Format vulkan.VkFormat
}

func (e UnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported vertex attribute format %v", e.Format)
}

// UnsupportedIndexType is returned for index types other than 16 and 32 bit.
type UnsupportedIndexType struct {
	IndexType vulkan.VkIndexType
}

func (e UnsupportedIndexType) Error() string {
	return fmt.Sprintf("unsupported index type %v", e.IndexType)
}

// UnsupportedInputRate is returned for per instance vertex bindings.
type UnsupportedInputRate struct {
	Binding   uint32
	InputRate vulkan.VkVertexInputRate
}

func (e UnsupportedInputRate) Error() string {
	return fmt.Sprintf("vertex binding %d has unsupported input rate %v", e.Binding, e.InputRate)
}

// MissingHostMapping is returned when the contents of a buffer cannot be read
// because it is not bound to memory, or its memory was never mapped. Memory
// is zero when the buffer has no memory bound.
type MissingHostMapping struct {
	Buffer vulkan.VkBuffer
	Memory vulkan.VkDeviceMemory
}

func (e MissingHostMapping) Error() string {
	if e.Memory == 0 {
		return fmt.Sprintf("no readable host pointer: buffer 0x%x is not bound to memory", e.Buffer)
	}
	return fmt.Sprintf("no readable host pointer: memory 0x%x of buffer 0x%x is not mapped", e.Memory, e.Buffer)
}

// DataOutOfRange is returned when a read falls outside the bytes that are
// known for a buffer.
type DataOutOfRange struct {
	Buffer vulkan.VkBuffer
	Offset int64
	Size   uint64
}

func (e DataOutOfRange) Error() string {
	return fmt.Sprintf("read of %d bytes at offset %d of buffer 0x%x is outside its known data", e.Size, e.Offset, e.Buffer)
}
