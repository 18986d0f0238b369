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

package codec_test

import (
	eb "encoding/binary"
	"math"
	"testing"

	"github.com/NeoTim/graphicsfuzz/core/assert"
	"github.com/NeoTim/graphicsfuzz/core/log"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/codec"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/replay"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/state"
	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
)

const (
	staging vulkan.VkBuffer       = 1
	device  vulkan.VkBuffer       = 2
	memory  vulkan.VkDeviceMemory = 3
)

// newStore returns a store with a 64 byte host visible staging buffer and a
// 32 byte device local buffer.
func newStore(data []byte) *state.Store {
	s := state.NewStore()
	s.Buffers.Put(staging, vulkan.VkBufferCreateInfo{Size: 64})
	s.Buffers.Put(device, vulkan.VkBufferCreateInfo{Size: 32})
	s.BufferMemory.Put(staging, state.MemoryBinding{Memory: memory})
	s.Mappings.Put(memory, state.Mapping{Size: 64, Data: data})
	return s
}

func floats(offset int, values ...float32) []byte {
	data := make([]byte, 64)
	for i, f := range values {
		eb.LittleEndian.PutUint32(data[offset+4*i:], math.Float32bits(f))
	}
	return data
}

func vec2Input(format vulkan.VkFormat) *vulkan.VkPipelineVertexInputStateCreateInfo {
	return &vulkan.VkPipelineVertexInputStateCreateInfo{
		VertexBindingDescriptions: []vulkan.VkVertexInputBindingDescription{{Binding: 0, Stride: 8}},
		VertexAttributeDescriptions: []vulkan.VkVertexInputAttributeDescription{
			{Location: 0, Binding: 0, Format: format},
		},
	}
}

func TestStagingCopyIsFollowed(t *testing.T) {
	ctx := log.Testing(t)
	s := newStore(floats(16, 1, 2, 3, 4, 5, 6, 7, 8))
	s.Copies.Add(state.BufferCopy{Src: staging, Dst: device, Regions: []vulkan.VkBufferCopy{
		{SrcOffset: 16, DstOffset: 0, Size: 32},
	}})
	c := codec.Codec{Store: s}

	src, err := c.Source(device)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "source").That(src.Buffer).Equals(staging)
	assert.For(ctx, "shift").That(src.Shift).Equals(int64(16))

	attrs, err := c.Vertices(vec2Input(vulkan.VkFormat_VK_FORMAT_R32G32_SFLOAT), 0, replay.VertexBinding{Buffer: device})
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "attrs").ThatSlice(attrs).IsLength(1)
	assert.For(ctx, "type").ThatString(attrs[0].Format.DataType()).Equals("vec2<float>")
	assert.For(ctx, "values").ThatSlice(attrs[0].Values).Equals([]string{"1", "2", "3", "4", "5", "6", "7", "8"})
}

func TestVerticesStartAtBoundOffset(t *testing.T) {
	ctx := log.Testing(t)
	s := newStore(floats(0, 0.5, -1, 2, 3))
	s.Buffers.Put(staging, vulkan.VkBufferCreateInfo{Size: 16})
	c := codec.Codec{Store: s}
	attrs, err := c.Vertices(vec2Input(vulkan.VkFormat_VK_FORMAT_R32G32_SFLOAT), 0, replay.VertexBinding{Buffer: staging, Offset: 8})
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "values").ThatSlice(attrs[0].Values).Equals([]string{"2", "3"})
}

func TestMultiRegionCopyIsMalformed(t *testing.T) {
	ctx := log.Testing(t)
	s := newStore(make([]byte, 64))
	s.Copies.Add(state.BufferCopy{Src: staging, Dst: device, Regions: make([]vulkan.VkBufferCopy, 2)})
	_, err := codec.Codec{Store: s}.Source(device)
	assert.For(ctx, "err").ThatError(err).HasCauseOfType(replay.MalformedCommandStream{})
}

func TestUint16IndicesAreWidened(t *testing.T) {
	ctx := log.Testing(t)
	data := make([]byte, 64)
	for i, v := range []uint16{0, 1, 2, 2, 1, 65535} {
		eb.LittleEndian.PutUint16(data[4+2*i:], v)
	}
	c := codec.Codec{Store: newStore(data)}
	got, err := c.Indices(replay.IndexBinding{
		Buffer:    staging,
		Offset:    4,
		IndexType: vulkan.VkIndexType_VK_INDEX_TYPE_UINT16,
	}, 6)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "indices").ThatSlice(got).Equals([]uint32{0, 1, 2, 2, 1, 65535})
}

func TestCopyDestinationOffsetShiftsReads(t *testing.T) {
	ctx := log.Testing(t)
	data := make([]byte, 64)
	for i, v := range []uint16{3, 4, 5} {
		eb.LittleEndian.PutUint16(data[2*i:], v)
	}
	s := newStore(data)
	s.Copies.Add(state.BufferCopy{Src: staging, Dst: device, Regions: []vulkan.VkBufferCopy{
		{SrcOffset: 0, DstOffset: 8, Size: 6},
	}})
	c := codec.Codec{Store: s}
	uint16s := vulkan.VkIndexType_VK_INDEX_TYPE_UINT16

	got, err := c.Indices(replay.IndexBinding{Buffer: device, Offset: 8, IndexType: uint16s}, 3)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "indices").ThatSlice(got).Equals([]uint32{3, 4, 5})

	_, err = c.Indices(replay.IndexBinding{Buffer: device, IndexType: uint16s}, 3)
	assert.For(ctx, "before region").ThatError(err).HasCauseOfType(codec.DataOutOfRange{})
}

func TestUnsupportedIndexType(t *testing.T) {
	ctx := log.Testing(t)
	c := codec.Codec{Store: newStore(make([]byte, 64))}
	_, err := c.Indices(replay.IndexBinding{
		Buffer:    staging,
		IndexType: vulkan.VkIndexType_VK_INDEX_TYPE_UINT8_EXT,
	}, 3)
	assert.For(ctx, "err").ThatError(err).Equals(codec.UnsupportedIndexType{IndexType: vulkan.VkIndexType_VK_INDEX_TYPE_UINT8_EXT})
}

func TestUnsupportedFormat(t *testing.T) {
	ctx := log.Testing(t)
	c := codec.Codec{Store: newStore(make([]byte, 64))}
	_, err := c.Vertices(vec2Input(vulkan.VkFormat_VK_FORMAT_R8G8B8A8_UNORM), 0, replay.VertexBinding{Buffer: staging})
	assert.For(ctx, "err").ThatError(err).HasCauseOfType(codec.UnsupportedFormat{})
}

func TestMissingMapping(t *testing.T) {
	ctx := log.Testing(t)
	c := codec.Codec{Store: newStore(make([]byte, 64))}
	_, err := c.Vertices(vec2Input(vulkan.VkFormat_VK_FORMAT_R32G32_SFLOAT), 0, replay.VertexBinding{Buffer: device})
	assert.For(ctx, "err").ThatError(err).Equals(codec.MissingHostMapping{Buffer: device})
}

func TestUniformFloats(t *testing.T) {
	ctx := log.Testing(t)
	c := codec.Codec{Store: newStore(floats(48, 0.25, 1e10, -3, 4))}
	got, err := c.Floats(vulkan.VkDescriptorBufferInfo{Buffer: staging, Offset: 48, Range: vulkan.VK_WHOLE_SIZE})
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "values").ThatSlice(got).Equals([]string{"0.25", "1e+10", "-3", "4"})
}

func TestFormatDataType(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		format vulkan.VkFormat
		expect string
	}{
		{vulkan.VkFormat_VK_FORMAT_R32_SFLOAT, "float"},
		{vulkan.VkFormat_VK_FORMAT_R32G32B32_SINT, "vec3<int32>"},
		{vulkan.VkFormat_VK_FORMAT_R32G32B32A32_UINT, "vec4<uint32>"},
	} {
		f, err := codec.LookupFormat(test.format)
		assert.For(ctx, "err").ThatError(err).Succeeded()
		assert.For(ctx, "%v", test.format).ThatString(f.DataType()).Equals(test.expect)
	}
}
