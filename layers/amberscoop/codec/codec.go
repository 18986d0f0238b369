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

// Package codec reads the contents of the buffers a draw call depends on and
// decodes them as vertex attributes, indices or uniform data.
package codec

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/NeoTim/graphicsfuzz/core/data/binary"
	"github.com/NeoTim/graphicsfuzz/core/data/endian"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/replay"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/state"
	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
	"github.com/pkg/errors"
)

// Codec decodes buffer contents using the metadata and mappings in Store.
type Codec struct {
	Store *state.Store
}

// Source is where the contents of a bound buffer can be read from. Offsets
// into the bound buffer in [Start, End) are read from Buffer at offset+Shift.
type Source struct {
	Bound  vulkan.VkBuffer
	Buffer vulkan.VkBuffer
	Shift  int64
	Start  uint64
	End    uint64
}

// Source follows a staging copy into bound, if one was recorded. Only the
// first copy into bound is considered, and it must have a single region.
func (c Codec) Source(bound vulkan.VkBuffer) (Source, error) {
	info, err := c.Store.Buffers.Get(bound)
	if err != nil {
		return Source{}, err
	}
	size := uint64(info.Size)
	bc, ok := c.Store.Copies.Find(bound)
	if !ok {
		return Source{Bound: bound, Buffer: bound, End: size}, nil
	}
	if len(bc.Regions) != 1 {
		return Source{}, replay.MalformedCommandStream{
			Reason: fmt.Sprintf("copy into buffer 0x%x has %d regions, only one is supported", bound, len(bc.Regions)),
		}
	}
	region := bc.Regions[0]
	end := uint64(region.DstOffset + region.Size)
	if end > size {
		end = size
	}
	return Source{
		Bound:  bound,
		Buffer: bc.Src,
		Shift:  int64(region.SrcOffset) - int64(region.DstOffset),
		Start:  uint64(region.DstOffset),
		End:    end,
	}, nil
}

// HostData returns the mapped bytes of buffer, starting at its first byte.
func (c Codec) HostData(buffer vulkan.VkBuffer) ([]byte, error) {
	binding, ok := c.Store.BufferMemory.Lookup(buffer)
	if !ok {
		return nil, MissingHostMapping{Buffer: buffer}
	}
	mapping, ok := c.Store.Mappings.Get(binding.Memory)
	if !ok {
		return nil, MissingHostMapping{Buffer: buffer, Memory: binding.Memory}
	}
	start := int64(binding.Offset) - int64(mapping.Offset)
	if start < 0 || start > int64(len(mapping.Data)) {
		return nil, DataOutOfRange{Buffer: buffer, Offset: start, Size: uint64(len(mapping.Data))}
	}
	return mapping.Data[start:], nil
}

// reader returns a reader over size bytes at offset of the bound buffer.
func (c Codec) reader(src Source, offset, size uint64) (binary.Reader, error) {
	if offset < src.Start || offset+size > src.End {
		return nil, DataOutOfRange{Buffer: src.Bound, Offset: int64(offset), Size: size}
	}
	data, err := c.HostData(src.Buffer)
	if err != nil {
		return nil, err
	}
	from := int64(offset) + src.Shift
	if from < 0 || from+int64(size) > int64(len(data)) {
		return nil, DataOutOfRange{Buffer: src.Buffer, Offset: from, Size: size}
	}
	return endian.Reader(bytes.NewReader(data[from:from+int64(size)]), endian.LittleEndian), nil
}

// Attribute is the decoded data of one vertex attribute location.
type Attribute struct {
	Binding  uint32
	Location uint32
	Format   Format
	// Values holds one entry per component per vertex.
	Values []string
}

// Vertices decodes every attribute of binding, walking the bound buffer in
// stride steps from the bound offset until a whole vertex no longer fits.
// Attributes are returned in location order. A binding that the pipeline
// does not describe returns no attributes.
func (c Codec) Vertices(input *vulkan.VkPipelineVertexInputStateCreateInfo, binding uint32, vb replay.VertexBinding) ([]Attribute, error) {
	desc, ok := input.Binding(binding)
	if !ok {
		return nil, nil
	}
	if desc.InputRate != vulkan.VkVertexInputRate_VK_VERTEX_INPUT_RATE_VERTEX {
		return nil, UnsupportedInputRate{binding, desc.InputRate}
	}
	if desc.Stride == 0 {
		return nil, replay.MalformedCommandStream{Reason: fmt.Sprintf("vertex binding %d has zero stride", binding)}
	}

	type located struct {
		desc   vulkan.VkVertexInputAttributeDescription
		format Format
	}
	attrs := []located{}
	extent := uint64(0)
	for _, a := range input.VertexAttributeDescriptions {
		if a.Binding != binding {
			continue
		}
		f, err := LookupFormat(a.Format)
		if err != nil {
			return nil, errors.Wrapf(err, "location %d", a.Location)
		}
		attrs = append(attrs, located{a, f})
		if end := uint64(a.Offset) + uint64(f.Size()); end > extent {
			extent = end
		}
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].desc.Location < attrs[j].desc.Location })

	src, err := c.Source(vb.Buffer)
	if err != nil {
		return nil, err
	}
	out := make([]Attribute, len(attrs))
	for i, a := range attrs {
		out[i] = Attribute{Binding: binding, Location: a.desc.Location, Format: a.format}
	}
	for pos := uint64(vb.Offset); pos+extent <= src.End; pos += uint64(desc.Stride) {
		for i, a := range attrs {
			r, err := c.reader(src, pos+uint64(a.desc.Offset), uint64(a.format.Size()))
			if err != nil {
				return nil, err
			}
			for j := 0; j < a.format.Components; j++ {
				out[i].Values = append(out[i].Values, a.format.read(r))
			}
			if err := r.Error(); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Indices reads count indices from the bound index buffer, widening 16 bit
// indices to 32 bits.
func (c Codec) Indices(ib replay.IndexBinding, count uint32) ([]uint32, error) {
	var width uint64
	switch ib.IndexType {
	case vulkan.VkIndexType_VK_INDEX_TYPE_UINT16:
		width = 2
	case vulkan.VkIndexType_VK_INDEX_TYPE_UINT32:
		width = 4
	default:
		return nil, UnsupportedIndexType{ib.IndexType}
	}
	src, err := c.Source(ib.Buffer)
	if err != nil {
		return nil, err
	}
	r, err := c.reader(src, uint64(ib.Offset), width*uint64(count))
	if err != nil {
		return nil, err
	}
	out := make([]uint32, count)
	for i := range out {
		out[i] = uint32(binary.ReadUint(r, int(width*8)))
	}
	return out, r.Error()
}

// Floats decodes the range of a descriptor buffer binding as 32 bit floats.
func (c Codec) Floats(info vulkan.VkDescriptorBufferInfo) ([]string, error) {
	src, err := c.Source(info.Buffer)
	if err != nil {
		return nil, err
	}
	size := info.Range
	if size == vulkan.VK_WHOLE_SIZE {
		if uint64(info.Offset) > src.End {
			return nil, DataOutOfRange{Buffer: info.Buffer, Offset: int64(info.Offset)}
		}
		size = vulkan.VkDeviceSize(src.End) - info.Offset
	}
	count := uint64(size) / 4
	r, err := c.reader(src, uint64(info.Offset), count*4)
	if err != nil {
		return nil, err
	}
	out := make([]string, count)
	for i := range out {
		out[i] = strconv.FormatFloat(float64(r.Float32()), 'g', -1, 32)
	}
	return out, r.Error()
}
