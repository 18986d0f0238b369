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

package sim

import (
	"bytes"

	"github.com/NeoTim/graphicsfuzz/core/data/binary"
	"github.com/NeoTim/graphicsfuzz/core/data/endian"
	"github.com/NeoTim/graphicsfuzz/core/fault"
	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
	"github.com/pkg/errors"
)

// ErrOutOfRange is returned when a host access falls outside a memory object.
const ErrOutOfRange = fault.Const("access out of range")

// Write encodes little-endian values into mapped at offset, as the host
// would through a mapping.
func Write(mapped []byte, offset uint64, encode func(w binary.Writer)) error {
	buf := &bytes.Buffer{}
	w := endian.Writer(buf, endian.LittleEndian)
	encode(w)
	if err := w.Error(); err != nil {
		return err
	}
	if offset+uint64(buf.Len()) > uint64(len(mapped)) {
		return errors.Wrapf(ErrOutOfRange, "writing %d bytes at %d of %d", buf.Len(), offset, len(mapped))
	}
	copy(mapped[offset:], buf.Bytes())
	return nil
}

// WriteFloats writes vs as little-endian 32 bit floats.
func WriteFloats(mapped []byte, offset uint64, vs ...float32) error {
	return Write(mapped, offset, func(w binary.Writer) {
		for _, v := range vs {
			w.Float32(v)
		}
	})
}

// WriteUint16s writes vs as little-endian 16 bit indices.
func WriteUint16s(mapped []byte, offset uint64, vs ...uint16) error {
	return Write(mapped, offset, func(w binary.Writer) {
		for _, v := range vs {
			w.Uint16(v)
		}
	})
}

// WriteUint32s writes vs as little-endian 32 bit integers.
func WriteUint32s(mapped []byte, offset uint64, vs ...uint32) error {
	return Write(mapped, offset, func(w binary.Writer) {
		for _, v := range vs {
			w.Uint32(v)
		}
	})
}

// Contents returns a copy of the bytes backing buffer.
func (d *Device) Contents(b vulkan.VkBuffer) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	data := d.bytes(b)
	if data == nil {
		return nil, errors.Errorf("buffer 0x%x is not bound", b)
	}
	return append([]byte(nil), data...), nil
}
