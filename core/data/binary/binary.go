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

// Package binary declares the fixed-width value streams that move vertex,
// index and uniform data in and out of raw buffer bytes. The byte order is
// chosen by the implementation, see core/data/endian.
package binary

import "fmt"

// Reader decodes fixed-width values. Once a read fails every later read
// returns zero and Error reports the first failure.
type Reader interface {
	Data([]byte)
	Uint8() uint8
	Uint16() uint16
	Uint32() uint32
	Uint64() uint64
	Int32() int32
	Float32() float32
	Error() error
	// SetError stops the stream unless it has already stopped.
	SetError(error)
}

// Writer encodes fixed-width values, with the same sticky error as Reader.
type Writer interface {
	Data([]byte)
	Uint16(uint16)
	Uint32(uint32)
	Int32(int32)
	Float32(float32)
	Error() error
	SetError(error)
}

// UnsupportedWidth stops a stream asked for an integer it cannot encode.
type UnsupportedWidth struct {
	Bits int
}

func (e UnsupportedWidth) Error() string {
	return fmt.Sprintf("unsupported integer width %d", e.Bits)
}

// ReadUint reads an unsigned integer that is bits wide.
func ReadUint(r Reader, bits int) uint64 {
	switch bits {
	case 8:
		return uint64(r.Uint8())
	case 16:
		return uint64(r.Uint16())
	case 32:
		return uint64(r.Uint32())
	case 64:
		return r.Uint64()
	}
	r.SetError(UnsupportedWidth{bits})
	return 0
}

// WriteUint writes the low bits of v. Only 16 and 32 bit widths are
// supported.
func WriteUint(w Writer, bits int, v uint64) {
	switch bits {
	case 16:
		w.Uint16(uint16(v))
	case 32:
		w.Uint32(uint32(v))
	default:
		w.SetError(UnsupportedWidth{bits})
	}
}

// Skip discards n bytes of r.
func Skip(r Reader, n uint64) {
	if n > 0 {
		r.Data(make([]byte, n))
	}
}
