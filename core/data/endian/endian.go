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

// Package endian implements binary.Reader and binary.Writer for a chosen
// byte order.
package endian

import (
	eb "encoding/binary"
	"io"
	"math"

	"github.com/NeoTim/graphicsfuzz/core/data/binary"
	"github.com/pkg/errors"
)

// Endian is a byte order.
type Endian int

const (
	// LittleEndian is the byte order of every device the layer runs on.
	LittleEndian Endian = iota
	// BigEndian is network order.
	BigEndian
)

func byteOrder(endian Endian) eb.ByteOrder {
	if endian == BigEndian {
		return eb.BigEndian
	}
	return eb.LittleEndian
}

// Reader creates a binary.Reader that reads from the provided io.Reader, with
// the specified byte order.
func Reader(r io.Reader, endian Endian) binary.Reader {
	return &reader{reader: r, byteOrder: byteOrder(endian)}
}

type reader struct {
	reader    io.Reader
	tmp       [8]byte
	byteOrder eb.ByteOrder
	err       error
}

func (r *reader) Data(p []byte) {
	if r.err != nil {
		return
	}
	if n, err := io.ReadFull(r.reader, p); err != nil {
		r.err = errors.Wrapf(err, "after reading %d bytes", n)
	}
}

func (r *reader) fill(n int) []byte {
	b := r.tmp[:n]
	if r.err == nil {
		r.Data(b)
	}
	if r.err != nil {
		for i := range b {
			b[i] = 0
		}
	}
	return b
}

func (r *reader) Uint8() uint8     { return r.fill(1)[0] }
func (r *reader) Uint16() uint16   { return r.byteOrder.Uint16(r.fill(2)) }
func (r *reader) Int32() int32     { return int32(r.Uint32()) }
func (r *reader) Uint32() uint32   { return r.byteOrder.Uint32(r.fill(4)) }
func (r *reader) Float32() float32 { return math.Float32frombits(r.Uint32()) }
func (r *reader) Uint64() uint64   { return r.byteOrder.Uint64(r.fill(8)) }

func (r *reader) Error() error {
	return r.err
}

func (r *reader) SetError(err error) {
	if r.err == nil {
		r.err = err
	}
}

// Writer creates a binary.Writer that writes to the supplied io.Writer, with
// the specified byte order.
func Writer(w io.Writer, endian Endian) binary.Writer {
	return &writer{writer: w, byteOrder: byteOrder(endian)}
}

type writer struct {
	writer    io.Writer
	tmp       [8]byte
	byteOrder eb.ByteOrder
	err       error
}

func (w *writer) Data(data []byte) {
	if w.err != nil {
		return
	}
	n, err := w.writer.Write(data)
	switch {
	case err != nil:
		w.err = errors.Wrapf(err, "after writing %d bytes", n)
	case n != len(data):
		w.err = errors.Wrapf(io.ErrShortWrite, "wrote %d of %d bytes", n, len(data))
	}
}

func (w *writer) Uint16(v uint16) {
	w.byteOrder.PutUint16(w.tmp[:2], v)
	w.Data(w.tmp[:2])
}

func (w *writer) Int32(v int32) { w.Uint32(uint32(v)) }

func (w *writer) Uint32(v uint32) {
	w.byteOrder.PutUint32(w.tmp[:4], v)
	w.Data(w.tmp[:4])
}

func (w *writer) Float32(v float32) { w.Uint32(math.Float32bits(v)) }

func (w *writer) Error() error {
	return w.err
}

func (w *writer) SetError(err error) {
	if w.err == nil {
		w.err = err
	}
}
