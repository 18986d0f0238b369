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

package spirv

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/NeoTim/graphicsfuzz/core/fault"
	naga "github.com/gogpu/naga/spirv"
	"github.com/pkg/errors"
)

const (
	ErrTruncated = fault.Const("truncated SPIR-V module")
	ErrBadMagic  = fault.Const("not a SPIR-V module")
)

// headerWords is the size of the module header: magic, version, generator,
// id bound and schema.
const headerWords = 5

// Disassembler turns a SPIR-V module into assembly text.
type Disassembler interface {
	Disassemble(code []uint32) (string, error)
}

// Text is a Disassembler producing indented assembly with numeric ids.
type Text struct{}

var generators = map[uint32]string{
	0:  "Unknown",
	6:  "LLVM",
	8:  "Khronos Glslang Reference Front End",
	13: "Google Shaderc over Glslang",
	14: "Google spiregg",
	15: "Google rspirv",
	22: "Google Tint",
	28: "gogpu naga",
}

// Disassemble implements Disassembler.
func (Text) Disassemble(code []uint32) (string, error) {
	if len(code) < headerWords {
		return "", ErrTruncated
	}
	if code[0] != naga.MagicNumber {
		return "", errors.Wrapf(ErrBadMagic, "magic 0x%08x", code[0])
	}
	env, ok := TargetEnvFromVersion(code[1])
	if !ok {
		return "", errors.Errorf("unsupported SPIR-V version word 0x%08x", code[1])
	}

	d := &disassembly{types: map[uint32]numericType{}}
	vendor, ok := generators[code[2]>>16]
	if !ok {
		vendor = fmt.Sprintf("Unknown(%d)", code[2]>>16)
	}
	fmt.Fprintf(&d.out, "; SPIR-V\n")
	fmt.Fprintf(&d.out, "; Version: %d.%d\n", env.Version.Major, env.Version.Minor)
	fmt.Fprintf(&d.out, "; Generator: %s; %d\n", vendor, code[2]&0xffff)
	fmt.Fprintf(&d.out, "; Bound: %d\n", code[3])
	fmt.Fprintf(&d.out, "; Schema: %d\n", code[4])

	for at := headerWords; at < len(code); {
		count := int(code[at] >> 16)
		op := naga.OpCode(code[at] & 0xffff)
		if count == 0 || at+count > len(code) {
			return "", errors.Wrapf(ErrTruncated, "%v at word %d has word count %d", op, at, count)
		}
		if err := d.instruction(op, code[at+1:at+count]); err != nil {
			return "", errors.Wrapf(err, "word %d", at)
		}
		at += count
	}
	return d.out.String(), nil
}

type numericType struct {
	float  bool
	signed bool
	width  uint32
}

type disassembly struct {
	out   strings.Builder
	types map[uint32]numericType
}

func id(n uint32) string { return "%" + strconv.FormatUint(uint64(n), 10) }

func (d *disassembly) instruction(op naga.OpCode, words []uint32) error {
	inst, ok := lookupInstruction(op)
	if !ok {
		inst = instruction{name: fmt.Sprintf("Op%d", op)}
	}
	var resultType, result uint32
	need := 0
	if inst.typed {
		need++
	}
	if inst.result {
		need++
	}
	if len(words) < need {
		return errors.Wrapf(ErrTruncated, "%s", inst.name)
	}
	if inst.typed {
		resultType, words = words[0], words[1:]
	}
	if inst.result {
		result, words = words[0], words[1:]
	}

	switch op {
	case naga.OpTypeInt:
		if len(words) == 2 {
			d.types[result] = numericType{signed: words[1] != 0, width: words[0]}
		}
	case naga.OpTypeFloat:
		if len(words) >= 1 {
			d.types[result] = numericType{float: true, width: words[0]}
		}
	}

	if inst.result {
		fmt.Fprintf(&d.out, "%12s = %s", id(result), inst.name)
	} else {
		fmt.Fprintf(&d.out, "%15s%s", "", inst.name)
	}
	if inst.typed {
		fmt.Fprintf(&d.out, " %s", id(resultType))
	}

	override := operandKind(-1)
	for i := 0; len(words) > 0; i++ {
		kind := inst.rest
		if i < len(inst.operands) {
			kind = inst.operands[i]
		} else if kind == kindSwitchTarget {
			kind = kindLiteral
			if (i-len(inst.operands))%2 == 1 {
				kind = kindID
			}
		}
		if override >= 0 {
			kind, override = override, -1
		}
		text, used := d.operand(kind, resultType, words)
		d.out.WriteString(" ")
		d.out.WriteString(text)
		if kind == kindDecoration && words[0] == uint32(naga.DecorationBuiltIn) {
			override = kindBuiltIn
		}
		words = words[used:]
	}
	d.out.WriteString("\n")
	return nil
}

// operand formats the operand at the start of words and returns the number
// of words it used.
func (d *disassembly) operand(kind operandKind, resultType uint32, words []uint32) (string, int) {
	w := words[0]
	switch kind {
	case kindID:
		return id(w), 1
	case kindLiteral:
		return strconv.FormatUint(uint64(w), 10), 1
	case kindString:
		return readString(words)
	case kindValue:
		return d.value(resultType, words)
	case kindFunctionControl, kindSelectionControl, kindLoopControl, kindMemoryAccess, kindImageOperands:
		return mask(maskNames[kind], w), 1
	}
	if name, ok := enumNames[kind][w]; ok {
		return name, 1
	}
	return strconv.FormatUint(uint64(w), 10), 1
}

func (d *disassembly) value(resultType uint32, words []uint32) (string, int) {
	t, ok := d.types[resultType]
	switch {
	case !ok:
		return strconv.FormatUint(uint64(words[0]), 10), 1
	case t.width == 64 && len(words) >= 2:
		bits := uint64(words[1])<<32 | uint64(words[0])
		switch {
		case t.float:
			return strconv.FormatFloat(math.Float64frombits(bits), 'g', -1, 64), 2
		case t.signed:
			return strconv.FormatInt(int64(bits), 10), 2
		default:
			return strconv.FormatUint(bits, 10), 2
		}
	case t.float:
		return strconv.FormatFloat(float64(math.Float32frombits(words[0])), 'g', -1, 32), 1
	case t.signed:
		return strconv.FormatInt(int64(int32(words[0])), 10), 1
	default:
		return strconv.FormatUint(uint64(words[0]), 10), 1
	}
}

func mask(names []string, w uint32) string {
	if w == 0 {
		return "None"
	}
	parts := []string{}
	for bit, name := range names {
		if w&(1<<uint(bit)) != 0 {
			parts = append(parts, name)
			w &^= 1 << uint(bit)
		}
	}
	if w != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", w))
	}
	return strings.Join(parts, "|")
}

// readString decodes a nul terminated UTF-8 literal packed into words.
func readString(words []uint32) (string, int) {
	var sb strings.Builder
	sb.WriteByte('"')
	for i, w := range words {
		for b := 0; b < 4; b++ {
			c := byte(w >> (8 * b))
			if c == 0 {
				sb.WriteByte('"')
				return sb.String(), i + 1
			}
			if c == '"' || c == '\\' {
				sb.WriteByte('\\')
			}
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String(), len(words)
}
