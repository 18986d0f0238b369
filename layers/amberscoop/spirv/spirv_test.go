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

package spirv_test

import (
	"math"
	"testing"

	"github.com/NeoTim/graphicsfuzz/core/assert"
	"github.com/NeoTim/graphicsfuzz/core/log"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/spirv"
	naga "github.com/gogpu/naga/spirv"
)

func op(code naga.OpCode, operands ...uint32) []uint32 {
	return append([]uint32{uint32(len(operands)+1)<<16 | uint32(code)}, operands...)
}

func module(version uint32, body ...[]uint32) []uint32 {
	out := []uint32{naga.MagicNumber, version, 8<<16 | 10, 5, 0}
	for _, inst := range body {
		out = append(out, inst...)
	}
	return out
}

func TestTargetEnvFromVersion(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		word   uint32
		expect string
		ok     bool
	}{
		{0x00010000, "spv1.0", true},
		{0x00010300, "spv1.3", true},
		{0x00010600, "spv1.6", true},
		{0x00010700, "", false},
		{0x00010301, "", false},
		{0x00020000, "", false},
	} {
		env, ok := spirv.TargetEnvFromVersion(test.word)
		assert.For(ctx, "ok 0x%08x", test.word).ThatBoolean(ok).Equals(test.ok)
		if ok {
			assert.For(ctx, "env 0x%08x", test.word).ThatString(env).Equals(test.expect)
		}
	}
}

func TestTextLayout(t *testing.T) {
	ctx := log.Testing(t)
	main := uint32('m') | uint32('a')<<8 | uint32('i')<<16 | uint32('n')<<24
	code := module(0x00010000,
		op(naga.OpCapability, 1),
		op(naga.OpMemoryModel, 0, 1),
		op(naga.OpEntryPoint, 4, 4, main, 0, 3),
		op(naga.OpDecorate, 3, 11, 15),
		op(naga.OpTypeFloat, 1, 32),
		op(naga.OpConstant, 1, 2, math.Float32bits(0.5)),
		op(naga.OpFunction, 1, 4, 0, 5),
		op(naga.OpReturn),
		op(naga.OpFunctionEnd),
	)
	got, err := spirv.Text{}.Disassemble(code)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "text").ThatString(got).Equals(`; SPIR-V
; Version: 1.0
; Generator: Khronos Glslang Reference Front End; 10
; Bound: 5
; Schema: 0
               OpCapability Shader
               OpMemoryModel Logical GLSL450
               OpEntryPoint Fragment %4 "main" %3
               OpDecorate %3 BuiltIn FragCoord
          %1 = OpTypeFloat 32
          %2 = OpConstant %1 0.5
          %4 = OpFunction %1 None %5
               OpReturn
               OpFunctionEnd
`)
}

func TestTextErrors(t *testing.T) {
	ctx := log.Testing(t)
	_, err := spirv.Text{}.Disassemble([]uint32{naga.MagicNumber, 0x00010000})
	assert.For(ctx, "short header").ThatError(err).Equals(spirv.ErrTruncated)

	_, err = spirv.Text{}.Disassemble(module(0x00010000, []uint32{4<<16 | uint32(naga.OpDecorate), 3}))
	assert.For(ctx, "truncated instruction").ThatError(err).HasCause(spirv.ErrTruncated)

	code := module(0x00010000)
	code[0] = 0x03022307
	_, err = spirv.Text{}.Disassemble(code)
	assert.For(ctx, "magic").ThatError(err).HasCause(spirv.ErrBadMagic)

	_, err = spirv.Text{}.Disassemble(module(0x00010900))
	assert.For(ctx, "version").ThatError(err).Failed()
}
