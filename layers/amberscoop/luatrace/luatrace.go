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

// Package luatrace replays Vulkan call streams written as Lua scripts.
//
// A script sees a global vk table whose functions mirror the entry points of
// amberscoop.Driver. Handles are plain numbers and create infos are tables:
//
//	local mem = vk.allocate_memory{size = 24}
//	local buf = vk.create_buffer{size = 24, usage = {"VERTEX_BUFFER_BIT"}}
//	vk.bind_buffer_memory(buf, mem, 0)
//	vk.map_memory(mem)
//	vk.write_floats(mem, 0, {-1, -1, 1, -1, 0, 1})
//
// Calls that fail return nil followed by the name of the VkResult.
package luatrace

import (
	"context"

	"github.com/NeoTim/graphicsfuzz/core/log"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/sim"
	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
)

// Run executes source against layer. device, if not nil, is the driver below
// the layer, and lets the script inject failures with vk.fail.
func Run(ctx context.Context, layer *amberscoop.Layer, device *sim.Device, source string) error {
	ctx = log.Enter(ctx, "luatrace")
	L := lua.NewState()
	defer L.Close()
	L.SetContext(ctx)

	r := &runner{ctx: ctx, layer: layer, device: device, mapped: map[vulkan.VkDeviceMemory][]byte{}}
	vk := L.NewTable()
	L.SetFuncs(vk, r.functions())
	L.SetGlobal("vk", vk)

	if err := L.DoString(source); err != nil {
		return errors.Wrap(err, "running call stream")
	}
	return nil
}

type runner struct {
	ctx    context.Context
	layer  *amberscoop.Layer
	device *sim.Device
	mapped map[vulkan.VkDeviceMemory][]byte
}

// result pushes h, or nil and the result name when res is a failure.
func result(L *lua.LState, h uint64, res vulkan.VkResult) int {
	if res != vulkan.VkResult_VK_SUCCESS {
		L.Push(lua.LNil)
		L.Push(lua.LString(res.String()))
		return 2
	}
	L.Push(lua.LNumber(h))
	return 1
}

// status pushes true, or nil and the result name.
func status(L *lua.LState, res vulkan.VkResult) int {
	if res != vulkan.VkResult_VK_SUCCESS {
		L.Push(lua.LNil)
		L.Push(lua.LString(res.String()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}

func handles[H ~uint64](L *lua.LState, hs []H, res vulkan.VkResult) int {
	if res != vulkan.VkResult_VK_SUCCESS {
		return result(L, 0, res)
	}
	for _, h := range hs {
		L.Push(lua.LNumber(h))
	}
	return len(hs)
}

func checkHandle(L *lua.LState, n int) uint64 {
	return uint64(L.CheckNumber(n))
}

func optUint(L *lua.LState, n int, def uint32) uint32 {
	return uint32(L.OptNumber(n, lua.LNumber(def)))
}

// number returns the numeric field name of t, or def when it is absent.
func number(L *lua.LState, t *lua.LTable, name string, def uint64) uint64 {
	switch v := L.GetField(t, name).(type) {
	case lua.LNumber:
		return uint64(v)
	case *lua.LNilType:
		return def
	default:
		L.RaiseError("field %q must be a number, got %v", name, v.Type())
		return 0
	}
}

func str(L *lua.LState, t *lua.LTable, name, def string) string {
	switch v := L.GetField(t, name).(type) {
	case lua.LString:
		return string(v)
	case *lua.LNilType:
		return def
	default:
		L.RaiseError("field %q must be a string, got %v", name, v.Type())
		return ""
	}
}

// list returns the array field name of t. An absent field is an empty list.
func list(L *lua.LState, t *lua.LTable, name string) []lua.LValue {
	switch v := L.GetField(t, name).(type) {
	case *lua.LTable:
		return values(v)
	case *lua.LNilType:
		return nil
	default:
		L.RaiseError("field %q must be a table, got %v", name, v.Type())
		return nil
	}
}

func values(t *lua.LTable) []lua.LValue {
	out := make([]lua.LValue, t.Len())
	for i := range out {
		out[i] = t.RawGetInt(i + 1)
	}
	return out
}

func tables(L *lua.LState, vs []lua.LValue) []*lua.LTable {
	out := make([]*lua.LTable, len(vs))
	for i, v := range vs {
		t, ok := v.(*lua.LTable)
		if !ok {
			L.RaiseError("element %d must be a table, got %v", i+1, v.Type())
		}
		out[i] = t
	}
	return out
}

func numbers[T ~uint32 | ~uint64 | float32](L *lua.LState, vs []lua.LValue) []T {
	out := make([]T, len(vs))
	for i, v := range vs {
		n, ok := v.(lua.LNumber)
		if !ok {
			L.RaiseError("element %d must be a number, got %v", i+1, v.Type())
		}
		out[i] = T(n)
	}
	return out
}

// enum parses name with parse, raising a script error if it is unknown.
func enum[E any](L *lua.LState, parse func(string) (E, error), name string) E {
	v, err := parse(name)
	if err != nil {
		L.RaiseError("%v", err)
	}
	return v
}
