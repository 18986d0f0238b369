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

package luatrace_test

import (
	"context"
	"testing"

	"github.com/NeoTim/graphicsfuzz/core/assert"
	"github.com/NeoTim/graphicsfuzz/core/log"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/luatrace"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/sim"
)

const triangle = `
local shader = vk.create_shader_module{code = {0x07230203, 0x00010000, 0x0008000a, 1, 0, 0x00020011, 1}}
local mem = assert(vk.allocate_memory{size = 64})
local vertices = assert(vk.create_buffer{size = 24, usage = {"VERTEX_BUFFER_BIT"}})
local indices = assert(vk.create_buffer{size = 6, usage = {"INDEX_BUFFER_BIT"}})
assert(vk.bind_buffer_memory(vertices, mem, 0))
assert(vk.bind_buffer_memory(indices, mem, 32))
assert(vk.map_memory(mem))
vk.write_floats(mem, 0, {-1, -1, 1, -1, 0, 1})
vk.write_uint16s(mem, 32, {2, 1, 0})
vk.unmap_memory(mem)

local pass = vk.create_render_pass{attachments = {"R8G8B8A8_UNORM"}, subpasses = {{colors = {0}}}}
local fb = vk.create_framebuffer{render_pass = pass, width = 32, height = 16}
local layout = vk.create_pipeline_layout{}
local pipeline = assert(vk.create_graphics_pipeline{
  stages = {{stage = "VERTEX_BIT", module = shader}, {stage = "FRAGMENT_BIT", module = shader}},
  bindings = {{binding = 0, stride = 8}},
  attributes = {{location = 0, binding = 0, format = "R32G32_SFLOAT"}},
  topology = "TRIANGLE_FAN",
  layout = layout,
  render_pass = pass,
})

local cb = vk.allocate_command_buffers()
vk.begin_command_buffer(cb)
vk.cmd_begin_render_pass(cb, {render_pass = pass, framebuffer = fb})
vk.cmd_bind_pipeline(cb, pipeline)
vk.cmd_bind_vertex_buffers(cb, 0, {vertices})
vk.cmd_bind_index_buffer(cb, indices, 0, "UINT16")
vk.cmd_draw_indexed(cb, 3)
vk.end_command_buffer(cb)
assert(vk.queue_submit({cb}))
`

func run(ctx context.Context, source string) ([]amberscoop.DrawResult, error) {
	results := []amberscoop.DrawResult{}
	device := sim.New()
	layer := amberscoop.NewLayer(device, amberscoop.NewSession(nil), amberscoop.Options{},
		func(ctx context.Context, r amberscoop.DrawResult) { results = append(results, r) })
	err := luatrace.Run(ctx, layer, device, source)
	return results, err
}

func TestIndexedTriangle(t *testing.T) {
	ctx := log.Testing(t)
	results, err := run(ctx, triangle)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "results").ThatSlice(results).IsLength(1)
	script := results[0].Script
	assert.For(ctx, "draw err").ThatError(results[0].Err).Succeeded()
	assert.For(ctx, "vertices").ThatString(script).Contains("BUFFER vert_0_0 DATA_TYPE vec2<float> DATA\n  -1 -1 1 -1 0 1\nEND\n")
	assert.For(ctx, "indices").ThatString(script).Contains("BUFFER index_buffer DATA_TYPE uint32 DATA\n  2 1 0\nEND\n")
	assert.For(ctx, "framebuffer").ThatString(script).Contains("BUFFER framebuffer_0 FORMAT R8G8B8A8_UNORM\n")
	assert.For(ctx, "size").ThatString(script).Contains("FRAMEBUFFER_SIZE 32 16\n")
	assert.For(ctx, "run").ThatString(script).HasSuffix("RUN pipeline DRAW_ARRAY AS TRIANGLE_FAN INDEXED\n")
}

func TestFailedCallReturnsResult(t *testing.T) {
	ctx := log.Testing(t)
	_, err := run(ctx, `
vk.fail("CreateBuffer", "ERROR_OUT_OF_DEVICE_MEMORY")
local b, res = vk.create_buffer{size = 4}
assert(b == nil, "buffer created")
assert(res == "VK_ERROR_OUT_OF_DEVICE_MEMORY", res)
vk.fail("CreateBuffer", "SUCCESS")
assert(vk.create_buffer{size = 4})
`)
	assert.For(ctx, "err").ThatError(err).Succeeded()
}

func TestRejectedDescriptorUpdate(t *testing.T) {
	ctx := log.Testing(t)
	_, err := run(ctx, `
local err = vk.update_descriptor_sets{writes = {{set = 1, binding = 0, count = 2, buffer = 3}}}
assert(err ~= nil, "update accepted")
assert(vk.update_descriptor_sets{writes = {{set = 1, binding = 0, buffer = 3}}} == nil)
`)
	assert.For(ctx, "err").ThatError(err).Succeeded()
}

func TestScriptErrors(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		name   string
		source string
		expect string
	}{
		{"syntax", `vk.create_buffer{`, "running call stream"},
		{"unknown format", `vk.create_render_pass{attachments = {"R1_BOGUS"}}`, `unknown VkFormat "R1_BOGUS"`},
		{"unmapped", `vk.write_floats(7, 0, {1})`, "memory 0x7 is not mapped"},
		{"field type", `vk.create_buffer{size = "big"}`, `field "size" must be a number`},
	} {
		_, err := run(ctx, test.source)
		assert.For(ctx, "%s", test.name).ThatError(err).Failed()
		if err != nil {
			assert.For(ctx, "%s", test.name).ThatString(err.Error()).Contains(test.expect)
		}
	}
}
