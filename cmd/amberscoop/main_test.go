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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/NeoTim/graphicsfuzz/core/assert"
	"github.com/NeoTim/graphicsfuzz/core/log"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/luatrace"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/sim"
	"github.com/pkg/errors"
)

func TestWriterNumbersScripts(t *testing.T) {
	ctx := log.Testing(t)
	dir := t.TempDir()
	w := &writer{dir: dir}
	w.write(ctx, amberscoop.DrawResult{Script: "#!amber\n"})
	w.write(ctx, amberscoop.DrawResult{Err: errors.New("unsupported topology")})
	w.write(ctx, amberscoop.DrawResult{Script: "#!amber\n# second\n"})

	assert.For(ctx, "written").That(w.written).Equals(2)
	assert.For(ctx, "failed").That(w.failed).Equals(1)
	assert.For(ctx, "err").ThatError(w.err).Succeeded()
	got, err := os.ReadFile(filepath.Join(dir, "draw_1.amber"))
	assert.For(ctx, "read").ThatError(err).Succeeded()
	assert.For(ctx, "second").ThatString(string(got)).Equals("#!amber\n# second\n")
}

func TestTriangleTrace(t *testing.T) {
	ctx := log.Testing(t)
	source, err := os.ReadFile(filepath.Join("testdata", "triangle.lua"))
	assert.For(ctx, "read").ThatError(err).Succeeded()
	dir := t.TempDir()
	w := &writer{dir: dir}
	device := sim.New()
	layer := amberscoop.NewLayer(device, amberscoop.NewSession(nil), amberscoop.Options{FirstDrawOnly: true}, w.write)
	assert.For(ctx, "run").ThatError(luatrace.Run(ctx, layer, device, string(source))).Succeeded()
	assert.For(ctx, "written").That(w.written).Equals(1)
	got, err := os.ReadFile(filepath.Join(dir, "draw_0.amber"))
	assert.For(ctx, "script").ThatError(err).Succeeded()
	assert.For(ctx, "run").ThatString(string(got)).HasSuffix("RUN pipeline DRAW_ARRAY AS TRIANGLE_LIST\n")
}
