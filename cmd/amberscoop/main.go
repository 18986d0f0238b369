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

// The amberscoop command replays a Lua Vulkan call stream through the capture
// layer and writes an AMBER script for every draw it submits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NeoTim/graphicsfuzz/core/app"
	"github.com/NeoTim/graphicsfuzz/core/fault"
	"github.com/NeoTim/graphicsfuzz/core/log"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/luatrace"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/sim"
	"github.com/pkg/errors"
)

const ErrNoTrace = fault.Const("No call stream provided")

var (
	out   = flag.String("out", "", "The directory to write draw_<n>.amber files to. Scripts go to stdout when empty.")
	first = flag.Bool("first", false, "Stop after the first draw that produces a script.")
)

func main() {
	app.ShortHelp = "amberscoop turns the draw calls of a Lua Vulkan call stream into AMBER scripts."
	app.ShortUsage = "<trace.lua>"
	app.Run(run)
}

func run(ctx context.Context) error {
	if flag.NArg() != 1 {
		app.Usage()
		return ErrNoTrace
	}
	path := flag.Arg(0)
	source, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %v", path)
	}
	if *out != "" {
		if err := os.MkdirAll(*out, 0755); err != nil {
			return err
		}
	}

	w := &writer{dir: *out}
	device := sim.New()
	layer := amberscoop.NewLayer(device, amberscoop.NewSession(nil), amberscoop.Options{FirstDrawOnly: *first}, w.write)
	if err := luatrace.Run(ctx, layer, device, string(source)); err != nil {
		return err
	}
	if w.err != nil {
		return w.err
	}
	log.I(ctx, "Wrote %d scripts, %d draws failed", w.written, w.failed)
	return nil
}

type writer struct {
	dir     string
	written int
	failed  int
	err     error
}

func (w *writer) write(ctx context.Context, r amberscoop.DrawResult) {
	if r.Err != nil {
		w.failed++
		log.W(ctx, "Draw skipped: %v", r.Err)
		return
	}
	if w.dir == "" {
		fmt.Print(r.Script)
		w.written++
		return
	}
	path := filepath.Join(w.dir, fmt.Sprintf("draw_%d.amber", w.written))
	if err := os.WriteFile(path, []byte(r.Script), 0644); err != nil {
		if w.err == nil {
			w.err = errors.Wrapf(err, "writing %v", path)
		}
		return
	}
	log.D(ctx, "Wrote %v", path)
	w.written++
}
