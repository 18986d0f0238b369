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

package amberscoop

import (
	"context"
	"sync"

	"github.com/NeoTim/graphicsfuzz/core/log"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/amber"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/codec"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/command"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/replay"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/spirv"
	"github.com/NeoTim/graphicsfuzz/layers/amberscoop/state"
	"github.com/NeoTim/graphicsfuzz/layers/vulkan"
)

// DrawResult is the outcome of emitting one draw call. Exactly one of Script
// and Err is set.
type DrawResult struct {
	CommandBuffer vulkan.VkCommandBuffer
	Draw          replay.Draw
	Script        string
	Err           error
}

// Sink receives the result of every draw the layer emits.
type Sink func(ctx context.Context, result DrawResult)

// Options controls what a Layer delivers.
type Options struct {
	// FirstDrawOnly stops delivery after the first script is emitted.
	FirstDrawOnly bool
}

// Session holds everything captured from one call stream.
type Session struct {
	Store    *state.Store
	Recorder *command.Recorder
	Codec    codec.Codec
	Emitter  amber.Emitter
	Replayer replay.Replayer
}

// NewSession returns an empty session whose scripts embed shaders
// disassembled by dis. A nil dis uses spirv.Text.
func NewSession(dis spirv.Disassembler) *Session {
	if dis == nil {
		dis = spirv.Text{}
	}
	store := state.NewStore()
	c := codec.Codec{Store: store}
	return &Session{
		Store:    store,
		Recorder: command.NewRecorder(),
		Codec:    c,
		Emitter:  amber.Emitter{Store: store, Codec: c, Disassembler: dis},
		Replayer: replay.Replayer{Copies: store.Copies},
	}
}

// Submit replays the logs of every command buffer in submits, in submission
// order, and returns one result per draw. Each draw is emitted as it is
// reached, so it sees only the copies recorded before it. A failing draw does not stop the
// ones after it.
func (s *Session) Submit(ctx context.Context, submits []vulkan.VkSubmitInfo) []DrawResult {
	results := []DrawResult{}
	for _, submit := range submits {
		for _, cb := range submit.CommandBuffers {
			cmds, ok := s.Recorder.Log(cb)
			if !ok {
				log.D(ctx, "Command buffer 0x%x has no recorded commands", cb)
				continue
			}
			s.Replayer.Walk(ctx, cb, cmds, func(draw replay.Draw) {
				script, err := s.Emitter.Emit(ctx, draw)
				if err != nil {
					err = log.Errf(ctx, err, "%v %d of command buffer 0x%x", draw.Kind, draw.Index, cb)
				}
				results = append(results, DrawResult{CommandBuffer: cb, Draw: draw, Script: script, Err: err})
			})
		}
	}
	return results
}

// delivery forwards results to a sink, honouring Options.
type delivery struct {
	mu      sync.Mutex
	sink    Sink
	options Options
	done    bool
}

func (d *delivery) deliver(ctx context.Context, results []DrawResult) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, r := range results {
		if d.done {
			log.D(ctx, "Dropping %v %d, a script was already delivered", r.Draw.Kind, r.Draw.Index)
			continue
		}
		if d.sink != nil {
			d.sink(ctx, r)
		}
		if r.Err == nil && d.options.FirstDrawOnly {
			d.done = true
		}
	}
}
