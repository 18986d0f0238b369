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

package log_test

import (
	"context"
	"testing"
	"time"

	"github.com/NeoTim/graphicsfuzz/core/assert"
	"github.com/NeoTim/graphicsfuzz/core/log"
	"github.com/pkg/errors"
)

var testClock log.Clock

func init() {
	t, err := time.Parse("Mon Jan _2 15:04:05.999 2006", "Mon Jan 22 12:34:56.789 2000")
	if err != nil {
		panic(err)
	}
	testClock = log.FixedClock(t)
}

type testMessage struct {
	msg      string
	args     []interface{}
	severity log.Severity
	tag      string
	enter    string

	raw      string
	brief    string
	normal   string
	detailed string
}

func (m testMessage) send(h log.Handler) {
	ctx := context.Background()
	ctx = log.PutHandler(ctx, h)
	ctx = log.PutClock(ctx, testClock)
	if m.tag != "" {
		ctx = log.PutTag(ctx, m.tag)
	}
	if m.enter != "" {
		ctx = log.Enter(ctx, m.enter)
	}
	log.From(ctx).Logf(m.severity, m.msg, m.args...)
}

var testMessages = []testMessage{
	{
		msg:      "plain warning",
		severity: log.Warning,

		raw:      "plain warning",
		brief:    "W: plain warning",
		normal:   "12:34:56.789 W: plain warning",
		detailed: "12:34:56.789 Warning: plain warning",
	}, {
		msg:      "draw %d skipped",
		args:     []interface{}{3},
		severity: log.Info,
		tag:      "replay",
		enter:    "QueueSubmit",

		raw:      "draw 3 skipped",
		brief:    "I: draw 3 skipped",
		normal:   "12:34:56.789 I: [QueueSubmit] [replay] draw 3 skipped",
		detailed: "12:34:56.789 Info: [QueueSubmit] [replay] draw 3 skipped",
	},
}

func TestStyles(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range testMessages {
		for _, s := range []struct {
			style    log.Style
			expected string
		}{
			{log.Raw, test.raw},
			{log.Brief, test.brief},
			{log.Normal, test.normal},
			{log.Detailed, test.detailed},
		} {
			w, buf := log.Buffer()
			test.send(s.style.Handler(w))
			assert.For(ctx, "%s(%s)", s.style, test.msg).ThatString(buf.String()).Equals(s.expected)
		}
	}
}

func TestFilter(t *testing.T) {
	ctx := log.Testing(t)
	w, buf := log.Buffer()
	c := log.PutHandler(context.Background(), log.Raw.Handler(w))
	c = log.PutFilter(c, log.SeverityFilter(log.Warning))
	log.I(c, "hidden")
	log.W(c, "shown")
	log.E(c, "also shown")
	assert.For(ctx, "filtered").ThatString(buf.String()).Equals("shown\nalso shown")
}

func TestSeveritySet(t *testing.T) {
	ctx := log.Testing(t)
	var s log.Severity
	assert.For(ctx, "set").ThatError(s.Set("warning")).Succeeded()
	assert.For(ctx, "severity").That(s).Equals(log.Warning)
	assert.For(ctx, "unknown").ThatError(s.Set("loud")).Failed()

	var st log.Style
	assert.For(ctx, "style").ThatError(st.Set("brief")).Succeeded()
	assert.For(ctx, "style name").ThatString(st.String()).Equals("brief")
}

func TestErr(t *testing.T) {
	ctx := log.Testing(t)
	cause := errors.New("no mapping")
	err := log.Errf(log.Enter(ctx, "Emit"), cause, "draw %d", 2)
	assert.For(ctx, "cause").ThatError(err).HasCause(cause)
	assert.For(ctx, "message").ThatError(err).HasMessage("[Emit] draw 2\n   Cause: no mapping")
}
