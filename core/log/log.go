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

// Package log provides context-carried logging. A context holds the handler,
// the severity filter, a tag and a trace of entered scopes; the package level
// functions D, I, W, E and F log through whatever the context carries.
package log

import (
	"context"
	"fmt"
	"time"
)

// Logger is a snapshot of the logging state held by a context.
type Logger struct {
	handler Handler
	filter  Filter
	clock   Clock
	tag     string
	trace   []string
}

// From returns a new Logger from the context ctx.
func From(ctx context.Context) *Logger {
	return &Logger{
		handler: GetHandler(ctx),
		filter:  GetFilter(ctx),
		clock:   GetClock(ctx),
		tag:     GetTag(ctx),
		trace:   GetTrace(ctx),
	}
}

// V logs a verbose message to the logging target.
func V(ctx context.Context, fmt string, args ...interface{}) { From(ctx).Logf(Verbose, fmt, args...) }

// D logs a debug message to the logging target.
func D(ctx context.Context, fmt string, args ...interface{}) { From(ctx).Logf(Debug, fmt, args...) }

// I logs a info message to the logging target.
func I(ctx context.Context, fmt string, args ...interface{}) { From(ctx).Logf(Info, fmt, args...) }

// W logs a warning message to the logging target.
func W(ctx context.Context, fmt string, args ...interface{}) { From(ctx).Logf(Warning, fmt, args...) }

// E logs a error message to the logging target.
func E(ctx context.Context, fmt string, args ...interface{}) { From(ctx).Logf(Error, fmt, args...) }

// F logs a fatal message to the logging target.
func F(ctx context.Context, fmt string, args ...interface{}) { From(ctx).Logf(Fatal, fmt, args...) }

// Logf logs a printf-style message at severity s to the logging target.
func (l *Logger) Logf(s Severity, text string, args ...interface{}) {
	if l.handler == nil {
		return
	}
	if l.filter != nil && !l.filter.ShowSeverity(s) {
		return
	}
	l.handler.Handle(l.Messagef(s, text, args...))
}

// Messagef returns a new Message with the given severity and text.
func (l *Logger) Messagef(s Severity, text string, args ...interface{}) *Message {
	if len(args) > 0 {
		text = fmt.Sprintf(text, args...)
	}
	var t time.Time
	if l.clock != nil {
		t = l.clock.Time()
	} else {
		t = time.Now()
	}
	return &Message{
		Text:     text,
		Time:     t,
		Severity: s,
		Tag:      l.tag,
		Trace:    l.trace,
	}
}
