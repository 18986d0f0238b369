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

package app

import (
	"context"
	"flag"
	"os"

	"github.com/NeoTim/graphicsfuzz/core/log"
	"golang.org/x/term"
)

// LogFlags holds the command line controlled logging options.
type LogFlags struct {
	Level log.Severity
	Style log.Style
	File  string
}

// logDefaults picks the normal style for interactive terminals and the brief
// style when stderr is redirected.
func logDefaults() *LogFlags {
	f := &LogFlags{Level: log.Info, Style: log.Brief}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		f.Style = log.Normal
	}
	return f
}

// Register adds the logging flags to set.
func (f *LogFlags) Register(set *flag.FlagSet) {
	set.Var(&f.Level, "log-level", "the minimum severity to log (verbose, debug, info, warning, error, fatal)")
	set.Var(&f.Style, "log-style", "the log message style (raw, brief, normal, detailed)")
	set.StringVar(&f.File, "log-file", "", "also write log messages to this file")
}

// Context returns ctx with a handler and filter built from the flags.
func (f *LogFlags) Context(ctx context.Context) context.Context {
	w := log.Stderr()
	var fileErr error
	if f.File != "" {
		file, err := os.Create(f.File)
		if err == nil {
			stderr, fw := w, log.To(file)
			w = func(text string, s log.Severity) {
				stderr(text, s)
				fw(text, s)
			}
		}
		fileErr = err
	}
	ctx = log.PutHandler(ctx, log.Synchronized(f.Style.Handler(w)))
	ctx = log.PutFilter(ctx, log.SeverityFilter(f.Level))
	if fileErr != nil {
		log.E(ctx, "Failed to create log file %v: %v", f.File, fileErr)
	}
	return ctx
}
