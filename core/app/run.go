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

// Package app holds the start up and shut down logic shared by the command
// line tools.
package app

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/NeoTim/graphicsfuzz/core/log"
)

// Task is the signature of an application main function.
type Task func(ctx context.Context) error

// ExitCode can be panicked to exit the application with a specific code.
type ExitCode int

const (
	// SuccessExit is the exit code for a clean run.
	SuccessExit = ExitCode(0)
	// FatalExit is the exit code when the main task fails.
	FatalExit = ExitCode(1)
	// UsageExit is the exit code for a command line parsing failure.
	UsageExit = ExitCode(2)
)

var (
	// Name is the full name of the application
	Name string
	// ExitFuncForTesting can be set to change the behaviour when the
	// application exits. It defaults to os.Exit.
	ExitFuncForTesting = os.Exit
	// ShortHelp should be set to add a help message to the usage text.
	ShortHelp = ""
	// ShortUsage is usage text for the additional non-flag arguments.
	ShortUsage = ""
)

func init() {
	Name = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
}

// Run parses the command line, builds the root logging context, and runs main
// with a context that is cancelled on interrupt. A failing main is logged and
// turns into a non zero exit code.
func Run(main Task) {
	defer func() {
		switch cause := recover().(type) {
		case nil:
		case ExitCode:
			ExitFuncForTesting(int(cause))
		default:
			panic(cause)
		}
	}()

	flags := logDefaults()
	flags.Register(flag.CommandLine)
	flag.CommandLine.Usage = Usage
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx = flags.Context(ctx)
	defer log.GetHandler(ctx).Close()

	if err := main(ctx); err != nil {
		log.E(ctx, "Main failed\nError: %v", err)
		panic(FatalExit)
	}
}

// Usage prints the short help and the flag defaults to stderr.
func Usage() {
	out := flag.CommandLine.Output()
	if ShortHelp != "" {
		fmt.Fprintf(out, "%s: %s\n", Name, ShortHelp)
	}
	fmt.Fprintf(out, "Usage: %s [flags] %s\n", Name, ShortUsage)
	flag.PrintDefaults()
}
