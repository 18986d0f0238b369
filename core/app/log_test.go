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
	"testing"

	"github.com/NeoTim/graphicsfuzz/core/assert"
	"github.com/NeoTim/graphicsfuzz/core/log"
)

func TestLogFlags(t *testing.T) {
	ctx := log.Testing(t)
	f := logDefaults()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	f.Register(set)
	err := set.Parse([]string{"-log-level", "warning", "-log-style", "raw"})
	assert.For(ctx, "parse").ThatError(err).Succeeded()
	assert.For(ctx, "level").That(f.Level).Equals(log.Warning)
	assert.For(ctx, "style").ThatString(f.Style.String()).Equals("raw")

	c := f.Context(context.Background())
	filter := log.GetFilter(c)
	assert.For(ctx, "info shown").ThatBoolean(filter.ShowSeverity(log.Info)).IsFalse()
	assert.For(ctx, "error shown").ThatBoolean(filter.ShowSeverity(log.Error)).IsTrue()
	assert.For(ctx, "handler").That(log.GetHandler(c)).IsNotNil()
}
