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

package assert_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/NeoTim/graphicsfuzz/core/assert"
	"github.com/pkg/errors"
)

type recorder struct{ errors, logs []string }

func (r *recorder) Fatal(args ...interface{}) { panic(fmt.Sprint(args...)) }
func (r *recorder) Error(args ...interface{}) { r.errors = append(r.errors, fmt.Sprint(args...)) }
func (r *recorder) Log(args ...interface{})   { r.logs = append(r.logs, fmt.Sprint(args...)) }

func TestPassingAssertionsAreSilent(t *testing.T) {
	r := &recorder{}
	a := assert.To(r)
	a.For("value").That(3).Equals(3)
	a.For("nil").That(nil).IsNil()
	a.For("deep").That([]int{1, 2}).DeepEquals([]int{1, 2})
	a.For("string").ThatString("abc").Contains("b")
	a.For("prefix").ThatString([]byte("abc")).HasPrefix("ab")
	a.For("slice").ThatSlice([]string{"a", "b"}).Equals([]string{"a", "b"})
	a.For("bool").ThatBoolean(true).IsTrue()
	a.For("err").ThatError(nil).Succeeded()
	if len(r.errors) != 0 {
		t.Errorf("Passing assertions reported errors: %v", r.errors)
	}
}

func TestFailingAssertionsReport(t *testing.T) {
	r := &recorder{}
	a := assert.To(r)
	a.For("value %d", 1).That(3).Equals(4)
	a.For("string").ThatString("abc").Equals("abd")
	a.For("slice").ThatSlice([]int{1}).Equals([]int{1, 2})
	a.For("err").ThatError(nil).Failed()
	if len(r.errors) != 4 {
		t.Fatalf("Expected 4 failures, got %d: %v", len(r.errors), r.errors)
	}
	if !strings.HasPrefix(r.errors[0], "Error:value 1") {
		t.Errorf("Failure does not start with the title: %q", r.errors[0])
	}
	if !strings.Contains(r.errors[1], "Differs") {
		t.Errorf("String failure does not describe the difference: %q", r.errors[1])
	}
}

type typed struct{ n int }

func (e typed) Error() string { return fmt.Sprint("typed ", e.n) }

func TestErrorCauses(t *testing.T) {
	r := &recorder{}
	a := assert.To(r)
	cause := typed{1}
	err := errors.Wrap(cause, "wrapped")
	a.For("cause").ThatError(err).HasCause(cause)
	a.For("type").ThatError(err).HasCauseOfType(typed{})
	a.For("message").ThatError(err).HasMessage("wrapped: typed 1")
	if len(r.errors) != 0 {
		t.Errorf("Cause assertions reported errors: %v", r.errors)
	}
	a.For("wrong cause").ThatError(err).HasCause(typed{2})
	if len(r.errors) != 1 {
		t.Errorf("Expected a single failure, got %v", r.errors)
	}
}
