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

package fault_test

import (
	"fmt"
	"testing"

	"github.com/NeoTim/graphicsfuzz/core/fault"
	"github.com/pkg/errors"
)

const (
	errorMessage = "Some message"
	anError      = fault.Const(errorMessage)
	anotherError = fault.Const("another")
)

func TestFrom(t *testing.T) {
	if err := fault.From(nil); err != nil {
		t.Errorf("fault.From(nil) returned %v, expected nil", err)
	}
	if err := fault.From(anError); err != anError {
		t.Errorf("fault.From(anError) returned a different object")
	}
	if err := fault.From(fmt.Errorf("Format %s", "error")); err.Error() != "Format error" {
		t.Errorf("fault.From modified a formatted error, got %q", err)
	}
	if err := fault.From(0); err != fault.NotAnError {
		t.Errorf("fault.From of a non error type returned %v", err)
	}
	if anError.Error() != errorMessage {
		t.Errorf("Const has the wrong string form, expected %q got %q", errorMessage, anError)
	}
}

func TestList(t *testing.T) {
	list := fault.List{}
	if list.First() != nil || list.Err() != nil {
		t.Errorf("Empty list did not report nil")
	}
	list.Collect(nil)
	if len(list) != 0 {
		t.Errorf("Collecting nil grew the list")
	}
	list.Collect(anError)
	if list.Err() != anError {
		t.Errorf("Single entry list returned %v from Err", list.Err())
	}
	list.Collect(anotherError)
	if list.First() != anError {
		t.Errorf("First returned %v, expected %v", list.First(), anError)
	}
	if got, expect := list.Err().Error(), errorMessage+"\nanother"; got != expect {
		t.Errorf("Err returned %q, expected %q", got, expect)
	}
	wrapped := fault.List{errors.Wrap(anotherError, "step 2"), anError}
	if cause := errors.Cause(wrapped.Err()); cause != anotherError {
		t.Errorf("Cause of a list returned %v, expected %v", cause, anotherError)
	}
}
