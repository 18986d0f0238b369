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

// Package state holds the resource metadata recorded at creation time, the
// host-visible memory mappings, and the buffer copies observed in command
// buffers. Everything stored is a private copy of the caller's data.
package state

import (
	"fmt"
	"sync"
)

// ResourceNotRecorded is returned when a handle is used before its creation
// was observed.
type ResourceNotRecorded struct {
	Kind   string
	Handle uint64
}

func (e ResourceNotRecorded) Error() string {
	return fmt.Sprintf("%s 0x%x was not recorded", e.Kind, e.Handle)
}

// Table maps the handles of one resource kind to their recorded values.
type Table[K ~uint64, V any] struct {
	kind    string
	mu      sync.RWMutex
	entries map[K]V
}

// NewTable returns an empty table for resources of the named kind.
func NewTable[K ~uint64, V any](kind string) *Table[K, V] {
	return &Table[K, V]{kind: kind, entries: map[K]V{}}
}

// Put records value for handle, replacing any earlier value. Handles can be
// reused by the driver once the resource they named is destroyed.
func (t *Table[K, V]) Put(handle K, value V) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[handle] = value
}

// Lookup returns the value recorded for handle.
func (t *Table[K, V]) Lookup(handle K) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.entries[handle]
	return v, ok
}

// Get returns the value recorded for handle, or ResourceNotRecorded.
func (t *Table[K, V]) Get(handle K) (V, error) {
	v, ok := t.Lookup(handle)
	if !ok {
		return v, ResourceNotRecorded{Kind: t.kind, Handle: uint64(handle)}
	}
	return v, nil
}

// Delete forgets handle.
func (t *Table[K, V]) Delete(handle K) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, handle)
}

// Len returns the number of recorded handles.
func (t *Table[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
