/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package testkit provides an in-memory storage.Store and a conformance
// suite that every Store implementation's tests run against.
package testkit

import (
	"fmt"
	"sync"
	"testing"

	"dirpx.dev/fallible/storage"
)

// Store is an in-memory text store for tests. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	files map[string]string
}

// NewStore constructs an empty in-memory store.
func NewStore() *Store {
	return &Store{files: make(map[string]string)}
}

func (s *Store) ReadText(path string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.files[path]
	if !ok {
		return "", fmt.Errorf("testkit: read %s: %w", path, storage.ErrNotFound)
	}
	return text, nil
}

func (s *Store) WriteText(path string, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = text
	return nil
}

// NewStoreFn constructs a fresh, empty Store instance for a test.
// The returned Store MUST be isolated from other tests.
type NewStoreFn func(t *testing.T) storage.Store

// RunStoreConformance exercises the Store contract against a constructor.
func RunStoreConformance(t *testing.T, newStore NewStoreFn) {
	t.Helper()

	t.Run("WriteReadRoundTrip", func(t *testing.T) {
		st := newStore(t)
		want := "debug=true\nport=3000\n"

		if err := st.WriteText("conf/app.txt", want); err != nil {
			t.Fatalf("WriteText failed: %v", err)
		}
		got, err := st.ReadText("conf/app.txt")
		if err != nil {
			t.Fatalf("ReadText failed: %v", err)
		}
		if got != want {
			t.Fatalf("ReadText mismatch: got %q want %q", got, want)
		}
	})

	t.Run("ReadAbsentIsNotFound", func(t *testing.T) {
		st := newStore(t)
		_, err := st.ReadText("nope.txt")
		if err == nil {
			t.Fatal("ReadText on absent path must fail")
		}
		if !storage.IsNotFound(err) {
			t.Fatalf("absent path must wrap ErrNotFound, got %v", err)
		}
	})

	t.Run("WriteReplaces", func(t *testing.T) {
		st := newStore(t)
		if err := st.WriteText("x.txt", "one"); err != nil {
			t.Fatalf("WriteText failed: %v", err)
		}
		if err := st.WriteText("x.txt", "two"); err != nil {
			t.Fatalf("WriteText failed: %v", err)
		}
		got, err := st.ReadText("x.txt")
		if err != nil {
			t.Fatalf("ReadText failed: %v", err)
		}
		if got != "two" {
			t.Fatalf("WriteText must replace contents, got %q", got)
		}
	})
}
