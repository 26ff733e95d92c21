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

package kind

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Kind is the canonical, validated representation of a failure category.
//
// Unlike open-ended code registries, the kind space is *closed*: the taxonomy
// knows exactly which categories exist (see kinds.go), and every failure that
// crosses into the taxonomy must land on exactly one of them. Because of that,
// validation here is membership-based rather than grammar-based.
//
// IMPORTANT: The empty kind ("") is NOT allowed. Every taxonomy error MUST
// carry a non-empty, known kind.
type Kind string

var (
	// ErrKindUnknown is returned when a value does not name one of the
	// taxonomy's kinds.
	//
	// Having a dedicated sentinel error makes it easy for callers and tests
	// to detect "this is about an unknown category" vs some other failure.
	ErrKindUnknown = errors.New("fallible: unknown kind")
)

// Ensure Kind implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Lookup takes a user-provided string, normalizes it, and resolves it against
// the closed kind set. On success it returns the canonical Kind value.
func Lookup(s string) (Kind, error) {
	k := Kind(Normalize(s))
	if err := Validate(k); err != nil {
		return "", err
	}
	return k, nil
}

// MustLookup is the panic-on-error variant of Lookup. It is useful for
// declaring package-level values in init() or var blocks.
func MustLookup(s string) Kind {
	k, err := Lookup(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical kind form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' with '_'.
//
// It does NOT guarantee that the result names a known kind — callers should
// still call Validate/Lookup after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Kind is a member of the taxonomy.
// The empty kind ("") is considered invalid.
func Validate(k Kind) error {
	if _, ok := members[k]; !ok {
		return ErrKindUnknown
	}
	return nil
}

// String returns the canonical string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and resolves the provided text before assigning.
func (k *Kind) UnmarshalText(text []byte) error {
	// We copy into a buffer to avoid changing the input slice.
	s := string(bytes.TrimSpace(text))
	parsed, err := Lookup(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
