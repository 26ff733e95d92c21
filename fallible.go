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

package fallible

import (
	"errors"
	"fmt"

	"dirpx.dev/fallible/kind"
)

// Error is the canonical taxonomy error for fallible.
//
// It carries:
//   - Kind: the failure category (required, one of the four taxonomy kinds);
//   - Message: human-oriented description of what went wrong;
//   - Cause: the original foreign failure, wrapped for unwrapping/debugging.
//
// Exactly one Kind is active per instance, and the rendered description
// (see Error) names the category and embeds the cause's own description
// verbatim, so a caller never needs to re-inspect the foreign error value
// to explain the failure.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	// Kind is the primary classification of the failure, e.g. kind.IO or
	// kind.Domain. Must be a member of the fallible/kind set.
	Kind kind.Kind

	// Message is a human-readable explanation. This is what should end up
	// in logs or in the "message" field of an error response.
	Message string

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for reconstructing the full description.
	Cause error
}

// E is a convenience constructor for Error.
//
// Usage:
//
//	return fallible.E(kind.IO, "storage i/o failed",
//	    fallible.WithCauseOption(err),
//	)
//
// It always returns a *new* Error and applies all provided options in order.
func E(k kind.Kind, msg string, opts ...Option) *Error {
	e := &Error{Kind: k, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<kind>: <message>
//
// or, when a cause is present:
//
//	<kind>: <message>: <cause>
//
// The cause's description is embedded verbatim, which keeps the rendered
// string sufficient on its own: the category is named and the originating
// failure remains readable without unwrapping.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorKind returns the machine-readable failure category.
// It implements apis.KindedError.
func (e *Error) ErrorKind() string { return string(e.Kind) }

// WithMessage returns a shallow copy of e with a replaced human message.
// Useful when you want to keep the Kind/Cause but present the message in a
// different context.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// IsKind reports whether err is (or wraps) a *Error with the given kind.
func IsKind(err error, k kind.Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == k
}

// KindOf returns the taxonomy kind carried by err, or "" if err does not
// carry one.
func KindOf(err error) kind.Kind {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Kind
}
