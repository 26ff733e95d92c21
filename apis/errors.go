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

package apis

// KindedError represents an error classified into a well-defined,
// machine-readable failure *kind*.
//
// A kind denotes the failure's category:
//   - "io"          — the storage layer failed,
//   - "parse"       — text did not match the integer grammar,
//   - "parse_float" — text did not match the floating-point grammar,
//   - "domain"      — a mathematical precondition was violated.
//
// Kinds are stable and enumerable. They are the primary value that
// higher-level adapters (HTTP, gRPC) use to decide which status to return.
//
// Implementations are expected to return a canonical kind string — i.e.
// normalized to the format enforced by fallible/kind (lowercase,
// underscores). Adapters should treat unknown or empty kinds as internal
// errors at the boundary.
type KindedError interface {
	error

	// ErrorKind returns the machine-readable failure kind.
	//
	// The returned value MUST be non-empty and MUST already be a member of
	// the fallible/kind set. Callers should not try to "fix" or "guess" the
	// value here.
	ErrorKind() string
}

// WrappedError represents an error that exposes its underlying cause through
// the standard Unwrap convention.
//
// Adapters use this to embed the originating failure's description in a wire
// payload without importing the concrete error type. Implementations SHOULD
// return the direct, immediate cause, or nil when there is none.
type WrappedError interface {
	error

	// Unwrap returns the underlying error that triggered this error, if any.
	// May return nil.
	Unwrap() error
}
