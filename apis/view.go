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

// ErrorView is a minimal, serializable representation of a taxonomy error.
//
// This is *not* the concrete error type used internally — it is the shape
// that we are comfortable exposing over the wire or logging. Keeping it here
// (in apis) allows both HTTP and gRPC adapters to share the same struct.
type ErrorView struct {
	// Kind is the canonical failure category, e.g. "io", "parse_float".
	//
	// Implementations SHOULD store only canonical kind values here.
	Kind string `json:"kind"`

	// Reason is the more specific sub-classification, currently populated
	// only for the domain kind, e.g. "division_by_zero".
	//
	// It MAY be empty when the kind needs no refinement.
	Reason string `json:"reason,omitempty"`

	// Message is an optional human-friendly message.
	Message string `json:"message,omitempty"`

	// Cause is the originating failure's description, verbatim.
	//
	// It MAY be empty when the error has no distinct underlying cause.
	Cause string `json:"cause,omitempty"`
}
