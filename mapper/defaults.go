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

package mapper

import (
	"net/http"

	"dirpx.dev/fallible/kind"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for the taxonomy
// kinds. These are only defaults: callers are expected to override them at
// the boundary where HTTP is actually produced if a different policy is
// required.
var defaultHTTP = map[kind.Kind]int{
	kind.IO:         http.StatusServiceUnavailable,  // Storage is unreachable or the path is unreadable.
	kind.Parse:      http.StatusBadRequest,          // Input text failed the integer grammar.
	kind.ParseFloat: http.StatusBadRequest,          // Input text failed the floating-point grammar.
	kind.Domain:     http.StatusUnprocessableEntity, // Input was well-formed but violates a precondition.
}

// defaultGRPC defines the library's built-in gRPC mappings for the taxonomy
// kinds, chosen to align with canonical gRPC status semantics.
var defaultGRPC = map[kind.Kind]codes.Code{
	kind.IO:         codes.Unavailable,        // Storage-layer failure; the caller may retry elsewhere.
	kind.Parse:      codes.InvalidArgument,    // Malformed integer input.
	kind.ParseFloat: codes.InvalidArgument,    // Malformed floating-point input.
	kind.Domain:     codes.FailedPrecondition, // Mathematical precondition violated.
}
