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
	"dirpx.dev/fallible/kind"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the library-level default HTTP status
// for the given kind. This affects the fallback value used when
// no reason-specific rule or override is found.
func WithHTTPDefault(k kind.Kind, http int) Option {
	return func(b *builder) { b.httpDefaults[k] = http }
}

// WithGRPCDefault sets or replaces the library-level default gRPC status
// for the given kind. This affects the fallback value used when
// no reason-specific rule or override is found.
func WithGRPCDefault(k kind.Kind, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[k] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for the given kind.
// Overrides take precedence over defaults and over per-reason rules
// for that kind.
func WithHTTPOverride(k kind.Kind, http int) Option {
	return func(b *builder) { b.httpOverride[k] = http }
}

// WithGRPCOverride registers an exact gRPC override for the given kind.
// Overrides take precedence over defaults and over per-reason rules
// for that kind.
func WithGRPCOverride(k kind.Kind, grpc int) Option {
	return func(b *builder) { b.grpcOverride[k] = grpc }
}

// WithHTTPReason adds an HTTP rule for the given kind that applies when the
// failure's reason sub-classification matches exactly.
func WithHTTPReason(k kind.Kind, reason string, http int) Option {
	return func(b *builder) { b.httpReasons[k] = append(b.httpReasons[k], reasonRule{reason, http}) }
}

// WithGRPCReason adds a gRPC rule for the given kind that applies when the
// failure's reason sub-classification matches exactly.
func WithGRPCReason(k kind.Kind, reason string, grpc int) Option {
	return func(b *builder) { b.grpcReasons[k] = append(b.grpcReasons[k], reasonRule{reason, grpc}) }
}
