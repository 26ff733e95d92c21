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
	"fmt"
	"strings"

	"dirpx.dev/fallible/apis"
	"dirpx.dev/fallible/kind"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained mapper instance — no shared
// references to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, reason rules).
//  3. Normalize and validate every rule's kind and reason.
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate invalid kinds or reasons in
// the supplied rules.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder; no pre-seeded state is assumed.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options (defaults, overrides, reason rules).
	for _, opt := range opts {
		opt(b)
	}

	// (3) Compile per-kind HTTP reason rules into flat lookup maps.
	// Each rule's kind and reason are validated before insertion.
	httpReason := make(map[kind.Kind]map[string]int, len(b.httpReasons))
	for k, rules := range b.httpReasons {
		if len(rules) == 0 {
			continue
		}
		if err := kind.Validate(k); err != nil {
			return nil, fmt.Errorf("mapper: HTTP reason rule for unknown kind %q: %w", k, err)
		}
		m := make(map[string]int, len(rules))
		for _, r := range rules {
			reason, err := normalizeReason(r.reason)
			if err != nil {
				return nil, fmt.Errorf("mapper: invalid HTTP reason %q for kind %q: %w", r.reason, k, err)
			}
			m[reason] = r.val
		}
		httpReason[k] = m
	}

	// (4) Compile per-kind gRPC reason rules.
	// Values are stored as int in the builder and converted to codes.Code here.
	grpcReason := make(map[kind.Kind]map[string]codes.Code, len(b.grpcReasons))
	for k, rules := range b.grpcReasons {
		if len(rules) == 0 {
			continue
		}
		if err := kind.Validate(k); err != nil {
			return nil, fmt.Errorf("mapper: gRPC reason rule for unknown kind %q: %w", k, err)
		}
		m := make(map[string]codes.Code, len(rules))
		for _, r := range rules {
			reason, err := normalizeReason(r.reason)
			if err != nil {
				return nil, fmt.Errorf("mapper: invalid gRPC reason %q for kind %q: %w", r.reason, k, err)
			}
			m[reason] = codes.Code(r.val)
		}
		grpcReason[k] = m
	}

	// (5) Freeze everything into a read-only snapshot.
	// Each map is freshly allocated.
	m := &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		httpReason:   httpReason,
		grpcReason:   grpcReason,

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines per-kind
// defaults, per-kind exact overrides, and per-kind reason rules. Lookups are
// O(1) and safe for concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given failure kind.
	// Used when no reason rule and no override are present.
	httpDefault map[kind.Kind]int

	// grpcDefault holds the base gRPC status for a given failure kind.
	grpcDefault map[kind.Kind]codes.Code

	// httpOverride holds explicit HTTP statuses for specific kinds.
	// These take precedence over both defaults and reason rules.
	httpOverride map[kind.Kind]int

	// grpcOverride holds explicit gRPC statuses for specific kinds.
	grpcOverride map[kind.Kind]codes.Code

	// httpReason stores per-kind maps that resolve HTTP statuses from the
	// failure's reason sub-classification.
	httpReason map[kind.Kind]map[string]int

	// grpcReason stores per-kind maps that resolve gRPC statuses from the
	// failure's reason sub-classification.
	grpcReason map[kind.Kind]map[string]codes.Code

	// fallbackHTTP is used when there is no mapping at all for a kind.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a kind.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given kind and reason.
//
// Resolution order (highest to lowest):
//  1. exact per-kind override (explicitly registered);
//  2. per-kind reason rule;
//  3. per-kind default (library or user overridden);
//  4. hardcoded ultimate fallback (500).
func (m *mapper) HTTPStatus(k kind.Kind, reason string) int {
	// 1. Fast path: exact override for this kind.
	if v, ok := m.httpOverride[k]; ok {
		return v
	}

	// 2. Per-kind reason rule.
	if rules, ok := m.httpReason[k]; ok {
		if v, ok := rules[reason]; ok {
			return v
		}
	}

	// 3. Per-kind default.
	if v, ok := m.httpDefault[k]; ok {
		return v
	}

	// 4. Ultimate fallback: HTTP must never be zero.
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given kind and reason.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
func (m *mapper) GRPCStatus(k kind.Kind, reason string) codes.Code {
	// 1. Exact override.
	if v, ok := m.grpcOverride[k]; ok {
		return v
	}

	// 2. Reason rule for this kind.
	if rules, ok := m.grpcReason[k]; ok {
		if v, ok := rules[reason]; ok {
			return v
		}
	}

	// 3. Default for this kind.
	if v, ok := m.grpcDefault[k]; ok {
		return v
	}

	// 4. Ultimate fallback.
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/gRPC decisions consistent for a single logical failure.
func (m *mapper) Status(k kind.Kind, reason string) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(k, reason),
		GRPC: m.GRPCStatus(k, reason),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular (kind, reason) pair.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, reason, default, or fallback).
//
// Example output:
//
//	kind="domain" reason="division_by_zero"
//	http: source=reason -> 422
//	grpc: source=default -> FAILEDPRECONDITION(9)
//
// source ∈ {override | reason | default | fallback}
func (m *mapper) Explain(k kind.Kind, reason string) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q reason=%q\n", k, reason)
	_, _ = fmt.Fprintln(&b, m.explainHTTP(k, reason))
	_, _ = fmt.Fprintln(&b, m.explainGRPC(k, reason))
	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP formats a line describing how the HTTP status was chosen.
func (m *mapper) explainHTTP(k kind.Kind, reason string) string {
	if v, ok := m.httpOverride[k]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}
	if rules, ok := m.httpReason[k]; ok {
		if v, ok := rules[reason]; ok {
			return fmt.Sprintf("http: source=reason -> %d", v)
		}
	}
	if v, ok := m.httpDefault[k]; ok {
		return fmt.Sprintf("http: source=default -> %d", v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC formats a line describing how the gRPC status was chosen.
func (m *mapper) explainGRPC(k kind.Kind, reason string) string {
	if v, ok := m.grpcOverride[k]; ok {
		return fmt.Sprintf("grpc: source=override -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}
	if rules, ok := m.grpcReason[k]; ok {
		if v, ok := rules[reason]; ok {
			return fmt.Sprintf("grpc: source=reason -> %s(%d)", strings.ToUpper(v.String()), int(v))
		}
	}
	if v, ok := m.grpcDefault[k]; ok {
		return fmt.Sprintf("grpc: source=default -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}
	return fmt.Sprintf("grpc: source=fallback -> %s(%d)", strings.ToUpper(m.fallbackGRPC.String()), int(m.fallbackGRPC))
}

// normalizeReason ensures a reason rule key is canonical and non-empty.
// Reasons follow the same canonical form as kinds: lowercase snake_case.
func normalizeReason(raw string) (string, error) {
	r := kind.Normalize(raw)
	if r == "" {
		return "", fmt.Errorf("empty reason")
	}
	for i := 0; i < len(r); i++ {
		c := r[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return "", fmt.Errorf("invalid character %q", c)
	}
	if r[0] < 'a' || r[0] > 'z' {
		return "", fmt.Errorf("reason must start with a letter")
	}
	return r, nil
}

// freezeHTTP copies an HTTP status map into a fresh allocation.
func freezeHTTP(in map[kind.Kind]int) map[kind.Kind]int {
	out := make(map[kind.Kind]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// freezeGRPC copies a gRPC status map (builder ints) into codes.Code values.
func freezeGRPC(in map[kind.Kind]int) map[kind.Kind]codes.Code {
	out := make(map[kind.Kind]codes.Code, len(in))
	for k, v := range in {
		out[k] = codes.Code(v)
	}
	return out
}
