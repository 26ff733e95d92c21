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

// The taxonomy's failure categories.
//
// These four kinds are the complete set. Every failure observed by the
// pipeline or the config loader is converted to exactly one of them at the
// boundary where it first appears; downstream code branches on Kind, never on
// the foreign error types behind it.
const (
	// IO indicates a storage-layer failure: file missing, unreadable,
	// permission denied. The original storage error is carried as the cause
	// so callers can still distinguish absence from other read failures.
	IO Kind = "io"

	// Parse indicates that text did not match the expected integer grammar.
	// Raised for malformed integral fields such as the config port.
	Parse Kind = "parse"

	// ParseFloat indicates that text did not match the expected
	// floating-point grammar. Raised by the numeric pipeline's parse link.
	ParseFloat Kind = "parse_float"

	// Domain indicates that an operation's mathematical precondition was
	// violated (divide-by-zero, negative square root). The cause is always a
	// *mathx.DomainError naming the exact precondition.
	Domain Kind = "domain"
)

// members is the closed membership set used by Validate.
var members = map[Kind]struct{}{
	IO:         {},
	Parse:      {},
	ParseFloat: {},
	Domain:     {},
}

// All returns the kinds in a stable order.
//
// The slice is freshly allocated on each call so that callers cannot mutate
// package state.
func All() []Kind {
	return []Kind{IO, Parse, ParseFloat, Domain}
}
