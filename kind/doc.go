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

// Package kind defines the closed set of failure categories for the fallible
// taxonomy, together with normalization and validation for them.
//
// A "kind" is the top-level, machine-readable classification of a failure:
// "io", "parse", "parse_float" or "domain". Kinds are meant to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON payloads and for lookup in status mappers.
//
// IMPORTANT: The empty kind ("") is NOT allowed, and no kinds beyond the four
// declared in this package exist. Callers should branch on Kind values rather
// than matching error strings.
package kind
