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

// Package storage defines the text-storage collaborator consumed by the
// pipeline and the config loader, plus the sentinel errors implementations
// share.
package storage

// Store is a minimal line-of-text storage interface.
//
// Contract:
//   - ReadText MUST return an error wrapping ErrNotFound when the path is absent.
//   - ReadText MUST release any underlying handle on every exit path,
//     including failures, before returning.
//   - Implementations MUST be safe for concurrent reads.
//   - WriteText replaces the full contents at path; it is used around example
//     invocations and tests, not by the core read path.
type Store interface {
	ReadText(path string) (string, error)
	WriteText(path string, text string) error
}
