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

package storage

import "errors"

var (
	// ErrNotFound reports that the requested path does not exist.
	ErrNotFound = errors.New("storage: not found")

	// ErrUnreadable reports a storage failure other than absence.
	ErrUnreadable = errors.New("storage: unreadable")
)

// IsNotFound reports whether err denotes an absent path. It survives
// conversion into the taxonomy, since conversion keeps the storage error in
// the cause chain.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
