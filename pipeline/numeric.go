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

package pipeline

import (
	"strconv"
	"strings"

	"dirpx.dev/fallible/mathx"
	"dirpx.dev/fallible/storage"
)

// Divisor is the fixed constant the numeric pipeline's final division uses.
const Divisor = 10.0

// Numeric runs the canonical four-link pipeline:
//
//	read file text -> parse as float -> square root -> divide by Divisor
//
// Any link's failure aborts the remaining links and surfaces as one taxonomy
// error: an absent file yields kind.IO, malformed text kind.ParseFloat, and
// a negative value kind.Domain — with the divide step never executing.
func Numeric(store storage.Store, path string) (float64, error) {
	text, err := store.ReadText(path)
	x, err := Then(text, err, func(s string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	})
	root, err := Then(x, err, mathx.Sqrt)
	return Then(root, err, func(r float64) (float64, error) {
		return mathx.Divide(r, Divisor)
	})
}
