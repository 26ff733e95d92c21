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

// Package pipeline composes sequences of fallible steps into a single
// fallible operation with short-circuit, fail-fast semantics.
//
// Evaluation is strictly sequential and left-to-right. The first failing
// step stops the chain: no later step executes, and the failure — converted
// through the conversion registry — becomes the result of the whole chain.
// On full success the chain's result is the final step's success value.
package pipeline

import (
	"dirpx.dev/fallible/convert"
)

// Step is a single fallible link over a value of type T. Steps must confine
// their failures to values the conversion registry can classify; they never
// panic for modeled conditions.
type Step[T any] func(T) (T, error)

// Chain composes steps into one Step with short-circuit semantics.
//
// The identity holds for every length: zero steps return the input
// unchanged, one step behaves exactly like that step. The first failure is
// converted into the taxonomy and returned; subsequent steps never run.
func Chain[T any](steps ...Step[T]) Step[T] {
	return func(v T) (T, error) {
		for _, step := range steps {
			next, err := step(v)
			if err != nil {
				var zero T
				return zero, convert.From(err)
			}
			v = next
		}
		return v, nil
	}
}

// Then is the result-bind combinator for heterogeneous links.
//
// It threads a prior step's (value, error) pair into the next step f:
// when err is non-nil, f is not called and the converted failure propagates;
// otherwise f consumes the value. Chains of any shape are built by stacking
// Then calls:
//
//	text, err := store.ReadText(path)
//	x, err := pipeline.Then(text, err, parse)
//	y, err := pipeline.Then(x, err, mathx.Sqrt)
func Then[A, B any](v A, err error, f func(A) (B, error)) (B, error) {
	if err != nil {
		var zero B
		return zero, convert.From(err)
	}
	next, err := f(v)
	if err != nil {
		var zero B
		return zero, convert.From(err)
	}
	return next, nil
}
