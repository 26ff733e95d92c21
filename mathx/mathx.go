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

// Package mathx provides the taxonomy's fallible numeric operations.
//
// Each operation has an explicit, named failure precondition and is total
// over its contract: every input maps to either a success value or exactly
// one DomainError — never an unmodeled panic. The DomainError reasons form a
// closed set and are constructed only in this package; no other component may
// synthesize them.
package mathx

import (
	"errors"
	"math"
)

// Reason identifies which mathematical precondition was violated.
type Reason string

const (
	// DivisionByZero is raised by Divide when the divisor is zero.
	DivisionByZero Reason = "division_by_zero"

	// NegativeSqrt is raised by Sqrt for negative input.
	NegativeSqrt Reason = "negative_sqrt"

	// Overflow is reserved for operations whose result exceeds the
	// representable range. No current operation raises it, but it is part of
	// the closed reason set and kept for taxonomy stability.
	Overflow Reason = "overflow"
)

// DomainError reports a violated mathematical precondition.
//
// Instances are created only by the operations in this package; callers
// observe them through the sentinel values below or via errors.Is/As after
// conversion into the taxonomy.
type DomainError struct {
	Reason Reason
}

// Sentinel instances, one per reason. Because the reason set is closed,
// errors.Is against these sentinels is the supported way to branch on the
// exact precondition.
var (
	ErrDivisionByZero = &DomainError{Reason: DivisionByZero}
	ErrNegativeSqrt   = &DomainError{Reason: NegativeSqrt}
	ErrOverflow       = &DomainError{Reason: Overflow}
)

func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Reason {
	case DivisionByZero:
		return "division by zero"
	case NegativeSqrt:
		return "negative square root"
	case Overflow:
		return "overflow"
	}
	return string(e.Reason)
}

// Is makes errors.Is match any DomainError with the same reason, so wrapped
// copies still compare equal to the sentinels.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Reason == t.Reason
}

// ReasonOf returns the domain reason carried somewhere in err's chain, if
// any. It is the hook transport mappers use to refine the domain kind.
func ReasonOf(err error) (Reason, bool) {
	var e *DomainError
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Reason, true
}

// ForReason resolves a reason back to its sentinel. Used by transport
// adapters reconstructing a taxonomy error from a wire payload.
func ForReason(r Reason) (*DomainError, bool) {
	switch r {
	case DivisionByZero:
		return ErrDivisionByZero, true
	case NegativeSqrt:
		return ErrNegativeSqrt, true
	case Overflow:
		return ErrOverflow, true
	}
	return nil, false
}

// Divide returns a / b, or ErrDivisionByZero when b == 0.
//
// No other input is rejected: negative, infinite, and NaN results propagate
// as ordinary floating-point values.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Sqrt returns the principal square root of x, or ErrNegativeSqrt when
// x < 0.
func Sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, ErrNegativeSqrt
	}
	return math.Sqrt(x), nil
}
