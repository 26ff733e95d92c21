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
	"errors"
	"strconv"
	"testing"

	"dirpx.dev/fallible"
	"dirpx.dev/fallible/kind"
	"dirpx.dev/fallible/mathx"
	"dirpx.dev/fallible/storage"
	"dirpx.dev/fallible/storage/testkit"
)

func TestChain_EmptyIsIdentity(t *testing.T) {
	id := Chain[float64]()
	got, err := id(42.5)
	if err != nil {
		t.Fatalf("identity chain: %v", err)
	}
	if got != 42.5 {
		t.Fatalf("identity chain = %v, want 42.5", got)
	}
}

func TestChain_Single(t *testing.T) {
	double := Chain(func(x float64) (float64, error) { return 2 * x, nil })
	got, err := double(3)
	if err != nil {
		t.Fatalf("chain: %v", err)
	}
	if got != 6 {
		t.Fatalf("chain = %v, want 6", got)
	}
}

func TestChain_ComposesInOrder(t *testing.T) {
	p := Chain(
		func(x float64) (float64, error) { return x + 1, nil },
		func(x float64) (float64, error) { return x * 10, nil },
	)
	got, err := p(2)
	if err != nil {
		t.Fatalf("chain: %v", err)
	}
	if got != 30 {
		t.Fatalf("chain = %v, want 30 (steps must run left to right)", got)
	}
}

func TestChain_ShortCircuits(t *testing.T) {
	var ran []int
	step := func(n int, err error) Step[float64] {
		return func(x float64) (float64, error) {
			ran = append(ran, n)
			return x, err
		}
	}
	p := Chain(
		step(1, nil),
		step(2, mathx.ErrNegativeSqrt),
		step(3, nil),
	)
	_, err := p(1)
	if err == nil {
		t.Fatal("chain must fail when a step fails")
	}
	if len(ran) != 2 || ran[0] != 1 || ran[1] != 2 {
		t.Fatalf("steps after the failure must not run, ran = %v", ran)
	}
	if !errors.Is(err, mathx.ErrNegativeSqrt) {
		t.Fatalf("cause lost: %v", err)
	}
}

func TestChain_ConvertsFailures(t *testing.T) {
	p := Chain(func(string) (string, error) {
		_, err := strconv.ParseFloat("bad", 64)
		return "", err
	})
	_, err := p("in")
	var fe *fallible.Error
	if !errors.As(err, &fe) {
		t.Fatalf("chain must surface a taxonomy error, got %T", err)
	}
	if fe.Kind != kind.ParseFloat {
		t.Fatalf("kind = %q, want %q", fe.Kind, kind.ParseFloat)
	}
}

func TestThen_SkipsOnIncomingError(t *testing.T) {
	called := false
	_, err := Then("ignored", mathx.ErrDivisionByZero, func(string) (float64, error) {
		called = true
		return 0, nil
	})
	if called {
		t.Fatal("Then must not invoke f after an upstream failure")
	}
	if !fallible.IsKind(err, kind.Domain) {
		t.Fatalf("incoming failure must be converted, got %v", err)
	}
}

func TestThen_ConvertsOwnFailure(t *testing.T) {
	_, err := Then(-4.0, nil, mathx.Sqrt)
	if !fallible.IsKind(err, kind.Domain) {
		t.Fatalf("want kind.Domain, got %v", err)
	}
	if !errors.Is(err, mathx.ErrNegativeSqrt) {
		t.Fatalf("domain reason lost: %v", err)
	}
}

func seeded(t *testing.T, path, text string) storage.Store {
	t.Helper()
	st := testkit.NewStore()
	if err := st.WriteText(path, text); err != nil {
		t.Fatalf("seed %s: %v", path, err)
	}
	return st
}

func TestNumeric_Success(t *testing.T) {
	st := seeded(t, "value.txt", "100\n")
	got, err := Numeric(st, "value.txt")
	if err != nil {
		t.Fatalf("Numeric: %v", err)
	}
	if got != 1.0 {
		t.Fatalf("Numeric = %v, want 1.0 (sqrt(100)/10)", got)
	}
}

func TestNumeric_TrimsSurroundingSpace(t *testing.T) {
	st := seeded(t, "value.txt", "  400  \n")
	got, err := Numeric(st, "value.txt")
	if err != nil {
		t.Fatalf("Numeric: %v", err)
	}
	if got != 2.0 {
		t.Fatalf("Numeric = %v, want 2.0", got)
	}
}

func TestNumeric_AbsentFile(t *testing.T) {
	_, err := Numeric(testkit.NewStore(), "missing.txt")
	if !fallible.IsKind(err, kind.IO) {
		t.Fatalf("want kind.IO, got %v", err)
	}
	if !storage.IsNotFound(err) {
		t.Fatalf("absence must stay detectable through the chain: %v", err)
	}
}

func TestNumeric_MalformedText(t *testing.T) {
	st := seeded(t, "value.txt", "not a number")
	_, err := Numeric(st, "value.txt")
	if !fallible.IsKind(err, kind.ParseFloat) {
		t.Fatalf("want kind.ParseFloat, got %v", err)
	}
}

func TestNumeric_NegativeValue(t *testing.T) {
	st := seeded(t, "value.txt", "-4")
	_, err := Numeric(st, "value.txt")
	if !fallible.IsKind(err, kind.Domain) {
		t.Fatalf("want kind.Domain, got %v", err)
	}
	if !errors.Is(err, mathx.ErrNegativeSqrt) {
		t.Fatalf("want ErrNegativeSqrt in the chain, got %v", err)
	}
}
