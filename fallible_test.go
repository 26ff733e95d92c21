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

package fallible

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"dirpx.dev/fallible/kind"
)

func TestError_Basics(t *testing.T) {
	cause := errors.New("open number.txt: no such file or directory")
	e := E(kind.IO, "storage i/o failed",
		WithCauseOption(cause),
	)

	if e.Kind != kind.IO {
		t.Fatal("kind mismatch")
	}
	if e.Cause != cause {
		t.Fatal("cause missing")
	}

	s := e.Error()
	wantSubs := []string{"io", "storage i/o failed", cause.Error()}
	for _, sub := range wantSubs {
		if !strings.Contains(s, sub) {
			t.Fatalf("Error() missing %q in %q", sub, s)
		}
	}
}

func TestError_RenderWithoutCause(t *testing.T) {
	e := E(kind.Parse, "integer parsing failed")
	if got, want := e.Error(), "parse: integer parsing failed"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestError_CauseEmbeddedVerbatim(t *testing.T) {
	cause := errors.New(`strconv.ParseUint: parsing "notanumber": invalid syntax`)
	e := E(kind.Parse, "integer parsing failed", WithCauseOption(cause))
	if !strings.HasSuffix(e.Error(), cause.Error()) {
		t.Fatalf("cause description not embedded verbatim: %q", e.Error())
	}
}

func TestError_WithCause_Unwrap(t *testing.T) {
	root := errors.New("root")
	e := E(kind.IO, "x").WithCause(root)
	if !errors.Is(e, root) {
		t.Fatal("errors.Is failed")
	}
	if errors.Unwrap(e) != root {
		t.Fatal("Unwrap failed")
	}
}

func TestError_Immutability_CopyOnWrite(t *testing.T) {
	e1 := E(kind.Domain, "violated")
	e2 := e1.WithMessage("other")

	if e1.Message != "violated" {
		t.Fatal("original mutated")
	}
	if e2.Message != "other" || e2.Kind != kind.Domain {
		t.Fatal("copy wrong")
	}
}

func TestIsKind_WrappedChain(t *testing.T) {
	e := E(kind.ParseFloat, "float parsing failed")
	wrapped := fmt.Errorf("loading: %w", e)

	if !IsKind(wrapped, kind.ParseFloat) {
		t.Fatal("IsKind must see through wrapping")
	}
	if IsKind(wrapped, kind.Parse) {
		t.Fatal("IsKind matched the wrong kind")
	}
	if KindOf(wrapped) != kind.ParseFloat {
		t.Fatal("KindOf mismatch")
	}
	if KindOf(errors.New("plain")) != "" {
		t.Fatal("KindOf on foreign error must be empty")
	}
}

func TestError_ErrorKindSurface(t *testing.T) {
	e := E(kind.Domain, "violated")
	if e.ErrorKind() != "domain" {
		t.Fatalf("ErrorKind() = %q", e.ErrorKind())
	}
}

func TestE_OptionsAppliedInOrder(t *testing.T) {
	e := E(kind.IO, "first",
		WithMessageOption("second"),
		WithMessageOption("third"),
	)
	if e.Message != "third" {
		t.Fatalf("options must apply in order, got %q", e.Message)
	}
}
