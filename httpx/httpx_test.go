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

package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"dirpx.dev/fallible/apis"
	"dirpx.dev/fallible/convert"
	"dirpx.dev/fallible/kind"
	"dirpx.dev/fallible/mapper"
	"dirpx.dev/fallible/mathx"
)

func newWriter(t *testing.T) Writer {
	t.Helper()
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	return Writer{Mapper: m}
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) apis.ErrorView {
	t.Helper()
	var view apis.ErrorView
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return view
}

func TestWrite_DomainError(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	w.Write(rec, convert.FromDomain(mathx.ErrDivisionByZero))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}

	view := decodeView(t, rec)
	if view.Kind != "domain" {
		t.Fatalf("kind = %q", view.Kind)
	}
	if view.Reason != "division_by_zero" {
		t.Fatalf("reason = %q", view.Reason)
	}
	if view.Message != "domain precondition violated" {
		t.Fatalf("message = %q", view.Message)
	}
	if view.Cause != "division by zero" {
		t.Fatalf("cause = %q", view.Cause)
	}
}

func TestWrite_ParseFloatError(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	_, perr := strconv.ParseFloat("junk", 64)
	w.Write(rec, convert.From(perr))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	view := decodeView(t, rec)
	if view.Kind != "parse_float" {
		t.Fatalf("kind = %q", view.Kind)
	}
	if view.Reason != "" {
		t.Fatalf("non-domain errors carry no reason, got %q", view.Reason)
	}
	if view.Cause != perr.Error() {
		t.Fatalf("cause = %q, want %q", view.Cause, perr)
	}
}

func TestWrite_RespectsMapperOverride(t *testing.T) {
	m, err := mapper.New(mapper.WithHTTPOverride(kind.IO, http.StatusBadGateway))
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	w := Writer{Mapper: m}
	rec := httptest.NewRecorder()

	w.Write(rec, convert.FromIO(errors.New("no such disk")))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestWrite_NilErrorWritesNothing(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	w.Write(rec, nil)

	if rec.Body.Len() != 0 {
		t.Fatalf("nil error must produce no body, got %q", rec.Body.String())
	}
}
