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

// Package convert is the conversion registry: the single sanctioned path for
// crossing from a foreign error type into the fallible taxonomy.
//
// Each foreign failure shape has one explicit conversion function, and From
// dispatches across them. Conversion is total — it never fails, and a
// non-nil input always yields exactly one taxonomy error that embeds the
// original failure's description. No component downstream of this boundary
// may inspect foreign error types directly.
package convert

import (
	"errors"
	"strconv"

	"dirpx.dev/fallible"
	"dirpx.dev/fallible/kind"
	"dirpx.dev/fallible/mathx"
)

// From canonicalizes any failure into the taxonomy.
//
// Classification order:
//
//  1. already-converted *fallible.Error values pass through unchanged,
//     making From idempotent;
//  2. *mathx.DomainError becomes kind.Domain;
//  3. *strconv.NumError becomes kind.ParseFloat for ParseFloat failures and
//     kind.Parse for the integer parsing functions;
//  4. everything else becomes kind.IO.
//
// The IO fallback is deliberate: the taxonomy is closed over exactly these
// sources, and the only boundary that can surface an arbitrary foreign error
// is the storage read. Nil maps to nil.
func From(err error) *fallible.Error {
	if err == nil {
		return nil
	}

	var fe *fallible.Error
	if errors.As(err, &fe) {
		return fe
	}

	var de *mathx.DomainError
	if errors.As(err, &de) {
		return FromDomain(de)
	}

	var ne *strconv.NumError
	if errors.As(err, &ne) {
		if ne.Func == "ParseFloat" {
			return FromParseFloat(err)
		}
		return FromParse(err)
	}

	return FromIO(err)
}

// FromIO wraps a storage-layer failure (file missing, unreadable, permission
// denied) under kind.IO. The storage error stays in the chain, so
// storage.IsNotFound still distinguishes absence from other read failures.
func FromIO(err error) *fallible.Error {
	if err == nil {
		return nil
	}
	return fallible.E(kind.IO, "storage i/o failed",
		fallible.WithCauseOption(err),
	)
}

// FromParse wraps an integer parse failure under kind.Parse.
func FromParse(err error) *fallible.Error {
	if err == nil {
		return nil
	}
	return fallible.E(kind.Parse, "integer parsing failed",
		fallible.WithCauseOption(err),
	)
}

// FromParseFloat wraps a floating-point parse failure under kind.ParseFloat.
func FromParseFloat(err error) *fallible.Error {
	if err == nil {
		return nil
	}
	return fallible.E(kind.ParseFloat, "float parsing failed",
		fallible.WithCauseOption(err),
	)
}

// FromDomain wraps a violated mathematical precondition under kind.Domain.
func FromDomain(err *mathx.DomainError) *fallible.Error {
	if err == nil {
		return nil
	}
	return fallible.E(kind.Domain, "domain precondition violated",
		fallible.WithCauseOption(err),
	)
}
