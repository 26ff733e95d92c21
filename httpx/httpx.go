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
	"net/http"

	"dirpx.dev/fallible"
	"dirpx.dev/fallible/apis"
	"dirpx.dev/fallible/mathx"
)

// Writer is a thin adapter that knows how to turn a taxonomy error into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes an apis.ErrorView and writes it to the response writer.
// The HTTP status is resolved via the Mapper.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the error is exposed as-is. Higher-level handlers should apply policies
// if needed.
func (w Writer) Write(rw http.ResponseWriter, err *fallible.Error) {
	if err == nil {
		return
	}

	reason := ""
	if r, ok := mathx.ReasonOf(err); ok {
		reason = string(r)
	}
	st := w.Mapper.Status(err.Kind, reason)

	view := apis.ErrorView{
		Kind:    string(err.Kind),
		Reason:  reason,
		Message: err.Message,
	}
	if err.Cause != nil {
		view.Cause = err.Cause.Error()
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(st.HTTP)
	_ = json.NewEncoder(rw).Encode(view)
}
