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

package grpcstore

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dirpx.dev/fallible/grpcx"
	"dirpx.dev/fallible/storage"
)

// restoreErr translates an RPC failure back into the storage error shapes
// the Store contract promises.
//
// codes.NotFound restores the storage sentinel, so storage.IsNotFound works
// identically for local and remote stores. Statuses carrying the taxonomy's
// ErrorInfo detail are reconstructed as taxonomy errors; anything else is
// returned as-is.
func restoreErr(path string, err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() == codes.NotFound {
		return fmt.Errorf("grpcstore: read %s: %w", path, storage.ErrNotFound)
	}
	if fe, ok := grpcx.FromStatus(err); ok {
		return fe
	}
	return err
}
