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

package grpcx

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/fallible"
	"dirpx.dev/fallible/apis"
	"dirpx.dev/fallible/kind"
	"dirpx.dev/fallible/mathx"
)

// Domain is the error domain advertised in ErrorInfo details. Clients use it
// to recognize taxonomy errors among arbitrary statuses.
const Domain = "fallible.dirpx.dev"

// ErrorInfo metadata keys.
const (
	metaKind   = "kind"
	metaReason = "reason"
	metaCause  = "cause"
)

// ToStatus maps a taxonomy error into a gRPC status with a
// google.rpc.ErrorInfo detail.
//
// The provided apis.Mapper resolves the status code; the detail carries the
// kind, the domain reason (when present), and the originating cause's
// description verbatim, so the full taxonomy classification survives the
// wire.
func ToStatus(m apis.Mapper, e *fallible.Error) *gstatus.Status {
	if e == nil {
		return nil
	}

	reason := ""
	if r, ok := mathx.ReasonOf(e); ok {
		reason = string(r)
	}

	base := gstatus.New(m.GRPCStatus(e.Kind, reason), e.Message)

	info := &errdetails.ErrorInfo{
		Reason:   wireReason(e.Kind, reason),
		Domain:   Domain,
		Metadata: map[string]string{metaKind: string(e.Kind)},
	}
	if reason != "" {
		info.Metadata[metaReason] = reason
	}
	if e.Cause != nil {
		info.Metadata[metaCause] = e.Cause.Error()
	}

	// Try to attach the detail. If it fails — return base.
	if with, err := base.WithDetails(info); err == nil {
		return with
	}
	return base
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// taxonomy errors into gRPC statuses via ToStatus.
//
// The provided apis.Mapper is used to resolve transport status codes.
// Errors that are not taxonomy errors pass through untouched.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var fe *fallible.Error
		if !errors.As(err, &fe) {
			// Not ours — return as-is.
			return nil, err
		}

		return nil, ToStatus(m, fe).Err()
	}
}

// ExtractErrorInfo pulls the taxonomy's ErrorInfo out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			return info, true
		}
	}
	return nil, false
}

// FromStatus reconstructs a taxonomy error from a gRPC error carrying the
// taxonomy's ErrorInfo detail. The second return value reports whether the
// error was recognized.
func FromStatus(err error) (*fallible.Error, bool) {
	info, ok := ExtractErrorInfo(err)
	if !ok {
		return nil, false
	}
	k, lerr := kind.Lookup(info.GetMetadata()[metaKind])
	if lerr != nil {
		return nil, false
	}

	st, _ := gstatus.FromError(err)
	e := fallible.E(k, st.Message())

	// Domain failures get their typed sentinel back, so errors.Is keeps
	// working on the client side. Other kinds carry the cause description.
	if r, ok := mathx.ForReason(mathx.Reason(info.GetMetadata()[metaReason])); ok && k == kind.Domain {
		return e.WithCause(r), true
	}
	if cause := info.GetMetadata()[metaCause]; cause != "" {
		e = e.WithCause(errors.New(cause))
	}
	return e, true
}

// wireReason formats the ErrorInfo reason field: the kind, refined by the
// domain reason when present, upper-cased per google.rpc conventions.
func wireReason(k kind.Kind, reason string) string {
	if reason == "" {
		return strings.ToUpper(string(k))
	}
	return strings.ToUpper(string(k) + "_" + reason)
}
