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
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"dirpx.dev/fallible/apis"
	"dirpx.dev/fallible/convert"
	"dirpx.dev/fallible/grpcx"
	"dirpx.dev/fallible/storage"
)

// Server exposes a storage.Store over the TextStore gRPC service.
//
// Absent paths surface as codes.NotFound so the client can restore the
// storage sentinel; every other failure is converted into the taxonomy and
// mapped through the configured Mapper.
type Server struct {
	UnimplementedTextStoreServer

	Store storage.Store

	// Mapper resolves status codes for non-NotFound failures. When nil, a
	// plain Unavailable status carrying the taxonomy description is used.
	Mapper apis.Mapper
}

func (s *Server) Read(_ context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	if s == nil || s.Store == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing store")
	}
	text, err := s.Store.ReadText(in.GetValue())
	if err != nil {
		return nil, s.mapErr(err)
	}
	return wrapperspb.String(text), nil
}

func (s *Server) Write(_ context.Context, in *structpb.Struct) (*emptypb.Empty, error) {
	if s == nil || s.Store == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing store")
	}
	fields := in.GetFields()
	path := fields[fieldPath].GetStringValue()
	if path == "" {
		return nil, status.Error(codes.InvalidArgument, "missing path")
	}
	if err := s.Store.WriteText(path, fields[fieldText].GetStringValue()); err != nil {
		return nil, s.mapErr(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *Server) mapErr(err error) error {
	if err == nil {
		return nil
	}
	if storage.IsNotFound(err) {
		return status.Error(codes.NotFound, storage.ErrNotFound.Error())
	}
	fe := convert.From(err)
	if s.Mapper != nil {
		return grpcx.ToStatus(s.Mapper, fe).Err()
	}
	return status.Error(codes.Unavailable, fe.Error())
}
