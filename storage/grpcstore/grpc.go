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

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// TextStoreServer is the server API for the TextStore gRPC service.
//
// We intentionally use protobuf well-known types so this package does not
// require a protoc/codegen toolchain: Read exchanges StringValue wrappers,
// and Write carries its path/text pair in a Struct.
type TextStoreServer interface {
	Read(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	Write(context.Context, *structpb.Struct) (*emptypb.Empty, error)
}

// UnimplementedTextStoreServer can be embedded to have forward compatible
// implementations.
type UnimplementedTextStoreServer struct{}

func (UnimplementedTextStoreServer) Read(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Read not implemented")
}
func (UnimplementedTextStoreServer) Write(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Write not implemented")
}

// RegisterTextStoreServer registers the TextStore service on a gRPC server.
func RegisterTextStoreServer(s grpc.ServiceRegistrar, srv TextStoreServer) {
	s.RegisterService(&TextStore_ServiceDesc, srv)
}

// TextStoreClient is the client API for the TextStore gRPC service.
type TextStoreClient interface {
	Read(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Write(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type textStoreClient struct{ cc grpc.ClientConnInterface }

func NewTextStoreClient(cc grpc.ClientConnInterface) TextStoreClient { return &textStoreClient{cc: cc} }

func (c *textStoreClient) Read(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, "/dirpx.fallible.storage.grpcstore.v1.TextStore/Read", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *textStoreClient) Write(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, "/dirpx.fallible.storage.grpcstore.v1.TextStore/Write", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func _TextStore_Read_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TextStoreServer).Read(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dirpx.fallible.storage.grpcstore.v1.TextStore/Read"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TextStoreServer).Read(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _TextStore_Write_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TextStoreServer).Write(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dirpx.fallible.storage.grpcstore.v1.TextStore/Write"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TextStoreServer).Write(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// TextStore_ServiceDesc is the grpc.ServiceDesc for the TextStore service.
var TextStore_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dirpx.fallible.storage.grpcstore.v1.TextStore",
	HandlerType: (*TextStoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Read", Handler: _TextStore_Read_Handler},
		{MethodName: "Write", Handler: _TextStore_Write_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "textstore.proto",
}
