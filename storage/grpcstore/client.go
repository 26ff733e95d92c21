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
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"dirpx.dev/fallible/storage"
)

// Struct field names of the Write request.
const (
	fieldPath = "path"
	fieldText = "text"
)

// Client implements storage.Store over the TextStore gRPC service.
type Client struct {
	cc     *grpc.ClientConn
	client TextStoreClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

var _ storage.Store = (*Client)(nil)

// Dial creates a client for the TextStore service at target. The connection
// is established lazily, on the first RPC; per-RPC deadlines are governed by
// the Timeout field.
func Dial(target string) (*Client, error) {
	cc, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, err
	}
	return NewClient(cc), nil
}

// NewClient wraps an established connection. Useful with custom dialers
// (for example bufconn in tests).
func NewClient(cc *grpc.ClientConn) *Client {
	return &Client{cc: cc, client: NewTextStoreClient(cc)}
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

func (c *Client) ReadText(path string) (string, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Read(ctx, wrapperspb.String(path))
	if err != nil {
		return "", mapRPC(path, err)
	}
	return reply.GetValue(), nil
}

func (c *Client) WriteText(path string, text string) error {
	ctx, cancel := c.ctx()
	defer cancel()

	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldPath: structpb.NewStringValue(path),
		fieldText: structpb.NewStringValue(text),
	}}
	if _, err := c.client.Write(ctx, req); err != nil {
		return mapRPC(path, err)
	}
	return nil
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}

func mapRPC(path string, err error) error {
	if err == nil {
		return nil
	}
	return restoreErr(path, err)
}
