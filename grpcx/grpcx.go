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

// Package grpcx carries cerrors classifications across gRPC.
//
// The server interceptor turns classified errors into gRPC statuses with a
// google.rpc.ErrorInfo detail; the client interceptor reads that detail back
// and rebuilds the cerrors value, so errors.Is(err, cerrors.NotFound) keeps
// working on the far side of the call.
package grpcx

import (
	"context"
	"errors"

	"dirpx.dev/cerrors"
	"dirpx.dev/cerrors/adapter"
	"dirpx.dev/cerrors/apis"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
)

// MetaFn returns extra ErrorInfo metadata for err, such as a request id.
// Keys already set by the adapter win over keys returned here.
type MetaFn func(ctx context.Context, err error) map[string]string

// ToStatus projects err onto a gRPC status.
//
// Classified errors use the code from m for their upstream HTTP status, or
// Unknown when they carry no response. A *cerrors.ServerBrokeConnection
// becomes Unavailable. The second result is false for errors this package
// does not know, in which case the status is nil.
func ToStatus(err error, m apis.Mapper, domain string) (*gstatus.Status, bool) {
	return toStatus(context.Background(), err, m, domain, nil)
}

func toStatus(ctx context.Context, err error, m apis.Mapper, domain string, metaFn MetaFn) (*gstatus.Status, bool) {
	info := adapter.ToErrorInfo(err, domain)
	if info == nil {
		return nil, false
	}

	code, msg := gcodes.Unknown, err.Error()
	var sb *cerrors.ServerBrokeConnection
	switch {
	case errors.As(err, &sb):
		code = gcodes.Unavailable
	default:
		if c, ok := adapter.HTTPCode(err); ok && m != nil {
			code = m.GRPCStatus(c)
		}
		if s := adapter.Message(err); s != "" {
			msg = s
		}
	}

	if metaFn != nil {
		for k, v := range metaFn(ctx, err) {
			if _, taken := info.Metadata[k]; !taken {
				info.Metadata[k] = v
			}
		}
	}

	base := gstatus.New(code, msg)
	if with, err := base.WithDetails(info); err == nil {
		return with, true
	}
	return base, true
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// cerrors values returned by handlers into gRPC statuses carrying an
// ErrorInfo detail. Other errors are returned as-is.
//
// The optional metaFn adds metadata to the ErrorInfo. It may be nil.
func UnaryServerInterceptor(m apis.Mapper, domain string, metaFn MetaFn) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		st, ok := toStatus(ctx, err, m, domain, metaFn)
		if !ok {
			return nil, err
		}
		return nil, st.Err()
	}
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that
// rebuilds cerrors values from statuses carrying an ErrorInfo detail,
// classifying them with ex (cerrors.Exceptions when nil). Statuses without
// a usable detail are returned unchanged.
func UnaryClientInterceptor(ex *cerrors.ExceptionsMap) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err == nil {
			return nil
		}
		info, ok := ExtractInfo(err)
		if !ok {
			return err
		}
		if e := adapter.FromErrorInfo(info, ex); e != nil {
			return e
		}
		return err
	}
}

// ExtractInfo pulls the google.rpc.ErrorInfo out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}
