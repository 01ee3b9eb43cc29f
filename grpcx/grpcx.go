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

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/qerror"
	"dirpx.dev/qerror/adapter"
	"dirpx.dev/qerror/apis"
	"dirpx.dev/qerror/code"
	"dirpx.dev/qerror/mapper"
)

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps a
// *qerror.Error anywhere in a handler's error chain into a gRPC status with
// a google.rpc.ErrorInfo detail.
//
// The provided apis.Mapper picks the gRPC code; a nil mapper means
// mapper.Default(). Errors that carry no
// *qerror.Error are returned as-is.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, ToStatusError(m, err)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if err := handler(srv, ss); err != nil {
			return ToStatusError(m, err)
		}
		return nil
	}
}

// ToStatusError converts err into a gRPC status error if its chain holds a
// *qerror.Error, and returns err unchanged otherwise. A nil m means
// mapper.Default().
func ToStatusError(m apis.Mapper, err error) error {
	var qe *qerror.Error
	if !errors.As(err, &qe) {
		// Not ours, return as-is.
		return err
	}
	st := mapper.OrDefault(m).Status(qe.Code)
	return gstatus.FromProto(adapter.ToStatus(qe, st)).Err()
}

// ExtractCode pulls the registry code out of a gRPC error produced by the
// interceptors, if present. Useful in tests and client code.
func ExtractCode(err error) (code.Code, bool) {
	if err == nil {
		return 0, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return 0, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			if c, ok := adapter.CodeFromErrorInfo(info); ok {
				return c, true
			}
		}
	}
	return 0, false
}
