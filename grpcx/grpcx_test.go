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
	"fmt"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	"dirpx.dev/qerror"
	"dirpx.dev/qerror/apis"
	"dirpx.dev/qerror/code"
	"dirpx.dev/qerror/mapper"
	"dirpx.dev/qerror/message"
	"dirpx.dev/qerror/qerrortest"
)

func newMapper(t *testing.T) apis.Mapper {
	t.Helper()
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	return m
}

func TestUnaryServerInterceptor_MapsQError(t *testing.T) {
	r := qerror.New(qerror.WithLogger(&qerrortest.Recorder{}))
	icpt := UnaryServerInterceptor(newMapper(t))

	handler := func(ctx context.Context, req any) (any, error) {
		return nil, fmt.Errorf("render: %w", r.Raise(code.CannotRenderOverExistingContainer, "#app"))
	}
	_, err := icpt(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/x/y"}, handler)

	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatalf("expected a status error, got %v", err)
	}
	if st.Code() != codes.AlreadyExists {
		t.Fatalf("code = %v, want AlreadyExists", st.Code())
	}
	if st.Message() != "Code(5)" {
		t.Fatalf("message = %q, want terse diagnostic", st.Message())
	}
	c, ok := ExtractCode(err)
	if !ok || c != code.CannotRenderOverExistingContainer {
		t.Fatalf("ExtractCode() = %d, %v", int(c), ok)
	}
}

func TestUnaryServerInterceptor_PassesThrough(t *testing.T) {
	icpt := UnaryServerInterceptor(newMapper(t))
	plain := errors.New("plain")

	_, err := icpt(context.Background(), nil, &grpc.UnaryServerInfo{}, func(context.Context, any) (any, error) {
		return nil, plain
	})
	if err != plain {
		t.Fatalf("foreign errors must pass through; got %v", err)
	}

	resp, err := icpt(context.Background(), nil, &grpc.UnaryServerInfo{}, func(context.Context, any) (any, error) {
		return "ok", nil
	})
	if err != nil || resp != "ok" {
		t.Fatalf("success path = %v, %v", resp, err)
	}
}

func TestStreamServerInterceptor(t *testing.T) {
	r := qerror.New(qerror.WithLogger(&qerrortest.Recorder{}))
	icpt := StreamServerInterceptor(newMapper(t))

	err := icpt(nil, nil, &grpc.StreamServerInfo{}, func(any, grpc.ServerStream) error {
		return r.Raise(code.QrlMissingChunk)
	})
	if gstatus.Code(err) != codes.NotFound {
		t.Fatalf("code = %v, want NotFound", gstatus.Code(err))
	}
	if err := icpt(nil, nil, &grpc.StreamServerInfo{}, func(any, grpc.ServerStream) error { return nil }); err != nil {
		t.Fatalf("success path = %v", err)
	}
}

func TestExtractCode_NotOurs(t *testing.T) {
	for _, err := range []error{nil, errors.New("x"), gstatus.Error(codes.Internal, "boom")} {
		if _, ok := ExtractCode(err); ok {
			t.Fatalf("ExtractCode(%v) must fail", err)
		}
	}
}

// renderer is a hand-written service used to exercise the interceptor over
// a real connection.
type renderer struct {
	raiser *qerror.Raiser
}

const renderMethod = "/qerror.test.Renderer/Render"

var rendererDesc = grpc.ServiceDesc{
	ServiceName: "qerror.test.Renderer",
	HandlerType: (*any)(nil),
	Methods: []grpc.MethodDesc{{
		MethodName: "Render",
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(emptypb.Empty)
			if err := dec(in); err != nil {
				return nil, err
			}
			h := func(ctx context.Context, req any) (any, error) {
				return nil, srv.(*renderer).raiser.Raise(code.InvalidJsxNodeType, 42)
			}
			if interceptor == nil {
				return h(ctx, in)
			}
			return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: renderMethod}, h)
		},
	}},
}

func TestRoundTrip_OverBufconn(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(UnaryServerInterceptor(newMapper(t))))
	rec := &qerrortest.Recorder{}
	srv.RegisterService(&rendererDesc, &renderer{
		raiser: qerror.New(qerror.WithMode(message.Verbose), qerror.WithLogger(rec)),
	})
	go func() { _ = srv.Serve(lis) }()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer conn.Close()

	err = conn.Invoke(context.Background(), renderMethod, &emptypb.Empty{}, &emptypb.Empty{})
	if gstatus.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want InvalidArgument (err=%v)", gstatus.Code(err), err)
	}
	c, ok := ExtractCode(err)
	if !ok || c != code.InvalidJsxNodeType {
		t.Fatalf("ExtractCode() = %d, %v", int(c), ok)
	}
	want := "Code(25): Invalid JSXNode type. It must be either a function or a string. Found:"
	if msg := gstatus.Convert(err).Message(); msg != want {
		t.Fatalf("message = %q, want %q", msg, want)
	}
	if call, _ := rec.Last(); len(call.Parts) != 1 || call.Parts[0] != 42 {
		t.Fatalf("server-side collaborator parts = %v", call.Parts)
	}
}

func TestToStatusError_NilMapperUsesDefaults(t *testing.T) {
	r := qerror.New(qerror.WithLogger(&qerrortest.Recorder{}))

	err := ToStatusError(nil, r.Raise(code.CannotRenderOverExistingContainer))
	if gstatus.Code(err) != codes.AlreadyExists {
		t.Fatalf("code = %v, want AlreadyExists", gstatus.Code(err))
	}

	_, err = UnaryServerInterceptor(nil)(context.Background(), nil, &grpc.UnaryServerInfo{}, func(context.Context, any) (any, error) {
		return nil, r.Raise(code.QrlMissingChunk)
	})
	if gstatus.Code(err) != codes.NotFound {
		t.Fatalf("code = %v, want NotFound", gstatus.Code(err))
	}
}
