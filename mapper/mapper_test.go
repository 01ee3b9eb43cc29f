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

package mapper

import (
	"net/http"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/qerror/apis"
	"dirpx.dev/qerror/code"
	"google.golang.org/grpc/codes"
)

func TestDefaults(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(c code.Code, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(c)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%s) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				c, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(code.ErrorWhileRendering, 500, codes.Internal)
	check(code.VerifySerializable, 500, codes.Internal)
	check(code.CannotRenderOverExistingContainer, 409, codes.AlreadyExists)
	check(code.InvalidJsxNodeType, 500, codes.InvalidArgument)
	check(code.UseInvokeContext, 500, codes.FailedPrecondition)
	check(code.QrlMissingChunk, 404, codes.NotFound)
}

func TestDefaults_CoverOnlyRegisteredCodes(t *testing.T) {
	for c := range defaultHTTP {
		if !c.Known() {
			t.Fatalf("defaultHTTP has unregistered code %d", int(c))
		}
	}
	for c := range defaultGRPC {
		if !c.Known() {
			t.Fatalf("defaultGRPC has unregistered code %d", int(c))
		}
	}
}

func TestPriority_OverrideOverDefault(t *testing.T) {
	m, err := New(
		WithHTTPDefault(code.MissingDoc, 503),
		WithHTTPOverride(code.MissingDoc, 418),
		WithGRPCDefault(code.MissingDoc, int(codes.Unavailable)),
		WithGRPCOverride(code.MissingDoc, int(codes.Aborted)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(code.MissingDoc)
	if st.HTTP != 418 || st.GRPC != codes.Aborted {
		t.Fatalf("override must win; got %+v", st)
	}
}

func TestUserDefaultReplacesLibraryDefault(t *testing.T) {
	m, err := New(WithHTTPDefault(code.DynamicImportFailed, http.StatusBadGateway))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(code.DynamicImportFailed); got != http.StatusBadGateway {
		t.Fatalf("HTTPStatus = %d, want 502", got)
	}
	if got := m.GRPCStatus(code.DynamicImportFailed); got != codes.NotFound {
		t.Fatalf("gRPC default must stay; got %v", got)
	}
}

func TestFallback(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, c := range []code.Code{-1, 33, 999} {
		st := m.Status(c)
		if st.HTTP != 500 || st.GRPC != codes.Internal {
			t.Fatalf("Status(%d) = %+v, want fallback", int(c), st)
		}
	}

	m2, err := New(WithFallback(http.StatusServiceUnavailable, int(codes.Unavailable)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m2.Status(999); st.HTTP != 503 || st.GRPC != codes.Unavailable {
		t.Fatalf("custom fallback not applied: %+v", st)
	}
}

func TestNew_RejectsInvalidValues(t *testing.T) {
	bad := []Option{
		WithHTTPDefault(code.MissingDoc, 42),
		WithHTTPOverride(code.MissingDoc, 600),
		WithGRPCDefault(code.MissingDoc, -1),
		WithGRPCOverride(code.MissingDoc, 17),
		WithFallback(0, int(codes.Internal)),
		WithFallback(500, 99),
	}
	for i, opt := range bad {
		if _, err := New(opt); err == nil {
			t.Fatalf("option #%d: expected error", i)
		}
	}
}

func TestExplain_Sources(t *testing.T) {
	m, err := New(WithHTTPOverride(code.SetProperty, 422))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exp := m.Explain(code.SetProperty)
	if !strings.Contains(exp, "http: source=override -> 422") {
		t.Fatalf("Explain must show the override:\n%s", exp)
	}
	if !strings.Contains(exp, "grpc: source=fallback -> INTERNAL(13)") {
		t.Fatalf("Explain must show the gRPC fallback:\n%s", exp)
	}
	if !strings.Contains(exp, `name="set_property"`) {
		t.Fatalf("Explain must name the code:\n%s", exp)
	}
}

func TestImmutability(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defaultHTTP[code.MissingDoc] = 418
	defer delete(defaultHTTP, code.MissingDoc)
	if got := m.HTTPStatus(code.MissingDoc); got != 500 {
		t.Fatalf("mapper observed a change to the defaults: %d", got)
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(WithHTTPOverride(code.MissingDoc, 418))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status(code.MissingDoc)
				_ = m.Status(code.QrlMissingChunk)
				_ = m.Status(999)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(b *testing.B) {
	m, _ := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(code.InvalidJsxNodeType)
	}
}

func BenchmarkMapperStatus_Fallback(b *testing.B) {
	m, _ := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(999)
	}
}

// Ensure mapper implements apis.Mapper
func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}

func TestFamily_BetweenOverrideAndDefault(t *testing.T) {
	m, err := New(
		WithHTTPFamily("qrl", 502),
		WithHTTPFamily("qrl_missing", 503),
		WithGRPCFamily("qrl", int(codes.Unavailable)),
		WithHTTPOverride(code.QrlMissingChunk, 410),
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if got := m.HTTPStatus(code.QrlIsNotFunction); got != 502 {
		t.Fatalf("HTTPStatus(qrl_is_not_function) = %d, want 502", got)
	}
	if got := m.HTTPStatus(code.QrlMissingContainer); got != 503 {
		t.Fatalf("longest prefix must win; got %d", got)
	}
	if got := m.HTTPStatus(code.QrlMissingChunk); got != 410 {
		t.Fatalf("override must beat family; got %d", got)
	}
	// Family beats the per-code default NotFound.
	if got := m.GRPCStatus(code.QrlMissingChunk); got != codes.Unavailable {
		t.Fatalf("GRPCStatus(qrl_missing_chunk) = %v, want Unavailable", got)
	}
	// Unrelated and unregistered codes are untouched.
	if got := m.HTTPStatus(code.CannotRenderOverExistingContainer); got != http.StatusConflict {
		t.Fatalf("HTTPStatus(5) = %d", got)
	}
	if got := m.HTTPStatus(999); got != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus(999) = %d", got)
	}

	exp := m.Explain(code.QrlMissingContainer)
	if !strings.Contains(exp, "http: source=family(qrl_missing) -> 503") {
		t.Fatalf("Explain lacks the family source:\n%s", exp)
	}
}

func TestFamily_Invalid(t *testing.T) {
	bad := [][]Option{
		{WithHTTPFamily("QRL", 502)},
		{WithHTTPFamily("*", 502)},
		{WithHTTPFamily("qrl", 700)},
		{WithGRPCFamily("qrl__x", 1)},
		{WithGRPCFamily("qrl", 42)},
	}
	for i, opts := range bad {
		if _, err := New(opts...); err == nil {
			t.Fatalf("case %d: expected an error", i)
		}
	}
}

func TestDefault(t *testing.T) {
	d := Default()
	if d != Default() {
		t.Fatalf("Default() must return the shared mapper")
	}
	if got := d.HTTPStatus(code.CannotRenderOverExistingContainer); got != http.StatusConflict {
		t.Fatalf("Default().HTTPStatus(5) = %d", got)
	}
	if OrDefault(nil) != d {
		t.Fatalf("OrDefault(nil) must be Default()")
	}
	m, err := New(WithHTTPOverride(code.MissingDoc, http.StatusTeapot))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if OrDefault(m) != m {
		t.Fatalf("OrDefault(m) must return m")
	}
}
