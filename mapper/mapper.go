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
	"fmt"
	"strings"
	"sync"

	"dirpx.dev/qerror/apis"
	"dirpx.dev/qerror/code"
	"dirpx.dev/qerror/mapper/internal/segmenttrie"
	"google.golang.org/grpc/codes"
)

// defaultMapper is built once from the library defaults alone.
var defaultMapper = sync.OnceValue(func() apis.Mapper {
	m, err := New()
	if err != nil {
		// The built-in tables are validated by tests; this cannot happen.
		panic(err)
	}
	return m
})

// Default returns the shared mapper built from the library defaults, as
// New() without options would. Transports use it when no mapper is given.
func Default() apis.Mapper {
	return defaultMapper()
}

// OrDefault returns m, or Default() when m is nil.
func OrDefault(m apis.Mapper) apis.Mapper {
	if m == nil {
		return Default()
	}
	return m
}

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, fallback).
//  3. Validate every status value and index family prefixes.
//  4. Freeze all maps into fresh copies.
//
// Errors returned from this function indicate out-of-range status values
// or malformed family prefixes.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	// (1) Seed with package-level defaults, copied into builder-owned maps.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate.
	if err := validateHTTP("defaults", b.httpDefaults); err != nil {
		return nil, err
	}
	if err := validateHTTP("overrides", b.httpOverride); err != nil {
		return nil, err
	}
	if err := validateGRPC("defaults", b.grpcDefaults); err != nil {
		return nil, err
	}
	if err := validateGRPC("overrides", b.grpcOverride); err != nil {
		return nil, err
	}
	if b.fallbackHTTP < 100 || b.fallbackHTTP > 599 {
		return nil, fmt.Errorf("mapper: invalid HTTP fallback %d", b.fallbackHTTP)
	}
	if b.fallbackGRPC < 0 || b.fallbackGRPC > maxGRPCCode {
		return nil, fmt.Errorf("mapper: invalid gRPC fallback %d", b.fallbackGRPC)
	}

	httpFamily, err := buildHTTPFamily(b.httpFamily)
	if err != nil {
		return nil, err
	}
	grpcFamily, err := buildGRPCFamily(b.grpcFamily)
	if err != nil {
		return nil, err
	}

	// (4) Freeze everything into a read-only snapshot.
	return &mapper{
		httpFamily:   httpFamily,
		grpcFamily:   grpcFamily,
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: codes.Code(b.fallbackGRPC),
	}, nil
}

// mapper is an immutable mapper implementation that combines per-code
// defaults and per-code exact overrides. Safe for concurrent use once
// constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a registry code.
	httpDefault map[code.Code]int

	// grpcDefault holds the base gRPC status for a registry code.
	grpcDefault map[code.Code]codes.Code

	// httpOverride holds explicit HTTP statuses for specific codes.
	httpOverride map[code.Code]int

	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[code.Code]codes.Code

	// httpFamily and grpcFamily resolve name prefixes; nil when unused.
	httpFamily *segmenttrie.Trie[int]
	grpcFamily *segmenttrie.Trie[codes.Code]

	// fallbackHTTP is used when there is no mapping at all for a code.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a code.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. exact per-code override;
//  2. longest matching family prefix of the code name;
//  3. per-code default (library or user adjusted);
//  4. fallback (500 unless changed with WithFallback).
func (m *mapper) HTTPStatus(c code.Code) int {
	_, v := m.resolveHTTP(c)
	return v
}

// GRPCStatus resolves a gRPC status for the given code, with the same
// precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	_, v := m.resolveGRPC(c)
	return v
}

// Status resolves both HTTP and gRPC for the same code.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular code.
//
// Example output:
//
//	code=5 name="cannot_render_over_existing_container"
//	http: source=default -> 409
//	grpc: source=default -> ALREADYEXISTS(6)
//
// source is one of override, family(<prefix>), default or fallback.
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%d name=%q\n", int(c), c.Name())

	src, h := m.resolveHTTP(c)
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", src, h)

	src, g := m.resolveGRPC(c)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s(%d)", src, strings.ToUpper(g.String()), int(g))

	return b.String()
}

// resolveHTTP returns the tier that matched and the HTTP status.
func (m *mapper) resolveHTTP(c code.Code) (source string, status int) {
	if v, ok := m.httpOverride[c]; ok {
		return "override", v
	}
	if v, ok, p := m.httpFamily.Match(c.Name()); ok {
		return "family(" + p + ")", v
	}
	if v, ok := m.httpDefault[c]; ok {
		return "default", v
	}
	return "fallback", m.fallbackHTTP
}

// resolveGRPC returns the tier that matched and the gRPC status.
func (m *mapper) resolveGRPC(c code.Code) (source string, status codes.Code) {
	if v, ok := m.grpcOverride[c]; ok {
		return "override", v
	}
	if v, ok, p := m.grpcFamily.Match(c.Name()); ok {
		return "family(" + p + ")", v
	}
	if v, ok := m.grpcDefault[c]; ok {
		return "default", v
	}
	return "fallback", m.fallbackGRPC
}
