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
	"dirpx.dev/qerror/code"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the default HTTP status for the given
// registry code.
func WithHTTPDefault(c code.Code, http int) Option {
	return func(b *builder) { b.httpDefaults[c] = http }
}

// WithGRPCDefault sets or replaces the default gRPC status for the given
// registry code.
func WithGRPCDefault(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[c] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for the given code.
// Overrides take precedence over defaults.
func WithHTTPOverride(c code.Code, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride registers an exact gRPC override for the given code.
// Overrides take precedence over defaults.
func WithGRPCOverride(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithFallback replaces the statuses used for codes that have neither an
// override nor a default, including values outside the registry.
func WithFallback(http, grpc int) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}

// WithHTTPFamily maps every code whose name starts with the snake_case
// prefix to an HTTP status, e.g. WithHTTPFamily("qrl", 502). A "*" word
// matches any single word. The longest matching prefix wins; exact
// overrides still take precedence.
func WithHTTPFamily(prefix string, http int) Option {
	return func(b *builder) { b.httpFamily[prefix] = http }
}

// WithGRPCFamily is the gRPC counterpart of WithHTTPFamily.
func WithGRPCFamily(prefix string, grpc int) Option {
	return func(b *builder) { b.grpcFamily[prefix] = grpc }
}
