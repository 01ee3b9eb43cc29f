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

	"dirpx.dev/qerror/code"
	"google.golang.org/grpc/codes"
)

type builder struct {
	// httpDefaults holds per-code HTTP defaults (library defaults plus
	// user adjustments).
	httpDefaults map[code.Code]int
	// grpcDefaults holds per-code gRPC defaults as ints; converted to
	// codes.Code in New().
	grpcDefaults map[code.Code]int

	// httpOverride holds exact per-code HTTP overrides (higher than defaults).
	httpOverride map[code.Code]int
	// grpcOverride holds exact per-code gRPC overrides as ints.
	grpcOverride map[code.Code]int

	// httpFamily and grpcFamily map snake_case name prefixes to statuses.
	// They sit between overrides and defaults.
	httpFamily map[string]int
	grpcFamily map[string]int

	// global fallbacks used when a code has no default at all.
	fallbackHTTP int
	fallbackGRPC int
}

// newBuilder creates an empty builder with maps pre-sized to hold the
// built-in defaults.
func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[code.Code]int, len(defaultHTTP)),
		grpcDefaults: make(map[code.Code]int, len(defaultGRPC)),

		// overrides are usually few
		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]int),
		httpFamily:   make(map[string]int),
		grpcFamily:   make(map[string]int),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: int(codes.Internal),
	}
}
