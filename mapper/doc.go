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

// Package mapper provides deterministic, immutable mappings from qerror
// registry codes (dirpx.dev/qerror/code) to transport-level statuses for
// HTTP and gRPC.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the Code;
//  2. per-Code default (library or user-adjusted);
//  3. fallback (500 / codes.Internal unless changed).
//
// Codes outside the registry always reach the fallback.
//
// # Library defaults
//
// Render and serialization crashes map to 500 / Internal. Wrong-kind
// arguments map to InvalidArgument, hook and lifecycle misuse to
// FailedPrecondition, missing code-split chunks to 404 / NotFound and
// rendering over an existing container to 409 / AlreadyExists.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.DynamicImportFailed, http.StatusBadGateway),
//	)
//	if err != nil {
//	    // out-of-range status value
//	}
//	st := m.Status(code.DynamicImportFailed)
//
// # Diagnostics
//
// Explain returns a human-readable trace of how a code was resolved. It is
// intended for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All inputs are copied during New. After construction the Mapper does not
// observe further changes, so one instance can be shared across handlers,
// goroutines and requests.
package mapper
