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

package apis

// ErrorDescriptor is a flat, transport-friendly description of one
// registry code.
//
// It is what the CLI prints and what documentation generators consume. It
// uses plain types so it can be marshalled without knowing the registry.
type ErrorDescriptor struct {
	// Code is the numeric registry value.
	Code int `json:"code"`

	// Name is the symbolic name, e.g. "cannot_render_over_existing_container".
	// Empty for values outside the registry.
	Name string `json:"name,omitempty"`

	// Message is the verbose diagnostic text (without the "Code(N): "
	// prefix). Empty for values outside the registry.
	Message string `json:"message,omitempty"`

	// HTTPStatus is the HTTP status the code maps to.
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC status code (as integer) the code maps to.
	GRPCCode int `json:"grpc_code,omitempty"`
}
