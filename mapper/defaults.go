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

// defaultHTTP defines the built-in HTTP mappings for registry codes.
//
// Almost every registry code describes a fault on the rendering side
// (server-side render, resumability, component code), so the client sees
// a 500. The exceptions are the ones where an HTTP client can act.
var defaultHTTP = map[code.Code]int{
	code.CannotRenderOverExistingContainer: http.StatusConflict, // Target already hosts a container.
	code.ContainerAlreadyPaused:            http.StatusConflict, // Pause requested twice.
	code.DynamicImportFailed:               http.StatusNotFound, // The chunk behind a QRL is not served.
	code.QrlMissingChunk:                   http.StatusNotFound, // No chunk path to fetch.
}

// defaultGRPC defines the built-in gRPC mappings for registry codes.
// Codes missing here resolve to codes.Internal.
var defaultGRPC = map[code.Code]codes.Code{
	// Serialization and rendering crashes stay Internal (fallback).

	// Values of the wrong kind handed to the runtime.
	code.QrlOrError:          codes.InvalidArgument,
	code.OnlyObjectWrapped:   codes.InvalidArgument,
	code.OnlyLiteralWrapped:  codes.InvalidArgument,
	code.QrlIsNotFunction:    codes.InvalidArgument,
	code.UnknownTypeArgument: codes.InvalidArgument,
	code.InvalidJsxNodeType:  codes.InvalidArgument,
	code.InvalidContext:      codes.InvalidArgument,
	code.InvalidRefValue:     codes.InvalidArgument,

	// Hooks, props and document structure used in the wrong place or state.
	code.NotFoundContext:           codes.FailedPrecondition,
	code.UseMethodOutsideContext:   codes.FailedPrecondition,
	code.ImmutableProps:            codes.FailedPrecondition,
	code.HostCanOnlyBeAtRoot:       codes.FailedPrecondition,
	code.ImmutableJsxProps:         codes.FailedPrecondition,
	code.UseInvokeContext:          codes.FailedPrecondition,
	code.CanNotMountUseServerMount: codes.FailedPrecondition,
	code.RootNodeMustBeHTML:        codes.FailedPrecondition,
	code.StrictHTMLChildren:        codes.FailedPrecondition,
	code.TrackUseStore:             codes.FailedPrecondition,
	code.CanNotRenderHTML:          codes.FailedPrecondition,
	code.QrlMissingContainer:       codes.FailedPrecondition,
	code.ContainerAlreadyPaused:    codes.FailedPrecondition,

	// Rendering on top of an existing container.
	code.CannotRenderOverExistingContainer: codes.AlreadyExists,

	// Code-split chunks that cannot be located.
	code.DynamicImportFailed: codes.NotFound,
	code.QrlMissingChunk:     codes.NotFound,
}
