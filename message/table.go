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

package message

import "dirpx.dev/qerror/code"

// table is the diagnostic text of every registered code, indexed by value.
// The texts are part of the public diagnostic surface; keep them verbatim.
var table = [...]string{
	code.StringifyClassOrStyle:             "Error while serializing class attribute",
	code.CannotSerializeNode:               "Can not serialize a HTML Node that is not an Element",
	code.RuntimeQrlNoElement:               "Runtime but no instance found on element.",
	code.VerifySerializable:                "Only primitive and object literals can be serialized",
	code.ErrorWhileRendering:               "Crash while rendering",
	code.CannotRenderOverExistingContainer: "You can render over a existing q:container. Skipping render().",
	code.SetProperty:                       "Set property",
	code.QrlOrError:                        "Only function's and 'string's are supported.",
	code.OnlyObjectWrapped:                 "Only objects can be wrapped in 'QObject'",
	code.OnlyLiteralWrapped:                "Only objects literals can be wrapped in 'QObject'",
	code.QrlIsNotFunction:                  "QRL is not a function",
	code.DynamicImportFailed:               "Dynamic import not found",
	code.UnknownTypeArgument:               "Unknown type argument",
	code.NotFoundContext:                   "Actual value for useContext() can not be found, make sure some ancestor component has set a value using useContextProvider()",
	code.UseMethodOutsideContext:           "Invoking 'use*()' method outside of invocation context.",
	code.MissingRenderCtx:                  "Cant access renderCtx for existing context",
	code.MissingDoc:                        "Cant access document for existing context",
	code.ImmutableProps:                    "props are immutable",
	code.HostCanOnlyBeAtRoot:               "<div> component can only be used at the root of a Qwik component$()",
	code.ImmutableJsxProps:                 "Props are immutable by default.",
	code.UseInvokeContext: "Calling a 'use*()' method outside 'component$(() => { HERE })' is not allowed. " +
		"'use*()' methods provide hooks to the 'component$' state and lifecycle, ie 'use' hooks can only be called " +
		"syncronously within the 'component$' function or another 'use' method.\n" +
		"For more information see: https://qwik.builder.io/docs/components/lifecycle/#use-method-rules",
	code.ContainerAlreadyPaused:    "Container is already paused. Skipping",
	code.CanNotMountUseServerMount: `Components using useServerMount() can only be mounted in the server, if you need your component to be mounted in the client, use "useMount$()" instead`,
	code.RootNodeMustBeHTML:        "When rendering directly on top of Document, the root node must be a <html>",
	code.StrictHTMLChildren:        "A <html> node must have 2 children. The first one <head> and the second one a <body>",
	code.InvalidJsxNodeType:        "Invalid JSXNode type. It must be either a function or a string. Found:",
	code.TrackUseStore:             "Tracking value changes can only be done to useStore() objects and component props",
	code.MissingObjectID:           "Missing Object ID for captured object",
	code.InvalidContext:            "The provided Context reference is not a valid context created by createContextId()",
	code.CanNotRenderHTML:          "<html> is the root container, it can not be rendered inside a component",
	code.QrlMissingContainer:       "QRLs can not be resolved because it does not have an attached container. This means that the QRL does not know where it belongs inside the DOM, so it cant dynamically import() from a relative path.",
	code.QrlMissingChunk:           "QRLs can not be dynamically resolved, because it does not have a chunk path",
	code.InvalidRefValue:           "The JSX ref attribute must be a Signal",
}

// Lookup returns the diagnostic text for c.
//
// Codes outside the table resolve to "" instead of failing: error reporting
// must never become a crash of its own.
func Lookup(c code.Code) string {
	if c < 0 || int(c) >= len(table) {
		return ""
	}
	return table[c]
}
