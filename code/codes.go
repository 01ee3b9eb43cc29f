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

package code

// Serialization error codes
//
// Raised while the container state is being captured into, or restored
// from, its serialized form.
const (
	// StringifyClassOrStyle indicates that a class or style attribute value
	// could not be turned into a string.
	StringifyClassOrStyle Code = 0

	// CannotSerializeNode indicates that a DOM node which is not an Element
	// was reached during serialization.
	CannotSerializeNode Code = 1

	// RuntimeQrlNoElement indicates that a runtime QRL has no instance bound
	// on its element.
	RuntimeQrlNoElement Code = 2

	// VerifySerializable indicates that a value other than a primitive or
	// an object literal was offered for serialization.
	// Callers usually pass the offending value as a context part.
	VerifySerializable Code = 3
)

// Rendering error codes
const (
	// ErrorWhileRendering indicates a crash inside the render pass.
	ErrorWhileRendering Code = 4

	// CannotRenderOverExistingContainer indicates that render() targeted an
	// element that already hosts a container. The render is skipped.
	CannotRenderOverExistingContainer Code = 5

	// SetProperty indicates that a property could not be set on a node.
	SetProperty Code = 6
)

// QRL and object wrapping error codes
const (
	// QrlOrError indicates that something other than a function or a string
	// was given where a QRL was expected.
	QrlOrError Code = 7

	// OnlyObjectWrapped indicates an attempt to wrap a non-object in a
	// reactive proxy.
	OnlyObjectWrapped Code = 8

	// OnlyLiteralWrapped indicates an attempt to wrap an object that is not
	// a plain literal in a reactive proxy.
	OnlyLiteralWrapped Code = 9

	// QrlIsNotFunction indicates that a resolved QRL symbol is not callable.
	QrlIsNotFunction Code = 10

	// DynamicImportFailed indicates that the dynamic import backing a QRL
	// could not be found.
	DynamicImportFailed Code = 11

	// UnknownTypeArgument indicates an argument of an unexpected type.
	UnknownTypeArgument Code = 12
)

// Context and lifecycle error codes
//
// These describe misuse of hooks and invocation contexts by component code.
const (
	// NotFoundContext indicates that useContext() found no provider among
	// the ancestors.
	NotFoundContext Code = 13

	// UseMethodOutsideContext indicates a use*() call outside of an
	// invocation context.
	UseMethodOutsideContext Code = 14

	// MissingRenderCtx indicates that the render context is not reachable
	// from the current invocation context.
	MissingRenderCtx Code = 15

	// MissingDoc indicates that the document is not reachable from the
	// current invocation context.
	MissingDoc Code = 16

	// ImmutableProps indicates a write to component props.
	ImmutableProps Code = 17

	// HostCanOnlyBeAtRoot indicates that the host element was used below
	// the root of a component.
	HostCanOnlyBeAtRoot Code = 18

	// ImmutableJsxProps indicates a write to JSX node props.
	ImmutableJsxProps Code = 19

	// UseInvokeContext indicates a use*() call outside of the synchronous
	// body of a component or another use*() method.
	UseInvokeContext Code = 20
)

// Container and document structure error codes
const (
	// ContainerAlreadyPaused indicates that pause was requested on a
	// container that is already paused.
	ContainerAlreadyPaused Code = 21

	// CanNotMountUseServerMount indicates that a component relying on
	// useServerMount() was mounted on the client.
	CanNotMountUseServerMount Code = 22

	// RootNodeMustBeHTML indicates a document render whose root node is not
	// <html>.
	RootNodeMustBeHTML Code = 23

	// StrictHTMLChildren indicates an <html> node without exactly a <head>
	// and a <body> child.
	StrictHTMLChildren Code = 24

	// InvalidJsxNodeType indicates a JSX node whose type is neither a
	// function nor a string. The offending type is passed as a context part.
	InvalidJsxNodeType Code = 25

	// TrackUseStore indicates change tracking on a value that is not a store
	// or component props.
	TrackUseStore Code = 26

	// MissingObjectID indicates a captured object without an object id.
	MissingObjectID Code = 27

	// InvalidContext indicates a context reference not created by
	// createContextId().
	InvalidContext Code = 28

	// CanNotRenderHTML indicates an <html> node rendered inside a component.
	CanNotRenderHTML Code = 29
)

// QRL resolution error codes
const (
	// QrlMissingContainer indicates that a QRL has no attached container and
	// so cannot resolve a relative import path.
	QrlMissingContainer Code = 30

	// QrlMissingChunk indicates that a QRL has no chunk path to import from.
	QrlMissingChunk Code = 31

	// InvalidRefValue indicates a JSX ref attribute that is not a signal.
	InvalidRefValue Code = 32
)

// names holds the symbolic name of every registered code, indexed by value.
//
// IMPORTANT: entries are append-only and must stay index-aligned with the
// constants above. TestNames_AlignedWithValues guards this.
var names = [...]string{
	StringifyClassOrStyle:             "stringify_class_or_style",
	CannotSerializeNode:               "cannot_serialize_node",
	RuntimeQrlNoElement:               "runtime_qrl_no_element",
	VerifySerializable:                "verify_serializable",
	ErrorWhileRendering:               "error_while_rendering",
	CannotRenderOverExistingContainer: "cannot_render_over_existing_container",
	SetProperty:                       "set_property",
	QrlOrError:                        "qrl_or_error",
	OnlyObjectWrapped:                 "only_object_wrapped",
	OnlyLiteralWrapped:                "only_literal_wrapped",
	QrlIsNotFunction:                  "qrl_is_not_function",
	DynamicImportFailed:               "dynamic_import_failed",
	UnknownTypeArgument:               "unknown_type_argument",
	NotFoundContext:                   "not_found_context",
	UseMethodOutsideContext:           "use_method_outside_context",
	MissingRenderCtx:                  "missing_render_ctx",
	MissingDoc:                        "missing_doc",
	ImmutableProps:                    "immutable_props",
	HostCanOnlyBeAtRoot:               "host_can_only_be_at_root",
	ImmutableJsxProps:                 "immutable_jsx_props",
	UseInvokeContext:                  "use_invoke_context",
	ContainerAlreadyPaused:            "container_already_paused",
	CanNotMountUseServerMount:         "can_not_mount_use_server_mount",
	RootNodeMustBeHTML:                "root_node_must_be_html",
	StrictHTMLChildren:                "strict_html_children",
	InvalidJsxNodeType:                "invalid_jsx_node_type",
	TrackUseStore:                     "track_use_store",
	MissingObjectID:                   "missing_object_id",
	InvalidContext:                    "invalid_context",
	CanNotRenderHTML:                  "can_not_render_html",
	QrlMissingContainer:               "qrl_missing_container",
	QrlMissingChunk:                   "qrl_missing_chunk",
	InvalidRefValue:                   "invalid_ref_value",
}

// Count is the number of registered codes. Valid codes are [0, Count).
const Count = len(names)
