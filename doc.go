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

// Package qerror is the error-reporting subsystem of the runtime.
//
// Failure sites select a code from package code and call Raise with any
// context values that describe the failure instance:
//
//	r := qerror.New(qerror.WithDev(isDev), qerror.WithLogger(collaborator))
//	...
//	return r.Raise(code.InvalidJsxNodeType, typ)
//
// Raise resolves the code to its diagnostic (see package message), hands
// the diagnostic and the context values to the logging collaborator (see
// package logx and apis.Logger) and returns an *Error carrying the code.
//
// Development builds resolve to "Code(25): Invalid JSXNode type. ...";
// production builds resolve to the bare "Code(25)".
package qerror
