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

import "dirpx.dev/qerror/code"

// Logger is the logging collaborator that error construction delegates to.
//
// Given the resolved diagnostic message and the caller's context parts, an
// implementation records them (its log format and destination are its own
// business) and returns the error value that ends the failing operation.
//
// Implementations MUST receive msg and parts exactly as the caller passed
// them and SHOULD return a non-nil error.
type Logger interface {
	LogAndRaise(msg string, parts ...any) error
}

// LoggerFunc adapts an ordinary function to the Logger interface.
type LoggerFunc func(msg string, parts ...any) error

// LogAndRaise calls f(msg, parts...).
func (f LoggerFunc) LogAndRaise(msg string, parts ...any) error {
	return f(msg, parts...)
}

// CodedError represents an error that is classified by a registry code.
//
// Transport adapters use the code to pick a status and to tell clients
// which failure happened. An error that does not implement CodedError
// should be treated as an internal error at the boundary.
type CodedError interface {
	error

	// ErrorCode returns the registry code of the error. It may be a value
	// outside the registry; callers must not assume code.Code.Known.
	ErrorCode() code.Code
}
