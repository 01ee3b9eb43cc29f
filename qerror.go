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

package qerror

import (
	"errors"

	"dirpx.dev/qerror/apis"
	"dirpx.dev/qerror/code"
)

var _ apis.CodedError = (*Error)(nil)

// Error is the error value returned by Raise.
//
// It carries:
//   - Code: the registry code the failure site selected;
//   - Message: the diagnostic resolved for Code ("Code(5)" or
//     "Code(5): ..." depending on the mode);
//   - Parts: the caller's context values, in order;
//   - Cause: the error produced by the logging collaborator.
//
// All mutation helpers (WithX) return a shallow copy.
type Error struct {
	// Code is the registry code. It may lie outside the registry when a
	// failure site passed a bad value; it is kept as given.
	Code code.Code

	// Message is the resolved diagnostic handed to the collaborator.
	Message string

	// Parts are the context values handed to the collaborator.
	Parts []any

	// Cause is what the collaborator returned, if anything.
	Cause error
}

// Error implements the built-in error interface.
//
// The collaborator decides the final wording, so its error text wins when
// present. Otherwise the resolved message is used.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the collaborator's error, enabling errors.Is / errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is reports whether target is an *Error with the same code. Message,
// parts and cause are ignored, so a bare &Error{Code: c} works as a
// pattern for errors.Is.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return false
	}
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return e.Code == t.Code
}

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() code.Code {
	if e == nil {
		return 0
	}
	return e.Code
}

// WithCause returns a shallow copy of e with the given cause attached.
// If err is nil, e is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// CodeOf returns the code of the first apis.CodedError in err's chain.
func CodeOf(err error) (code.Code, bool) {
	var ce apis.CodedError
	if !errors.As(err, &ce) {
		return 0, false
	}
	return ce.ErrorCode(), true
}

// IsCode reports whether err's chain carries code c.
func IsCode(err error, c code.Code) bool {
	got, ok := CodeOf(err)
	return ok && got == c
}
