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
	"go.uber.org/zap"

	"dirpx.dev/qerror/apis"
	"dirpx.dev/qerror/code"
	"dirpx.dev/qerror/logx"
	"dirpx.dev/qerror/message"
)

// Raiser resolves codes and hands failures to the logging collaborator.
//
// A Raiser is immutable after New and safe for concurrent use, provided
// its collaborator is. The zero value resolves in message.Terse mode and
// logs through zap's global logger, like New() without options.
type Raiser struct {
	resolver message.Resolver
	logger   apis.Logger
}

// New builds a Raiser.
//
// Without options the Raiser resolves in message.Terse mode and logs
// through zap's global logger (a no-op until zap.ReplaceGlobals is called).
func New(opts ...Option) *Raiser {
	r := &Raiser{
		resolver: message.New(message.Terse),
		logger:   logx.NewZap(zap.L()),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mode returns the diagnostic mode of the Raiser.
func (r *Raiser) Mode() message.Mode {
	return r.resolver.Mode()
}

// Resolve returns the diagnostic string for c. See message.Resolver.
func (r *Raiser) Resolve(c code.Code) string {
	return r.resolver.Resolve(c)
}

// Raise reports a failure.
//
// It resolves c, forwards the resolved message followed by parts, in order
// and unchanged, to the collaborator, and returns an *Error that wraps
// whatever the collaborator returned. Error.Parts is a copy of parts.
// The caller decides whether to return
// or panic with it:
//
//	if el.Container() != nil {
//	    return r.Raise(code.CannotRenderOverExistingContainer, el)
//	}
//
// Raise itself never fails on bad input: codes outside the registry
// resolve like any other. It can only fail if the collaborator does.
func (r *Raiser) Raise(c code.Code, parts ...any) *Error {
	msg := r.resolver.Resolve(c)
	cause := r.collaborator().LogAndRaise(msg, parts...)
	e := &Error{Code: c, Message: msg, Cause: cause}
	if len(parts) > 0 {
		e.Parts = append([]any(nil), parts...)
	}
	return e
}

// collaborator returns the configured logger, or zap's global logger for a
// zero Raiser.
func (r *Raiser) collaborator() apis.Logger {
	if r.logger == nil {
		return logx.NewZap(zap.L())
	}
	return r.logger
}
