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

// Package qerrortest provides test doubles for qerror collaborators.
package qerrortest

import (
	"sync"

	"dirpx.dev/qerror/apis"
	"dirpx.dev/qerror/logx"
)

var _ apis.Logger = (*Recorder)(nil)

// Call is one recorded LogAndRaise invocation.
type Call struct {
	Message string
	Parts   []any
}

// Recorder is an apis.Logger that records every call instead of logging.
// It returns the error built by Err, or an error whose text is
// logx.Format(msg, parts...) when Err is nil.
//
// The zero value is ready to use and safe for concurrent use.
type Recorder struct {
	// Err, if set, builds the error returned from LogAndRaise.
	Err func(msg string, parts ...any) error

	mu    sync.Mutex
	calls []Call
}

// LogAndRaise records the call and returns the configured error.
func (r *Recorder) LogAndRaise(msg string, parts ...any) error {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Message: msg, Parts: parts})
	r.mu.Unlock()

	if r.Err != nil {
		return r.Err(msg, parts...)
	}
	return recorded(logx.Format(msg, parts...))
}

// Calls returns a copy of the recorded calls, oldest first.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Last returns the most recent call.
func (r *Recorder) Last() (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return Call{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

type recorded string

func (e recorded) Error() string { return string(e) }
