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

package logx

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

const (
	// maxFrames bounds the call stack captured by a Raised error.
	maxFrames = 32

	// raiserFrame prefixes the frames of qerror.Raiser methods.
	raiserFrame = "dirpx.dev/qerror.(*Raiser)."
)

// Raised is the error value produced by the collaborators in this package.
//
// It keeps the message and context parts exactly as they were handed over,
// plus the call stack at the point the error was raised.
type Raised struct {
	// Message is the resolved diagnostic, e.g. "Code(5): ...".
	Message string

	// Parts are the caller's context values, in order.
	Parts []any

	stack []uintptr
}

// newRaised captures the stack of the caller of the LogAndRaise method that
// calls it.
func newRaised(msg string, parts []any) *Raised {
	var pcs [maxFrames]uintptr
	// 0 runtime.Callers, 1 newRaised, 2 LogAndRaise.
	n := runtime.Callers(3, pcs[:])
	r := &Raised{Message: msg, stack: append([]uintptr(nil), pcs[:n]...)}
	if len(parts) > 0 {
		r.Parts = append([]any(nil), parts...)
	}
	return r
}

// Error returns the message followed by every part, space separated.
func (r *Raised) Error() string {
	if r == nil {
		return "<nil>"
	}
	return Format(r.Message, r.Parts...)
}

// Stack returns a copy of the captured program counters.
func (r *Raised) Stack() []uintptr {
	if r == nil || len(r.stack) == 0 {
		return nil
	}
	out := make([]uintptr, len(r.stack))
	copy(out, r.stack)
	return out
}

// Origin returns "function file:line" of the frame that raised the error,
// or "" when no stack was captured.
func (r *Raised) Origin() string {
	if r == nil || len(r.stack) == 0 {
		return ""
	}
	frames := runtime.CallersFrames(r.stack)
	for {
		f, more := frames.Next()
		if f.Function == "" && f.File == "" {
			return ""
		}
		// The Raiser is plumbing; the failure site is whoever called it.
		if !strings.HasPrefix(f.Function, raiserFrame) || !more {
			return f.Function + " " + f.File + ":" + strconv.Itoa(f.Line)
		}
	}
}

// Format renders msg followed by each part separated by a single space.
// Parts are formatted with fmt.Sprint.
func Format(msg string, parts ...any) string {
	if len(parts) == 0 {
		return msg
	}
	var b strings.Builder
	b.WriteString(msg)
	for _, p := range parts {
		b.WriteByte(' ')
		b.WriteString(fmt.Sprint(p))
	}
	return b.String()
}
