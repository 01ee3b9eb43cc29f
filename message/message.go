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

import (
	"regexp"
	"strconv"

	"dirpx.dev/qerror/code"
)

// Resolver turns codes into diagnostic strings.
//
// A Resolver is an immutable value: the mode is fixed at construction and
// never read from process-wide state. It is safe for concurrent use.
type Resolver struct {
	mode Mode
}

// New returns a Resolver for the given mode.
func New(mode Mode) Resolver {
	return Resolver{mode: mode}
}

// Mode returns the mode the resolver was built with.
func (r Resolver) Mode() Mode { return r.mode }

// Resolve formats the diagnostic for c.
//
// In Verbose mode the result is exactly "Code(<c>): <text>", where <text>
// is Lookup(c) and therefore "" for unregistered codes. In Terse mode the
// result is exactly "Code(<c>)" and the table is not consulted.
//
// Resolve never panics, whatever the value of c.
func (r Resolver) Resolve(c code.Code) string {
	return Resolve(r.mode, c)
}

// Resolve is the stateless form of Resolver.Resolve.
func Resolve(mode Mode, c code.Code) string {
	prefix := "Code(" + strconv.Itoa(int(c)) + ")"
	if mode != Verbose {
		return prefix
	}
	return prefix + ": " + Lookup(c)
}

// diagRe finds the "Code(N)" marker produced by Resolve.
var diagRe = regexp.MustCompile(`Code\((-?[0-9]+)\)`)

// Decode extracts the code from a diagnostic produced by Resolve, in either
// mode. The marker may appear anywhere in s, so whole log lines can be
// passed in. The returned code is not checked against the registry.
func Decode(s string) (code.Code, bool) {
	m := diagRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return code.Code(n), true
}
