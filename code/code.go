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

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Code is the numeric identifier of one recognized failure condition.
//
// It is a distinct type (not a bare int) so that call sites state which
// registry they are reporting against. Any int converts to a Code: values
// outside [0, Count) are representable on purpose, because the error
// reporting path tolerates them instead of rejecting them.
type Code int

// MinNameLength and MaxNameLength bound the symbolic name of a code.
const (
	// MinNameLength is the minimum length of a symbolic name.
	MinNameLength = 3

	// MaxNameLength is the maximum length of a symbolic name.
	MaxNameLength = 64
)

const (
	// nameFmt is the canonical regular expression for symbolic names.
	//
	//	^ - start of string;
	//	[a-z] - first character must be a lowercase ASCII letter;
	//	[a-z0-9_]{2,63} - lowercase letters, digits or underscore, for a
	//	                  total length of 3..64 characters;
	//	$ - end of string;
	//
	// IMPORTANT: {2,63} is tied to MinNameLength / MaxNameLength above.
	nameFmt = `^[a-z][a-z0-9_]{2,63}$`
)

var (
	// nameRe is the compiled form of nameFmt.
	nameRe = regexp.MustCompile(nameFmt)

	// byName is the reverse index of names, built once at init.
	byName = func() map[string]Code {
		m := make(map[string]Code, len(names))
		for i, n := range names {
			m[n] = Code(i)
		}
		return m
	}()
)

var (
	// ErrCodeInvalid is returned when a value is neither a registered
	// numeric code nor a registered symbolic name.
	ErrCodeInvalid = errors.New("qerror: invalid code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// All returns every registered code in ascending order.
// The returned slice is a fresh copy.
func All() []Code {
	out := make([]Code, Count)
	for i := range out {
		out[i] = Code(i)
	}
	return out
}

// Known reports whether c is a registered code.
func (c Code) Known() bool {
	return c >= 0 && int(c) < Count
}

// Name returns the symbolic name of c, or "" if c is not registered.
func (c Code) Name() string {
	if !c.Known() {
		return ""
	}
	return names[c]
}

// Int returns the numeric value of c.
func (c Code) Int() int { return int(c) }

// String returns the symbolic name of c. Unregistered codes render as
// "code(N)" so they stay recognizable in logs.
func (c Code) String() string {
	if n := c.Name(); n != "" {
		return n
	}
	return "code(" + strconv.Itoa(int(c)) + ")"
}

// Normalize brings an arbitrary string closer to the canonical name form.
//
// Only non-lossy transformations are applied:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' with '_'.
//
// The result is not guaranteed to be a registered name.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse resolves user input to a registered Code.
//
// The input may be a decimal value ("5") or a symbolic name in any case,
// with dashes or underscores ("cannot-render-over-existing-container").
// Unregistered values and names yield ErrCodeInvalid.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if n, err := strconv.Atoi(s); err == nil {
		c := Code(n)
		if !c.Known() {
			return 0, ErrCodeInvalid
		}
		return c, nil
	}
	if err := validateName(s); err != nil {
		return 0, err
	}
	c, ok := byName[s]
	if !ok {
		return 0, ErrCodeInvalid
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MarshalText implements encoding.TextMarshaler using the symbolic name.
// Unregistered codes cannot be marshalled.
func (c Code) MarshalText() ([]byte, error) {
	n := c.Name()
	if n == "" {
		return nil, ErrCodeInvalid
	}
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts whatever
// Parse accepts.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// validateName checks the shape of a symbolic name.
func validateName(s string) error {
	if !nameRe.MatchString(s) {
		return ErrCodeInvalid
	}
	return nil
}
