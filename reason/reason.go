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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"

	"dirpx.dev/qerror/code"
)

// Reason is the google.rpc.ErrorInfo reason of a qerror error: the
// registry name of the code in UPPER_SNAKE_CASE.
//
// Example valid reasons:
//
//   - "CANNOT_RENDER_OVER_EXISTING_CONTAINER"
//   - "QRL_MISSING_CHUNK"
//   - "UNKNOWN"
type Reason string

// MinLength and MaxLength bound a reason. The upper bound is the one
// google.rpc.ErrorInfo places on the field.
const (
	MinLength = 3
	MaxLength = 63
)

// reasonFmt is UPPER_SNAKE_CASE: an upper-case letter first, no trailing
// underscore.
//
// Examples that DO NOT match:
//
//	"set_property"   (lower case)
//	"_SET_PROPERTY"  (leading underscore)
//	"SET_PROPERTY_"  (trailing underscore)
//	"5"              (digit first)
const reasonFmt = `^[A-Z][A-Z0-9_]*[A-Z0-9]$`

var reasonRe = regexp.MustCompile(reasonFmt)

var (
	// ErrReasonInvalidFormat is returned when a reason is not UPPER_SNAKE_CASE.
	ErrReasonInvalidFormat = errors.New("qerror: invalid reason format")
	// ErrReasonInvalidLength is returned when a reason is too short or too long.
	ErrReasonInvalidLength = errors.New("qerror: invalid reason length")
)

var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Unknown is the reason of codes outside the registry.
const Unknown Reason = "UNKNOWN"

// For returns the reason of c, or Unknown when c is not registered.
func For(c code.Code) Reason {
	n := c.Name()
	if n == "" {
		return Unknown
	}
	return Reason(strings.ToUpper(n))
}

// Normalize brings s closer to the canonical form: spaces trimmed,
// upper-cased, "-" and "." replaced with "_". It does not guarantee
// validity.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, ".", "_")
	return s
}

// Parse normalizes and validates s. Unlike code.Parse it accepts reasons
// that name no registered code, so foreign ErrorInfos can be inspected.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return "", err
	}
	return Reason(s), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Code maps r back to its registry code.
func (r Reason) Code() (code.Code, bool) {
	if r == Unknown {
		return 0, false
	}
	c, err := code.Parse(strings.ToLower(string(r)))
	if err != nil {
		return 0, false
	}
	return c, true
}

// String returns the reason text.
func (r Reason) String() string {
	return string(r)
}

// MarshalText implements encoding.TextMarshaler. Invalid reasons are
// rejected.
func (r Reason) MarshalText() ([]byte, error) {
	if err := validate(string(r)); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
