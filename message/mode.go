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
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Mode selects how much of a diagnostic is surfaced.
type Mode int

const (
	// Terse surfaces only the bare code. It is the zero value, so a
	// Resolver that was never configured does not leak diagnostic prose.
	Terse Mode = iota

	// Verbose surfaces the code followed by its diagnostic text. Intended
	// for development builds.
	Verbose
)

// ErrModeInvalid is returned when a string does not name a Mode.
var ErrModeInvalid = errors.New("qerror: invalid diagnostic mode")

var (
	_ encoding.TextMarshaler   = Mode(0)
	_ encoding.TextUnmarshaler = (*Mode)(nil)
)

// ModeFor maps the usual "is this a development build" flag to a Mode.
func ModeFor(dev bool) Mode {
	if dev {
		return Verbose
	}
	return Terse
}

// ParseMode parses a mode name. Accepted spellings (case-insensitive):
//
//	verbose, debug, dev, development -> Verbose
//	terse, prod, production          -> Terse
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose", "debug", "dev", "development":
		return Verbose, nil
	case "terse", "prod", "production":
		return Terse, nil
	}
	return Terse, ErrModeInvalid
}

// String returns "verbose" or "terse".
func (m Mode) String() string {
	if m == Verbose {
		return "verbose"
	}
	return "terse"
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
