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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		msg   string
		parts []any
		want  string
	}{
		{"no parts", "Code(5)", nil, "Code(5)"},
		{"string part", "Code(25): Found:", []any{"div"}, "Code(25): Found: div"},
		{"mixed parts", "Code(3)", []any{42, true, errors.New("boom")}, "Code(3) 42 true boom"},
		{"nil part", "Code(1)", []any{nil}, "Code(1) <nil>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.msg, tt.parts...); got != tt.want {
				t.Fatalf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRaised_CopiesParts(t *testing.T) {
	parts := []any{"a", "b"}
	r := newRaised("m", parts)
	parts[0] = "mutated"
	if r.Parts[0] != "a" {
		t.Fatalf("Raised must not alias the caller's parts")
	}
	if r.Error() != "m a b" {
		t.Fatalf("Error() = %q", r.Error())
	}
}

func TestRaised_NilSafe(t *testing.T) {
	var r *Raised
	if r.Error() != "<nil>" || r.Stack() != nil || r.Origin() != "" {
		t.Fatalf("nil Raised must be safe to inspect")
	}
}

func TestZapLogger_LogAndRaise(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	z := NewZap(zap.New(core))

	err := z.LogAndRaise("Code(25): Invalid JSXNode type. It must be either a function or a string. Found:", "span", 7)

	var raised *Raised
	if !errors.As(err, &raised) {
		t.Fatalf("LogAndRaise returned %T, want *Raised", err)
	}
	if raised.Message != "Code(25): Invalid JSXNode type. It must be either a function or a string. Found:" {
		t.Fatalf("message = %q", raised.Message)
	}
	if len(raised.Parts) != 2 || raised.Parts[0] != "span" || raised.Parts[1] != 7 {
		t.Fatalf("parts = %v", raised.Parts)
	}
	if len(raised.Stack()) == 0 {
		t.Fatalf("stack must be captured")
	}
	if !strings.Contains(raised.Origin(), "TestZapLogger_LogAndRaise") {
		t.Fatalf("origin = %q, want the test function", raised.Origin())
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.ErrorLevel {
		t.Fatalf("level = %s, want error", e.Level)
	}
	if e.Message != raised.Message {
		t.Fatalf("logged message = %q", e.Message)
	}
	ctx := e.ContextMap()
	if ctx["code"] != int64(25) {
		t.Fatalf("code field = %#v, want 25", ctx["code"])
	}
	if _, ok := ctx["parts"]; !ok {
		t.Fatalf("parts field missing: %v", ctx)
	}
}

func TestZapLogger_NoPartsNoField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_ = NewZap(zap.New(core)).LogAndRaise("Code(5)")
	if _, ok := logs.All()[0].ContextMap()["parts"]; ok {
		t.Fatalf("parts field must be omitted when there are no parts")
	}
}

func TestZapLogger_NilIsNop(t *testing.T) {
	z := NewZap(nil)
	if err := z.LogAndRaise("Code(1)"); err == nil {
		t.Fatalf("nop logger must still raise")
	}
}

func TestLogrusLogger_LogAndRaise(t *testing.T) {
	l, hook := logrustest.NewNullLogger()
	lr := NewLogrus(l)

	err := lr.LogAndRaise("Code(17): props are immutable", "title")
	if err == nil || err.Error() != "Code(17): props are immutable title" {
		t.Fatalf("LogAndRaise() = %v", err)
	}

	if len(hook.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(hook.Entries))
	}
	e := hook.LastEntry()
	if e.Level != logrus.ErrorLevel {
		t.Fatalf("level = %s, want error", e.Level)
	}
	if e.Message != "Code(17): props are immutable" {
		t.Fatalf("message = %q", e.Message)
	}
	if e.Data["code"] != 17 {
		t.Fatalf("code field = %#v", e.Data["code"])
	}
	parts, ok := e.Data["parts"].([]any)
	if !ok || len(parts) != 1 || parts[0] != "title" {
		t.Fatalf("parts field = %#v", e.Data["parts"])
	}
}

func TestNew_ZapWithFile(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "qerror.log")

	c, err := New(Config{Level: "info", File: path, Name: "qerror", Console: &console})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := c.(*ZapLogger); !ok {
		t.Fatalf("default backend = %T, want *ZapLogger", c)
	}
	_ = c.LogAndRaise("Code(4): Crash while rendering", "App")
	_ = c.Sync()

	if !strings.Contains(console.String(), "Code(4): Crash while rendering") {
		t.Fatalf("console output missing message: %q", console.String())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(b), `"msg":"Code(4): Crash while rendering"`) {
		t.Fatalf("file output is not JSON with the message: %q", b)
	}
}

func TestNew_Logrus(t *testing.T) {
	var console bytes.Buffer
	c, err := New(Config{Backend: "logrus", Level: "error", Format: "json", Console: &console})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := c.(*LogrusLogger); !ok {
		t.Fatalf("backend = %T, want *LogrusLogger", c)
	}
	_ = c.LogAndRaise("Code(21): Container is already paused. Skipping")
	if !strings.Contains(console.String(), `"msg":"Code(21): Container is already paused. Skipping"`) {
		t.Fatalf("console output = %q", console.String())
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var console bytes.Buffer
	c, err := New(Config{Level: "fatal", Console: &console})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.LogAndRaise("Code(6): Set property"); err == nil {
		t.Fatalf("filtered entries must still raise")
	}
	_ = c.Sync()
	if console.Len() != 0 {
		t.Fatalf("error entry must be filtered at fatal level, got %q", console.String())
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(Config{Backend: "syslog"}); !errors.Is(err, ErrBackendUnknown) {
		t.Fatalf("New(syslog) error = %v, want ErrBackendUnknown", err)
	}
	if _, err := New(Config{Level: "loud"}); !errors.Is(err, ErrLevelInvalid) {
		t.Fatalf("New(level=loud) error = %v, want ErrLevelInvalid", err)
	}
	if _, err := New(Config{Backend: "logrus", Level: "loud"}); !errors.Is(err, ErrLevelInvalid) {
		t.Fatalf("New(logrus, level=loud) error = %v, want ErrLevelInvalid", err)
	}
}

func TestClose_ReleasesLogFile(t *testing.T) {
	for _, backend := range []string{BackendZap, BackendLogrus} {
		t.Run(backend, func(t *testing.T) {
			var console bytes.Buffer
			path := filepath.Join(t.TempDir(), "qerror.log")

			c, err := New(Config{Backend: backend, File: path, Console: &console})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			_ = c.LogAndRaise("Code(4): Crash while rendering")
			if err := c.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}

			// Writing after Close reopens the file.
			_ = c.LogAndRaise("Code(16): Cant access document for existing context")
			if err := c.Close(); err != nil {
				t.Fatalf("second Close: %v", err)
			}

			b, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read log file: %v", err)
			}
			for _, want := range []string{"Code(4): Crash while rendering", "Code(16): Cant access document"} {
				if !strings.Contains(string(b), want) {
					t.Fatalf("log file lacks %q: %q", want, b)
				}
			}
		})
	}
}

func TestClose_WithoutFile(t *testing.T) {
	core, _ := observer.New(zapcore.DebugLevel)
	if err := NewZap(zap.New(core)).Close(); err != nil {
		t.Fatalf("zap Close without file: %v", err)
	}
	l, _ := logrustest.NewNullLogger()
	if err := NewLogrus(l).Close(); err != nil {
		t.Fatalf("logrus Close without file: %v", err)
	}
}
