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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dirpx.dev/qerror/apis"
)

// Backend names accepted by Config.Backend.
const (
	BackendZap    = "zap"
	BackendLogrus = "logrus"
)

var (
	// ErrBackendUnknown is returned by New for an unsupported Config.Backend.
	ErrBackendUnknown = errors.New("qerror: unknown log backend")
	// ErrLevelInvalid is returned by New when Config.Level cannot be parsed.
	ErrLevelInvalid = errors.New("qerror: invalid log level")
)

// Config describes how the logging collaborator is built.
type Config struct {
	// Backend is "zap" (default) or "logrus".
	Backend string `mapstructure:"backend"`

	// Level is the minimum level written, "info" by default.
	Level string `mapstructure:"level"`

	// Format of the console output: "console" (default) or "json".
	// Files are always written as JSON.
	Format string `mapstructure:"format"`

	// Name is attached to every entry as the logger name.
	Name string `mapstructure:"name"`

	// File enables a rotated JSON log file at this path.
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`    // megabytes, at least 1
	MaxBackups int    `mapstructure:"max_backups"` // rotated files kept
	MaxAge     int    `mapstructure:"max_age"`     // days rotated files are kept
	Compress   bool   `mapstructure:"compress"`

	// Dev adds stack traces to warn and above.
	Dev bool `mapstructure:"dev"`

	// Console is where console output goes. Defaults to os.Stderr.
	Console io.Writer `mapstructure:"-"`
}

// Collaborator is a Logger whose buffered output can be flushed and whose
// log file can be released.
type Collaborator interface {
	apis.Logger
	Sync() error
	// Close flushes and closes the rotated log file, if any. Entries
	// written after Close reopen the file.
	Close() error
}

var (
	_ Collaborator = (*ZapLogger)(nil)
	_ Collaborator = (*LogrusLogger)(nil)
)

// New builds the logging collaborator described by cfg. Callers own the
// returned collaborator and Close it on shutdown.
func New(cfg Config) (Collaborator, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", BackendZap:
		file := cfg.file()
		l, err := newZapLogger(cfg, file)
		if err != nil {
			return nil, err
		}
		z := NewZap(l)
		if file != nil {
			z.closer = file
		}
		return z, nil
	case BackendLogrus:
		file := cfg.file()
		l, err := newLogrusLogger(cfg, file)
		if err != nil {
			return nil, err
		}
		lr := NewLogrus(l)
		if file != nil {
			lr.closer = file
		}
		return lr, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrBackendUnknown, cfg.Backend)
}

func (cfg Config) console() io.Writer {
	if cfg.Console != nil {
		return cfg.Console
	}
	return os.Stderr
}

func (cfg Config) file() *lumberjack.Logger {
	if cfg.File == "" {
		return nil
	}
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    max(1, cfg.MaxSize),
		MaxBackups: max(0, cfg.MaxBackups),
		MaxAge:     max(0, cfg.MaxAge),
		Compress:   cfg.Compress,
	}
}

func newZapLogger(cfg Config, file *lumberjack.Logger) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrLevelInvalid, cfg.Level)
		}
		lvl = parsed
	}
	atomicLevel := zap.NewAtomicLevelAt(lvl)

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	fileCfg := encoderCfg
	fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var consoleEncoder zapcore.Encoder
	if strings.EqualFold(cfg.Format, "json") {
		consoleEncoder = zapcore.NewJSONEncoder(fileCfg)
	} else {
		consoleCfg := encoderCfg
		consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		consoleEncoder = zapcore.NewConsoleEncoder(consoleCfg)
	}

	core := zapcore.NewCore(consoleEncoder, zapcore.Lock(zapcore.AddSync(cfg.console())), atomicLevel)
	if file != nil {
		core = zapcore.NewTee(
			core,
			zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(file), atomicLevel),
		)
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Dev {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}

	l := zap.New(core, opts...)
	if cfg.Name != "" {
		l = l.Named(cfg.Name)
	}
	return l, nil
}

func newLogrusLogger(cfg Config, file *lumberjack.Logger) (logrus.FieldLogger, error) {
	lvl := logrus.InfoLevel
	if cfg.Level != "" {
		parsed, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrLevelInvalid, cfg.Level)
		}
		lvl = parsed
	}

	l := logrus.New()
	l.SetLevel(lvl)
	l.SetReportCaller(cfg.Dev)

	var out io.Writer = cfg.console()
	if file != nil {
		out = io.MultiWriter(out, file)
	}
	l.SetOutput(out)

	// A shared writer means a shared formatter; files are always JSON.
	if file != nil || strings.EqualFold(cfg.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}

	if cfg.Name != "" {
		return l.WithField("logger", cfg.Name), nil
	}
	return l, nil
}
