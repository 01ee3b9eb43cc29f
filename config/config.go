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

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"google.golang.org/grpc/codes"

	"dirpx.dev/qerror"
	"dirpx.dev/qerror/apis"
	"dirpx.dev/qerror/code"
	"dirpx.dev/qerror/logx"
	"dirpx.dev/qerror/mapper"
	"dirpx.dev/qerror/message"
)

// EnvPrefix prefixes every environment override, e.g. QERROR_MODE or
// QERROR_LOG_LEVEL.
const EnvPrefix = "QERROR"

// ErrGRPCCodeInvalid is returned when a mapping names an unknown gRPC code.
var ErrGRPCCodeInvalid = errors.New("qerror: invalid gRPC code")

// Config is the process configuration of qerror.
type Config struct {
	// Mode is the diagnostic mode, fixed for every Raiser built from this
	// Config.
	Mode message.Mode `mapstructure:"mode"`

	// Log configures the logging collaborator.
	Log logx.Config `mapstructure:"log"`

	// Mapping adjusts transport statuses.
	Mapping Mapping `mapstructure:"mapping"`
}

// Mapping holds per-code status overrides keyed by code number or name.
type Mapping struct {
	// HTTP maps a code to an HTTP status, e.g. {"dynamic_import_failed": 502}.
	HTTP map[string]int `mapstructure:"http"`

	// GRPC maps a code to a gRPC code name ("NOT_FOUND", "NotFound") or
	// number.
	GRPC map[string]string `mapstructure:"grpc"`

	// HTTPFamily and GRPCFamily map snake_case name prefixes, e.g.
	// {"qrl": 502} for every qrl_* code.
	HTTPFamily map[string]int    `mapstructure:"http_family"`
	GRPCFamily map[string]string `mapstructure:"grpc_family"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", message.Terse.String())
	v.SetDefault("log.backend", logx.BackendZap)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)
	v.SetDefault("log.name", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.dev", false)
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
	}
	return v
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

// Load reads the configuration.
//
// Defaults apply first, then the file at path (yaml, json or toml, chosen
// by extension; skipped when path is empty), then QERROR_* environment
// variables.
func Load(path string) (Config, error) {
	v := newViper(path)
	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	return decode(v)
}

// Watch loads the file at path and calls fn with a freshly decoded Config
// every time the file changes. Raisers built earlier keep their mode;
// callers swap in a new Raiser from the Config they receive.
//
// The underlying fsnotify watch lives until the process exits and cannot
// be stopped. Call Watch once at startup, never per request.
func Watch(path string, fn func(Config, error)) (Config, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := decode(v)
	if err != nil {
		return Config{}, err
	}
	v.OnConfigChange(func(fsnotify.Event) {
		fn(decode(v))
	})
	v.WatchConfig()
	return cfg, nil
}

// Raiser builds a Raiser and its logging collaborator from cfg. The
// collaborator is returned so the caller can Close it on shutdown.
func (cfg Config) Raiser() (*qerror.Raiser, logx.Collaborator, error) {
	l, err := logx.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return qerror.New(qerror.WithMode(cfg.Mode), qerror.WithLogger(l)), l, nil
}

// Mapper builds the status mapper with the configured overrides applied on
// top of the built-in defaults.
func (cfg Config) Mapper() (apis.Mapper, error) {
	var opts []mapper.Option
	for k, status := range cfg.Mapping.HTTP {
		c, err := code.Parse(k)
		if err != nil {
			return nil, fmt.Errorf("config: mapping.http %q: %w", k, err)
		}
		opts = append(opts, mapper.WithHTTPOverride(c, status))
	}
	for k, name := range cfg.Mapping.GRPC {
		c, err := code.Parse(k)
		if err != nil {
			return nil, fmt.Errorf("config: mapping.grpc %q: %w", k, err)
		}
		g, err := ParseGRPCCode(name)
		if err != nil {
			return nil, fmt.Errorf("config: mapping.grpc %q: %w", k, err)
		}
		opts = append(opts, mapper.WithGRPCOverride(c, int(g)))
	}
	for prefix, status := range cfg.Mapping.HTTPFamily {
		opts = append(opts, mapper.WithHTTPFamily(prefix, status))
	}
	for prefix, name := range cfg.Mapping.GRPCFamily {
		g, err := ParseGRPCCode(name)
		if err != nil {
			return nil, fmt.Errorf("config: mapping.grpc_family %q: %w", prefix, err)
		}
		opts = append(opts, mapper.WithGRPCFamily(prefix, int(g)))
	}
	return mapper.New(opts...)
}

// ParseGRPCCode parses a gRPC code given as a number, a Go name
// ("NotFound") or a canonical name ("NOT_FOUND"). Matching is
// case-insensitive.
func ParseGRPCCode(s string) (codes.Code, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > int(codes.Unauthenticated) {
			return 0, fmt.Errorf("%w: %d", ErrGRPCCodeInvalid, n)
		}
		return codes.Code(n), nil
	}
	want := strings.ToLower(strings.ReplaceAll(s, "_", ""))
	if want == "cancelled" {
		want = "canceled"
	}
	for c := codes.OK; c <= codes.Unauthenticated; c++ {
		if strings.ToLower(c.String()) == want {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrGRPCCodeInvalid, s)
}
