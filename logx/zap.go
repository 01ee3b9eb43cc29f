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
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"dirpx.dev/qerror/apis"
	"dirpx.dev/qerror/message"
)

var _ apis.Logger = (*ZapLogger)(nil)

// ZapLogger is the zap-backed logging collaborator.
type ZapLogger struct {
	logger *zap.Logger
	closer io.Closer
}

// NewZap wraps l. A nil logger yields a collaborator that raises without
// logging.
func NewZap(l *zap.Logger) *ZapLogger {
	if l == nil {
		return &ZapLogger{logger: zap.NewNop()}
	}
	return &ZapLogger{logger: l}
}

// LogAndRaise logs msg at error level with the parts attached as a field
// and returns a *Raised carrying both.
func (z *ZapLogger) LogAndRaise(msg string, parts ...any) error {
	err := newRaised(msg, parts)

	fields := make([]zap.Field, 0, 3)
	if c, ok := message.Decode(msg); ok {
		fields = append(fields, zap.Int("code", int(c)))
	}
	if len(parts) > 0 {
		fields = append(fields, zap.Any("parts", parts))
	}
	if o := err.Origin(); o != "" {
		fields = append(fields, zap.String("origin", o))
	}
	z.logger.Error(msg, fields...)
	return err
}

// Sync flushes buffered log entries.
func (z *ZapLogger) Sync() error {
	return z.logger.Sync()
}

// Close flushes buffered entries and closes the log file opened by New.
// Collaborators built with NewZap own no file; Close only flushes.
func (z *ZapLogger) Close() error {
	err := z.Sync()
	if z.closer != nil {
		err = multierr.Append(err, z.closer.Close())
	}
	return err
}
