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

	"github.com/sirupsen/logrus"

	"dirpx.dev/qerror/apis"
	"dirpx.dev/qerror/message"
)

var _ apis.Logger = (*LogrusLogger)(nil)

// LogrusLogger is the logrus-backed logging collaborator.
type LogrusLogger struct {
	logger logrus.FieldLogger
	closer io.Closer
}

// NewLogrus wraps l. A nil logger falls back to the logrus standard logger.
func NewLogrus(l logrus.FieldLogger) *LogrusLogger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &LogrusLogger{logger: l}
}

// LogAndRaise logs msg at error level with the parts attached as a field
// and returns a *Raised carrying both.
func (l *LogrusLogger) LogAndRaise(msg string, parts ...any) error {
	err := newRaised(msg, parts)

	fields := logrus.Fields{}
	if c, ok := message.Decode(msg); ok {
		fields["code"] = int(c)
	}
	if len(parts) > 0 {
		fields["parts"] = parts
	}
	if o := err.Origin(); o != "" {
		fields["origin"] = o
	}
	l.logger.WithFields(fields).Error(msg)
	return err
}

// Sync is a no-op; logrus writes synchronously.
func (l *LogrusLogger) Sync() error { return nil }

// Close closes the log file opened by New, if any.
func (l *LogrusLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
