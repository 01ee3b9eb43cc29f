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

// Package logx provides the logging collaborators that qerror delegates to.
//
// A collaborator receives the resolved diagnostic and the caller's context
// parts, writes one error-level entry and returns a *Raised error value.
// Two backends are available:
//
//   - ZapLogger, over go.uber.org/zap (the default);
//   - LogrusLogger, over github.com/sirupsen/logrus.
//
// New builds either one from a Config, optionally teeing into a rotated
// JSON file via lumberjack:
//
//	c, err := logx.New(logx.Config{Level: "warn", File: "/var/log/app/qerror.log"})
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//	r := qerror.New(qerror.WithLogger(c), qerror.WithMode(message.Verbose))
package logx
