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

package qerror

import (
	"dirpx.dev/qerror/apis"
	"dirpx.dev/qerror/message"
)

// Option is a functional option for constructing a Raiser.
type Option func(*Raiser)

// WithMode sets the diagnostic mode used to resolve messages.
func WithMode(m message.Mode) Option {
	return func(r *Raiser) {
		r.resolver = message.New(m)
	}
}

// WithDev is WithMode(message.ModeFor(dev)), for callers that carry the
// usual "development build" flag.
func WithDev(dev bool) Option {
	return WithMode(message.ModeFor(dev))
}

// WithResolver sets the resolver directly.
func WithResolver(res message.Resolver) Option {
	return func(r *Raiser) {
		r.resolver = res
	}
}

// WithLogger sets the logging collaborator. A nil logger is ignored.
func WithLogger(l apis.Logger) Option {
	return func(r *Raiser) {
		if l != nil {
			r.logger = l
		}
	}
}
