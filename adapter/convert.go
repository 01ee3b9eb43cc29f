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

package adapter

import (
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/qerror"
	"dirpx.dev/qerror/apis"
	"dirpx.dev/qerror/code"
	"dirpx.dev/qerror/message"
	"dirpx.dev/qerror/reason"
)

// Domain is the ErrorInfo domain of every qerror error.
const Domain = "qerror.dirpx.dev"

// Metadata keys set on ErrorInfo.
const (
	MetaCode    = "code"
	MetaMessage = "message"
)

// ToErrorInfo converts a raised error into a google.rpc.ErrorInfo.
//
// The reason is the upper-cased symbolic name of the code (UNKNOWN for
// values outside the registry); the numeric code and the resolved message
// travel in the metadata. Context parts are not exported: they are
// arbitrary values meant for logs, not for clients.
func ToErrorInfo(e *qerror.Error) *errdetails.ErrorInfo {
	if e == nil {
		return nil
	}
	return &errdetails.ErrorInfo{
		Reason: reason.For(e.Code).String(),
		Domain: Domain,
		Metadata: map[string]string{
			MetaCode:    strconv.Itoa(int(e.Code)),
			MetaMessage: e.Message,
		},
	}
}

// CodeFromErrorInfo recovers the registry code from an ErrorInfo produced
// by ToErrorInfo. Infos from other domains are rejected.
func CodeFromErrorInfo(info *errdetails.ErrorInfo) (code.Code, bool) {
	if info == nil || info.GetDomain() != Domain {
		return 0, false
	}
	if s, ok := info.GetMetadata()[MetaCode]; ok {
		if n, err := strconv.Atoi(s); err == nil {
			return code.Code(n), true
		}
	}
	if r, err := reason.Parse(info.GetReason()); err == nil {
		if c, ok := r.Code(); ok {
			return c, true
		}
	}
	// Last resort: the resolved message itself names the code.
	return message.Decode(info.GetMetadata()[MetaMessage])
}

// ToStatus converts a raised error and its resolved transport status into
// a google.rpc.Status carrying the ErrorInfo as its only detail.
//
// The status message is the resolved diagnostic, so terse builds expose
// only "Code(N)".
func ToStatus(e *qerror.Error, st apis.Status) *spb.Status {
	if e == nil {
		return nil
	}
	out := &spb.Status{
		Code:    int32(st.GRPC),
		Message: e.Message,
	}
	if info, err := anypb.New(ToErrorInfo(e)); err == nil {
		out.Details = append(out.Details, info)
	}
	return out
}

// ToDescriptor describes code c with its verbose text and mapped statuses.
func ToDescriptor(c code.Code, m apis.Mapper) apis.ErrorDescriptor {
	d := apis.ErrorDescriptor{
		Code:    int(c),
		Name:    c.Name(),
		Message: message.Lookup(c),
	}
	if m != nil {
		st := m.Status(c)
		d.HTTPStatus = st.HTTP
		d.GRPCCode = int(st.GRPC)
	}
	return d
}
