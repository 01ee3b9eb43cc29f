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

package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/qerror"
	"dirpx.dev/qerror/adapter"
	"dirpx.dev/qerror/apis"
	"dirpx.dev/qerror/code"
	"dirpx.dev/qerror/mapper"
)

// ErrNoErrorInfo is returned by Decode when a body carries no qerror
// ErrorInfo detail.
var ErrNoErrorInfo = errors.New("qerror: response carries no qerror ErrorInfo")

// Writer is a thin adapter that knows how to turn a qerror.Error into an HTTP
// response using the provided status mapper. The zero Writer uses
// mapper.Default().
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes the google.rpc.Status built by adapter.ToStatus and writes
// it to the response writer. The HTTP status is resolved via the Mapper.
//
// The body carries the resolved diagnostic only; context parts never leave
// the process.
func (w Writer) Write(rw http.ResponseWriter, err *qerror.Error) {
	if err == nil {
		return
	}

	st := mapper.OrDefault(w.Mapper).Status(err.Code)

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(st.HTTP)

	// protojson keeps the Any detail's @type, which Decode relies on.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false,
	}).Marshal(adapter.ToStatus(err, st))
	_, _ = rw.Write(b)
}

// Handler adapts an error-returning handler to http.Handler. A *qerror.Error
// in the returned chain is written with w; any other error becomes a plain
// 500.
func Handler(w Writer, fn func(http.ResponseWriter, *http.Request) error) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		err := fn(rw, r)
		if err == nil {
			return
		}
		var qe *qerror.Error
		if errors.As(err, &qe) {
			w.Write(rw, qe)
			return
		}
		http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	})
}

// Middleware returns a gin middleware that renders the most recent
// *qerror.Error attached to the context via c.Error. Handlers that already
// wrote a response are left alone.
func Middleware(w Writer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			var qe *qerror.Error
			if errors.As(c.Errors[i].Err, &qe) {
				w.Write(c.Writer, qe)
				c.Abort()
				return
			}
		}
	}
}

// Decode reads a body written by Writer and returns the registry code and
// the resolved diagnostic it carries.
func Decode(body []byte) (code.Code, string, error) {
	var st spb.Status
	if err := protojson.Unmarshal(body, &st); err != nil {
		return 0, "", err
	}
	for _, d := range st.GetDetails() {
		var info errdetails.ErrorInfo
		if d.UnmarshalTo(&info) != nil {
			continue
		}
		if c, ok := adapter.CodeFromErrorInfo(&info); ok {
			return c, st.GetMessage(), nil
		}
	}
	return 0, st.GetMessage(), ErrNoErrorInfo
}
