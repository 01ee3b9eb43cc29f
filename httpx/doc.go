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

// Package httpx writes qerror errors as JSON HTTP responses.
//
// The body is the protojson form of a google.rpc.Status whose only detail
// is a google.rpc.ErrorInfo, so HTTP and gRPC clients read the same shape:
//
//	{
//	  "code": 6,
//	  "message": "Code(5)",
//	  "details": [{
//	    "@type": "type.googleapis.com/google.rpc.ErrorInfo",
//	    "reason": "CANNOT_RENDER_OVER_EXISTING_CONTAINER",
//	    "domain": "qerror.dirpx.dev",
//	    "metadata": {"code": "5", "message": "Code(5)"}
//	  }]
//	}
//
// Writer serves net/http code and Middleware serves gin routers.
package httpx
