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

// Package reason names qerror codes on the wire.
//
// Where the numeric code is compact, the reason is the stable, readable
// identifier carried in google.rpc.ErrorInfo.reason, e.g.:
//
//   - "CANNOT_RENDER_OVER_EXISTING_CONTAINER" for code 5
//   - "QRL_MISSING_CHUNK" for code 31
//
// Codes outside the registry travel as "UNKNOWN".
package reason
