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

// Package apis defines the small contracts shared by qerror packages.
//
// The root package, the logging collaborators in logx and the transport
// adapters (grpcx, httpx) all meet here: the Logger collaborator contract,
// the CodedError classification, the Mapper from codes to transport
// statuses and the flat ErrorDescriptor view.
//
// This package must remain lightweight: interfaces and very small value
// types only.
package apis
