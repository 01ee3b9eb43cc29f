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

// Package message resolves qerror codes to diagnostic strings.
//
// # Modes
//
// Two modes exist:
//
//   - Verbose (development): "Code(5): You can render over a existing
//     q:container. Skipping render()."
//   - Terse (production): "Code(5)"
//
// Terse output gives support staff a traceable identifier without shipping
// internal prose to end users. Decode and the qerror CLI turn it back into
// text.
//
// # Permissive lookup
//
// Codes are never validated here. A code outside the message table resolves
// to an empty text ("Code(999): " in Verbose mode) so that a wrong code at a
// failure site cannot crash the error path itself.
package message
