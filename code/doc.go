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

// Package code is the registry of qerror error codes.
//
// A code is a small, dense integer that identifies one failure condition
// recognized by the host runtime (serialization, rendering, QRL loading,
// context lookup, ...). Codes are:
//
//   - stable: once assigned, a value never changes meaning, because logged
//     and persisted diagnostics refer to the bare number;
//   - append-only: new conditions get the next free value;
//   - named: every value has a unique snake_case symbolic name that can be
//     used in configs, CLIs and wire payloads instead of the number.
//
// This package defines the values, their names and the functions that turn
// user input (a decimal value or a name) back into a Code. The human text
// for each code lives in package message.
package code
