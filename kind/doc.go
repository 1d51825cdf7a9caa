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

// Package kind derives and validates error kind identifiers.
//
// Every known HTTP status gets an error kind named after its reason phrase
// with the separators removed: "Not Found" becomes "NotFound" and
// "Requested Range Not Satisfiable" becomes "RequestedRangeNotSatisfiable".
// The identifier is what callers see in logs, in gRPC error details and in
// the diagnostic CLI, so the derivation must be deterministic.
//
// The package also owns the default message template "{code} {reason}" and
// the rule that the code prefix is dropped when no code is available.
package kind
