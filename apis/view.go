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

package apis

// ErrorView is the shape of a classified error that is safe to expose to a
// downstream client.
//
// The upstream body is included verbatim. Callers that relay errors from a
// document store they do not trust should drop it before writing.
type ErrorView struct {
	// Kind is the kind identifier, e.g. "Conflict".
	Kind string `json:"kind"`

	// Code is the upstream HTTP status, 0 when unknown.
	Code int `json:"code,omitempty"`

	// Message is the human-friendly message.
	Message string `json:"message,omitempty"`

	// Body is the raw upstream body.
	Body string `json:"body,omitempty"`
}
