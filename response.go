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

// Package cerrors classifies failed HTTP responses of a document-store client
// into typed error values.
//
// Every status listed in package status has its own error kind (NotFound,
// Conflict, InternalServerError, ...). Any other status is classified as
// RequestFailed. All kinds share one carrier type, *RequestError, which keeps
// the response and renders its message lazily:
//
//	resp := &cerrors.Response{Code: 404, Body: []byte(`{"error":"not_found"}`)}
//	err := cerrors.Dispatch(resp)
//
//	errors.Is(err, cerrors.NotFound)      // true
//	errors.Is(err, cerrors.RequestFailed) // true, every status kind is a RequestFailed
//	err.Error()                           // `404 Not Found: {"error":"not_found"}`
//
// The status → kind table (ExceptionsMap) is seeded from the status table
// and may be extended at runtime with Register. The process-wide table is
// Exceptions; independent tables can be built with NewExceptionsMap.
//
// Failures below HTTP, where no status was ever received, are reported as
// *ServerBrokeConnection and never go through Dispatch.
package cerrors

// Response is the part of an HTTP response an error keeps around.
//
// The transport layer fills it in; this package only reads it. Headers are
// flattened to one value per name.
type Response struct {
	Code    int
	Headers map[string]string
	Body    []byte
}
