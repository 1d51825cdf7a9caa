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

package status

// Known statuses.
//
// The list mirrors the set of responses a CouchDB server is expected to
// produce. Codes that are not listed here are still valid HTTP statuses;
// they simply have no dedicated error kind and are classified by the
// fallback kind instead.
const (
	// 2xx: success codes. They are part of the table so that a caller that
	// treats an unexpected success as an error still gets a named kind.
	OK       Code = 200
	Created  Code = 201
	Accepted Code = 202

	// 3xx
	NotModified Code = 304

	// 4xx: request problems.
	BadRequest                   Code = 400
	Unauthorized                 Code = 401
	Forbidden                    Code = 403
	NotFound                     Code = 404
	MethodNotAllowed             Code = 405
	NotAcceptable                Code = 406
	Conflict                     Code = 409 // document update conflict
	PreconditionFailed           Code = 412 // database already exists
	UnsupportedMediaType         Code = 415
	RequestedRangeNotSatisfiable Code = 416
	ExpectationFailed            Code = 417

	// 5xx
	InternalServerError Code = 500
)

// table is the ordered source of truth. Order matters: it is the order in
// which kinds are derived, and a later row wins if two rows ever derive the
// same identifier.
var table = []Entry{
	{OK, "OK"},
	{Created, "Created"},
	{Accepted, "Accepted"},

	{NotModified, "Not Modified"},

	{BadRequest, "Bad Request"},
	{Unauthorized, "Unauthorized"},
	{Forbidden, "Forbidden"},
	{NotFound, "Not Found"},
	{MethodNotAllowed, "Method Not Allowed"},
	{NotAcceptable, "Not Acceptable"},
	{Conflict, "Conflict"},
	{PreconditionFailed, "Precondition Failed"},
	{UnsupportedMediaType, "Unsupported Media Type"},
	{RequestedRangeNotSatisfiable, "Requested Range Not Satisfiable"},
	{ExpectationFailed, "Expectation Failed"},

	{InternalServerError, "Internal Server Error"},
}
