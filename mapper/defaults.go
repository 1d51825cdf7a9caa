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

package mapper

import (
	"dirpx.dev/cerrors/status"
	"google.golang.org/grpc/codes"
)

// defaultGRPC defines the library's built-in gRPC codes for the known
// statuses. Callers may override any of them when building a Mapper.
var defaultGRPC = map[int]codes.Code{
	// 2xx/3xx: the server succeeded but the caller treated the response as
	// a failure; there is no meaningful canonical code.
	status.OK.Int():          codes.Unknown,
	status.Created.Int():     codes.Unknown,
	status.Accepted.Int():    codes.Unknown,
	status.NotModified.Int(): codes.FailedPrecondition, // If-None-Match matched.

	// 4xx
	status.BadRequest.Int():                   codes.InvalidArgument,
	status.Unauthorized.Int():                 codes.Unauthenticated,
	status.Forbidden.Int():                    codes.PermissionDenied,
	status.NotFound.Int():                     codes.NotFound,
	status.MethodNotAllowed.Int():             codes.Unimplemented,
	status.NotAcceptable.Int():                codes.InvalidArgument,
	status.Conflict.Int():                     codes.Aborted,            // Revision mismatch; re-read and retry is up to the caller.
	status.PreconditionFailed.Int():           codes.FailedPrecondition, // e.g. database already exists.
	status.UnsupportedMediaType.Int():         codes.InvalidArgument,
	status.RequestedRangeNotSatisfiable.Int(): codes.OutOfRange,
	status.ExpectationFailed.Int():            codes.FailedPrecondition,

	// 5xx
	status.InternalServerError.Int(): codes.Internal,
}
