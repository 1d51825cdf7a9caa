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

import (
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe projection of HTTP statuses onto
// gRPC codes. It is used when an HTTP-classified error has to leave the
// process over gRPC.
type Mapper interface {
	// GRPCStatus returns the gRPC code for an HTTP status.
	GRPCStatus(httpCode int) codes.Code

	// Status resolves the pair in a single call.
	Status(httpCode int) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(httpCode int) string
}

// Status is a resolved pair of transport statuses for a single error.
type Status struct {
	HTTP int        // HTTP status as received from upstream.
	GRPC codes.Code // Resolved gRPC status code.
}
