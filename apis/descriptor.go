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

// ErrorDescriptor is a flat description of a classified error together
// with its resolved transport statuses. It is meant for structured logging
// and for propagation over message buses.
type ErrorDescriptor struct {
	// Kind is the kind identifier, e.g. "NotFound" or "RequestFailed".
	Kind string `json:"kind"`

	// HTTPStatus is the upstream status. 0 means no response was attached.
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC projection of HTTPStatus.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the error message, without the response body.
	Message string `json:"message,omitempty"`
}
