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

// CodedError is an error that may carry the HTTP status it was classified
// from.
type CodedError interface {
	error

	// HTTPCode returns the status, or false when no response is attached.
	HTTPCode() (int, bool)
}

// KindedError is an error that names its kind, e.g. "NotFound".
//
// Adapters use the name as a stable, machine-readable reason in error
// details. Errors that do not implement it are reported as "RequestFailed"
// when they carry a code and are passed through otherwise.
type KindedError interface {
	error

	// KindName returns the kind identifier. It is never empty.
	KindName() string
}

// MessagedError is an error that separates its human message from the
// response body that Error() may embed.
type MessagedError interface {
	error

	// Message returns the message without the body.
	Message() string
}

// BodiedError is an error that exposes the raw response body.
type BodiedError interface {
	error

	// HTTPBody returns the body, or nil when no response is attached.
	HTTPBody() []byte
}
