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

// Package adapter converts classified errors into the flat view types of
// package apis.
//
// The converters accept any error and look for the apis interfaces, so
// caller-defined kinds registered in a cerrors.ExceptionsMap convert the
// same way as the built-in ones.
package adapter

import (
	"errors"

	"dirpx.dev/cerrors/apis"
)

// fallbackKind is reported for errors that carry a code but do not name
// their kind.
const fallbackKind = "RequestFailed"

// KindName returns the kind identifier of err, or "" when err carries
// neither a kind nor an HTTP code.
func KindName(err error) string {
	var ke apis.KindedError
	if errors.As(err, &ke) {
		return ke.KindName()
	}
	var ce apis.CodedError
	if errors.As(err, &ce) {
		return fallbackKind
	}
	return ""
}

// HTTPCode returns the HTTP status carried by err's chain.
func HTTPCode(err error) (int, bool) {
	var ce apis.CodedError
	if errors.As(err, &ce) {
		return ce.HTTPCode()
	}
	return 0, false
}

// Message returns err's message without the response body, falling back to
// err.Error().
func Message(err error) string {
	var me apis.MessagedError
	if errors.As(err, &me) {
		return me.Message()
	}
	return err.Error()
}

// ToDescriptor converts a classified error together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message
// bus propagation.
func ToDescriptor(err error, st apis.Status) apis.ErrorDescriptor {
	if err == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Kind:       KindName(err),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    Message(err),
	}
}

// ToView converts a classified error into a public ErrorView. No
// redaction is performed; the upstream body is copied as-is.
func ToView(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{
		Kind:    KindName(err),
		Message: Message(err),
	}
	if c, ok := HTTPCode(err); ok {
		v.Code = c
	}
	var be apis.BodiedError
	if errors.As(err, &be) {
		v.Body = string(be.HTTPBody())
	}
	return v
}
