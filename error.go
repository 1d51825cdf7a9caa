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

package cerrors

import (
	"errors"
)

// Error is the contract shared by every HTTP-classified error.
//
// Accessors never fail: when no response is attached HTTPCode reports
// false and HTTPHeaders / HTTPBody return nil.
type Error interface {
	error

	// HTTPCode returns the status of the attached response.
	HTTPCode() (int, bool)

	// HTTPHeaders returns the headers of the attached response.
	HTTPHeaders() map[string]string

	// HTTPBody returns the raw body of the attached response.
	HTTPBody() []byte

	// Message returns the explicit message if one was given, otherwise the
	// kind's default message computed from the current response.
	Message() string

	// Describe returns "{Message()}: {HTTPBody()}".
	Describe() string
}

// RequestError is the single carrier type behind every kind.
//
// It holds the kind, an optional response and an optional message
// override. The default message is computed on each call from whatever
// response is attached at that moment.
//
// A RequestError is owned by the goroutine that received it; SetResponse is
// not synchronised.
type RequestError struct {
	kind     *Kind
	response *Response

	message    string
	hasMessage bool
}

var _ Error = (*RequestError)(nil)

// Kind returns the kind of e. A zero RequestError reports RequestFailed.
func (e *RequestError) Kind() *Kind {
	if e == nil || e.kind == nil {
		return RequestFailed
	}
	return e.kind
}

// KindName returns the identifier of e's kind.
func (e *RequestError) KindName() string {
	return string(e.Kind().name)
}

// Response returns the attached response, or nil.
func (e *RequestError) Response() *Response {
	if e == nil {
		return nil
	}
	return e.response
}

// SetResponse replaces the attached response in place. The default message
// follows the new response on the next read.
func (e *RequestError) SetResponse(resp *Response) {
	e.response = resp
}

// HTTPCode implements Error.
func (e *RequestError) HTTPCode() (int, bool) {
	if e == nil || e.response == nil {
		return 0, false
	}
	return e.response.Code, true
}

// HTTPHeaders implements Error.
func (e *RequestError) HTTPHeaders() map[string]string {
	if e == nil || e.response == nil {
		return nil
	}
	return e.response.Headers
}

// HTTPBody implements Error.
func (e *RequestError) HTTPBody() []byte {
	if e == nil || e.response == nil {
		return nil
	}
	return e.response.Body
}

// Message implements Error.
func (e *RequestError) Message() string {
	if e == nil {
		return ""
	}
	if e.hasMessage {
		return e.message
	}
	code, ok := e.HTTPCode()
	return e.Kind().defaultMessage(code, ok)
}

// Describe implements Error.
func (e *RequestError) Describe() string {
	return e.Message() + ": " + string(e.HTTPBody())
}

// Error implements the built-in error interface.
//
// Status kinds render Describe, so the body is visible wherever the error
// is printed. RequestFailed renders the bare message.
func (e *RequestError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Kind().fallback {
		return e.Message()
	}
	return e.Describe()
}

// Is reports whether target is e's kind. Every RequestError also matches
// RequestFailed, so callers can catch all HTTP failures with one check.
func (e *RequestError) Is(target error) bool {
	k, ok := target.(*Kind)
	if !ok {
		return false
	}
	return k == RequestFailed || k == e.Kind()
}

// WithMessage returns a shallow copy of e with an explicit message.
// The original error is not modified.
func (e *RequestError) WithMessage(msg string) *RequestError {
	cp := *e
	cp.message = msg
	cp.hasMessage = true
	return &cp
}

// WithResponse returns a shallow copy of e carrying resp.
func (e *RequestError) WithResponse(resp *Response) *RequestError {
	cp := *e
	cp.response = resp
	return &cp
}

// KindOf returns the kind of the first error in err's chain that has one.
func KindOf(err error) (*Kind, bool) {
	var k interface{ Kind() *Kind }
	if errors.As(err, &k) {
		return k.Kind(), true
	}
	return nil, false
}
