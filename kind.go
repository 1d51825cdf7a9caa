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
	"fmt"
	"strconv"

	"dirpx.dev/cerrors/kind"
)

// Kind identifies one class of HTTP failure.
//
// A *Kind is comparable by pointer and implements error, so it can be used
// directly as an errors.Is target:
//
//	if errors.Is(err, cerrors.Conflict) { ... }
//
// Kinds for the known statuses are created during package initialisation.
// Extension code creates its own with NewKind.
type Kind struct {
	name     kind.Name
	code     int
	reason   string
	fallback bool
}

// RequestFailed is the fallback kind, used for every status that has no
// entry in the ExceptionsMap. Its message is "HTTP status code {code}".
var RequestFailed = &Kind{name: "RequestFailed", fallback: true}

// NewKind defines a custom kind. The default message of its errors is
// "{code} {reason}", exactly like the built-in status kinds.
//
// The kind is not registered anywhere; pass it to RegisterKind to have
// Dispatch produce it.
func NewKind(name, reason string) (*Kind, error) {
	n, err := kind.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("cerrors: kind %q: %w", name, err)
	}
	return &Kind{name: n, reason: reason}, nil
}

// MustNewKind is the panic-on-error variant of NewKind, meant for
// package-level var blocks.
func MustNewKind(name, reason string) *Kind {
	k, err := NewKind(name, reason)
	if err != nil {
		panic(err)
	}
	return k
}

// Name returns the kind identifier, e.g. "NotFound".
func (k *Kind) Name() kind.Name { return k.name }

// Reason returns the reason phrase the kind was derived from. It is empty
// for RequestFailed.
func (k *Kind) Reason() string { return k.reason }

// Code returns the status the kind was derived from, or 0 for RequestFailed
// and custom kinds.
func (k *Kind) Code() int { return k.code }

// Error implements error so that a kind can be an errors.Is target.
func (k *Kind) Error() string { return string(k.name) }

// String returns the kind identifier.
func (k *Kind) String() string { return string(k.name) }

// New creates an error of this kind carrying resp. resp may be nil.
func (k *Kind) New(resp *Response, opts ...Option) *RequestError {
	e := &RequestError{kind: k, response: resp}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Construct is New without options, shaped as a Constructor.
func (k *Kind) Construct(resp *Response) Error {
	return k.New(resp)
}

// defaultMessage renders the message used when no override is set.
// It is evaluated on every read, never cached.
func (k *Kind) defaultMessage(code int, hasCode bool) string {
	if k.fallback {
		if !hasCode {
			return "HTTP status code (none)"
		}
		return "HTTP status code " + strconv.Itoa(code)
	}
	return kind.Template(code, hasCode, k.reason)
}
