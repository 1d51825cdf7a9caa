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

// Option is a functional option applied when an error is constructed.
// It always takes a *RequestError and returns a (possibly new) one.
type Option func(*RequestError) *RequestError

// WithMessageOption sets an explicit message that replaces the kind's
// default. Intended to be used with Kind.New.
func WithMessageOption(msg string) Option {
	return func(e *RequestError) *RequestError {
		return e.WithMessage(msg)
	}
}

// WithResponseOption attaches a response on construction.
func WithResponseOption(resp *Response) Option {
	return func(e *RequestError) *RequestError {
		return e.WithResponse(resp)
	}
}
