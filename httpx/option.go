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

package httpx

import (
	"dirpx.dev/cerrors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultMaxBodyBytes bounds how much of an error body is read when no
// WithMaxBodyBytes option is given.
const DefaultMaxBodyBytes int64 = 1 << 20

// Option configures FromResponse, Check and Do.
type Option func(*options)

type options struct {
	log        zerolog.Logger
	maxBody    int64
	exceptions *cerrors.ExceptionsMap
}

func newOptions(opts []Option) options {
	o := options{
		log:        log.Logger,
		maxBody:    DefaultMaxBodyBytes,
		exceptions: cerrors.Exceptions,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger used for classification traces (debug level).
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMaxBodyBytes bounds the body kept on the error. Values <= 0 are
// ignored.
func WithMaxBodyBytes(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBody = n
		}
	}
}

// WithExceptions classifies with m instead of cerrors.Exceptions.
func WithExceptions(m *cerrors.ExceptionsMap) Option {
	return func(o *options) {
		if m != nil {
			o.exceptions = m
		}
	}
}
