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
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithDefault sets or replaces the default gRPC code for an HTTP status.
func WithDefault(httpCode int, grpc codes.Code) Option {
	return func(b *builder) {
		b.pending = append(b.pending, pendingRule{pendingDefault, rule{httpCode, grpc}})
	}
}

// WithOverride registers an exact gRPC code for an HTTP status. Overrides
// take precedence over defaults.
func WithOverride(httpCode int, grpc codes.Code) Option {
	return func(b *builder) {
		b.pending = append(b.pending, pendingRule{pendingOverride, rule{httpCode, grpc}})
	}
}

// WithFallback replaces the code used for statuses that have no rule at
// all. The library fallback is codes.Unknown.
func WithFallback(grpc codes.Code) Option {
	return func(b *builder) {
		b.pending = append(b.pending, pendingRule{pendingFallback, rule{0, grpc}})
	}
}
