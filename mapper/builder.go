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

type rule struct {
	http int
	grpc codes.Code
}

type builder struct {
	// defaults holds per-status gRPC defaults, seeded from defaultGRPC.
	defaults map[int]codes.Code
	// overrides holds exact per-status overrides (higher than defaults).
	overrides map[int]codes.Code

	// pending keeps option input in order so New can report the first
	// invalid one.
	pending []pendingRule

	// fallback is used for statuses with neither override nor default.
	fallback codes.Code
}

type pendingKind uint8

const (
	pendingDefault pendingKind = iota
	pendingOverride
	pendingFallback
)

type pendingRule struct {
	kind pendingKind
	rule
}

// newBuilder creates an empty builder with maps pre-sized to hold the
// built-in defaults.
func newBuilder() *builder {
	return &builder{
		defaults:  make(map[int]codes.Code, len(defaultGRPC)),
		overrides: make(map[int]codes.Code),
		fallback:  codes.Unknown,
	}
}
