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
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/cerrors/apis"
	"dirpx.dev/cerrors/status"
	"google.golang.org/grpc/codes"
)

// ErrGRPCCodeInvalid is returned when an option maps a status to codes.OK
// or to a value outside the canonical gRPC range. An error must never
// project onto OK: status.New(codes.OK, ...).Err() is nil.
var ErrGRPCCodeInvalid = errors.New("cerrors: invalid gRPC code")

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults.
//  2. Apply user-provided options.
//  3. Validate every status and gRPC code the options supplied.
//  4. Freeze all maps into fresh copies.
func New(opts ...Option) (apis.Mapper, error) {
	// (1) Seed with package-level defaults, copied so that the builder
	// never aliases defaultGRPC.
	b := newBuilder()
	for k, v := range defaultGRPC {
		b.defaults[k] = v
	}

	// (2) Collect user options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate and apply in the order given; later options win.
	for _, p := range b.pending {
		if err := validGRPC(p.grpc); err != nil {
			return nil, fmt.Errorf("mapper: status %d: %w", p.http, err)
		}
		if p.kind == pendingFallback {
			b.fallback = p.grpc
			continue
		}
		if err := status.Validate(p.http); err != nil {
			return nil, fmt.Errorf("mapper: %w", err)
		}
		switch p.kind {
		case pendingDefault:
			b.defaults[p.http] = p.grpc
		case pendingOverride:
			b.overrides[p.http] = p.grpc
		}
	}

	// (4) Freeze.
	return &mapper{
		defaults:  freeze(b.defaults),
		overrides: freeze(b.overrides),
		fallback:  b.fallback,
	}, nil
}

// mapper is an immutable apis.Mapper. Lookups are two map reads and safe for
// concurrent use once constructed.
type mapper struct {
	// defaults holds the base gRPC code for a status.
	defaults map[int]codes.Code

	// overrides holds explicit codes that take precedence over defaults.
	overrides map[int]codes.Code

	// fallback is used when there is no rule at all for a status.
	fallback codes.Code
}

// GRPCStatus resolves a gRPC code for the given HTTP status.
//
// Resolution order (highest to lowest):
//  1. exact override;
//  2. default (library or user overridden);
//  3. fallback.
func (m *mapper) GRPCStatus(httpCode int) codes.Code {
	if v, ok := m.overrides[httpCode]; ok {
		return v
	}
	if v, ok := m.defaults[httpCode]; ok {
		return v
	}
	return m.fallback
}

// Status resolves the HTTP/gRPC pair for httpCode.
func (m *mapper) Status(httpCode int) apis.Status {
	return apis.Status{
		HTTP: httpCode,
		GRPC: m.GRPCStatus(httpCode),
	}
}

// Explain produces a textual trace of how the mapper resolved httpCode.
//
// Example output:
//
//	http=409 class="4xx" reason="Conflict"
//	grpc: source=default -> ABORTED(10)
//
// source ∈ {override | default | fallback}.
func (m *mapper) Explain(httpCode int) string {
	var b strings.Builder
	reason, _ := status.Lookup(httpCode)
	_, _ = fmt.Fprintf(&b, "http=%d class=%q reason=%q\n", httpCode, status.Class(httpCode), reason)
	_, line := m.explainGRPC(httpCode)
	_, _ = fmt.Fprint(&b, line)
	return b.String()
}

// explainGRPC returns the origin and a formatted line describing how the
// gRPC code was chosen.
func (m *mapper) explainGRPC(httpCode int) (source, line string) {
	if v, ok := m.overrides[httpCode]; ok {
		return "override", fmt.Sprintf("grpc: source=override -> %s", render(v))
	}
	if v, ok := m.defaults[httpCode]; ok {
		return "default", fmt.Sprintf("grpc: source=default -> %s", render(v))
	}
	return "fallback", fmt.Sprintf("grpc: source=fallback -> %s", render(m.fallback))
}

// render formats a code the way Explain shows it, e.g. "NOT_FOUND(5)".
func render(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", toScreamingSnake(c.String()), int(c))
}

// toScreamingSnake turns "FailedPrecondition" into "FAILED_PRECONDITION".
func toScreamingSnake(s string) string {
	var b strings.Builder
	var prev rune
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' && prev >= 'a' && prev <= 'z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
		prev = r
	}
	return strings.ToUpper(b.String())
}

// validGRPC rejects OK and anything outside the canonical range.
func validGRPC(c codes.Code) error {
	if c == codes.OK || c > codes.Unauthenticated {
		return fmt.Errorf("%w: %d", ErrGRPCCodeInvalid, uint32(c))
	}
	return nil
}

// freeze makes an immutable copy of src. Empty maps become nil.
func freeze(src map[int]codes.Code) map[int]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[int]codes.Code, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
