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
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

// teapotError is a caller-defined error type registered through a
// Constructor, the way extension code would add its own kind.
type teapotError struct {
	*RequestError
}

func newTeapot(resp *Response) Error {
	return teapotError{Teapot.New(resp)}
}

var Teapot = MustNewKind("Teapot", "I'm a teapot")

func TestExceptionsMap_RegisterRoundTrip(t *testing.T) {
	m := NewExceptionsMap()

	m.Register(999, newTeapot)
	err := m.Dispatch(&Response{Code: 999})
	var tp teapotError
	if !errors.As(err, &tp) {
		t.Fatalf("want teapotError, got %T", err)
	}
	if k, _ := KindOf(err); k == RequestFailed {
		t.Fatal("registered code must not fall back")
	}

	other := MustNewKind("Other", "Other")
	m.RegisterKind(999, other)
	err = m.Dispatch(&Response{Code: 999})
	if errors.As(err, &tp) {
		t.Fatal("later registration must overwrite")
	}
	if k, _ := KindOf(err); k != other {
		t.Fatalf("kind = %v, want Other", k)
	}
}

func TestExceptionsMap_IndependentTables(t *testing.T) {
	a, b := NewExceptionsMap(), NewExceptionsMap()
	a.RegisterKind(418, Teapot)
	if k, _ := KindOf(b.Dispatch(&Response{Code: 418})); k != RequestFailed {
		t.Fatal("registrations must not leak between maps")
	}
}

func TestExceptionsMap_SeedIsIdempotent(t *testing.T) {
	m := NewExceptionsMap()
	before := m.Codes()
	m.Seed()
	m.Seed()
	after := m.Codes()
	if len(before) != len(after) {
		t.Fatalf("seed changed size: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("seed changed codes: %v -> %v", before, after)
		}
	}
	if k, _ := KindOf(m.Dispatch(&Response{Code: 409})); k != Conflict {
		t.Fatalf("409 kind after reseed = %v", k)
	}
}

func TestExceptionsMap_SeedOverwritesBuiltinCode(t *testing.T) {
	m := NewExceptionsMap()
	m.RegisterKind(404, Teapot)
	m.Seed()
	if k, _ := KindOf(m.Dispatch(&Response{Code: 404})); k != NotFound {
		t.Fatalf("kind = %v, want NotFound", k)
	}
}

func TestExceptionsMap_ResetDropsExtensions(t *testing.T) {
	m := NewExceptionsMap()
	m.RegisterKind(418, Teapot)
	m.Reset()
	if _, ok := m.Lookup(418); ok {
		t.Fatal("Reset must drop custom codes")
	}
	if m.Len() != len(Kinds()) {
		t.Fatalf("Len() = %d, want %d", m.Len(), len(Kinds()))
	}
}

func TestExceptionsMap_NilConstructorIgnored(t *testing.T) {
	m := NewExceptionsMap()
	m.Register(404, nil)
	m.RegisterKind(404, nil)
	if k, _ := KindOf(m.Dispatch(&Response{Code: 404})); k != NotFound {
		t.Fatalf("kind = %v", k)
	}
}

func TestExceptionsMap_NilResultFallsBack(t *testing.T) {
	m := NewExceptionsMap()
	m.Register(420, func(*Response) Error { return nil })
	err := m.Dispatch(&Response{Code: 420})
	if k, _ := KindOf(err); k != RequestFailed {
		t.Fatalf("kind = %v", k)
	}
}

func TestGlobalRegister(t *testing.T) {
	t.Cleanup(ResetExceptions)

	RegisterKind(418, Teapot)
	err := Dispatch(&Response{Code: 418})
	if !errors.Is(err, Teapot) {
		t.Fatalf("want Teapot, got %v", err)
	}
	ResetExceptions()
	if errors.Is(Dispatch(&Response{Code: 418}), Teapot) {
		t.Fatal("ResetExceptions must drop Teapot")
	}
}

func TestExceptionsMap_ConcurrentRegisterAndDispatch(t *testing.T) {
	m := NewExceptionsMap()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				m.RegisterKind(600+i, Teapot)
			}
		}(i)
	}
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				if err := m.Dispatch(&Response{Code: 404}); !errors.Is(err, NotFound) {
					t.Errorf("unexpected kind for 404: %v", err)
					return
				}
				if m.Dispatch(&Response{Code: 600 + j%8}) == nil {
					t.Error("Dispatch returned nil")
					return
				}
			}
		}()
	}
	wg.Wait()
	for i := 0; i < 8; i++ {
		if _, ok := m.Lookup(600 + i); !ok {
			t.Fatalf("lost registration for %d", 600+i)
		}
	}
}

func BenchmarkDispatch_Known(b *testing.B) {
	resp := &Response{Code: 404}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Dispatch(resp)
	}
}

func BenchmarkDispatch_Fallback(b *testing.B) {
	resp := &Response{Code: 599}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Dispatch(resp)
	}
}

func TestExceptionsMap_ZeroValue(t *testing.T) {
	var m ExceptionsMap

	if n := m.Len(); n != 0 {
		t.Fatalf("Len = %d, want 0", n)
	}
	if _, ok := m.Lookup(404); ok {
		t.Fatal("zero map must have no entries")
	}
	err := m.Dispatch(&Response{Code: 404})
	if k, _ := KindOf(err); k != RequestFailed {
		t.Fatalf("kind = %v, want RequestFailed", k)
	}
	if got := err.Message(); got != "HTTP status code 404" {
		t.Fatalf("Message = %q", got)
	}

	m.RegisterKind(404, NotFound)
	if !errors.Is(m.Dispatch(&Response{Code: 404}), NotFound) {
		t.Fatal("register on a zero map must take effect")
	}

	var seeded ExceptionsMap
	seeded.Seed()
	if seeded.Len() != len(Kinds()) {
		t.Fatalf("Len after Seed = %d, want %d", seeded.Len(), len(Kinds()))
	}
}

func TestExceptionsMap_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	m := NewExceptionsMap(WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	if buf.Len() != 0 {
		t.Fatalf("seeding must not log overwrites, got %s", buf.String())
	}
	m.RegisterKind(404, Teapot)
	m.Register(405, nil)

	out := buf.String()
	for _, want := range []string{"replacing exception mapping", "ignoring nil constructor", `"http_code":404`, `"http_code":405`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}
