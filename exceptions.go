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
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Constructor builds an error for a response. It must not return nil.
type Constructor func(resp *Response) Error

// ExceptionsMap maps status codes to constructors.
//
// Reads are lock-free: the table lives in an immutable snapshot that is
// swapped atomically on every write. Writers are serialised, so a reader
// sees either the table before a Register or the table after it, never a
// partially inserted entry.
//
// There is at most one constructor per code; Register overwrites.
//
// The zero value is an empty map: every code dispatches to RequestFailed
// until something is registered or Seed is called.
type ExceptionsMap struct {
	mu   sync.Mutex
	snap atomic.Pointer[map[int]Constructor]
	log  *zerolog.Logger
}

// MapOption configures NewExceptionsMap.
type MapOption func(*ExceptionsMap)

// WithLogger sets the logger used for registration traces (debug level).
// Without it the map does not log.
func WithLogger(l zerolog.Logger) MapOption {
	return func(m *ExceptionsMap) { m.log = &l }
}

// NewExceptionsMap returns a map seeded with every built-in status kind.
func NewExceptionsMap(opts ...MapOption) *ExceptionsMap {
	m := &ExceptionsMap{}
	for _, opt := range opts {
		opt(m)
	}
	m.Seed()
	return m
}

// load returns the current table. A map that was never written reads as
// empty.
func (m *ExceptionsMap) load() map[int]Constructor {
	if p := m.snap.Load(); p != nil {
		return *p
	}
	return nil
}

func (m *ExceptionsMap) logger() *zerolog.Logger {
	if m.log == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return m.log
}

// Seed (re-)registers every built-in status kind under its code.
//
// Seeding is idempotent: the kinds are derived once per process, so a
// second call writes the very same constructors over the same codes. It
// does overwrite a custom registration for a built-in code.
func (m *ExceptionsMap) Seed() {
	m.update(func(t map[int]Constructor) {
		for _, k := range known.ordered {
			t[k.code] = k.Construct
		}
	})
}

// Reset drops every registration and seeds the map again.
func (m *ExceptionsMap) Reset() {
	m.mu.Lock()
	t := make(map[int]Constructor, len(known.ordered))
	for _, k := range known.ordered {
		t[k.code] = k.Construct
	}
	m.snap.Store(&t)
	m.mu.Unlock()
}

// Register maps code to ctor, replacing any previous mapping (last write
// wins). A nil ctor is ignored.
func (m *ExceptionsMap) Register(code int, ctor Constructor) {
	if ctor == nil {
		m.logger().Debug().Int("http_code", code).Msg("cerrors: ignoring nil constructor")
		return
	}
	m.update(func(t map[int]Constructor) {
		if _, ok := t[code]; ok {
			m.logger().Debug().Int("http_code", code).Msg("cerrors: replacing exception mapping")
		}
		t[code] = ctor
	})
}

// RegisterKind maps code to k.
func (m *ExceptionsMap) RegisterKind(code int, k *Kind) {
	if k == nil {
		return
	}
	m.Register(code, k.Construct)
}

// Lookup returns the constructor registered for code.
func (m *ExceptionsMap) Lookup(code int) (Constructor, bool) {
	ctor, ok := m.load()[code]
	return ctor, ok
}

// Codes returns the registered codes in ascending order.
func (m *ExceptionsMap) Codes() []int {
	t := m.load()
	out := make([]int, 0, len(t))
	for c := range t {
		out = append(out, c)
	}
	sort.Ints(out)
	return out
}

// Len returns the number of registered codes.
func (m *ExceptionsMap) Len() int {
	return len(m.load())
}

// Dispatch classifies resp.
//
// The code is looked up exactly; there is no range matching. Unmapped codes
// produce a RequestFailed. A nil resp also produces a RequestFailed, with no
// response attached. Dispatch never returns nil.
func (m *ExceptionsMap) Dispatch(resp *Response) Error {
	if resp == nil {
		return RequestFailed.New(nil)
	}
	if ctor, ok := m.Lookup(resp.Code); ok {
		if err := ctor(resp); err != nil {
			return err
		}
		m.logger().Debug().Int("http_code", resp.Code).Msg("cerrors: constructor returned nil, using fallback")
	}
	return RequestFailed.New(resp)
}

// update applies fn to a private copy of the table and publishes it.
func (m *ExceptionsMap) update(fn func(map[int]Constructor)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur := m.load()
	next := make(map[int]Constructor, len(cur)+1)
	for k, v := range cur {
		next[k] = v
	}
	fn(next)
	m.snap.Store(&next)
}

// Exceptions is the process-wide table used by Dispatch and Register.
var Exceptions = NewExceptionsMap()

// Register maps code to ctor in the process-wide table.
//
// This is a global mutation visible to every caller of Dispatch in the
// process. It is safe to call concurrently with Dispatch.
func Register(code int, ctor Constructor) {
	Exceptions.Register(code, ctor)
}

// RegisterKind maps code to k in the process-wide table.
func RegisterKind(code int, k *Kind) {
	Exceptions.RegisterKind(code, k)
}

// Dispatch classifies resp using the process-wide table.
func Dispatch(resp *Response) Error {
	return Exceptions.Dispatch(resp)
}

// ResetExceptions restores the process-wide table to its seeded state.
// Meant for tests that register custom kinds.
func ResetExceptions() {
	Exceptions.Reset()
}
