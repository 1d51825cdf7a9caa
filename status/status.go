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

package status

import (
	"errors"
	"fmt"
	"strconv"
)

// Code is a numeric HTTP status code.
//
// It is a distinct type so that APIs can say "this int is a status" and so
// that the table constants read naturally (status.NotFound).
type Code int

// MinCode and MaxCode bound the values Validate accepts.
//
// The upper bound is deliberately wider than the registered HTTP range:
// servers and proxies do emit non-standard three digit codes and those must
// still be classifiable by the fallback kind.
const (
	MinCode = 100
	MaxCode = 999
)

var (
	// ErrCodeInvalid is returned when a value is not a three digit status.
	ErrCodeInvalid = errors.New("cerrors: invalid status code")
)

// Entry is one row of the table: a code and its reason phrase.
type Entry struct {
	Code   Code
	Reason string
}

// String renders the entry the way it appears on a status line,
// e.g. "404 Not Found".
func (e Entry) String() string {
	return fmt.Sprintf("%d %s", int(e.Code), e.Reason)
}

// byCode indexes table. Built once, never written afterwards.
var byCode = func() map[Code]string {
	m := make(map[Code]string, len(table))
	for _, e := range table {
		m[e.Code] = e.Reason
	}
	return m
}()

// Lookup returns the reason phrase registered for code.
func Lookup(code int) (string, bool) {
	r, ok := byCode[Code(code)]
	return r, ok
}

// Known reports whether code has a row in the table.
func Known(code int) bool {
	_, ok := byCode[Code(code)]
	return ok
}

// Entries returns a copy of the table ordered by code.
func Entries() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// Validate checks that code is a plausible three digit status.
func Validate(code int) error {
	if code < MinCode || code > MaxCode {
		return fmt.Errorf("%w: %d", ErrCodeInvalid, code)
	}
	return nil
}

// Class returns the status class of code, e.g. "4xx". It returns "" for
// values Validate would reject.
//
// Class is for diagnostics only; classification never looks at ranges.
func Class(code int) string {
	if Validate(code) != nil {
		return ""
	}
	return strconv.Itoa(code/100) + "xx"
}

// Int returns c as a plain int.
func (c Code) Int() int { return int(c) }

// String returns the decimal representation of c.
func (c Code) String() string { return strconv.Itoa(int(c)) }
