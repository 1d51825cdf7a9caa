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

package kind

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Name is the canonical identifier of an error kind, e.g. "NotFound".
type Name string

// MaxLength bounds identifiers. The longest derived one
// ("RequestedRangeNotSatisfiable") is well below it.
const MaxLength = 64

// nameFmt: an ASCII upper-case letter followed by letters or digits.
const nameFmt = `^[A-Z][A-Za-z0-9]*$`

var nameRe = regexp.MustCompile(nameFmt)

var (
	// ErrNameInvalid is returned when a value is not a canonical identifier.
	ErrNameInvalid = errors.New("cerrors: invalid kind name")
)

var (
	_ encoding.TextMarshaler   = (*Name)(nil)
	_ encoding.TextUnmarshaler = (*Name)(nil)
)

// Empty is the zero value. It never names a registered kind.
var Empty Name = ""

// stripped lists the punctuation removed from reason phrases in addition to
// whitespace.
const stripped = " -'"

// Derive builds the identifier for a reason phrase by dropping whitespace,
// dashes and apostrophes. Letter case is kept as written in the phrase.
//
// Derive does not validate: "I'm a teapot" derives "Imateapot" which is
// fine, but a phrase starting with a digit derives a value Validate rejects.
func Derive(reason string) Name {
	var b strings.Builder
	b.Grow(len(reason))
	for _, r := range reason {
		if unicode.IsSpace(r) || strings.ContainsRune(stripped, r) {
			continue
		}
		b.WriteRune(r)
	}
	return Name(b.String())
}

// Parse trims s and validates it as an identifier.
func Parse(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Name(s), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Name {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Validate checks whether n is in canonical form. Empty is invalid.
func Validate(n Name) error {
	return validate(string(n))
}

// Template renders the default message of a status kind.
//
// With a code the result is "{code} {reason}". Without one the code prefix
// is omitted entirely and only the reason is returned.
func Template(code int, hasCode bool, reason string) string {
	if !hasCode {
		return reason
	}
	return strconv.Itoa(code) + " " + reason
}

// String returns the identifier.
func (n Name) String() string {
	return string(n)
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	if err := Validate(n); err != nil {
		return nil, err
	}
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func validate(s string) error {
	if s == "" || len(s) > MaxLength || !nameRe.MatchString(s) {
		return ErrNameInvalid
	}
	return nil
}
