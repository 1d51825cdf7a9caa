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
	"encoding"
	"errors"
	"testing"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		in   string
		want Name
	}{
		{"OK", "OK"},
		{"Not Found", "NotFound"},
		{"Method Not Allowed", "MethodNotAllowed"},
		{"Requested Range Not Satisfiable", "RequestedRangeNotSatisfiable"},
		{"Internal Server Error", "InternalServerError"},
		{"Non-Authoritative Information", "NonAuthoritativeInformation"},
		{"I'm a teapot", "Imateapot"},
		{"  Tab\tand\nnewline ", "Tabandnewline"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Derive(tt.in); got != tt.want {
				t.Fatalf("Derive(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	valid := []string{"NotFound", "OK", "  Conflict  ", "Status418"}
	for _, in := range valid {
		if _, err := Parse(in); err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", in, err)
		}
	}
	invalid := []string{"", "notFound", "Not Found", "Not-Found", "1Teapot", "Not_Found"}
	for _, in := range invalid {
		got, err := Parse(in)
		if !errors.Is(err, ErrNameInvalid) {
			t.Fatalf("Parse(%q) = %v, want ErrNameInvalid", in, err)
		}
		if got != Empty {
			t.Fatalf("Parse(%q) on error must return Empty, got %q", in, got)
		}
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse must panic on invalid input")
		}
	}()
	_ = MustParse("not a name")
}

func TestTemplate(t *testing.T) {
	if got := Template(404, true, "Not Found"); got != "404 Not Found" {
		t.Fatalf("Template with code = %q", got)
	}
	if got := Template(0, false, "Not Found"); got != "Not Found" {
		t.Fatalf("Template without code = %q", got)
	}
}

func TestTextRoundTrip(t *testing.T) {
	var n Name
	var u encoding.TextUnmarshaler = &n
	if err := u.UnmarshalText([]byte(" PreconditionFailed ")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	b, err := n.MarshalText()
	if err != nil || string(b) != "PreconditionFailed" {
		t.Fatalf("MarshalText = %q, %v", b, err)
	}
	if _, err := Empty.MarshalText(); err == nil {
		t.Fatal("MarshalText(Empty) must fail")
	}
}
