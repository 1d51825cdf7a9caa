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
	"errors"
	"fmt"
	"strings"
	"testing"

	"dirpx.dev/cerrors/kind"
	"dirpx.dev/cerrors/status"
)

func TestDispatch_EveryKnownStatus(t *testing.T) {
	for _, e := range status.Entries() {
		t.Run(e.String(), func(t *testing.T) {
			err := Dispatch(&Response{Code: e.Code.Int(), Body: []byte("x")})

			k, ok := KindOf(err)
			if !ok {
				t.Fatalf("KindOf(%v) found no kind", err)
			}
			want := strings.NewReplacer(" ", "", "-", "", "'", "").Replace(e.Reason)
			if string(k.Name()) != want {
				t.Fatalf("kind = %q, want %q", k.Name(), want)
			}
			if got := err.Message(); got != e.String() {
				t.Fatalf("Message() = %q, want %q", got, e.String())
			}
			if got := err.Describe(); got != e.String()+": x" {
				t.Fatalf("Describe() = %q", got)
			}
			if !errors.Is(err, k) || !errors.Is(err, RequestFailed) {
				t.Fatalf("errors.Is must match both %s and RequestFailed", k)
			}
		})
	}
}

func TestDispatch_NotFound(t *testing.T) {
	err := Dispatch(&Response{Code: 404, Body: []byte("x")})
	if !errors.Is(err, NotFound) {
		t.Fatalf("want NotFound, got %v", err)
	}
	if errors.Is(err, Conflict) {
		t.Fatal("404 must not match Conflict")
	}
	if err.Message() != "404 Not Found" {
		t.Fatalf("Message() = %q", err.Message())
	}
	if err.Error() != "404 Not Found: x" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestDispatch_OKAndInternalServerError(t *testing.T) {
	ok := Dispatch(&Response{Code: 200, Body: []byte("ok")})
	if k, _ := KindOf(ok); k != OK || k.Name() != "OK" {
		t.Fatalf("200 kind = %v", k)
	}
	if ok.Message() != "200 OK" {
		t.Fatalf("Message() = %q", ok.Message())
	}

	ise := Dispatch(&Response{Code: 500})
	if k, _ := KindOf(ise); k.Name() != "InternalServerError" {
		t.Fatalf("500 kind = %v", k)
	}
	if ise.Message() != "500 Internal Server Error" {
		t.Fatalf("Message() = %q", ise.Message())
	}
}

func TestDispatch_UnknownCodeFallsBack(t *testing.T) {
	err := Dispatch(&Response{Code: 999, Body: []byte("teapot")})
	if k, _ := KindOf(err); k != RequestFailed {
		t.Fatalf("kind = %v, want RequestFailed", k)
	}
	if !strings.Contains(err.Message(), "999") {
		t.Fatalf("Message() = %q, want the status code in it", err.Message())
	}
	if err.Message() != "HTTP status code 999" {
		t.Fatalf("Message() = %q", err.Message())
	}
	// RequestFailed prints the bare message; Describe still appends the body.
	if err.Error() != err.Message() {
		t.Fatalf("Error() = %q", err.Error())
	}
	if err.Describe() != "HTTP status code 999: teapot" {
		t.Fatalf("Describe() = %q", err.Describe())
	}
}

func TestDispatch_NilResponse(t *testing.T) {
	err := Dispatch(nil)
	if err == nil {
		t.Fatal("Dispatch must never return nil")
	}
	if k, _ := KindOf(err); k != RequestFailed {
		t.Fatalf("kind = %v", k)
	}
	if !strings.Contains(err.Message(), "none") {
		t.Fatalf("Message() = %q", err.Message())
	}
}

func TestRequestError_NoResponse(t *testing.T) {
	for _, k := range append(Kinds(), RequestFailed) {
		err := k.New(nil)
		if c, ok := err.HTTPCode(); ok || c != 0 {
			t.Fatalf("%s: HTTPCode() = %d, %v", k, c, ok)
		}
		if err.HTTPHeaders() != nil || err.HTTPBody() != nil {
			t.Fatalf("%s: headers/body must be nil", k)
		}
	}
	// Without a code the status template drops the "{code} " prefix.
	if got := NotFound.New(nil).Message(); got != "Not Found" {
		t.Fatalf("Message() = %q", got)
	}
}

func TestRequestError_Override(t *testing.T) {
	for _, k := range []*Kind{NotFound, Conflict, RequestFailed} {
		err := k.New(&Response{Code: 409}, WithMessageOption("document update conflict"))
		if err.Message() != "document update conflict" {
			t.Fatalf("%s: Message() = %q", k, err.Message())
		}
	}
	// An explicit empty message is still an override.
	if got := NotFound.New(&Response{Code: 404}).WithMessage("").Message(); got != "" {
		t.Fatalf("empty override lost: %q", got)
	}
}

func TestRequestError_WithMessageCopies(t *testing.T) {
	orig := NotFound.New(&Response{Code: 404})
	cp := orig.WithMessage("gone")
	if orig.Message() != "404 Not Found" {
		t.Fatalf("original mutated: %q", orig.Message())
	}
	if cp.Message() != "gone" {
		t.Fatalf("copy = %q", cp.Message())
	}
}

func TestRequestError_MessageIsLazy(t *testing.T) {
	resp := &Response{Code: 404}
	err := NotFound.New(resp)
	resp.Code = 410
	if got := err.Message(); got != "410 Not Found" {
		t.Fatalf("Message() = %q, want the live code", got)
	}
	err.SetResponse(nil)
	if got := err.Message(); got != "Not Found" {
		t.Fatalf("Message() after SetResponse(nil) = %q", got)
	}
	fb := RequestFailed.New(nil)
	fb.SetResponse(&Response{Code: 418})
	if got := fb.Message(); got != "HTTP status code 418" {
		t.Fatalf("fallback Message() = %q", got)
	}
}

func TestRequestError_Headers(t *testing.T) {
	h := map[string]string{"Content-Type": "application/json"}
	err := Dispatch(&Response{Code: 412, Headers: h})
	if err.HTTPHeaders()["Content-Type"] != "application/json" {
		t.Fatalf("headers = %v", err.HTTPHeaders())
	}
}

func TestRequestError_ZeroAndNil(t *testing.T) {
	var zero RequestError
	if zero.Kind() != RequestFailed {
		t.Fatal("zero value must report RequestFailed")
	}
	var nilErr *RequestError
	if nilErr.Error() != "<nil>" || nilErr.Message() != "" {
		t.Fatal("nil receiver must not panic")
	}
	if _, ok := nilErr.HTTPCode(); ok {
		t.Fatal("nil receiver has no code")
	}
}

func TestKindOf_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("get doc: %w", Dispatch(&Response{Code: 401}))
	k, ok := KindOf(err)
	if !ok || k != Unauthorized {
		t.Fatalf("KindOf = %v, %v", k, ok)
	}
	if !errors.Is(err, Unauthorized) {
		t.Fatal("errors.Is must see through wrapping")
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Fatal("plain errors have no kind")
	}
}

func TestKindByName(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := KindByName(string(k.Name()))
		if !ok || got != k {
			t.Fatalf("KindByName(%q) = %v, %v", k.Name(), got, ok)
		}
	}
	if k, ok := KindByName("RequestFailed"); !ok || k != RequestFailed {
		t.Fatal("RequestFailed must resolve by name")
	}
	if _, ok := KindByName("Teapot"); ok {
		t.Fatal("unknown name must not resolve")
	}
}

func TestKindForCode(t *testing.T) {
	if k, ok := KindForCode(416); !ok || k != RequestedRangeNotSatisfiable {
		t.Fatalf("KindForCode(416) = %v, %v", k, ok)
	}
	if _, ok := KindForCode(418); ok {
		t.Fatal("418 is not a built-in kind")
	}
}

func TestNewKind(t *testing.T) {
	k, err := NewKind("Teapot", "I'm a teapot")
	if err != nil {
		t.Fatalf("NewKind: %v", err)
	}
	if got := k.New(&Response{Code: 418}).Message(); got != "418 I'm a teapot" {
		t.Fatalf("Message() = %q", got)
	}
	if _, err := NewKind("not valid", "x"); !errors.Is(err, kind.ErrNameInvalid) {
		t.Fatalf("NewKind invalid = %v", err)
	}
}

func TestServerBrokeConnection(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := fmt.Errorf("stream rows: %w", BrokeConnection(cause))

	if !IsServerBrokeConnection(err) {
		t.Fatal("must be detected through wrapping")
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause must be reachable")
	}
	if errors.Is(err, RequestFailed) {
		t.Fatal("a broken connection is not an HTTP failure")
	}
	if _, ok := KindOf(err); ok {
		t.Fatal("a broken connection has no kind")
	}
	if (&ServerBrokeConnection{}).Error() == "" {
		t.Fatal("empty message")
	}
}

func TestDerive_IdentifierCollision(t *testing.T) {
	c := derive([]status.Entry{
		{Code: 480, Reason: "Same Name"},
		{Code: 481, Reason: "Same-Name"},
	})

	k, ok := c.byName["SameName"]
	if !ok {
		t.Fatal("SameName not derived")
	}
	if k.Code() != 481 {
		t.Fatalf("byName[SameName].Code() = %d, want 481 (later entry wins)", k.Code())
	}
	for _, code := range []int{480, 481} {
		got, ok := c.byCode[code]
		if !ok {
			t.Fatalf("byCode[%d] missing", code)
		}
		if got.Code() != code || got.Name() != "SameName" {
			t.Errorf("byCode[%d] = %d %s", code, got.Code(), got.Name())
		}
	}
	if len(c.ordered) != 2 {
		t.Fatalf("ordered = %d kinds, want 2", len(c.ordered))
	}
}
