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

// Package httpx connects net/http to cerrors.
//
// On the client side, Check and Do turn failed responses into classified
// errors and transport failures into *cerrors.ServerBrokeConnection. On the
// server side, Writer relays a classified error to a downstream caller.
package httpx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"dirpx.dev/cerrors"
	"dirpx.dev/cerrors/adapter"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/encoding/protojson"
)

// ErrNilResponse is returned by FromResponse and Check when given a nil
// *http.Response.
var ErrNilResponse = errors.New("httpx: nil response")

// FromResponse copies the status, headers and (bounded) body of resp into
// a *cerrors.Response and closes resp.Body.
//
// Multi-valued headers are joined with ", ". A failure while reading the
// body means the connection dropped after the status line and is returned
// as *cerrors.ServerBrokeConnection. A nil resp returns ErrNilResponse.
func FromResponse(resp *http.Response, opts ...Option) (*cerrors.Response, error) {
	if resp == nil {
		return nil, ErrNilResponse
	}
	o := newOptions(opts)
	return fromResponse(resp, o)
}

func fromResponse(resp *http.Response, o options) (*cerrors.Response, error) {
	out := &cerrors.Response{
		Code:    resp.StatusCode,
		Headers: flatten(resp.Header),
	}
	if resp.Body == nil {
		return out, nil
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, o.maxBody))
	if err != nil {
		return nil, cerrors.BrokeConnection(err)
	}
	out.Body = body
	return out, nil
}

// Check returns nil for 2xx responses and leaves their body untouched.
// For any other status it reads and closes the body and returns the
// classified error. A nil resp returns ErrNilResponse.
func Check(resp *http.Response, opts ...Option) error {
	if resp == nil {
		return ErrNilResponse
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	o := newOptions(opts)
	return check(resp, o)
}

func check(resp *http.Response, o options) error {
	r, err := fromResponse(resp, o)
	if err != nil {
		o.log.Debug().Err(err).Int("http_code", resp.StatusCode).Msg("error body truncated")
		return err
	}
	e := o.exceptions.Dispatch(r)
	logClassified(o.log, e)
	return e
}

// Do sends req with client and classifies the outcome.
//
// A transport failure is returned as *cerrors.ServerBrokeConnection, except
// for context cancellation and deadlines, which are returned unchanged. A
// non-2xx response is returned as a classified error with its body read
// and closed. On success the response is returned as is.
func Do(client *http.Client, req *http.Request, opts ...Option) (*http.Response, error) {
	if client == nil {
		client = http.DefaultClient
	}
	o := newOptions(opts)

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		o.log.Debug().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("transport failure")
		return nil, cerrors.BrokeConnection(err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	return nil, check(resp, o)
}

// Writer relays classified errors to a downstream HTTP client.
//
// The body is a google.rpc.ErrorInfo rendered with protojson. The status is
// the upstream one when it is an error status (>= 400); otherwise, and for
// broken connections, it is 502 Bad Gateway.
type Writer struct {
	// Domain is reported as ErrorInfo.domain.
	Domain string
}

// Write serializes err and writes it to rw. A nil err writes nothing.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	st := http.StatusBadGateway
	if c, ok := adapter.HTTPCode(err); ok && c >= 400 {
		st = c
	}

	info := adapter.ToErrorInfo(err, w.Domain)
	if info == nil {
		info = adapter.ToErrorInfo(cerrors.RequestFailed.New(nil).WithMessage(err.Error()), w.Domain)
	}

	rw.Header().Set("Content-Type", "application/json")
	var ce cerrors.Error
	if errors.As(err, &ce) {
		if ra := ce.HTTPHeaders()["Retry-After"]; ra != "" {
			rw.Header().Set("Retry-After", ra)
		}
	}
	rw.WriteHeader(st)

	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   true,
	}).Marshal(info)
	_, _ = rw.Write(b)
}

// flatten joins multi-valued headers. Header names keep their canonical
// form.
func flatten(h http.Header) map[string]string {
	if len(h) == 0 {
		return nil
	}
	out := make(map[string]string, len(h))
	for k, vs := range h {
		out[k] = strings.Join(vs, ", ")
	}
	return out
}

func logClassified(l zerolog.Logger, e cerrors.Error) {
	ev := l.Debug()
	if !ev.Enabled() {
		return
	}
	if code, ok := e.HTTPCode(); ok {
		ev = ev.Int("http_code", code)
	}
	ev.Str("kind", adapter.KindName(e)).Msg(e.Message())
}
