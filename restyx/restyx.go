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

// Package restyx installs cerrors classification on a resty client.
//
//	c := restyx.Attach(resty.New().SetBaseURL("http://localhost:5984"))
//	_, err := restyx.Execute(c.R().SetContext(ctx), resty.MethodGet, "/db/doc")
//	switch {
//	case errors.Is(err, cerrors.NotFound):
//	case cerrors.IsServerBrokeConnection(err):
//	}
//
// Attach turns every non-2xx response into a classified error. Execute
// additionally reports transport failures as *cerrors.ServerBrokeConnection.
package restyx

import (
	"context"
	"errors"

	"dirpx.dev/cerrors"
	"dirpx.dev/cerrors/adapter"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Option configures Attach.
type Option func(*options)

type options struct {
	log        zerolog.Logger
	maxBody    int
	exceptions *cerrors.ExceptionsMap
}

// WithLogger sets the logger used for classification traces.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMaxBodyBytes bounds the body copied onto the error. Values <= 0 keep
// the whole body.
func WithMaxBodyBytes(n int) Option {
	return func(o *options) { o.maxBody = n }
}

// WithExceptions classifies with m instead of cerrors.Exceptions.
func WithExceptions(m *cerrors.ExceptionsMap) Option {
	return func(o *options) {
		if m != nil {
			o.exceptions = m
		}
	}
}

// Attach registers the classification middleware and an error hook on c
// and returns c.
func Attach(c *resty.Client, opts ...Option) *resty.Client {
	o := options{log: log.Logger, exceptions: cerrors.Exceptions}
	for _, opt := range opts {
		opt(&o)
	}

	c.OnAfterResponse(func(_ *resty.Client, r *resty.Response) error {
		if r.IsSuccess() {
			return nil
		}
		e := o.exceptions.Dispatch(fromResty(r, o.maxBody))
		o.log.Debug().
			Str("method", r.Request.Method).
			Str("url", r.Request.URL).
			Int("http_code", r.StatusCode()).
			Str("kind", adapter.KindName(e)).
			Msg(e.Message())
		return e
	})
	c.OnError(func(req *resty.Request, err error) {
		if _, ok := cerrors.KindOf(err); ok {
			return
		}
		o.log.Debug().Err(err).Str("method", req.Method).Str("url", req.URL).Msg("transport failure")
	})
	return c
}

// FromResty copies the status, headers and body of r.
func FromResty(r *resty.Response) *cerrors.Response {
	if r == nil {
		return nil
	}
	return fromResty(r, 0)
}

func fromResty(r *resty.Response, maxBody int) *cerrors.Response {
	body := r.Body()
	if maxBody > 0 && len(body) > maxBody {
		body = body[:maxBody]
	}
	var h map[string]string
	if hdr := r.Header(); len(hdr) > 0 {
		h = make(map[string]string, len(hdr))
		for k := range hdr {
			h[k] = hdr.Get(k)
		}
	}
	return &cerrors.Response{Code: r.StatusCode(), Headers: h, Body: body}
}

// Execute runs req and normalises the error: classified errors and context
// errors are returned unchanged, anything else is a transport failure and
// is returned as *cerrors.ServerBrokeConnection.
func Execute(req *resty.Request, method, url string) (*resty.Response, error) {
	resp, err := req.Execute(method, url)
	if err == nil {
		return resp, nil
	}
	if _, ok := cerrors.KindOf(err); ok {
		return resp, err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resp, err
	}
	return resp, cerrors.BrokeConnection(err)
}
