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

package adapter

import (
	"errors"
	"strconv"

	"dirpx.dev/cerrors"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
)

// Metadata keys used in google.rpc.ErrorInfo.
const (
	MetaHTTPCode = "http_code"
	MetaMessage  = "message"
	MetaBody     = "body"
)

// BrokenConnectionReason is the ErrorInfo reason of a
// *cerrors.ServerBrokeConnection.
const BrokenConnectionReason = "ServerBrokeConnection"

// ToErrorInfo describes err as a google.rpc.ErrorInfo.
//
// The reason is the kind identifier; the upstream status, message and body
// travel in the metadata. It returns nil for errors that are neither
// classified nor a broken connection.
func ToErrorInfo(err error, domain string) *errdetails.ErrorInfo {
	if err == nil {
		return nil
	}
	var sb *cerrors.ServerBrokeConnection
	if errors.As(err, &sb) {
		return &errdetails.ErrorInfo{
			Reason:   BrokenConnectionReason,
			Domain:   domain,
			Metadata: map[string]string{MetaMessage: sb.Error()},
		}
	}
	name := KindName(err)
	if name == "" {
		return nil
	}
	v := ToView(err)
	md := map[string]string{MetaMessage: v.Message}
	if v.Code != 0 {
		md[MetaHTTPCode] = strconv.Itoa(v.Code)
	}
	if v.Body != "" {
		md[MetaBody] = v.Body
	}
	return &errdetails.ErrorInfo{Reason: name, Domain: domain, Metadata: md}
}

// FromErrorInfo rebuilds an error from info, classifying it with m.
//
// Infos carrying an HTTP status are dispatched, so the result has the kind
// registered in m for that status (which can differ from info.Reason if the
// two sides registered different kinds). A broken-connection info becomes a
// *cerrors.ServerBrokeConnection. Anything else returns nil.
func FromErrorInfo(info *errdetails.ErrorInfo, m *cerrors.ExceptionsMap) error {
	if info == nil {
		return nil
	}
	if info.GetReason() == BrokenConnectionReason {
		return cerrors.BrokeConnection(errors.New(info.GetMetadata()[MetaMessage]))
	}
	raw, ok := info.GetMetadata()[MetaHTTPCode]
	if !ok {
		return nil
	}
	code, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	if m == nil {
		m = cerrors.Exceptions
	}
	resp := &cerrors.Response{Code: code}
	if body, ok := info.GetMetadata()[MetaBody]; ok {
		resp.Body = []byte(body)
	}
	return m.Dispatch(resp)
}
