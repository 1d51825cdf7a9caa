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
)

// ServerBrokeConnection reports a transport failure that happened before an
// HTTP status was received, typically a connection dropped mid-stream.
//
// It is not an Error: it has no status, headers or body, and Dispatch never
// returns it.
type ServerBrokeConnection struct {
	// Cause is the underlying transport error, if known.
	Cause error
}

// BrokeConnection wraps cause into a *ServerBrokeConnection.
func BrokeConnection(cause error) *ServerBrokeConnection {
	return &ServerBrokeConnection{Cause: cause}
}

// Error implements the built-in error interface.
func (e *ServerBrokeConnection) Error() string {
	if e == nil || e.Cause == nil {
		return "cerrors: server broke connection"
	}
	return "cerrors: server broke connection: " + e.Cause.Error()
}

// Unwrap returns the underlying transport error.
func (e *ServerBrokeConnection) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// IsServerBrokeConnection reports whether err's chain contains a
// *ServerBrokeConnection.
func IsServerBrokeConnection(err error) bool {
	var sb *ServerBrokeConnection
	return errors.As(err, &sb)
}
