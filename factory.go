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
	"dirpx.dev/cerrors/kind"
	"dirpx.dev/cerrors/status"
)

// catalogue is the set of kinds derived from the status table.
type catalogue struct {
	ordered []*Kind
	byCode  map[int]*Kind
	byName  map[kind.Name]*Kind
}

// derive builds one kind per entry, in table order.
//
// If two entries ever derived the same identifier, the later one replaces
// the earlier in byName; both keep their own code in byCode.
func derive(entries []status.Entry) *catalogue {
	c := &catalogue{
		ordered: make([]*Kind, 0, len(entries)),
		byCode:  make(map[int]*Kind, len(entries)),
		byName:  make(map[kind.Name]*Kind, len(entries)),
	}
	for _, e := range entries {
		k := &Kind{
			name:   kind.Derive(e.Reason),
			code:   e.Code.Int(),
			reason: e.Reason,
		}
		c.ordered = append(c.ordered, k)
		c.byCode[k.code] = k
		c.byName[k.name] = k
	}
	return c
}

// known is built once at package initialisation and never written again.
var known = derive(status.Entries())

// Kinds for the known statuses.
var (
	OK       = known.byCode[status.OK.Int()]
	Created  = known.byCode[status.Created.Int()]
	Accepted = known.byCode[status.Accepted.Int()]

	NotModified = known.byCode[status.NotModified.Int()]

	BadRequest                   = known.byCode[status.BadRequest.Int()]
	Unauthorized                 = known.byCode[status.Unauthorized.Int()]
	Forbidden                    = known.byCode[status.Forbidden.Int()]
	NotFound                     = known.byCode[status.NotFound.Int()]
	MethodNotAllowed             = known.byCode[status.MethodNotAllowed.Int()]
	NotAcceptable                = known.byCode[status.NotAcceptable.Int()]
	Conflict                     = known.byCode[status.Conflict.Int()]
	PreconditionFailed           = known.byCode[status.PreconditionFailed.Int()]
	UnsupportedMediaType         = known.byCode[status.UnsupportedMediaType.Int()]
	RequestedRangeNotSatisfiable = known.byCode[status.RequestedRangeNotSatisfiable.Int()]
	ExpectationFailed            = known.byCode[status.ExpectationFailed.Int()]

	InternalServerError = known.byCode[status.InternalServerError.Int()]
)

// Kinds returns the built-in status kinds in table order.
func Kinds() []*Kind {
	out := make([]*Kind, len(known.ordered))
	copy(out, known.ordered)
	return out
}

// KindForCode returns the built-in kind derived for code. Registrations made
// with Register are not consulted; use ExceptionsMap.Lookup for that.
func KindForCode(code int) (*Kind, bool) {
	k, ok := known.byCode[code]
	return k, ok
}

// KindByName resolves a built-in kind or RequestFailed by identifier.
func KindByName(name string) (*Kind, bool) {
	if kind.Name(name) == RequestFailed.name {
		return RequestFailed, true
	}
	k, ok := known.byName[kind.Name(name)]
	return k, ok
}
