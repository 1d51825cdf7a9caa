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

// Package mapper provides deterministic, immutable projections of HTTP
// statuses onto gRPC codes.
//
// # Overview
//
// A document-store client classifies failed responses by HTTP status.
// Services that sit in front of that client and speak gRPC to their own
// callers need a gRPC code for each of those errors. Package mapper does
// that in a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers can change library defaults per status;
//   - total: every status resolves to a non-OK code.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the status;
//  2. per-status default (library or user-adjusted);
//  3. fallback (codes.Unknown unless changed with WithFallback).
//
// # Library defaults
//
// Every status in package status has a default, chosen for CouchDB
// semantics: 409 (document update conflict) maps to Aborted, 412 (database
// already exists) to FailedPrecondition, 416 to OutOfRange. Success codes
// map to Unknown because an error carrying one means the caller rejected a
// response the server considered fine.
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithOverride(http.StatusConflict, codes.AlreadyExists),
//	    mapper.WithDefault(http.StatusTooManyRequests, codes.ResourceExhausted),
//	)
//	if err != nil {
//	    // invalid status or gRPC code
//	}
//	st := m.Status(409) // st.GRPC == codes.AlreadyExists
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a status was
// resolved. It is intended for inspection and logging, not for parsing.
//
// # Immutability
//
// All options are applied to a private builder and copied during New.
package mapper
