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

// Package status holds the table of HTTP statuses the client knows about in
// advance, together with the reason phrase each one is reported with.
//
// The table is fixed at build time. It is the single source from which the
// root package derives one error kind per status, so adding a row here is
// the only change needed to get a new named kind.
//
// Nothing in this package is mutable: Entries always returns a fresh copy
// and Lookup reads from a map built once during package initialisation.
package status
