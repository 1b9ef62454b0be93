/*
   Copyright 2026 The IABTXT Authors

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

package adstxt

import "iabtxt.dev/iabtxt/txtcore/errors"

// Policy controls how the parser reacts to malformed authorization records.
//
// Published ads.txt files are hand-edited and frequently contain a few
// broken lines among hundreds of good ones. FailFast suits validation
// tooling that wants the first defect; CollectAll suits crawlers that want
// every defect from a single pass.
//
// Only record-level defects are subject to the policy. Errors in variable
// directives — duplicates, variant violations, malformed MANAGERDOMAIN
// values — change the meaning of the whole document and abort the parse
// under either policy.
type Policy int

const (
	// FailFast stops at the first malformed record and returns its error.
	FailFast Policy = iota

	// CollectAll keeps parsing past malformed records and returns every
	// record error combined. A document is never returned alongside
	// errors: if any record failed, the parse fails.
	CollectAll
)

// ParsePolicy converts a textual representation ("fail-fast" or
// "collect-all") into a Policy value.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "fail-fast":
		return FailFast, nil
	case "collect-all":
		return CollectAll, nil
	default:
		return FailFast, &errors.ParseError{Type: "Policy", Value: s}
	}
}

// String returns "fail-fast" or "collect-all"; undefined values return
// "unknown".
func (p Policy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case CollectAll:
		return "collect-all"
	default:
		return "unknown"
	}
}

// Valid reports whether the Policy is one of the defined modes.
func (p Policy) Valid() bool {
	return p == FailFast || p == CollectAll
}
