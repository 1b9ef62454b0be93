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

import "fmt"

// maxDiagnosticLen caps how much of an offending input line is echoed back
// in error messages. Crawled files occasionally contain pathological lines
// (inlined HTML, megabyte-long tokens) that must not end up in logs whole.
const maxDiagnosticLen = 100

func truncateDiagnostic(s string) string {
	if len(s) <= maxDiagnosticLen {
		return s
	}
	return s[:maxDiagnosticLen] + "..."
}

// MalformedRecordError reports a data record whose comma-separated field
// count is outside the 3..4 range the format defines.
type MalformedRecordError struct {
	// Line is the 1-based physical line number of the record.
	Line int

	// FieldCount is the number of fields the record split into.
	FieldCount int

	// Raw is the comment-stripped record text, truncated for logging.
	Raw string
}

// Error implements the error interface.
func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("iabtxt: line %d: malformed record %q: got %d fields, want 3 or 4",
		e.Line, truncateDiagnostic(e.Raw), e.FieldCount)
}

// EmptyFieldError reports a data record with the right field count but an
// empty mandatory field after whitespace trimming.
type EmptyFieldError struct {
	// Line is the 1-based physical line number of the record, or 0 when
	// the record was parsed outside a document context.
	Line int

	// Field names the empty field: "domain" or "publisher account id".
	Field string

	// Raw is the comment-stripped record text, truncated for logging.
	Raw string
}

// Error implements the error interface.
func (e *EmptyFieldError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("iabtxt: line %d: record %q: %s must not be empty",
			e.Line, truncateDiagnostic(e.Raw), e.Field)
	}
	return fmt.Sprintf("iabtxt: record %q: %s must not be empty",
		truncateDiagnostic(e.Raw), e.Field)
}

// DuplicateDirectiveError reports a second occurrence of a directive the
// format defines as single-valued (SUBDOMAIN, OWNERDOMAIN,
// INVENTORYPARTNERDOMAIN).
//
// Repeated single-valued directives are ambiguous: consumers disagree on
// whether the first or the last occurrence wins, so this package refuses to
// pick and reports the conflict instead.
type DuplicateDirectiveError struct {
	// Line is the 1-based physical line number of the repeated directive.
	Line int

	// Key is the upper-case directive name.
	Key string
}

// Error implements the error interface.
func (e *DuplicateDirectiveError) Error() string {
	return fmt.Sprintf("iabtxt: line %d: duplicate %s directive", e.Line, e.Key)
}

// UnsupportedDirectiveError reports a directive that exists in the format
// family but is not part of the parsed variant's vocabulary, such as
// OWNERDOMAIN inside an app-ads.txt file.
type UnsupportedDirectiveError struct {
	// Line is the 1-based physical line number of the directive.
	Line int

	// Key is the upper-case directive name.
	Key string

	// Variant is the format being parsed when the directive appeared.
	Variant Variant
}

// Error implements the error interface.
func (e *UnsupportedDirectiveError) Error() string {
	return fmt.Sprintf("iabtxt: line %d: %s directive is not allowed in %s",
		e.Line, e.Key, e.Variant)
}
