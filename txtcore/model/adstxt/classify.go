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

import "strings"

// lineKind classifies what a physical line contributes to a document after
// comment stripping.
type lineKind int

const (
	lineBlank lineKind = iota
	lineVariable
	lineRecord
)

// logicalLine is one comment-stripped, trimmed physical line together with
// its classification and position.
type logicalLine struct {
	// number is the 1-based physical line number in the source.
	number int

	kind lineKind

	// key and value are set for lineVariable: key is the directive name
	// upper-cased, value the text after '=' with surrounding whitespace
	// trimmed.
	key   string
	value string

	// fields is set for lineRecord: the comma-split, trimmed tokens.
	fields []string

	// raw is the comment-stripped, trimmed line text, for diagnostics.
	raw string
}

// classifyLines splits content into logical lines.
//
// Per the format's grammar, '#' starts a comment running to end of line,
// both \n and \r\n line endings are accepted, and a line that is empty
// after comment stripping and trimming contributes nothing (such lines are
// omitted from the result). A remaining line containing '=' is a variable
// directive; anything else is a candidate data record.
func classifyLines(content string) []logicalLine {
	physical := strings.Split(content, "\n")
	out := make([]logicalLine, 0, len(physical))

	for i, line := range physical {
		raw := strings.TrimSuffix(line, "\r")
		if idx := strings.IndexByte(raw, '#'); idx >= 0 {
			raw = raw[:idx]
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		ll := logicalLine{number: i + 1, raw: raw}

		// A variable line is KEY=VALUE with a single-token key. An '='
		// further into a line ("a.com, id=x, DIRECT") belongs to a
		// record field, and "=value" has no key; both fall through to
		// record parsing.
		if key, value, ok := splitVariable(raw); ok {
			ll.kind = lineVariable
			ll.key = key
			ll.value = value
		} else {
			ll.kind = lineRecord
			ll.fields = splitFields(raw)
		}

		out = append(out, ll)
	}

	return out
}

// splitVariable reports whether raw is a KEY=VALUE directive line and, if
// so, returns the key upper-cased and the value trimmed. The key must be a
// non-empty token without commas or whitespace.
func splitVariable(raw string) (key, value string, ok bool) {
	eq := strings.IndexByte(raw, '=')
	if eq <= 0 {
		return "", "", false
	}
	key = raw[:eq]
	if strings.ContainsAny(key, ", \t") {
		return "", "", false
	}
	return strings.ToUpper(key), strings.TrimSpace(raw[eq+1:]), true
}

// splitFields tokenizes a record line: split on commas, trim each field.
// Empty fields are preserved so callers can report them precisely.
func splitFields(raw string) []string {
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
