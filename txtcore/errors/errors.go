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

// Package errors provides reusable error types for iabtxt model types.
//
// The ads.txt, app-ads.txt, sellers.json and SupplyChain packages all parse,
// validate, marshal and unmarshal strongly typed values, and they all need to
// report failures the same way. This package centralizes the common error
// shapes so that diagnostics stay consistent across the whole surface.
//
// The errors are intentionally simple value carriers with stable message
// formats. They are designed to be:
//
//   - easy to construct from parsing / marshaling / unmarshaling code,
//   - easy to recognize via type assertions,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing textual input into a typed value fails. For
//     values parsed out of an ads.txt or app-ads.txt body, the Line field
//     carries the 1-based source line so that a diagnostic can be rendered
//     without re-reading the input.
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails. Use this in
//     MarshalJSON / MarshalText implementations to reject values that do not
//     correspond to known constants.
//
//   - UnmarshalError
//     Returned when unmarshaling data into a typed value fails due to
//     invalid input, parse errors or constraint violations.
//
//   - ValidationError
//     Returned when validation of a model type fails, including builder
//     Build() invariant checks. Use this in Validate() methods to report
//     constraint violations, missing required fields, or invalid field
//     values.
//
// Packages that define typed values use these error types directly:
//
//	import "iabtxt.dev/iabtxt/txtcore/errors"
//
//	func ParseSellerRelation(s string) (SellerRelation, error) {
//	    switch strings.ToUpper(s) {
//	    case "DIRECT":
//	        return RelationDirect, nil
//	    case "RESELLER":
//	        return RelationReseller, nil
//	    default:
//	        return RelationUnknown, &errors.ParseError{Type: "SellerRelation", Value: s}
//	    }
//	}
package errors

import "strconv"

// ParseError is returned when parsing a string into a strongly typed value
// fails.
//
// Type identifies the logical type being parsed (for example,
// "SellerRelation", "CountryCode", "Variant"), and Value contains the exact
// string that could not be interpreted. Line, when non-zero, is the 1-based
// line of the source document the value was read from; zero means the value
// did not come from a document (for example, direct API input). Reason
// optionally describes what was expected.
//
// Callers MAY pattern-match on Type to provide type-specific guidance or to
// translate errors into friendlier messages.
type ParseError struct {
	// Type is the logical name of the type being parsed.
	Type string

	// Value is the invalid textual representation that was provided.
	Value string

	// Line is the 1-based source line the value was read from, or 0 when
	// the value was not parsed out of a document.
	Line int

	// Reason optionally describes what was expected, for diagnostics.
	Reason string
}

// Error implements the error interface for ParseError.
//
// The message format is stable:
//
//	"iabtxt: invalid {Type} value: {Value}"
//	"iabtxt: line {Line}: invalid {Type} value: {Value}"
//	"iabtxt: line {Line}: invalid {Type} value: {Value} ({Reason})"
//
// Line and Reason segments are included only when set. The format is
// intentionally stable so that callers can rely on it for diagnostics, while
// still preferring type assertions where possible.
func (e *ParseError) Error() string {
	msg := "iabtxt: "
	if e.Line > 0 {
		msg += "line " + strconv.Itoa(e.Line) + ": "
	}
	msg += "invalid " + e.Type + " value: " + e.Value
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

// MarshalError is returned when marshaling a typed value fails due to it
// being outside the set of valid constants.
//
// Type identifies the logical type being marshaled (for example,
// "SellerRelation"), and Value contains the underlying numeric value that was
// deemed invalid.
//
// This error is primarily a guardrail: it prevents invalid enum-like values
// from being silently emitted into JSON, YAML or canonical text. In most
// cases a MarshalError indicates a programming error (for example, a zero
// value that was never validated).
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The message format is:
//
//	"iabtxt: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "iabtxt: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated, Data contains the
// original raw payload (typically a JSON fragment), and Reason provides a
// human-readable description of what went wrong.
//
// This struct is intended to be surfaced directly in diagnostics or logs so
// that users can understand why their payload could not be interpreted.
// Callers MAY wrap UnmarshalError with additional context when propagating it
// further up the stack.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Callers MAY choose to log or redact this field depending on privacy
	// and size considerations.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	//
	// Reason SHOULD describe what went wrong (for example, "empty data" or
	// "unknown value 'foo'") rather than repeating the type name; the type
	// name is already reflected in Error().
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The message format is:
//
//	"iabtxt: cannot unmarshal {Type}: {Reason}"
//
// The Data field is intentionally not included in the formatted message to
// avoid excessively verbose or sensitive logs; callers can log it separately
// when appropriate.
func (e *UnmarshalError) Error() string {
	return "iabtxt: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Document", "AuthorizedSystem"), Field optionally identifies which field
// failed validation, Reason provides a human-readable explanation of the
// failure, and Value optionally contains the problematic value.
//
// This error is used by Validate() methods and by DocumentBuilder.Build() to
// report constraint violations, missing required fields, or invalid field
// values. A builder failure is always a ValidationError, never a panic.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable or if the value should not be logged.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The message format is:
//
//	"iabtxt: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"iabtxt: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "iabtxt: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "iabtxt: invalid " + e.Type + ": " + e.Reason
}
