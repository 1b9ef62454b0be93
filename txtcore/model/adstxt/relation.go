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

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"

	"iabtxt.dev/iabtxt/txtcore/errors"
	"iabtxt.dev/iabtxt/txtcore/model"
)

// SellerRelation represents the type of account a publisher holds with an
// advertising system: the third field of every authorization record.
//
// RelationDirect means the publisher (content owner) directly controls the
// account named in the record on the given advertising system, which tends
// to mean a direct business contract between the two. RelationReseller
// means the publisher has authorized another entity to control that account
// and resell its ad space through the system.
//
// The distinction gates trust semantics for buyers, so an unrecognized
// token never falls back to either value: parsing anything other than
// DIRECT or RESELLER (case-insensitive) is a hard error. The zero value
// RelationUnknown is not a valid relation and exists only so that the
// failure mode of an unvalidated value is explicit.
type SellerRelation int

const (
	// RelationUnknown is the zero value. It never parses from text and
	// never validates; it indicates an uninitialized or corrupted value.
	RelationUnknown SellerRelation = iota

	// RelationDirect indicates that the publisher directly controls the
	// account on the advertising system.
	RelationDirect

	// RelationReseller indicates that the publisher has authorized
	// another entity to control the account and resell its inventory.
	RelationReseller
)

// String constants for SellerRelation values used in serialization, parsing,
// and canonical text output.
//
// Canonical form is upper-case, matching the registered tokens in published
// ads.txt files. Input is matched case-insensitively, but output always uses
// these exact strings.
const (
	RelationDirectStr   = "DIRECT"
	RelationResellerStr = "RESELLER"
)

// ParseSellerRelation converts a textual representation into a
// SellerRelation value.
//
// The match is case-insensitive, per the ads.txt specification's note that
// the account type field is to be interpreted case-insensitively:
//
//	"DIRECT", "direct", "Direct"       -> RelationDirect
//	"RESELLER", "reseller", "Reseller" -> RelationReseller
//
// Any other input — including the empty string — is invalid, and
// ParseSellerRelation returns a *errors.ParseError carrying the offending
// value. There is no catch-all variant: an unknown relationship is a
// first-class, reportable error, never a silently-accepted value.
func ParseSellerRelation(s string) (SellerRelation, error) {
	switch strings.ToUpper(s) {
	case RelationDirectStr:
		return RelationDirect, nil
	case RelationResellerStr:
		return RelationReseller, nil
	default:
		return RelationUnknown, &errors.ParseError{Type: "SellerRelation", Value: s}
	}
}

// String returns the canonical string representation of the SellerRelation.
//
// The returned value is always upper-case and is the form used by the
// canonical serializer:
//
//	RelationDirect   -> "DIRECT"
//	RelationReseller -> "RESELLER"
//
// If the value is not one of the defined constants, String returns
// "UNKNOWN". Callers that need to ensure only valid values are emitted
// SHOULD call Valid first, or treat "UNKNOWN" as an indicator of a
// programming error.
func (r SellerRelation) String() string {
	switch r {
	case RelationDirect:
		return RelationDirectStr
	case RelationReseller:
		return RelationResellerStr
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether the SellerRelation is one of the two defined
// relations. RelationUnknown and out-of-range values are not valid.
func (r SellerRelation) Valid() bool {
	return r == RelationDirect || r == RelationReseller
}

// TypeName returns "SellerRelation", the name of the type for error
// messages and debugging. Implements part of the model.Model interface.
func (r SellerRelation) TypeName() string {
	return "SellerRelation"
}

// Redacted returns the same string representation as String().
//
// Relation values carry no sensitive information, so the redacted form is
// identical to the regular string form. Implements part of the model.Model
// interface.
func (r SellerRelation) Redacted() string {
	return r.String()
}

// IsZero reports whether the SellerRelation has its zero value
// (RelationUnknown). Unlike some enum types, the zero value here is NOT a
// valid member of the vocabulary; IsZero returning true means the value was
// never set.
func (r SellerRelation) IsZero() bool {
	return r == RelationUnknown
}

// Equal reports whether this SellerRelation is equal to another value.
//
// The method accepts any type for other and uses type assertion to check if
// it is a SellerRelation or *SellerRelation. Implements part of the
// model.Model interface and is useful in table-driven tests.
func (r SellerRelation) Equal(other any) bool {
	switch v := other.(type) {
	case SellerRelation:
		return r == v
	case *SellerRelation:
		if v == nil {
			return false
		}
		return r == *v
	default:
		return false
	}
}

// Validate checks whether the SellerRelation is one of the defined
// relations, returning a *errors.ValidationError otherwise. Implements part
// of the model.Model interface; typically called after deserialization or
// numeric casts.
func (r SellerRelation) Validate() error {
	if !r.Valid() {
		return &errors.ValidationError{
			Type:   "SellerRelation",
			Reason: "must be DIRECT or RESELLER",
			Value:  int(r),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for SellerRelation.
//
// A valid relation is serialized as its canonical upper-case string (for
// example, "DIRECT"). An invalid value yields a *errors.MarshalError and no
// output, so corrupted relations never leak into JSON payloads.
func (r SellerRelation) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, &errors.MarshalError{Type: "SellerRelation", Value: int(r)}
	}
	return []byte(`"` + r.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for SellerRelation.
//
// The method accepts both string and numeric JSON representations:
//
//   - String: "DIRECT", "RESELLER" in any letter case, via
//     ParseSellerRelation.
//   - Number: 1 (RelationDirect), 2 (RelationReseller), for payloads that
//     store enum values as integers.
//
// String input is the preferred, stable representation. Input that resolves
// to RelationUnknown or any other invalid value fails with a structured
// error.
func (r *SellerRelation) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "SellerRelation", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "SellerRelation", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseSellerRelation(s)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "SellerRelation", Data: data, Reason: err.Error()}
	}
	*r = SellerRelation(i)
	if !r.Valid() {
		return &errors.UnmarshalError{Type: "SellerRelation", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for SellerRelation.
func (r SellerRelation) MarshalYAML() (any, error) {
	if !r.Valid() {
		return nil, &errors.MarshalError{Type: "SellerRelation", Value: int(r)}
	}
	return r.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for SellerRelation, resolving
// string scalars via ParseSellerRelation.
func (r *SellerRelation) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "SellerRelation", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseSellerRelation(str)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for SellerRelation, using
// the canonical upper-case form. An invalid value yields a
// *errors.MarshalError.
func (r SellerRelation) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, &errors.MarshalError{Type: "SellerRelation", Value: int(r)}
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for SellerRelation,
// accepting the same case-insensitive vocabulary as ParseSellerRelation.
func (r *SellerRelation) UnmarshalText(text []byte) error {
	parsed, err := ParseSellerRelation(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Compile-time check that SellerRelation implements model.Model.
var _ model.Model = (*SellerRelation)(nil)
