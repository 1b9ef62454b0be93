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

package sellers

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"

	"iabtxt.dev/iabtxt/txtcore/errors"
	"iabtxt.dev/iabtxt/txtcore/model"
)

// SellerType states what role a seller plays for the inventory sold
// through its seller id: the publisher owning the inventory, an
// intermediary reselling it, or both at once. Mandatory on every seller
// entry; an unrecognized value is a parse error, not a default.
type SellerType int

const (
	// SellerTypeUnknown is the zero value. It never parses and never
	// validates.
	SellerTypeUnknown SellerType = iota

	// SellerTypePublisher marks a seller that owns the inventory sold
	// under its seller id.
	SellerTypePublisher

	// SellerTypeIntermediary marks a seller that resells inventory it
	// does not own.
	SellerTypeIntermediary

	// SellerTypeBoth marks a seller acting as publisher for some
	// inventory and intermediary for other inventory under one id.
	SellerTypeBoth
)

// String constants for SellerType values. The specification's canonical
// form is upper-case in the schema table but files in the wild use every
// casing; canonical output here is upper-case, parsing case-insensitive.
const (
	SellerTypePublisherStr    = "PUBLISHER"
	SellerTypeIntermediaryStr = "INTERMEDIARY"
	SellerTypeBothStr         = "BOTH"
)

// ParseSellerType converts a textual representation into a SellerType,
// matching case-insensitively. Unrecognized input returns a
// *errors.ParseError.
func ParseSellerType(s string) (SellerType, error) {
	switch strings.ToUpper(s) {
	case SellerTypePublisherStr:
		return SellerTypePublisher, nil
	case SellerTypeIntermediaryStr:
		return SellerTypeIntermediary, nil
	case SellerTypeBothStr:
		return SellerTypeBoth, nil
	default:
		return SellerTypeUnknown, &errors.ParseError{Type: "SellerType", Value: s}
	}
}

// String returns the canonical upper-case representation, or "UNKNOWN" for
// undefined values.
func (t SellerType) String() string {
	switch t {
	case SellerTypePublisher:
		return SellerTypePublisherStr
	case SellerTypeIntermediary:
		return SellerTypeIntermediaryStr
	case SellerTypeBoth:
		return SellerTypeBothStr
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether the SellerType is one of the three defined roles.
func (t SellerType) Valid() bool {
	switch t {
	case SellerTypePublisher, SellerTypeIntermediary, SellerTypeBoth:
		return true
	default:
		return false
	}
}

// TypeName returns "SellerType".
func (t SellerType) TypeName() string {
	return "SellerType"
}

// Redacted returns the same representation as String().
func (t SellerType) Redacted() string {
	return t.String()
}

// IsZero reports whether the SellerType is SellerTypeUnknown.
func (t SellerType) IsZero() bool {
	return t == SellerTypeUnknown
}

// Equal reports whether this SellerType is equal to another value,
// accepting SellerType or *SellerType.
func (t SellerType) Equal(other any) bool {
	switch o := other.(type) {
	case SellerType:
		return t == o
	case *SellerType:
		if o == nil {
			return false
		}
		return t == *o
	default:
		return false
	}
}

// Validate checks whether the SellerType is defined, returning a
// *errors.ValidationError otherwise.
func (t SellerType) Validate() error {
	if !t.Valid() {
		return &errors.ValidationError{
			Type:   "SellerType",
			Reason: "must be PUBLISHER, INTERMEDIARY, or BOTH",
			Value:  int(t),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler, emitting the canonical upper-case
// string.
func (t SellerType) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, &errors.MarshalError{Type: "SellerType", Value: int(t)}
	}
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler, accepting any casing of the
// defined roles.
func (t *SellerType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "SellerType", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseSellerType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t SellerType) MarshalYAML() (any, error) {
	if !t.Valid() {
		return nil, &errors.MarshalError{Type: "SellerType", Value: int(t)}
	}
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *SellerType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "SellerType", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseSellerType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Compile-time check that SellerType implements model.Model.
var _ model.Model = (*SellerType)(nil)
