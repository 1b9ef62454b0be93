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

// IdentifierName is the registry an advertising system identifier belongs
// to. The specification defines TAG-ID (Trustworthy Accountability Group)
// and DUNS (Dun & Bradstreet).
type IdentifierName int

const (
	// IdentifierNameUnknown is the zero value. It never parses and never
	// validates.
	IdentifierNameUnknown IdentifierName = iota

	// IdentifierNameTagID is a Trustworthy Accountability Group id.
	IdentifierNameTagID

	// IdentifierNameDUNS is a Dun & Bradstreet DUNS number.
	IdentifierNameDUNS
)

// String constants for IdentifierName values.
const (
	IdentifierNameTagIDStr = "TAG-ID"
	IdentifierNameDUNSStr  = "DUNS"
)

// ParseIdentifierName converts a textual representation into an
// IdentifierName, matching case-insensitively.
func ParseIdentifierName(s string) (IdentifierName, error) {
	switch strings.ToUpper(s) {
	case IdentifierNameTagIDStr:
		return IdentifierNameTagID, nil
	case IdentifierNameDUNSStr:
		return IdentifierNameDUNS, nil
	default:
		return IdentifierNameUnknown, &errors.ParseError{Type: "IdentifierName", Value: s}
	}
}

// String returns the canonical upper-case registry name, or "UNKNOWN" for
// undefined values.
func (n IdentifierName) String() string {
	switch n {
	case IdentifierNameTagID:
		return IdentifierNameTagIDStr
	case IdentifierNameDUNS:
		return IdentifierNameDUNSStr
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether the IdentifierName is a defined registry.
func (n IdentifierName) Valid() bool {
	return n == IdentifierNameTagID || n == IdentifierNameDUNS
}

// Validate checks whether the IdentifierName is defined.
func (n IdentifierName) Validate() error {
	if !n.Valid() {
		return &errors.ValidationError{
			Type:   "IdentifierName",
			Reason: "must be TAG-ID or DUNS",
			Value:  int(n),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n IdentifierName) MarshalJSON() ([]byte, error) {
	if !n.Valid() {
		return nil, &errors.MarshalError{Type: "IdentifierName", Value: int(n)}
	}
	return []byte(`"` + n.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *IdentifierName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "IdentifierName", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseIdentifierName(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (n IdentifierName) MarshalYAML() (any, error) {
	if !n.Valid() {
		return nil, &errors.MarshalError{Type: "IdentifierName", Value: int(n)}
	}
	return n.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *IdentifierName) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "IdentifierName", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseIdentifierName(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Identifier is one entry of the file-level identifiers array, tying the
// advertising system to an id in an external registry.
type Identifier struct {
	// Name is the registry the value belongs to.
	Name IdentifierName `json:"name" yaml:"name"`

	// Value is the id within that registry, treated as opaque.
	Value string `json:"value" yaml:"value"`
}

// String returns "NAME=value".
func (i Identifier) String() string {
	return i.Name.String() + "=" + i.Value
}

// Redacted returns the same representation as String(); registry ids are
// published data.
func (i Identifier) Redacted() string {
	return i.String()
}

// TypeName returns "Identifier".
func (i Identifier) TypeName() string {
	return "Identifier"
}

// IsZero reports whether both fields are unset.
func (i Identifier) IsZero() bool {
	return i.Name == IdentifierNameUnknown && i.Value == ""
}

// Equal reports whether two identifiers match exactly.
func (i Identifier) Equal(other Identifier) bool {
	return i == other
}

// Validate checks that the registry is defined and the value non-empty.
func (i Identifier) Validate() error {
	if err := i.Name.Validate(); err != nil {
		return err
	}
	if i.Value == "" {
		return &errors.ValidationError{
			Type:   "Identifier",
			Field:  "Value",
			Reason: "must not be empty",
			Value:  i.Value,
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler, validating before encoding.
func (i Identifier) MarshalJSON() ([]byte, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	type alias Identifier
	return json.Marshal((alias)(i))
}

// UnmarshalJSON implements json.Unmarshaler, validating after decoding.
func (i *Identifier) UnmarshalJSON(data []byte) error {
	type alias Identifier
	if err := json.Unmarshal(data, (*alias)(i)); err != nil {
		return &errors.UnmarshalError{Type: "Identifier", Data: data, Reason: err.Error()}
	}
	return i.Validate()
}

// MarshalYAML implements yaml.Marshaler, validating before encoding.
func (i Identifier) MarshalYAML() (any, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	type alias Identifier
	return (alias)(i), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, validating after decoding.
func (i *Identifier) UnmarshalYAML(node *yaml.Node) error {
	type alias Identifier
	if err := node.Decode((*alias)(i)); err != nil {
		return &errors.UnmarshalError{Type: "Identifier", Data: []byte(node.Value), Reason: err.Error()}
	}
	return i.Validate()
}

// Compile-time checks for the model contracts.
var (
	_ model.Model                  = (*Identifier)(nil)
	_ model.Comparable[Identifier] = (*Identifier)(nil)
)
