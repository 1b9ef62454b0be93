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

// Variant identifies which of the two authorization file formats a document
// follows: ads.txt (served by web publishers) or app-ads.txt (served on the
// developer domain listed in an app store).
//
// The two formats share their line grammar but not their directive
// vocabulary: OWNERDOMAIN and MANAGERDOMAIN are defined for ads.txt 1.1
// only and are rejected when they appear in an app-ads.txt file. Every
// Document therefore carries its Variant, and the parser enforces the
// vocabulary of the variant it was asked to parse.
type Variant int

const (
	// VariantUnknown is the zero value. It never parses and never
	// validates; a Document with this variant was not produced by this
	// package's constructors.
	VariantUnknown Variant = iota

	// VariantAdsTxt is the ads.txt 1.1 format, published at the root of
	// a website's domain.
	VariantAdsTxt

	// VariantAppAdsTxt is the app-ads.txt 1.0 format, published on the
	// developer domain advertised in app store listings.
	VariantAppAdsTxt
)

// String constants for Variant values.
const (
	VariantAdsTxtStr    = "ads.txt"
	VariantAppAdsTxtStr = "app-ads.txt"
)

// ParseVariant converts a textual representation into a Variant value.
// Matching is case-insensitive:
//
//	"ads.txt", "ADS.TXT"         -> VariantAdsTxt
//	"app-ads.txt", "App-Ads.txt" -> VariantAppAdsTxt
//
// Any other input returns a *errors.ParseError.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case VariantAdsTxtStr:
		return VariantAdsTxt, nil
	case VariantAppAdsTxtStr:
		return VariantAppAdsTxt, nil
	default:
		return VariantUnknown, &errors.ParseError{Type: "Variant", Value: s}
	}
}

// String returns the canonical file name for the Variant: "ads.txt" or
// "app-ads.txt". An undefined value returns "unknown".
func (v Variant) String() string {
	switch v {
	case VariantAdsTxt:
		return VariantAdsTxtStr
	case VariantAppAdsTxt:
		return VariantAppAdsTxtStr
	default:
		return "unknown"
	}
}

// Valid reports whether the Variant is one of the two defined formats.
func (v Variant) Valid() bool {
	return v == VariantAdsTxt || v == VariantAppAdsTxt
}

// TypeName returns "Variant". Implements part of the model.Model interface.
func (v Variant) TypeName() string {
	return "Variant"
}

// Redacted returns the same representation as String(); variant values are
// not sensitive.
func (v Variant) Redacted() string {
	return v.String()
}

// IsZero reports whether the Variant is VariantUnknown.
func (v Variant) IsZero() bool {
	return v == VariantUnknown
}

// Equal reports whether this Variant is equal to another value, accepting
// Variant or *Variant.
func (v Variant) Equal(other any) bool {
	switch o := other.(type) {
	case Variant:
		return v == o
	case *Variant:
		if o == nil {
			return false
		}
		return v == *o
	default:
		return false
	}
}

// Validate checks whether the Variant is one of the defined formats,
// returning a *errors.ValidationError otherwise.
func (v Variant) Validate() error {
	if !v.Valid() {
		return &errors.ValidationError{
			Type:   "Variant",
			Reason: "must be ads.txt or app-ads.txt",
			Value:  int(v),
		}
	}
	return nil
}

// AllowsOwnerDirectives reports whether the variant's vocabulary includes
// the OWNERDOMAIN and MANAGERDOMAIN directives. Only ads.txt 1.1 does.
func (v Variant) AllowsOwnerDirectives() bool {
	return v == VariantAdsTxt
}

// MarshalJSON implements json.Marshaler for Variant, emitting the canonical
// file name string. Invalid values yield a *errors.MarshalError.
func (v Variant) MarshalJSON() ([]byte, error) {
	if !v.Valid() {
		return nil, &errors.MarshalError{Type: "Variant", Value: int(v)}
	}
	return []byte(`"` + v.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Variant.
//
// String input ("ads.txt", "app-ads.txt") is resolved via ParseVariant;
// numeric input is accepted for payloads that store the enum as an integer,
// and is validated after casting.
func (v *Variant) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Variant", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Variant", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseVariant(s)
		if err != nil {
			return err
		}
		*v = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Variant", Data: data, Reason: err.Error()}
	}
	*v = Variant(i)
	if !v.Valid() {
		return &errors.UnmarshalError{Type: "Variant", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Variant.
func (v Variant) MarshalYAML() (any, error) {
	if !v.Valid() {
		return nil, &errors.MarshalError{Type: "Variant", Value: int(v)}
	}
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Variant.
func (v *Variant) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Variant", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseVariant(str)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Variant.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, &errors.MarshalError{Type: "Variant", Value: int(v)}
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Variant.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Compile-time check that Variant implements model.Model.
var _ model.Model = (*Variant)(nil)
