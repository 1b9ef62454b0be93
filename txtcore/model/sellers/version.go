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

	"github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"

	"iabtxt.dev/iabtxt/txtcore/errors"
	"iabtxt.dev/iabtxt/txtcore/model"
)

// Version is the sellers.json format version. Only 1.0 exists; the field
// is mandatory in the file and published files write it as "1.0", "1.00",
// or just "1", so parsing is tolerant while the stored form is canonical.
type Version string

// Version10 is the only version of the sellers.json specification.
const Version10 Version = "1.0"

// ParseVersion converts a version string into a canonical Version.
//
// Parsing is tolerant of partial versions ("1" and "1.0" both mean 1.0.0),
// but anything that does not resolve to major 1, minor 0, patch 0 is
// rejected: there is no other version of the format to fall back to.
func ParseVersion(s string) (Version, error) {
	v, err := semver.ParseTolerant(s)
	if err != nil {
		return "", &errors.ParseError{Type: "Version", Value: s, Reason: err.Error()}
	}
	if v.Major != 1 || v.Minor != 0 || v.Patch != 0 {
		return "", &errors.ParseError{Type: "Version", Value: s, Reason: "only version 1.0 is supported"}
	}
	return Version10, nil
}

// String returns the canonical version string.
func (v Version) String() string {
	return string(v)
}

// Redacted returns the same representation as String(); versions are not
// sensitive.
func (v Version) Redacted() string {
	return v.String()
}

// TypeName returns "Version".
func (v Version) TypeName() string {
	return "Version"
}

// IsZero reports whether the version is unset.
func (v Version) IsZero() bool {
	return v == ""
}

// Valid reports whether the version is the canonical 1.0.
func (v Version) Valid() bool {
	return v == Version10
}

// Validate checks that the version is the canonical 1.0, returning a
// *errors.ValidationError otherwise. Tolerant forms like "1" are accepted
// at parse time only; a stored Version is always canonical.
func (v Version) Validate() error {
	if !v.Valid() {
		return &errors.ValidationError{
			Type:   "Version",
			Reason: "must be 1.0",
			Value:  string(v),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler, emitting the canonical string.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(v))
}

// UnmarshalJSON implements json.Unmarshaler, accepting tolerant version
// strings via ParseVersion.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Version", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Version) MarshalYAML() (any, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return string(v), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Version", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Compile-time check that Version implements model.Model.
var _ model.Model = (*Version)(nil)
