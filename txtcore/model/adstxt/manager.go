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

// ManagerDomainEntry is the parsed value of a MANAGERDOMAIN directive: the
// domain of a monetization manager the publisher has delegated to, with an
// optional ISO 3166-1 alpha-2 country code scoping the delegation to one
// market.
//
// Unlike the other domain directives, MANAGERDOMAIN is repeatable, since a
// publisher may delegate different country scopes to different managers.
// Its value carries internal structure of its own:
//
//	MANAGERDOMAIN=manager.example.com
//	MANAGERDOMAIN=manager.fr.example.com, FR
//
// The zero value is not valid: Domain is mandatory.
type ManagerDomainEntry struct {
	// Domain is the manager's business domain. Stored as given in the
	// source, never rewritten.
	Domain string `json:"domain" yaml:"domain"`

	// CountryCode is the optional market scope, normalized to upper
	// case. Empty means the entry applies globally.
	CountryCode string `json:"country_code,omitempty" yaml:"country_code,omitempty"`
}

// parseManagerDomainValue parses the text after "MANAGERDOMAIN=". line is
// used for error positions; 0 means no document context.
func parseManagerDomainValue(value string, line int) (ManagerDomainEntry, error) {
	domain := value
	country := ""

	if idx := strings.IndexByte(value, ','); idx >= 0 {
		domain = value[:idx]
		country = strings.TrimSpace(value[idx+1:])
		if !validCountryCode(country) {
			return ManagerDomainEntry{}, &errors.ParseError{
				Type:   "CountryCode",
				Value:  country,
				Line:   line,
				Reason: "must be two ASCII letters",
			}
		}
		country = strings.ToUpper(country)
	}

	domain = strings.TrimSpace(domain)
	if domain == "" {
		return ManagerDomainEntry{}, &errors.ParseError{
			Type:   "ManagerDomainEntry",
			Value:  value,
			Line:   line,
			Reason: "domain must not be empty",
		}
	}
	if strings.ContainsAny(domain, " \t") {
		return ManagerDomainEntry{}, &errors.ParseError{
			Type:   "ManagerDomainEntry",
			Value:  value,
			Line:   line,
			Reason: "domain must not contain whitespace",
		}
	}

	return ManagerDomainEntry{Domain: domain, CountryCode: country}, nil
}

// ParseManagerDomainEntry parses a MANAGERDOMAIN directive value, either a
// bare domain or "domain, CC" with a two-letter country code. The country
// code is matched case-insensitively and normalized to upper case.
func ParseManagerDomainEntry(s string) (ManagerDomainEntry, error) {
	return parseManagerDomainValue(s, 0)
}

// validCountryCode reports whether s is exactly two ASCII letters. Only the
// shape is checked; membership in the ISO 3166-1 assignment table is not,
// matching how consumers treat unassigned codes (scoped entries they do not
// recognize, not parse failures).
func validCountryCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < 2; i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// String returns the canonical directive value: "domain" or "domain, CC".
// The MANAGERDOMAIN= prefix is added by the document serializer.
func (m ManagerDomainEntry) String() string {
	if m.CountryCode == "" {
		return m.Domain
	}
	return m.Domain + ", " + m.CountryCode
}

// Redacted returns the same representation as String(); manager domains are
// published data, not PII.
func (m ManagerDomainEntry) Redacted() string {
	return m.String()
}

// TypeName returns "ManagerDomainEntry".
func (m ManagerDomainEntry) TypeName() string {
	return "ManagerDomainEntry"
}

// IsZero reports whether both fields are empty.
func (m ManagerDomainEntry) IsZero() bool {
	return m.Domain == "" && m.CountryCode == ""
}

// Equal reports whether two entries have the same domain and country code.
func (m ManagerDomainEntry) Equal(other ManagerDomainEntry) bool {
	return m == other
}

// Clone returns a copy of the entry. The type has no reference fields, so
// this is a value copy; the method exists to satisfy model.Cloneable.
func (m ManagerDomainEntry) Clone() ManagerDomainEntry {
	return m
}

// Validate checks the entry's structural invariants: a non-empty domain
// without internal whitespace or commas, and a country code that is either
// empty or exactly two upper-case ASCII letters.
func (m ManagerDomainEntry) Validate() error {
	if m.Domain == "" {
		return &errors.ValidationError{
			Type:   "ManagerDomainEntry",
			Field:  "Domain",
			Reason: "must not be empty",
			Value:  m.Domain,
		}
	}
	if strings.ContainsAny(m.Domain, ", \t#\r\n") {
		return &errors.ValidationError{
			Type:   "ManagerDomainEntry",
			Field:  "Domain",
			Reason: "must not contain commas, whitespace, or '#'",
			Value:  m.Domain,
		}
	}
	if m.CountryCode != "" {
		if !validCountryCode(m.CountryCode) || m.CountryCode != strings.ToUpper(m.CountryCode) {
			return &errors.ValidationError{
				Type:   "ManagerDomainEntry",
				Field:  "CountryCode",
				Reason: "must be two upper-case ASCII letters",
				Value:  m.CountryCode,
			}
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler, validating before encoding.
func (m ManagerDomainEntry) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	type alias ManagerDomainEntry
	return json.Marshal((alias)(m))
}

// UnmarshalJSON implements json.Unmarshaler, validating after decoding.
func (m *ManagerDomainEntry) UnmarshalJSON(data []byte) error {
	type alias ManagerDomainEntry
	if err := json.Unmarshal(data, (*alias)(m)); err != nil {
		return &errors.UnmarshalError{Type: "ManagerDomainEntry", Data: data, Reason: err.Error()}
	}
	return m.Validate()
}

// MarshalYAML implements yaml.Marshaler, validating before encoding.
func (m ManagerDomainEntry) MarshalYAML() (any, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	type alias ManagerDomainEntry
	return (alias)(m), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, validating after decoding.
func (m *ManagerDomainEntry) UnmarshalYAML(node *yaml.Node) error {
	type alias ManagerDomainEntry
	if err := node.Decode((*alias)(m)); err != nil {
		return &errors.UnmarshalError{Type: "ManagerDomainEntry", Data: []byte(node.Value), Reason: err.Error()}
	}
	return m.Validate()
}

// Compile-time checks for the model contracts.
var (
	_ model.Model                          = (*ManagerDomainEntry)(nil)
	_ model.Comparable[ManagerDomainEntry] = (*ManagerDomainEntry)(nil)
	_ model.Cloneable[ManagerDomainEntry]  = (*ManagerDomainEntry)(nil)
)
