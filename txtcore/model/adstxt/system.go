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

// AuthorizedSystem is one data record of an ads.txt or app-ads.txt file: a
// single grant of permission for an advertising system to sell or resell
// the publisher's inventory.
//
//	google.com, pub-1234567890, DIRECT, f08c47fec0942fa0
//	└ Domain     └ PublisherAccountID  └ AccountType  └ CertificationAuthorityID
//
// Domain and account id are stored exactly as published (minus surrounding
// whitespace); case normalization of domains is a lookup concern, not a
// parsing one. The zero value is not valid.
type AuthorizedSystem struct {
	// Domain is the canonical domain of the advertising system, the
	// domain its sellers.json is served from.
	Domain string `json:"domain" yaml:"domain"`

	// PublisherAccountID is the publisher's account identifier within
	// the advertising system, matching seller_id in that system's
	// sellers.json. Treated as an opaque token.
	PublisherAccountID string `json:"publisher_account_id" yaml:"publisher_account_id"`

	// AccountType states whether the publisher controls the account
	// directly or has delegated it to a reseller.
	AccountType SellerRelation `json:"account_type" yaml:"account_type"`

	// CertificationAuthorityID optionally identifies the system within a
	// certification authority, such as a TAG-ID. Empty when absent.
	CertificationAuthorityID string `json:"certification_authority_id,omitempty" yaml:"certification_authority_id,omitempty"`
}

// parseRecord builds an AuthorizedSystem from tokenized record fields. raw
// and line feed diagnostics; line 0 means no document context.
func parseRecord(fields []string, line int, raw string) (AuthorizedSystem, error) {
	if len(fields) < 3 || len(fields) > 4 {
		return AuthorizedSystem{}, &MalformedRecordError{
			Line:       line,
			FieldCount: len(fields),
			Raw:        raw,
		}
	}

	domain := fields[0]
	if domain == "" {
		return AuthorizedSystem{}, &EmptyFieldError{Line: line, Field: "domain", Raw: raw}
	}
	if strings.ContainsAny(domain, " \t") {
		return AuthorizedSystem{}, &errors.ParseError{
			Type:   "Domain",
			Value:  domain,
			Line:   line,
			Reason: "must not contain whitespace",
		}
	}

	account := fields[1]
	if account == "" {
		return AuthorizedSystem{}, &EmptyFieldError{Line: line, Field: "publisher account id", Raw: raw}
	}
	if strings.ContainsAny(account, " \t") {
		return AuthorizedSystem{}, &errors.ParseError{
			Type:   "PublisherAccountID",
			Value:  account,
			Line:   line,
			Reason: "must not contain whitespace",
		}
	}

	relation, err := ParseSellerRelation(fields[2])
	if err != nil {
		return AuthorizedSystem{}, &errors.ParseError{
			Type:  "SellerRelation",
			Value: fields[2],
			Line:  line,
		}
	}

	cert := ""
	if len(fields) == 4 {
		cert = fields[3]
		if strings.ContainsAny(cert, " \t") {
			return AuthorizedSystem{}, &errors.ParseError{
				Type:   "CertificationAuthorityID",
				Value:  cert,
				Line:   line,
				Reason: "must not contain whitespace",
			}
		}
	}

	return AuthorizedSystem{
		Domain:                   domain,
		PublisherAccountID:       account,
		AccountType:              relation,
		CertificationAuthorityID: cert,
	}, nil
}

// ParseAuthorizedSystem parses one data record line, for example
// "google.com, pub-123, DIRECT". A trailing comment is not stripped here;
// callers holding full file content use Parse instead.
func ParseAuthorizedSystem(s string) (AuthorizedSystem, error) {
	return parseRecord(splitFields(s), 0, strings.TrimSpace(s))
}

// String returns the canonical record line: fields joined by ", " with the
// account type upper-case and the certification authority id present only
// when set.
func (a AuthorizedSystem) String() string {
	s := a.Domain + ", " + a.PublisherAccountID + ", " + a.AccountType.String()
	if a.CertificationAuthorityID != "" {
		s += ", " + a.CertificationAuthorityID
	}
	return s
}

// Redacted returns the same representation as String(). Authorization
// records are published data; nothing needs masking.
func (a AuthorizedSystem) Redacted() string {
	return a.String()
}

// TypeName returns "AuthorizedSystem".
func (a AuthorizedSystem) TypeName() string {
	return "AuthorizedSystem"
}

// IsZero reports whether all fields are at their zero values.
func (a AuthorizedSystem) IsZero() bool {
	return a == AuthorizedSystem{}
}

// Equal reports whether two records are field-for-field identical.
func (a AuthorizedSystem) Equal(other AuthorizedSystem) bool {
	return a == other
}

// Clone returns a copy of the record. The type has no reference fields, so
// this is a value copy; the method exists to satisfy model.Cloneable.
func (a AuthorizedSystem) Clone() AuthorizedSystem {
	return a
}

// Validate checks the record's invariants: non-empty domain and account id
// free of commas and whitespace, a valid account type, and a certification
// authority id that, when present, is a single token.
//
// Fields must also survive the canonical serializer: '#' and line breaks
// are rejected everywhere (they would truncate or split the emitted line),
// and the domain may not contain '=' (the line would re-parse as a
// directive, since the domain precedes the first comma).
func (a AuthorizedSystem) Validate() error {
	if a.Domain == "" {
		return &errors.ValidationError{
			Type:   "AuthorizedSystem",
			Field:  "Domain",
			Reason: "must not be empty",
			Value:  a.Domain,
		}
	}
	if strings.ContainsAny(a.Domain, ", \t#=\r\n") {
		return &errors.ValidationError{
			Type:   "AuthorizedSystem",
			Field:  "Domain",
			Reason: "must not contain commas, whitespace, '#', or '='",
			Value:  a.Domain,
		}
	}
	if a.PublisherAccountID == "" {
		return &errors.ValidationError{
			Type:   "AuthorizedSystem",
			Field:  "PublisherAccountID",
			Reason: "must not be empty",
			Value:  a.PublisherAccountID,
		}
	}
	if strings.ContainsAny(a.PublisherAccountID, ", \t#\r\n") {
		return &errors.ValidationError{
			Type:   "AuthorizedSystem",
			Field:  "PublisherAccountID",
			Reason: "must not contain commas, whitespace, or '#'",
			Value:  a.PublisherAccountID,
		}
	}
	if err := a.AccountType.Validate(); err != nil {
		return err
	}
	if strings.ContainsAny(a.CertificationAuthorityID, ", \t#\r\n") {
		return &errors.ValidationError{
			Type:   "AuthorizedSystem",
			Field:  "CertificationAuthorityID",
			Reason: "must not contain commas, whitespace, or '#'",
			Value:  a.CertificationAuthorityID,
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler, validating before encoding.
func (a AuthorizedSystem) MarshalJSON() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	type alias AuthorizedSystem
	return json.Marshal((alias)(a))
}

// UnmarshalJSON implements json.Unmarshaler, validating after decoding.
func (a *AuthorizedSystem) UnmarshalJSON(data []byte) error {
	type alias AuthorizedSystem
	if err := json.Unmarshal(data, (*alias)(a)); err != nil {
		return &errors.UnmarshalError{Type: "AuthorizedSystem", Data: data, Reason: err.Error()}
	}
	return a.Validate()
}

// MarshalYAML implements yaml.Marshaler, validating before encoding.
func (a AuthorizedSystem) MarshalYAML() (any, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	type alias AuthorizedSystem
	return (alias)(a), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, validating after decoding.
func (a *AuthorizedSystem) UnmarshalYAML(node *yaml.Node) error {
	type alias AuthorizedSystem
	if err := node.Decode((*alias)(a)); err != nil {
		return &errors.UnmarshalError{Type: "AuthorizedSystem", Data: []byte(node.Value), Reason: err.Error()}
	}
	return a.Validate()
}

// Compile-time checks for the model contracts.
var (
	_ model.Model                        = (*AuthorizedSystem)(nil)
	_ model.Comparable[AuthorizedSystem] = (*AuthorizedSystem)(nil)
	_ model.Cloneable[AuthorizedSystem]  = (*AuthorizedSystem)(nil)
)
