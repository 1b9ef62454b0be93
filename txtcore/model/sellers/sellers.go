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

// Package sellers models the IAB Tech Lab sellers.json 1.0 format: the
// file an advertising system publishes to disclose the entities paid for
// the inventory it sells. It is the counterpart that ads.txt records point
// into — an AuthorizedSystem's PublisherAccountID references a Seller's
// SellerID in the sellers.json of the record's domain.
//
// Unlike ads.txt this is a plain JSON format, so the package defines no
// text parser; documents load through model.FromJSON or json.Unmarshal and
// validate at the boundary.
package sellers

import (
	"encoding/json"
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"iabtxt.dev/iabtxt/txtcore/errors"
	"iabtxt.dev/iabtxt/txtcore/model"
)

// Sellers is a complete sellers.json document.
//
// Seller order is preserved from the source. The zero value is not valid:
// Version is mandatory.
type Sellers struct {
	// ContactEmail is an address for inquiries about the file. Optional.
	ContactEmail string `json:"contact_email,omitempty" yaml:"contact_email,omitempty"`

	// ContactAddress is a postal address for the business entity
	// publishing the file. Optional.
	ContactAddress string `json:"contact_address,omitempty" yaml:"contact_address,omitempty"`

	// Version is the format version. Mandatory; only 1.0 exists.
	Version Version `json:"version" yaml:"version"`

	// Identifiers ties the publishing system to external registries
	// (TAG-ID, DUNS). Optional.
	Identifiers []Identifier `json:"identifiers,omitempty" yaml:"identifiers,omitempty"`

	// Sellers holds the seller entries in source order.
	Sellers []Seller `json:"sellers" yaml:"sellers"`

	// Ext is an uninterpreted extension payload. Optional.
	Ext json.RawMessage `json:"ext,omitempty" yaml:"ext,omitempty"`
}

// String returns a single-line summary of the document.
func (s Sellers) String() string {
	return fmt.Sprintf("Sellers{version:%s, sellers:%d, identifiers:%d, contact:%s}",
		s.Version, len(s.Sellers), len(s.Identifiers), s.ContactEmail)
}

// Redacted returns a summary with the contact email masked.
func (s Sellers) Redacted() string {
	return fmt.Sprintf("Sellers{version:%s, sellers:%d, identifiers:%d, contact:[REDACTED]}",
		s.Version, len(s.Sellers), len(s.Identifiers))
}

// TypeName returns "Sellers".
func (s Sellers) TypeName() string {
	return "Sellers"
}

// IsZero reports whether the document carries no data.
func (s Sellers) IsZero() bool {
	return s.ContactEmail == "" &&
		s.ContactAddress == "" &&
		s.Version == "" &&
		len(s.Identifiers) == 0 &&
		len(s.Sellers) == 0 &&
		len(s.Ext) == 0
}

// Equal reports whether two documents are identical, comparing seller and
// identifier slices element-wise in order.
func (s Sellers) Equal(other Sellers) bool {
	if s.ContactEmail != other.ContactEmail ||
		s.ContactAddress != other.ContactAddress ||
		s.Version != other.Version ||
		string(s.Ext) != string(other.Ext) {
		return false
	}
	if len(s.Identifiers) != len(other.Identifiers) || len(s.Sellers) != len(other.Sellers) {
		return false
	}
	for i := range s.Identifiers {
		if s.Identifiers[i] != other.Identifiers[i] {
			return false
		}
	}
	for i := range s.Sellers {
		if !s.Sellers[i].Equal(other.Sellers[i]) {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the document.
func (s Sellers) Clone() Sellers {
	clone := s
	if s.Identifiers != nil {
		clone.Identifiers = make([]Identifier, len(s.Identifiers))
		copy(clone.Identifiers, s.Identifiers)
	}
	if s.Sellers != nil {
		clone.Sellers = make([]Seller, len(s.Sellers))
		copy(clone.Sellers, s.Sellers)
	}
	if s.Ext != nil {
		clone.Ext = make(json.RawMessage, len(s.Ext))
		copy(clone.Ext, s.Ext)
	}
	return clone
}

// Validate checks the document and returns every violation combined: an
// invalid version, invalid identifiers, duplicate seller ids, and every
// invalid seller entry, each wrapped with its position and id.
func (s Sellers) Validate() error {
	var errs error

	errs = multierr.Append(errs, s.Version.Validate())

	for i, id := range s.Identifiers {
		if err := id.Validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("identifier %d: %w", i, err))
		}
	}

	seen := make(map[string]int, len(s.Sellers))
	for i, seller := range s.Sellers {
		if err := seller.Validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("seller %d (%s): %w", i, seller.SellerID, err))
		}
		if seller.SellerID == "" {
			continue
		}
		if first, dup := seen[seller.SellerID]; dup {
			errs = multierr.Append(errs, &errors.ValidationError{
				Type:   "Sellers",
				Field:  fmt.Sprintf("Sellers[%d].SellerID", i),
				Reason: fmt.Sprintf("duplicates seller %d", first),
				Value:  seller.SellerID,
			})
			continue
		}
		seen[seller.SellerID] = i
	}

	return errs
}

// SellerByID returns the seller entry with the given id and whether one
// exists. Lookup is linear; callers resolving many ads.txt records against
// one large file should build their own index.
func (s Sellers) SellerByID(id string) (Seller, bool) {
	for _, seller := range s.Sellers {
		if seller.SellerID == id {
			return seller, true
		}
	}
	return Seller{}, false
}

// MarshalJSON implements json.Marshaler, validating before encoding.
func (s Sellers) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid Sellers: %w", err)
	}
	type alias Sellers
	return json.Marshal((alias)(s))
}

// UnmarshalJSON implements json.Unmarshaler, validating after decoding.
func (s *Sellers) UnmarshalJSON(data []byte) error {
	type alias Sellers
	if err := json.Unmarshal(data, (*alias)(s)); err != nil {
		return &errors.UnmarshalError{Type: "Sellers", Data: data, Reason: err.Error()}
	}
	return s.Validate()
}

// MarshalYAML implements yaml.Marshaler, validating before encoding.
func (s Sellers) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid Sellers: %w", err)
	}
	type alias Sellers
	return (alias)(s), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, validating after decoding.
func (s *Sellers) UnmarshalYAML(node *yaml.Node) error {
	type alias Sellers
	if err := node.Decode((*alias)(s)); err != nil {
		return &errors.UnmarshalError{Type: "Sellers", Data: []byte(node.Value), Reason: err.Error()}
	}
	return s.Validate()
}

// Compile-time checks for the model contracts.
var (
	_ model.Model               = (*Sellers)(nil)
	_ model.Comparable[Sellers] = (*Sellers)(nil)
	_ model.Cloneable[Sellers]  = (*Sellers)(nil)
)
