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
	"fmt"

	"gopkg.in/yaml.v3"

	"iabtxt.dev/iabtxt/txtcore/errors"
	"iabtxt.dev/iabtxt/txtcore/model"
)

// Seller is one entry of a sellers.json file: an account that is paid for
// inventory sold through the advertising system publishing the file.
//
// SellerID is the value that ads.txt publisher account ids reference: an
// AuthorizedSystem{Domain: "ssp.com", PublisherAccountID: "1234"} record
// is confirmed by a Seller{SellerID: "1234"} in ssp.com's sellers.json.
//
// A confidential seller hides its identity: Name and Domain may then be
// omitted. A non-confidential seller must carry a name.
type Seller struct {
	// SellerID is the account id within the advertising system, unique
	// per file, treated as an opaque token.
	SellerID string `json:"seller_id" yaml:"seller_id"`

	// IsConfidential marks a seller whose identity is withheld. On the
	// wire this is the integer 0 or 1; absent means 0.
	IsConfidential model.BoolInt `json:"is_confidential,omitempty" yaml:"is_confidential,omitempty"`

	// SellerType states the seller's role for the inventory sold under
	// this id. Mandatory.
	SellerType SellerType `json:"seller_type" yaml:"seller_type"`

	// IsPassthrough marks a seller id the system passes through from an
	// upstream system rather than paying directly. 0/1 on the wire.
	IsPassthrough model.BoolInt `json:"is_passthrough,omitempty" yaml:"is_passthrough,omitempty"`

	// Name is the legal name of the paid entity. Required unless the
	// seller is confidential.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Domain is the seller's business domain, where its own ads.txt or
	// sellers.json lives. Optional, and omitted when confidential.
	Domain string `json:"domain,omitempty" yaml:"domain,omitempty"`

	// Comment is free-form annotation. Optional.
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`

	// Ext is an uninterpreted extension payload. Optional.
	Ext json.RawMessage `json:"ext,omitempty" yaml:"ext,omitempty"`
}

// String returns a single-line summary including the seller's name.
func (s Seller) String() string {
	return fmt.Sprintf("Seller{id:%s, type:%s, name:%q, domain:%s}",
		s.SellerID, s.SellerType, s.Name, s.Domain)
}

// Redacted returns a summary with the name and domain masked when the
// seller is confidential; a confidential seller's identity must not leak
// through logs even if the publisher filled the fields in anyway.
func (s Seller) Redacted() string {
	if s.IsConfidential {
		return fmt.Sprintf("Seller{id:%s, type:%s, confidential}", s.SellerID, s.SellerType)
	}
	return s.String()
}

// TypeName returns "Seller".
func (s Seller) TypeName() string {
	return "Seller"
}

// IsZero reports whether the seller carries no data.
func (s Seller) IsZero() bool {
	return s.SellerID == "" &&
		!s.IsConfidential.Bool() &&
		s.SellerType == SellerTypeUnknown &&
		!s.IsPassthrough.Bool() &&
		s.Name == "" &&
		s.Domain == "" &&
		s.Comment == "" &&
		len(s.Ext) == 0
}

// Equal reports whether two sellers are field-for-field identical,
// including the raw extension payload.
func (s Seller) Equal(other Seller) bool {
	return s.SellerID == other.SellerID &&
		s.IsConfidential == other.IsConfidential &&
		s.SellerType == other.SellerType &&
		s.IsPassthrough == other.IsPassthrough &&
		s.Name == other.Name &&
		s.Domain == other.Domain &&
		s.Comment == other.Comment &&
		string(s.Ext) == string(other.Ext)
}

// Validate checks the seller's invariants: a non-empty id, a defined
// seller type, and a name unless the entry is confidential.
func (s Seller) Validate() error {
	if s.SellerID == "" {
		return &errors.ValidationError{
			Type:   "Seller",
			Field:  "SellerID",
			Reason: "must not be empty",
			Value:  s.SellerID,
		}
	}
	if err := s.SellerType.Validate(); err != nil {
		return err
	}
	if !s.IsConfidential.Bool() && s.Name == "" {
		return &errors.ValidationError{
			Type:   "Seller",
			Field:  "Name",
			Reason: "required unless the seller is confidential",
			Value:  s.Name,
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler, validating before encoding.
func (s Seller) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	type alias Seller
	return json.Marshal((alias)(s))
}

// UnmarshalJSON implements json.Unmarshaler, validating after decoding.
func (s *Seller) UnmarshalJSON(data []byte) error {
	type alias Seller
	if err := json.Unmarshal(data, (*alias)(s)); err != nil {
		return &errors.UnmarshalError{Type: "Seller", Data: data, Reason: err.Error()}
	}
	return s.Validate()
}

// MarshalYAML implements yaml.Marshaler, validating before encoding.
func (s Seller) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	type alias Seller
	return (alias)(s), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, validating after decoding.
func (s *Seller) UnmarshalYAML(node *yaml.Node) error {
	type alias Seller
	if err := node.Decode((*alias)(s)); err != nil {
		return &errors.UnmarshalError{Type: "Seller", Data: []byte(node.Value), Reason: err.Error()}
	}
	return s.Validate()
}

// Compile-time checks for the model contracts.
var (
	_ model.Model              = (*Seller)(nil)
	_ model.Comparable[Seller] = (*Seller)(nil)
)
