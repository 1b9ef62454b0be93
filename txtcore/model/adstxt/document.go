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

// Package adstxt models the IAB Tech Lab ads.txt 1.1 and app-ads.txt 1.0
// supply-chain authorization formats: parsing published files into typed
// documents, validating the invariants the formats impose, and rendering
// documents back out in a canonical normalized form.
//
// The entry points are Parse, ParseAdsTxt, and ParseAppAdsTxt for full
// files, ParseAuthorizedSystem and ParseManagerDomainEntry for single
// values, and DocumentBuilder for programmatic construction. A Document
// returned by any of them is valid by construction; re-serializing it with
// String and parsing the output yields an equal Document.
package adstxt

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"iabtxt.dev/iabtxt/txtcore/errors"
	"iabtxt.dev/iabtxt/txtcore/model"
)

// Variable is an unrecognized KEY=VALUE directive carried through a
// document opaquely. Publishers use extension directives ahead of spec
// revisions; dropping them would make canonicalization lossy, so they are
// preserved in order and re-emitted after the known directives.
type Variable struct {
	// Key is the directive name, normalized to upper case.
	Key string `json:"key" yaml:"key"`

	// Value is the text after '=', whitespace-trimmed but otherwise
	// uninterpreted. May be empty.
	Value string `json:"value" yaml:"value"`
}

// String returns the directive line form "KEY=VALUE".
func (v Variable) String() string {
	return v.Key + "=" + v.Value
}

// Redacted returns the key with the value masked. Extension values are
// uninterpreted and could hold anything, including contact data.
func (v Variable) Redacted() string {
	if v.Value == "" {
		return v.Key + "="
	}
	return v.Key + "=[REDACTED]"
}

// TypeName returns "Variable".
func (v Variable) TypeName() string {
	return "Variable"
}

// IsZero reports whether both key and value are empty.
func (v Variable) IsZero() bool {
	return v.Key == "" && v.Value == ""
}

// Equal reports whether two variables have the same key and value.
func (v Variable) Equal(other Variable) bool {
	return v == other
}

// Validate checks that the key is a non-empty upper-case token without
// '=', commas, or whitespace, and that the value survives a serialization
// round trip: no '#' (starts a comment), no line breaks, no leading or
// trailing whitespace (the parser trims).
func (v Variable) Validate() error {
	if v.Key == "" {
		return &errors.ValidationError{
			Type:   "Variable",
			Field:  "Key",
			Reason: "must not be empty",
			Value:  v.Key,
		}
	}
	if strings.ContainsAny(v.Key, "=, \t") {
		return &errors.ValidationError{
			Type:   "Variable",
			Field:  "Key",
			Reason: "must not contain '=', commas, or whitespace",
			Value:  v.Key,
		}
	}
	if v.Key != strings.ToUpper(v.Key) {
		return &errors.ValidationError{
			Type:   "Variable",
			Field:  "Key",
			Reason: "must be upper case",
			Value:  v.Key,
		}
	}
	if strings.ContainsAny(v.Value, "#\r\n") {
		return &errors.ValidationError{
			Type:   "Variable",
			Field:  "Value",
			Reason: "must not contain '#' or line breaks",
			Value:  v.Value,
		}
	}
	if v.Value != strings.TrimSpace(v.Value) {
		return &errors.ValidationError{
			Type:   "Variable",
			Field:  "Value",
			Reason: "must not have leading or trailing whitespace",
			Value:  v.Value,
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler, validating before encoding.
func (v Variable) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	type alias Variable
	return json.Marshal((alias)(v))
}

// UnmarshalJSON implements json.Unmarshaler, validating after decoding.
func (v *Variable) UnmarshalJSON(data []byte) error {
	type alias Variable
	if err := json.Unmarshal(data, (*alias)(v)); err != nil {
		return &errors.UnmarshalError{Type: "Variable", Data: data, Reason: err.Error()}
	}
	return v.Validate()
}

// MarshalYAML implements yaml.Marshaler, validating before encoding.
func (v Variable) MarshalYAML() (any, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	type alias Variable
	return (alias)(v), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, validating after decoding.
func (v *Variable) UnmarshalYAML(node *yaml.Node) error {
	type alias Variable
	if err := node.Decode((*alias)(v)); err != nil {
		return &errors.UnmarshalError{Type: "Variable", Data: []byte(node.Value), Reason: err.Error()}
	}
	return v.Validate()
}

var _ model.Model = (*Variable)(nil)

// Document is a fully parsed ads.txt or app-ads.txt file.
//
// Slice fields preserve source order: the order of authorization records,
// repeated CONTACT directives, MANAGERDOMAIN entries, and extension
// variables is exactly their order of appearance, and the canonical
// serializer re-emits them in that order. Single-valued directives are
// plain fields; an empty string means the directive was absent.
//
// Documents produced by this package's parse and build entry points are
// valid by construction. A hand-assembled Document should be passed through
// Validate before use.
type Document struct {
	// Variant identifies which format's vocabulary the document follows.
	Variant Variant `json:"variant" yaml:"variant"`

	// Contact holds the values of CONTACT directives in order. Values
	// are free-form: email addresses, URLs, phone numbers.
	Contact []string `json:"contact,omitempty" yaml:"contact,omitempty"`

	// Subdomain is the value of the SUBDOMAIN directive, normalized to
	// lower case, or empty. It points at a subdomain publishing its own
	// authorization file.
	Subdomain string `json:"subdomain,omitempty" yaml:"subdomain,omitempty"`

	// InventoryPartnerDomain is the value of the
	// INVENTORYPARTNERDOMAIN directive or empty: the domain of a
	// partner whose authorization file also covers this inventory.
	InventoryPartnerDomain string `json:"inventory_partner_domain,omitempty" yaml:"inventory_partner_domain,omitempty"`

	// OwnerDomain is the value of the OWNERDOMAIN directive or empty.
	// ads.txt only.
	OwnerDomain string `json:"owner_domain,omitempty" yaml:"owner_domain,omitempty"`

	// ManagerDomains holds MANAGERDOMAIN entries in order. ads.txt only.
	ManagerDomains []ManagerDomainEntry `json:"manager_domains,omitempty" yaml:"manager_domains,omitempty"`

	// Systems holds the authorization records in order.
	Systems []AuthorizedSystem `json:"systems,omitempty" yaml:"systems,omitempty"`

	// Ext holds unrecognized variable directives in order.
	Ext []Variable `json:"ext,omitempty" yaml:"ext,omitempty"`
}

// TypeName returns "Document".
func (d Document) TypeName() string {
	return "Document"
}

// IsZero reports whether the document carries no variant, no directives,
// and no records.
func (d Document) IsZero() bool {
	return d.Variant == VariantUnknown &&
		len(d.Contact) == 0 &&
		d.Subdomain == "" &&
		d.InventoryPartnerDomain == "" &&
		d.OwnerDomain == "" &&
		len(d.ManagerDomains) == 0 &&
		len(d.Systems) == 0 &&
		len(d.Ext) == 0
}

// Redacted returns a summary safe for production logging. CONTACT values
// are masked; everything else in the document is published data, so counts
// and domains are shown in full.
func (d Document) Redacted() string {
	return fmt.Sprintf("Document{variant:%s, contact:%d redacted, subdomain:%q, systems:%d, managers:%d, ext:%d}",
		d.Variant, len(d.Contact), d.Subdomain, len(d.Systems), len(d.ManagerDomains), len(d.Ext))
}

// Equal reports whether two documents are semantically identical: same
// variant, same single-valued directives, and the same ordered contents of
// every slice field.
func (d Document) Equal(other Document) bool {
	if d.Variant != other.Variant ||
		d.Subdomain != other.Subdomain ||
		d.InventoryPartnerDomain != other.InventoryPartnerDomain ||
		d.OwnerDomain != other.OwnerDomain {
		return false
	}
	if len(d.Contact) != len(other.Contact) ||
		len(d.ManagerDomains) != len(other.ManagerDomains) ||
		len(d.Systems) != len(other.Systems) ||
		len(d.Ext) != len(other.Ext) {
		return false
	}
	for i := range d.Contact {
		if d.Contact[i] != other.Contact[i] {
			return false
		}
	}
	for i := range d.ManagerDomains {
		if d.ManagerDomains[i] != other.ManagerDomains[i] {
			return false
		}
	}
	for i := range d.Systems {
		if d.Systems[i] != other.Systems[i] {
			return false
		}
	}
	for i := range d.Ext {
		if d.Ext[i] != other.Ext[i] {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the document: slice fields are copied, so
// mutating the clone never affects the original.
func (d Document) Clone() Document {
	clone := d
	if d.Contact != nil {
		clone.Contact = make([]string, len(d.Contact))
		copy(clone.Contact, d.Contact)
	}
	if d.ManagerDomains != nil {
		clone.ManagerDomains = make([]ManagerDomainEntry, len(d.ManagerDomains))
		copy(clone.ManagerDomains, d.ManagerDomains)
	}
	if d.Systems != nil {
		clone.Systems = make([]AuthorizedSystem, len(d.Systems))
		copy(clone.Systems, d.Systems)
	}
	if d.Ext != nil {
		clone.Ext = make([]Variable, len(d.Ext))
		copy(clone.Ext, d.Ext)
	}
	return clone
}

// Validate checks every invariant of the document and returns all
// violations combined, not just the first.
//
// Checked invariants: a known variant; non-empty CONTACT values; a
// lower-case single-token SUBDOMAIN; single-token OWNERDOMAIN and
// INVENTORYPARTNERDOMAIN; OWNERDOMAIN and MANAGERDOMAIN absent in
// app-ads.txt documents; and every manager entry, authorization record,
// and extension variable valid on its own.
//
// Validity implies serializability: no field of a valid document may hold
// a value the canonical serializer would emit as something the parser
// reads differently. That rules out '#' (starts a comment) and line
// breaks everywhere, leading or trailing whitespace in CONTACT and
// extension values (the parser trims), and '=' in a record's domain (the
// line would re-parse as a directive).
func (d Document) Validate() error {
	var errs error

	errs = multierr.Append(errs, d.Variant.Validate())

	for i, c := range d.Contact {
		switch {
		case c == "":
			errs = multierr.Append(errs, &errors.ValidationError{
				Type:   "Document",
				Field:  fmt.Sprintf("Contact[%d]", i),
				Reason: "must not be empty",
				Value:  c,
			})
		case strings.ContainsAny(c, "#\r\n"):
			errs = multierr.Append(errs, &errors.ValidationError{
				Type:   "Document",
				Field:  fmt.Sprintf("Contact[%d]", i),
				Reason: "must not contain '#' or line breaks",
				Value:  c,
			})
		case c != strings.TrimSpace(c):
			errs = multierr.Append(errs, &errors.ValidationError{
				Type:   "Document",
				Field:  fmt.Sprintf("Contact[%d]", i),
				Reason: "must not have leading or trailing whitespace",
				Value:  c,
			})
		}
	}

	errs = multierr.Append(errs, d.validateDomainField("Subdomain", d.Subdomain))
	errs = multierr.Append(errs, d.validateDomainField("InventoryPartnerDomain", d.InventoryPartnerDomain))
	errs = multierr.Append(errs, d.validateDomainField("OwnerDomain", d.OwnerDomain))

	if d.Subdomain != strings.ToLower(d.Subdomain) {
		errs = multierr.Append(errs, &errors.ValidationError{
			Type:   "Document",
			Field:  "Subdomain",
			Reason: "must be lower case",
			Value:  d.Subdomain,
		})
	}

	if d.Variant.Valid() && !d.Variant.AllowsOwnerDirectives() {
		if d.OwnerDomain != "" {
			errs = multierr.Append(errs, &errors.ValidationError{
				Type:   "Document",
				Field:  "OwnerDomain",
				Reason: "not allowed in " + d.Variant.String(),
				Value:  d.OwnerDomain,
			})
		}
		if len(d.ManagerDomains) > 0 {
			errs = multierr.Append(errs, &errors.ValidationError{
				Type:   "Document",
				Field:  "ManagerDomains",
				Reason: "not allowed in " + d.Variant.String(),
				Value:  len(d.ManagerDomains),
			})
		}
	}

	for i, m := range d.ManagerDomains {
		if err := m.Validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("manager domain %d: %w", i, err))
		}
	}
	for i, s := range d.Systems {
		if err := s.Validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("record %d: %w", i, err))
		}
	}
	for i, v := range d.Ext {
		if err := v.Validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("ext variable %d: %w", i, err))
		}
	}

	return errs
}

// validateDomainField checks that a single-valued domain directive, when
// set, is one token free of commas, whitespace, '#', and line breaks.
func (d Document) validateDomainField(field, value string) error {
	if value == "" {
		return nil
	}
	if strings.ContainsAny(value, ", \t#\r\n") {
		return &errors.ValidationError{
			Type:   "Document",
			Field:  field,
			Reason: "must not contain commas, whitespace, or '#'",
			Value:  value,
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler, validating before encoding.
func (d Document) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid Document: %w", err)
	}
	type alias Document
	return json.Marshal((alias)(d))
}

// UnmarshalJSON implements json.Unmarshaler, validating after decoding.
func (d *Document) UnmarshalJSON(data []byte) error {
	type alias Document
	if err := json.Unmarshal(data, (*alias)(d)); err != nil {
		return &errors.UnmarshalError{Type: "Document", Data: data, Reason: err.Error()}
	}
	return d.Validate()
}

// MarshalYAML implements yaml.Marshaler, validating before encoding.
func (d Document) MarshalYAML() (any, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid Document: %w", err)
	}
	type alias Document
	return (alias)(d), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, validating after decoding.
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	type alias Document
	if err := node.Decode((*alias)(d)); err != nil {
		return &errors.UnmarshalError{Type: "Document", Data: []byte(node.Value), Reason: err.Error()}
	}
	return d.Validate()
}

// Compile-time checks for the model contracts. String is implemented by the
// canonical serializer in serialize.go.
var (
	_ model.Model                = (*Document)(nil)
	_ model.Comparable[Document] = (*Document)(nil)
	_ model.Cloneable[Document]  = (*Document)(nil)
)
