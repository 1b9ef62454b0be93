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

import "strings"

// DocumentBuilder assembles a Document programmatically, for callers that
// construct authorization files rather than parse them: publisher tooling
// generating ads.txt output, test fixtures, migration scripts.
//
// Setters normalize their input the same way the parser does (SUBDOMAIN
// lower-cased, country codes and extension keys upper-cased) but defer all
// validation to Build, so a builder can be filled in any order. Build never
// panics; every invariant violation comes back as a structured error.
//
// The builder is not safe for concurrent use.
type DocumentBuilder struct {
	doc Document
}

// NewDocumentBuilder returns a builder for a document of the given variant.
func NewDocumentBuilder(v Variant) *DocumentBuilder {
	return &DocumentBuilder{doc: Document{Variant: v}}
}

// Contact appends CONTACT directive values in order, trimming surrounding
// whitespace as the parser does.
func (b *DocumentBuilder) Contact(values ...string) *DocumentBuilder {
	for _, v := range values {
		b.doc.Contact = append(b.doc.Contact, strings.TrimSpace(v))
	}
	return b
}

// Subdomain sets the SUBDOMAIN directive, lower-casing the value as the
// parser does.
func (b *DocumentBuilder) Subdomain(s string) *DocumentBuilder {
	b.doc.Subdomain = strings.ToLower(strings.TrimSpace(s))
	return b
}

// InventoryPartnerDomain sets the INVENTORYPARTNERDOMAIN directive.
func (b *DocumentBuilder) InventoryPartnerDomain(s string) *DocumentBuilder {
	b.doc.InventoryPartnerDomain = strings.TrimSpace(s)
	return b
}

// OwnerDomain sets the OWNERDOMAIN directive. Build rejects it for
// app-ads.txt documents.
func (b *DocumentBuilder) OwnerDomain(s string) *DocumentBuilder {
	b.doc.OwnerDomain = strings.TrimSpace(s)
	return b
}

// ManagerDomain appends a MANAGERDOMAIN entry, upper-casing the country
// code as the parser does. Build rejects manager entries for app-ads.txt
// documents.
func (b *DocumentBuilder) ManagerDomain(domain, countryCode string) *DocumentBuilder {
	b.doc.ManagerDomains = append(b.doc.ManagerDomains, ManagerDomainEntry{
		Domain:      strings.TrimSpace(domain),
		CountryCode: strings.ToUpper(strings.TrimSpace(countryCode)),
	})
	return b
}

// System appends an authorization record in order.
func (b *DocumentBuilder) System(s AuthorizedSystem) *DocumentBuilder {
	b.doc.Systems = append(b.doc.Systems, s)
	return b
}

// Ext appends an extension variable, upper-casing the key as the parser
// does.
func (b *DocumentBuilder) Ext(key, value string) *DocumentBuilder {
	b.doc.Ext = append(b.doc.Ext, Variable{
		Key:   strings.ToUpper(strings.TrimSpace(key)),
		Value: strings.TrimSpace(value),
	})
	return b
}

// Build validates the assembled document and returns it.
//
// On failure the error enumerates every violated invariant (via the
// document's Validate) and the zero Document is returned. The built
// document is a deep copy; reusing or further mutating the builder never
// affects documents already built.
func (b *DocumentBuilder) Build() (Document, error) {
	doc := b.doc.Clone()
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}
