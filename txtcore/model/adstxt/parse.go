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
	"strings"

	"dirpx.dev/rxmerr"

	"iabtxt.dev/iabtxt/txtcore/errors"
)

// Parse parses file content as the given variant with the FailFast policy.
// On success the returned Document is valid by construction.
func Parse(v Variant, content string) (Document, error) {
	return ParseWithPolicy(v, content, FailFast)
}

// ParseAdsTxt parses content as an ads.txt 1.1 file with FailFast.
func ParseAdsTxt(content string) (Document, error) {
	return Parse(VariantAdsTxt, content)
}

// ParseAppAdsTxt parses content as an app-ads.txt 1.0 file with FailFast.
func ParseAppAdsTxt(content string) (Document, error) {
	return Parse(VariantAppAdsTxt, content)
}

// ParseWithPolicy parses file content as the given variant.
//
// The policy governs malformed data records only. Under FailFast the first
// record error aborts the parse; under CollectAll every record error from
// the whole file is gathered and returned combined, and no document is
// returned when any record failed. Directive errors — duplicated
// single-valued directives, directives outside the variant's vocabulary,
// malformed MANAGERDOMAIN values — abort the parse under both policies,
// because recovering from them would silently change the document's
// meaning.
//
// Either the returned Document passed Validate or the error is non-nil,
// never both halves of a partial result.
func ParseWithPolicy(v Variant, content string, policy Policy) (Document, error) {
	if err := v.Validate(); err != nil {
		return Document{}, err
	}
	if !policy.Valid() {
		return Document{}, &errors.ValidationError{
			Type:   "Policy",
			Reason: "must be FailFast or CollectAll",
			Value:  int(policy),
		}
	}

	doc := Document{Variant: v}
	var seen directiveSet
	collected := rxmerr.NewCollector()

	for _, ln := range classifyLines(content) {
		switch ln.kind {
		case lineVariable:
			if err := doc.applyVariable(ln, &seen); err != nil {
				return Document{}, err
			}
		case lineRecord:
			sys, err := parseRecord(ln.fields, ln.number, ln.raw)
			if err != nil {
				if policy == CollectAll {
					collected.Append(err)
					continue
				}
				return Document{}, err
			}
			doc.Systems = append(doc.Systems, sys)
		}
	}

	if err := collected.Err(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// directiveSet tracks which single-valued directives have already been
// applied, so a second occurrence can be reported as a duplicate. Empty
// directive values make the field-as-sentinel approach unusable.
type directiveSet struct {
	subdomain        bool
	inventoryPartner bool
	owner            bool
}

// applyVariable folds one variable directive line into the document.
// Every error returned here is fatal to the parse regardless of policy.
func (d *Document) applyVariable(ln logicalLine, seen *directiveSet) error {
	switch ln.key {
	case directiveContact:
		if ln.value == "" {
			return emptyDirectiveValue(ln)
		}
		d.Contact = append(d.Contact, ln.value)

	case directiveSubdomain:
		if ln.value == "" {
			return emptyDirectiveValue(ln)
		}
		if strings.ContainsAny(ln.value, ", \t") {
			return invalidDirectiveDomain(ln)
		}
		if seen.subdomain {
			return &DuplicateDirectiveError{Line: ln.number, Key: ln.key}
		}
		seen.subdomain = true
		d.Subdomain = strings.ToLower(ln.value)

	case directiveInventoryPartnerDomain:
		if ln.value == "" {
			return emptyDirectiveValue(ln)
		}
		if strings.ContainsAny(ln.value, ", \t") {
			return invalidDirectiveDomain(ln)
		}
		if seen.inventoryPartner {
			return &DuplicateDirectiveError{Line: ln.number, Key: ln.key}
		}
		seen.inventoryPartner = true
		d.InventoryPartnerDomain = ln.value

	case directiveOwnerDomain:
		if !d.Variant.AllowsOwnerDirectives() {
			return &UnsupportedDirectiveError{Line: ln.number, Key: ln.key, Variant: d.Variant}
		}
		if ln.value == "" {
			return emptyDirectiveValue(ln)
		}
		if strings.ContainsAny(ln.value, ", \t") {
			return invalidDirectiveDomain(ln)
		}
		if seen.owner {
			return &DuplicateDirectiveError{Line: ln.number, Key: ln.key}
		}
		seen.owner = true
		d.OwnerDomain = ln.value

	case directiveManagerDomain:
		if !d.Variant.AllowsOwnerDirectives() {
			return &UnsupportedDirectiveError{Line: ln.number, Key: ln.key, Variant: d.Variant}
		}
		entry, err := parseManagerDomainValue(ln.value, ln.number)
		if err != nil {
			return err
		}
		d.ManagerDomains = append(d.ManagerDomains, entry)

	default:
		// Unknown directives pass through opaquely, empty values
		// included; future spec revisions may define them.
		d.Ext = append(d.Ext, Variable{Key: ln.key, Value: ln.value})
	}

	return nil
}

func emptyDirectiveValue(ln logicalLine) error {
	return &errors.ParseError{
		Type:   "Directive",
		Value:  ln.key,
		Line:   ln.number,
		Reason: "value must not be empty",
	}
}

// invalidDirectiveDomain rejects a domain-valued directive whose value is
// not a single token. Letting such values through would produce a document
// that fails Validate, breaking the valid-by-construction contract.
func invalidDirectiveDomain(ln logicalLine) error {
	return &errors.ParseError{
		Type:   "Directive",
		Value:  ln.key,
		Line:   ln.number,
		Reason: "value must be a single token without commas or whitespace",
	}
}
