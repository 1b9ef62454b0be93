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

// Directive names as they appear in canonical output.
const (
	directiveContact                = "CONTACT"
	directiveSubdomain              = "SUBDOMAIN"
	directiveInventoryPartnerDomain = "INVENTORYPARTNERDOMAIN"
	directiveOwnerDomain            = "OWNERDOMAIN"
	directiveManagerDomain          = "MANAGERDOMAIN"
)

// String renders the document in canonical text form.
//
// Canonical form is deterministic: variable directives first, in the fixed
// order CONTACT, SUBDOMAIN, INVENTORYPARTNERDOMAIN, OWNERDOMAIN,
// MANAGERDOMAIN, then extension variables in source order, then one blank
// line, then the authorization records in source order. Directive keys and
// relationship tokens are upper-case, record fields are joined with ", ",
// and comments are not reproduced. Lines are joined with "\n" and the
// output carries no trailing newline.
//
// Parsing the output of String yields a Document equal to the receiver, and
// serializing that parse yields the same text again.
func (d Document) String() string {
	var lines []string

	for _, c := range d.Contact {
		lines = append(lines, directiveContact+"="+c)
	}
	if d.Subdomain != "" {
		lines = append(lines, directiveSubdomain+"="+d.Subdomain)
	}
	if d.InventoryPartnerDomain != "" {
		lines = append(lines, directiveInventoryPartnerDomain+"="+d.InventoryPartnerDomain)
	}
	if d.OwnerDomain != "" {
		lines = append(lines, directiveOwnerDomain+"="+d.OwnerDomain)
	}
	for _, m := range d.ManagerDomains {
		lines = append(lines, directiveManagerDomain+"="+m.String())
	}
	for _, v := range d.Ext {
		lines = append(lines, v.String())
	}

	if len(lines) > 0 && len(d.Systems) > 0 {
		lines = append(lines, "")
	}
	for _, s := range d.Systems {
		lines = append(lines, s.String())
	}

	return strings.Join(lines, "\n")
}
