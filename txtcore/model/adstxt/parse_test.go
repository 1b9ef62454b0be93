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
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	txterrors "iabtxt.dev/iabtxt/txtcore/errors"
)

func TestParseAdsTxt_Full(t *testing.T) {
	content := `# ads.txt for example.com
CONTACT=adops@example.com
contact=https://example.com/contact # key match is case-insensitive
SUBDOMAIN=Divisions.Example.com
OWNERDOMAIN=example.com
MANAGERDOMAIN=manager-global.com
MANAGERDOMAIN=manager-fr.com, fr

google.com, pub-1234567890123456, DIRECT, f08c47fec0942fa0
silverssp.com, 9876, reseller # trailing comment
`

	doc, err := ParseAdsTxt(content)
	if err != nil {
		t.Fatalf("ParseAdsTxt() error = %v", err)
	}

	want := Document{
		Variant:     VariantAdsTxt,
		Contact:     []string{"adops@example.com", "https://example.com/contact"},
		Subdomain:   "divisions.example.com",
		OwnerDomain: "example.com",
		ManagerDomains: []ManagerDomainEntry{
			{Domain: "manager-global.com"},
			{Domain: "manager-fr.com", CountryCode: "FR"},
		},
		Systems: []AuthorizedSystem{
			{
				Domain:                   "google.com",
				PublisherAccountID:       "pub-1234567890123456",
				AccountType:              RelationDirect,
				CertificationAuthorityID: "f08c47fec0942fa0",
			},
			{
				Domain:             "silverssp.com",
				PublisherAccountID: "9876",
				AccountType:        RelationReseller,
			},
		},
	}

	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("ParseAdsTxt() mismatch (-want +got):\n%s", diff)
	}
	if err := doc.Validate(); err != nil {
		t.Errorf("parsed document is invalid: %v", err)
	}
}

func TestParse_CRLFAndBlankLines(t *testing.T) {
	content := "CONTACT=ops@example.com\r\n\r\n  \r\ngoogle.com, pub-1, DIRECT\r\n"

	doc, err := ParseAdsTxt(content)
	if err != nil {
		t.Fatalf("ParseAdsTxt() error = %v", err)
	}
	if len(doc.Contact) != 1 || doc.Contact[0] != "ops@example.com" {
		t.Errorf("Contact = %v", doc.Contact)
	}
	if len(doc.Systems) != 1 {
		t.Fatalf("Systems = %v", doc.Systems)
	}
}

func TestParse_CommentOnlyFile(t *testing.T) {
	doc, err := ParseAdsTxt("# nothing here\n# still nothing\n")
	if err != nil {
		t.Fatalf("ParseAdsTxt() error = %v", err)
	}
	if len(doc.Systems) != 0 || len(doc.Contact) != 0 {
		t.Errorf("comment-only file produced content: %+v", doc)
	}
	if doc.Variant != VariantAdsTxt {
		t.Errorf("Variant = %v", doc.Variant)
	}
}

func TestParse_UnknownDirectivePassthrough(t *testing.T) {
	doc, err := ParseAdsTxt("futurekey=some value\nFUTUREFLAG=\ngoogle.com, pub-1, DIRECT\n")
	if err != nil {
		t.Fatalf("ParseAdsTxt() error = %v", err)
	}

	want := []Variable{
		{Key: "FUTUREKEY", Value: "some value"},
		{Key: "FUTUREFLAG", Value: ""},
	}
	if diff := cmp.Diff(want, doc.Ext); diff != "" {
		t.Errorf("Ext mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_EqualsInsideRecordField(t *testing.T) {
	doc, err := ParseAdsTxt("example.com, id=abc, DIRECT\n")
	if err != nil {
		t.Fatalf("ParseAdsTxt() error = %v", err)
	}
	if len(doc.Systems) != 1 || doc.Systems[0].PublisherAccountID != "id=abc" {
		t.Errorf("Systems = %+v; '=' inside a field was treated as a directive", doc.Systems)
	}
	if len(doc.Ext) != 0 {
		t.Errorf("Ext = %+v, want empty", doc.Ext)
	}
}

func TestParse_VariantExclusivity(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"ownerdomain", "OWNERDOMAIN=example.com"},
		{"managerdomain", "MANAGERDOMAIN=manager.com"},
		{"ownerdomain lowercase key", "ownerdomain=example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "google.com, pub-1, DIRECT\n" + tt.line + "\n"
			_, err := ParseAppAdsTxt(content)

			var unsupported *UnsupportedDirectiveError
			if !stderrors.As(err, &unsupported) {
				t.Fatalf("ParseAppAdsTxt() error = %v, want UnsupportedDirectiveError", err)
			}
			if unsupported.Line != 2 {
				t.Errorf("Line = %d, want 2", unsupported.Line)
			}
			if unsupported.Variant != VariantAppAdsTxt {
				t.Errorf("Variant = %v", unsupported.Variant)
			}
		})
	}

	t.Run("collect-all does not recover", func(t *testing.T) {
		_, err := ParseWithPolicy(VariantAppAdsTxt, "OWNERDOMAIN=example.com\n", CollectAll)
		var unsupported *UnsupportedDirectiveError
		if !stderrors.As(err, &unsupported) {
			t.Fatalf("error = %v, want UnsupportedDirectiveError", err)
		}
	})
}

func TestParse_AppAdsTxtAcceptsSharedDirectives(t *testing.T) {
	content := "CONTACT=dev@example.com\nSUBDOMAIN=games.example.com\nINVENTORYPARTNERDOMAIN=partner.com\ngoogle.com, pub-2, DIRECT\n"

	doc, err := ParseAppAdsTxt(content)
	if err != nil {
		t.Fatalf("ParseAppAdsTxt() error = %v", err)
	}
	if doc.Variant != VariantAppAdsTxt {
		t.Errorf("Variant = %v", doc.Variant)
	}
	if doc.InventoryPartnerDomain != "partner.com" {
		t.Errorf("InventoryPartnerDomain = %q", doc.InventoryPartnerDomain)
	}
}

func TestParse_DuplicateDirectives(t *testing.T) {
	tests := []struct {
		name    string
		content string
		key     string
		line    int
	}{
		{
			name:    "subdomain",
			content: "SUBDOMAIN=a.example.com\nSUBDOMAIN=b.example.com\n",
			key:     "SUBDOMAIN",
			line:    2,
		},
		{
			name:    "ownerdomain",
			content: "OWNERDOMAIN=a.com\n\nOWNERDOMAIN=b.com\n",
			key:     "OWNERDOMAIN",
			line:    3,
		},
		{
			name:    "inventorypartnerdomain",
			content: "INVENTORYPARTNERDOMAIN=a.com\nINVENTORYPARTNERDOMAIN=b.com\n",
			key:     "INVENTORYPARTNERDOMAIN",
			line:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAdsTxt(tt.content)

			var dup *DuplicateDirectiveError
			if !stderrors.As(err, &dup) {
				t.Fatalf("ParseAdsTxt() error = %v, want DuplicateDirectiveError", err)
			}
			if dup.Key != tt.key {
				t.Errorf("Key = %q, want %q", dup.Key, tt.key)
			}
			if dup.Line != tt.line {
				t.Errorf("Line = %d, want %d", dup.Line, tt.line)
			}
		})
	}
}

func TestParse_RepeatedManagerDomains(t *testing.T) {
	content := "MANAGERDOMAIN=mgr1.com, US\nMANAGERDOMAIN=mgr2.com\n"

	doc, err := ParseAdsTxt(content)
	if err != nil {
		t.Fatalf("ParseAdsTxt() error = %v", err)
	}

	want := []ManagerDomainEntry{
		{Domain: "mgr1.com", CountryCode: "US"},
		{Domain: "mgr2.com"},
	}
	if diff := cmp.Diff(want, doc.ManagerDomains); diff != "" {
		t.Errorf("ManagerDomains mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_FailFast(t *testing.T) {
	content := "google.com, pub-1, DIRECT\nbroken.com, only-two\nopenx.com, 3, RESELLER\n"

	_, err := ParseAdsTxt(content)
	var malformed *MalformedRecordError
	if !stderrors.As(err, &malformed) {
		t.Fatalf("ParseAdsTxt() error = %v, want MalformedRecordError", err)
	}
	if malformed.Line != 2 {
		t.Errorf("Line = %d, want 2", malformed.Line)
	}
}

func TestParse_CollectAll(t *testing.T) {
	content := strings.Join([]string{
		"google.com, pub-1, DIRECT",
		"broken.com, only-two",
		"openx.com, 3, RESELLER",
		"bad.com, 4, PARTNER",
		"appnexus.com, 5, RESELLER",
	}, "\n")

	_, err := ParseWithPolicy(VariantAdsTxt, content, CollectAll)
	if err == nil {
		t.Fatal("ParseWithPolicy(CollectAll) = nil error, want combined errors")
	}

	msg := err.Error()
	if !strings.Contains(msg, "line 2") {
		t.Errorf("error %q is missing the malformed record at line 2", msg)
	}
	if !strings.Contains(msg, "line 4") {
		t.Errorf("error %q is missing the bad relation at line 4", msg)
	}
}

func TestParse_CollectAllSucceedsWhenClean(t *testing.T) {
	content := "google.com, pub-1, DIRECT\nopenx.com, 3, RESELLER\n"

	doc, err := ParseWithPolicy(VariantAdsTxt, content, CollectAll)
	if err != nil {
		t.Fatalf("ParseWithPolicy(CollectAll) error = %v", err)
	}
	if len(doc.Systems) != 2 {
		t.Errorf("Systems = %v", doc.Systems)
	}
}

func TestParse_OrderPreservation(t *testing.T) {
	content := "c.com, 3, DIRECT\na.com, 1, DIRECT\nb.com, 2, RESELLER\na.com, 1, DIRECT\n"

	doc, err := ParseAdsTxt(content)
	if err != nil {
		t.Fatalf("ParseAdsTxt() error = %v", err)
	}

	var domains []string
	for _, s := range doc.Systems {
		domains = append(domains, s.Domain)
	}
	want := []string{"c.com", "a.com", "b.com", "a.com"}
	if diff := cmp.Diff(want, domains); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_InvalidVariant(t *testing.T) {
	if _, err := Parse(VariantUnknown, "google.com, pub-1, DIRECT\n"); err == nil {
		t.Error("Parse(VariantUnknown) did not fail")
	}
}

func TestParse_EmptyDirectiveValue(t *testing.T) {
	for _, content := range []string{"CONTACT=\n", "SUBDOMAIN=\n", "OWNERDOMAIN=\n"} {
		if _, err := ParseAdsTxt(content); err == nil {
			t.Errorf("ParseAdsTxt(%q) did not fail", content)
		}
	}
}

func TestParse_WhitespaceInsideTokens(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"subdomain", "SUBDOMAIN=a b.com\n"},
		{"ownerdomain", "OWNERDOMAIN=a b.com\n"},
		{"inventorypartnerdomain", "INVENTORYPARTNERDOMAIN=a\tb.com\n"},
		{"managerdomain", "MANAGERDOMAIN=a b.com\n"},
		{"record domain", "goo gle.com, pub-1, DIRECT\n"},
		{"account id", "google.com, pub 1, DIRECT\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAdsTxt(tt.content)

			var parseErr *txterrors.ParseError
			if !stderrors.As(err, &parseErr) {
				t.Fatalf("ParseAdsTxt(%q) error = %v, want ParseError", tt.content, err)
			}
			if parseErr.Line != 1 {
				t.Errorf("Line = %d, want 1", parseErr.Line)
			}
		})
	}
}

func TestParse_OutputAlwaysMarshals(t *testing.T) {
	// Every document a parse entry point hands back must pass Validate,
	// so validate-on-marshal encoding can never fail on it.
	contents := []string{
		"CONTACT=adops@example.com\ngoogle.com, pub-1, DIRECT\n",
		"FUTUREKEY=some value, with commas\n",
		"example.com, id=abc, DIRECT\n",
	}

	for _, content := range contents {
		doc, err := ParseAdsTxt(content)
		if err != nil {
			t.Fatalf("ParseAdsTxt(%q) error = %v", content, err)
		}
		if err := doc.Validate(); err != nil {
			t.Errorf("parsed document from %q is invalid: %v", content, err)
		}
		if _, err := json.Marshal(doc); err != nil {
			t.Errorf("Marshal of document from %q failed: %v", content, err)
		}
	}
}

func TestParse_InvalidCountryCodeIsFatal(t *testing.T) {
	content := "MANAGERDOMAIN=mgr.com, USA\ngoogle.com, pub-1, DIRECT\n"

	for _, policy := range []Policy{FailFast, CollectAll} {
		_, err := ParseWithPolicy(VariantAdsTxt, content, policy)
		if err == nil {
			t.Errorf("ParseWithPolicy(%v) did not fail on invalid country code", policy)
			continue
		}
		if !strings.Contains(err.Error(), "line 1") {
			t.Errorf("error %q does not carry the line number", err)
		}
	}
}

func TestParse_DiagnosticTruncation(t *testing.T) {
	long := strings.Repeat("x", 500)
	_, err := ParseAdsTxt(long + ", only-two\n")
	if err == nil {
		t.Fatal("long malformed record did not fail")
	}
	if len(err.Error()) > 250 {
		t.Errorf("error message is %d bytes; offending line was not truncated", len(err.Error()))
	}
}
