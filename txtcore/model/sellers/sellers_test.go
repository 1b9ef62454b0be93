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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"iabtxt.dev/iabtxt/txtcore/model"
)

// sampleJSON follows the worked example in the sellers.json specification:
// an open entry, a confidential entry, and a passthrough intermediary.
const sampleJSON = `{
  "contact_email": "adops@advertisingsystem.com",
  "contact_address": "101 Main Street, New York, NY 10001",
  "version": "1.0",
  "identifiers": [
    {"name": "TAG-ID", "value": "28cb65e5bbc0bd5f"}
  ],
  "sellers": [
    {
      "seller_id": "1942009976",
      "seller_type": "PUBLISHER",
      "name": "Publisher1",
      "domain": "publisher1.com"
    },
    {
      "seller_id": "107159",
      "seller_type": "PUBLISHER",
      "is_confidential": 1
    },
    {
      "seller_id": "1000082853",
      "seller_type": "INTERMEDIARY",
      "is_passthrough": 1,
      "name": "SSP1",
      "domain": "ssp1.com"
    }
  ]
}`

func TestSellers_UnmarshalSample(t *testing.T) {
	var doc Sellers
	if err := model.FromJSON([]byte(sampleJSON), &doc); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}

	if doc.Version != Version10 {
		t.Errorf("Version = %q", doc.Version)
	}
	if len(doc.Sellers) != 3 {
		t.Fatalf("Sellers = %d entries, want 3", len(doc.Sellers))
	}
	if len(doc.Identifiers) != 1 || doc.Identifiers[0].Name != IdentifierNameTagID {
		t.Errorf("Identifiers = %+v", doc.Identifiers)
	}

	confidential := doc.Sellers[1]
	if !confidential.IsConfidential.Bool() {
		t.Error("confidential seller decoded with IsConfidential = false")
	}
	if confidential.Name != "" {
		t.Errorf("confidential seller Name = %q", confidential.Name)
	}

	passthrough := doc.Sellers[2]
	if !passthrough.IsPassthrough.Bool() || passthrough.SellerType != SellerTypeIntermediary {
		t.Errorf("passthrough seller = %+v", passthrough)
	}
}

func TestSellers_JSONRoundTrip(t *testing.T) {
	var original Sellers
	if err := json.Unmarshal([]byte(sampleJSON), &original); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded Sellers
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal(round trip) error = %v", err)
	}
	if !original.Equal(decoded) {
		t.Errorf("round trip mismatch:\n%s", cmp.Diff(original, decoded))
	}
}

func TestSellers_TolerantVersion(t *testing.T) {
	var doc Sellers
	payload := `{"version": "1", "sellers": [{"seller_id": "1", "seller_type": "PUBLISHER", "name": "P"}]}`
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if doc.Version != Version10 {
		t.Errorf("Version = %q, want canonical 1.0", doc.Version)
	}

	if err := json.Unmarshal([]byte(`{"version": "2.0", "sellers": []}`), &doc); err == nil {
		t.Error("Unmarshal() accepted version 2.0")
	}
}

func TestSeller_Validate(t *testing.T) {
	tests := []struct {
		name    string
		seller  Seller
		wantErr string
	}{
		{
			name:   "valid open",
			seller: Seller{SellerID: "1", SellerType: SellerTypePublisher, Name: "P"},
		},
		{
			name:   "valid confidential without name",
			seller: Seller{SellerID: "2", SellerType: SellerTypeBoth, IsConfidential: true},
		},
		{
			name:    "missing id",
			seller:  Seller{SellerType: SellerTypePublisher, Name: "P"},
			wantErr: "SellerID",
		},
		{
			name:    "missing type",
			seller:  Seller{SellerID: "3", Name: "P"},
			wantErr: "SellerType",
		},
		{
			name:    "open without name",
			seller:  Seller{SellerID: "4", SellerType: SellerTypePublisher},
			wantErr: "Name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.seller.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestSeller_Redacted(t *testing.T) {
	open := Seller{SellerID: "1", SellerType: SellerTypePublisher, Name: "Publisher1", Domain: "publisher1.com"}
	if got := open.Redacted(); !strings.Contains(got, "Publisher1") {
		t.Errorf("Redacted() = %q hides an open seller's name", got)
	}

	hidden := Seller{SellerID: "2", SellerType: SellerTypePublisher, IsConfidential: true, Name: "Leaky Name"}
	if got := hidden.Redacted(); strings.Contains(got, "Leaky Name") {
		t.Errorf("Redacted() = %q leaked a confidential seller's name", got)
	}
}

func TestSellers_ValidateCollectsAll(t *testing.T) {
	doc := Sellers{
		Version: Version10,
		Sellers: []Seller{
			{SellerID: "1", SellerType: SellerTypePublisher, Name: "A"},
			{SellerID: "", SellerType: SellerTypePublisher, Name: "B"},
			{SellerID: "3", SellerType: SellerTypeUnknown, Name: "C"},
			{SellerID: "1", SellerType: SellerTypePublisher, Name: "D"},
		},
	}

	err := doc.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want combined errors")
	}
	msg := err.Error()
	for _, fragment := range []string{"seller 1", "seller 2", "duplicates seller 0"} {
		if !strings.Contains(msg, fragment) {
			t.Errorf("Validate() error %q is missing %q", msg, fragment)
		}
	}
}

func TestSellers_SellerByID(t *testing.T) {
	doc := Sellers{
		Version: Version10,
		Sellers: []Seller{
			{SellerID: "1942009976", SellerType: SellerTypePublisher, Name: "Publisher1"},
		},
	}

	got, ok := doc.SellerByID("1942009976")
	if !ok || got.Name != "Publisher1" {
		t.Errorf("SellerByID() = %+v, %v", got, ok)
	}
	if _, ok := doc.SellerByID("missing"); ok {
		t.Error("SellerByID(missing) = true")
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{"1.0", Version10, false},
		{"1", Version10, false},
		{"1.0.0", Version10, false},
		{"2.0", "", true},
		{"1.1", "", true},
		{"abc", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVersion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSellerType(t *testing.T) {
	tests := []struct {
		input   string
		want    SellerType
		wantErr bool
	}{
		{"PUBLISHER", SellerTypePublisher, false},
		{"publisher", SellerTypePublisher, false},
		{"Intermediary", SellerTypeIntermediary, false},
		{"BOTH", SellerTypeBoth, false},
		{"", SellerTypeUnknown, true},
		{"RESELLER", SellerTypeUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSellerType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSellerType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSellerType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
