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
	"testing"
)

func TestParseManagerDomainEntry(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ManagerDomainEntry
		wantErr string
	}{
		{
			name:  "domain only",
			input: "manager.example.com",
			want:  ManagerDomainEntry{Domain: "manager.example.com"},
		},
		{
			name:  "domain with country",
			input: "manager.example.com, FR",
			want:  ManagerDomainEntry{Domain: "manager.example.com", CountryCode: "FR"},
		},
		{
			name:  "country normalized upper",
			input: "manager.example.com, us",
			want:  ManagerDomainEntry{Domain: "manager.example.com", CountryCode: "US"},
		},
		{
			name:  "extra whitespace",
			input: "  manager.example.com ,  DE ",
			want:  ManagerDomainEntry{Domain: "manager.example.com", CountryCode: "DE"},
		},
		{
			name:    "three letter country",
			input:   "manager.example.com, USA",
			wantErr: "CountryCode",
		},
		{
			name:    "numeric country",
			input:   "manager.example.com, 12",
			wantErr: "CountryCode",
		},
		{
			name:    "empty country after comma",
			input:   "manager.example.com,",
			wantErr: "CountryCode",
		},
		{
			name:    "empty value",
			input:   "",
			wantErr: "ManagerDomainEntry",
		},
		{
			name:    "missing domain",
			input:   ", FR",
			wantErr: "ManagerDomainEntry",
		},
		{
			name:    "domain with internal whitespace",
			input:   "a b.com, FR",
			wantErr: "whitespace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseManagerDomainEntry(tt.input)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ParseManagerDomainEntry(%q) = %v, want error", tt.input, got)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q does not mention %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseManagerDomainEntry(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseManagerDomainEntry(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestManagerDomainEntry_String(t *testing.T) {
	global := ManagerDomainEntry{Domain: "manager.example.com"}
	if got := global.String(); got != "manager.example.com" {
		t.Errorf("String() = %q", got)
	}

	scoped := ManagerDomainEntry{Domain: "manager.example.com", CountryCode: "FR"}
	if got := scoped.String(); got != "manager.example.com, FR" {
		t.Errorf("String() = %q", got)
	}
}

func TestManagerDomainEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   ManagerDomainEntry
		wantErr bool
	}{
		{"valid global", ManagerDomainEntry{Domain: "m.example.com"}, false},
		{"valid scoped", ManagerDomainEntry{Domain: "m.example.com", CountryCode: "GB"}, false},
		{"empty domain", ManagerDomainEntry{CountryCode: "GB"}, true},
		{"domain with comma", ManagerDomainEntry{Domain: "a,b"}, true},
		{"domain with space", ManagerDomainEntry{Domain: "a b"}, true},
		{"lower country", ManagerDomainEntry{Domain: "m.example.com", CountryCode: "gb"}, true},
		{"long country", ManagerDomainEntry{Domain: "m.example.com", CountryCode: "GBR"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.entry.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestManagerDomainEntry_RoundTrip(t *testing.T) {
	entry := ManagerDomainEntry{Domain: "manager.example.com", CountryCode: "JP"}

	parsed, err := ParseManagerDomainEntry(entry.String())
	if err != nil {
		t.Fatalf("ParseManagerDomainEntry(String()) error = %v", err)
	}
	if parsed != entry {
		t.Errorf("round trip = %+v, want %+v", parsed, entry)
	}
}
