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
	"testing"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Variant
		wantErr bool
	}{
		{"ads.txt", "ads.txt", VariantAdsTxt, false},
		{"ads.txt upper", "ADS.TXT", VariantAdsTxt, false},
		{"app-ads.txt", "app-ads.txt", VariantAppAdsTxt, false},
		{"app-ads.txt mixed", "App-Ads.txt", VariantAppAdsTxt, false},
		{"empty", "", VariantUnknown, true},
		{"no extension", "ads", VariantUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVariant(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVariant(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseVariant(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVariant_AllowsOwnerDirectives(t *testing.T) {
	if !VariantAdsTxt.AllowsOwnerDirectives() {
		t.Error("ads.txt does not allow owner directives")
	}
	if VariantAppAdsTxt.AllowsOwnerDirectives() {
		t.Error("app-ads.txt allows owner directives")
	}
	if VariantUnknown.AllowsOwnerDirectives() {
		t.Error("unknown variant allows owner directives")
	}
}

func TestVariant_JSONRoundTrip(t *testing.T) {
	for _, v := range []Variant{VariantAdsTxt, VariantAppAdsTxt} {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("Marshal(%v) error = %v", v, err)
		}
		var decoded Variant
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", data, err)
		}
		if decoded != v {
			t.Errorf("JSON round trip of %v = %v", v, decoded)
		}
	}

	if _, err := json.Marshal(VariantUnknown); err == nil {
		t.Error("Marshal(VariantUnknown) did not fail")
	}
}

func TestVariant_String(t *testing.T) {
	tests := []struct {
		v    Variant
		want string
	}{
		{VariantAdsTxt, "ads.txt"},
		{VariantAppAdsTxt, "app-ads.txt"},
		{VariantUnknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Variant(%d).String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestParsePolicy(t *testing.T) {
	if p, err := ParsePolicy("fail-fast"); err != nil || p != FailFast {
		t.Errorf("ParsePolicy(fail-fast) = %v, %v", p, err)
	}
	if p, err := ParsePolicy("collect-all"); err != nil || p != CollectAll {
		t.Errorf("ParsePolicy(collect-all) = %v, %v", p, err)
	}
	if _, err := ParsePolicy("lenient"); err == nil {
		t.Error("ParsePolicy(lenient) did not fail")
	}
}
