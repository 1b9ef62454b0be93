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

package model

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestBoolInt_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		b    BoolInt
		want string
	}{
		{"true", BoolInt(true), "1"},
		{"false", BoolInt(false), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.b)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestBoolInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    BoolInt
		wantErr bool
	}{
		{"zero", "0", false, false},
		{"one", "1", true, false},
		{"two", "2", false, true},
		{"negative", "-1", false, true},
		{"json true", "true", false, true},
		{"json false", "false", false, true},
		{"string", `"1"`, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b BoolInt
			err := json.Unmarshal([]byte(tt.input), &b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && b != tt.want {
				t.Errorf("Unmarshal() = %v, want %v", b, tt.want)
			}
		})
	}
}

func TestBoolInt_YAMLRoundTrip(t *testing.T) {
	for _, b := range []BoolInt{true, false} {
		data, err := yaml.Marshal(b)
		if err != nil {
			t.Fatalf("yaml.Marshal(%v) error = %v", b, err)
		}
		var decoded BoolInt
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("yaml.Unmarshal(%s) error = %v", data, err)
		}
		if decoded != b {
			t.Errorf("YAML round trip of %v = %v", b, decoded)
		}
	}

	var b BoolInt
	if err := yaml.Unmarshal([]byte("3"), &b); err == nil {
		t.Error("yaml.Unmarshal(3) did not fail")
	}
}

func TestBoolInt_Bool(t *testing.T) {
	if !BoolInt(true).Bool() || BoolInt(false).Bool() {
		t.Error("Bool() does not round trip the underlying value")
	}
}
