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
	"fmt"

	"gopkg.in/yaml.v3"
)

// BoolInt is a boolean that serializes as the integer 0 or 1.
//
// The sellers.json and OpenRTB SupplyChain specifications encode boolean
// flags (is_confidential, is_passthrough, hp, complete) as 0/1 integers on
// the wire rather than JSON booleans. BoolInt keeps the Go representation a
// plain bool while matching that wire convention in both JSON and YAML.
//
// Unmarshaling accepts only the integers 0 and 1; JSON true/false and other
// numbers are rejected, matching the strictness of the published schemas.
type BoolInt bool

// Bool returns the value as a plain bool.
func (b BoolInt) Bool() bool {
	return bool(b)
}

// MarshalJSON implements json.Marshaler, encoding true as 1 and false as 0.
func (b BoolInt) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// UnmarshalJSON implements json.Unmarshaler, accepting exactly the JSON
// numbers 0 and 1.
func (b *BoolInt) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "0":
		*b = false
	case "1":
		*b = true
	default:
		return fmt.Errorf("cannot unmarshal BoolInt: expected 0 or 1, got %s", data)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler, encoding true as 1 and false as 0.
func (b BoolInt) MarshalYAML() (interface{}, error) {
	if b {
		return 1, nil
	}
	return 0, nil
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting exactly the scalars
// 0 and 1.
func (b *BoolInt) UnmarshalYAML(node *yaml.Node) error {
	var i int
	if err := node.Decode(&i); err != nil {
		return fmt.Errorf("cannot unmarshal BoolInt: %w", err)
	}
	switch i {
	case 0:
		*b = false
	case 1:
		*b = true
	default:
		return fmt.Errorf("cannot unmarshal BoolInt: expected 0 or 1, got %d", i)
	}
	return nil
}
