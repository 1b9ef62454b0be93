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

// Package model defines the core contracts that all iabtxt domain types
// implement to ensure consistency, type safety, and predictable behavior
// across the module.
//
// Every type representing a supply-chain authorization entity (Document,
// AuthorizedSystem, SellerRelation, Seller, SupplyChain, and so on)
// implements the Model interface or its constituent parts (Validatable,
// Serializable, Loggable, Identifiable, ZeroCheckable). These interfaces
// establish a common contract for validation, serialization, logging, and
// identity that enables generic operations and guarantees safety at compile
// time.
//
// The contracts prioritize data integrity and debuggability. Validation
// ensures that invalid states cannot be constructed or persisted.
// Serialization provides round-trip guarantees for JSON payloads and YAML
// fixtures. Loggable protects contact data (email addresses, phone numbers
// published in CONTACT directives) from accidental exposure in logs.
//
// Unless explicitly documented otherwise, implementations are immutable
// value types and therefore safe for concurrent reads. Callers MUST
// synchronize any concurrent writes to mutable instances such as builders.
//
// Types implementing Model can be used with the generic helpers in this
// package, such as ValidateAll, FilterZero, ToJSON, ToYAML, Clone, and
// Equal. These helpers rely on the Model contract and fail at compile time
// if applied to types that do not implement it.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for iabtxt domain types. Any type implementing Model gains automatic
// support for validation, serialization to JSON and YAML, safe logging,
// type identification, and zero-value detection.
//
// Implementations MUST satisfy all embedded interfaces: Validatable ensures
// data integrity by checking invariants; Serializable provides round-trip
// JSON and YAML encoding; Loggable offers both safe (redacted) and full
// string representations; Identifiable supplies a canonical type name; and
// ZeroCheckable detects empty or uninitialized instances.
//
// Model instances are treated as immutable value types. Methods defined on
// Model MUST NOT mutate the receiver unless explicitly documented (the
// unmarshal methods necessarily do). Concurrent reads are safe; concurrent
// writes require external synchronization.
//
// Example implementation sketch:
//
//	type Variable struct {
//	    Key   string
//	    Value string
//	}
//
//	func (v Variable) Validate() error { ... }
//	func (v Variable) TypeName() string { return "Variable" }
//	func (v Variable) IsZero() bool { return v.Key == "" && v.Value == "" }
//	func (v Variable) Redacted() string { ... }
//	func (v Variable) String() string { ... }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ model.Model = (*Variable)(nil) // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// The Validate method MUST check all required fields, verify cross-field
// consistency (for example, that an app-ads.txt Document carries no
// OWNERDOMAIN), recursively validate nested objects, and return nil if and
// only if the instance is fully valid. When validation fails, the returned
// error MUST describe what is invalid specifically: prefer
// "AuthorizedSystem.Domain must not be empty" over "validation failed".
//
// Validate MUST be fast, deterministic, and idempotent. It MUST NOT mutate
// the receiver, MUST NOT have side effects, and MUST NOT perform I/O.
//
// Callers SHOULD invoke Validate at boundaries: after unmarshaling external
// data, after constructing instances from user input, and before persisting
// or transmitting. The parse and build entry points in this module do so
// automatically; no invalid Document is ever returned as if successful.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong.
	//
	// This method MUST NOT mutate the receiver and MUST NOT have side
	// effects.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to and
// deserialized from JSON and YAML.
//
// Implementations MUST call Validate before marshaling, so that invalid
// instances are never serialized, and after unmarshaling, so that invalid
// external data is rejected at the boundary. If validation fails, the
// marshal or unmarshal method MUST return the validation error; after a
// failed unmarshal the receiver is in an undefined state and callers MUST
// NOT use it.
//
// A value serialized to JSON and then deserialized MUST equal the original
// value, and the same MUST hold for YAML.
//
// Implementations SHOULD use the type-alias pattern to avoid infinite
// recursion:
//
//	func (d Document) MarshalJSON() ([]byte, error) {
//	    if err := d.Validate(); err != nil {
//	        return nil, fmt.Errorf("cannot marshal invalid %s: %w", d.TypeName(), err)
//	    }
//	    type alias Document
//	    return json.Marshal((alias)(d))
//	}
//
// Marshal methods are safe for concurrent use on immutable receivers.
// Unmarshal methods mutate the receiver and are not.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide safe string
// representations for logging and debugging.
//
// Redacted returns a representation suitable for production logging. It
// MUST hide or mask sensitive fields while preserving enough information
// for troubleshooting. In this module the sensitive data is publisher
// contact information: CONTACT values are typically email addresses or
// phone numbers and MUST be masked in redacted output. Advertising system
// domains and account ids are published data and can be shown in full.
//
// String returns a human-readable representation that MAY include sensitive
// data. It is intended for development, debugging, and canonical rendering,
// not for production logging; always use Redacted there.
//
// Both methods MUST be fast, MUST NOT mutate the receiver, and MUST be safe
// to call concurrently.
type Loggable interface {
	// Redacted returns a safe string representation suitable for logging
	// in production, with sensitive fields masked.
	Redacted() string

	// String returns a human-readable representation of the instance. It
	// MAY include sensitive data and MUST NOT be used for production
	// logging.
	String() string
}

// Identifiable defines the contract for types that can identify themselves
// by a canonical type name.
//
// The name returned by TypeName MUST be constant for a given type, unique
// within the iabtxt domain, in CamelCase, and without a package prefix
// (for example, "Document", "AuthorizedSystem", "SellerRelation"). It
// identifies the type, not the instance.
//
// Type names are used in error messages, structured logging, and
// reflection-based code. TypeName MUST be fast, SHOULD return a string
// constant, and MUST be safe to call concurrently.
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in a zero or empty state.
//
// An instance is considered zero if all of its fields are at their type's
// zero value and no meaningful data is present. For example, a Document
// with no variant, no directives, and no systems is zero; an
// AuthorizedSystem with an empty domain and account id is zero.
//
// IsZero is used to filter slices, detect unset optional fields, and
// produce better diagnostics ("no systems declared" instead of "validation
// failed"). It MUST be fast, deterministic, and safe to call concurrently.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state,
	// meaning it contains no meaningful data.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for
// equality. This interface is optional but recommended for value types that
// require equality testing in tests, assertions, or business logic — the
// semantic round-trip guarantee of the ads.txt core is stated in terms of
// it.
//
// Equal MUST be reflexive, symmetric, transitive, and consistent. It SHOULD
// compare all semantically significant fields; for ordered collections
// (systems, manager domains) order is significant and MUST be compared.
// Equal MUST NOT mutate either operand and MUST be safe to call
// concurrently.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type.
	Equal(other T) bool
}

// Cloneable defines the contract for types that can create deep copies of
// themselves. This interface is optional but recommended for types
// containing slices or other shared data structures.
//
// Clone MUST create a deep copy: the returned instance shares no references
// with the original, so mutating one never affects the other. The clone
// MUST be valid if the original is valid, and cloning MUST be idempotent.
type Cloneable[T any] interface {
	// Clone creates a deep copy of this instance.
	Clone() T
}
