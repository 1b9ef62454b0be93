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
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered, not just the first one.
//
// The function invokes Validate on each model in order. Failures are wrapped
// with the model's position in the slice and its TypeName, then aggregated
// into a single combined error via rxmerr.Collector so callers can identify
// exactly which models failed and why. The entire slice is always processed,
// even when early elements fail.
//
// Empty slices are valid and return nil. This is the workhorse behind
// validating a crawl batch of parsed documents or a sellers.json seller
// list before persisting.
//
// Example:
//
//	docs := []adstxt.Document{d1, d2, d3}
//	if err := model.ValidateAll(docs); err != nil {
//	    log.Error("validation failed", "error", err)
//	}
func ValidateAll[T any, PT interface {
	Model
	*T
}](models []T) error {
	c := rxmerr.NewCollector()

	for i := range models {
		m := PT(&models[i])
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only non-zero models, as
// reported by IsZero.
//
// The returned slice is always a new allocation and never shares backing
// storage with the input. If all models are zero, or the input is empty or
// nil, the function returns an empty non-nil slice.
//
// Callers SHOULD use FilterZero before serializing collections to avoid
// emitting empty placeholder values, for example when assembling a document
// from partially filled form input.
func FilterZero[T any, PT interface {
	Model
	*T
}](models []T) []T {
	result := make([]T, 0, len(models))

	for i := range models {
		if !PT(&models[i]).IsZero() {
			result = append(result, models[i])
		}
	}

	return result
}

// MustValidate validates a model and panics if validation fails.
//
// This is intended for test fixtures and package initialization where an
// invalid model is a programming error rather than a recoverable runtime
// condition. The panic message includes the model's TypeName and the
// validation error.
//
// Callers MUST NOT use MustValidate on untrusted input or in any context
// where a panic would disrupt service availability; use Validate and handle
// the error instead.
//
// Example:
//
//	func TestSerialize(t *testing.T) {
//	    sys := model.MustValidate(adstxt.AuthorizedSystem{...})
//	    // Use sys knowing it's valid
//	}
func MustValidate[T any, PT interface {
	Model
	*T
}](m T) T {
	if err := PT(&m).Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", PT(&m).TypeName(), err))
	}
	return m
}

// SafeString returns a string representation of a model that is safe for
// logging by default, with an explicit opt-in for the full representation.
//
// When unsafe is false (the recommended value for production logging),
// SafeString returns m.Redacted(), masking contact data and other sensitive
// fields. When unsafe is true, it returns m.String(), which MAY expose that
// data; only do so in controlled debugging scenarios.
//
// The function exists to make the safe/unsafe choice explicit and greppable
// at every logging call site.
//
// Example:
//
//	log.Info("parsed", "doc", model.SafeString(doc, false))  // Redacted()
//	log.Debug("detail", "doc", model.SafeString(doc, true))  // String() (UNSAFE)
func SafeString[T any, PT interface {
	Model
	*T
}](m T, unsafe bool) string {
	if unsafe {
		return PT(&m).String()
	}
	return PT(&m).Redacted()
}

// ToJSON converts a model to JSON bytes after validating it.
//
// If validation fails, ToJSON returns the validation error wrapped with the
// model's TypeName and performs no marshaling, ensuring invalid data never
// reaches the encoder. On success the model's MarshalJSON is honored.
//
// Callers MAY call json.Marshal directly when the model is already known
// valid, trading safety for one less validation pass.
func ToJSON[T any, PT interface {
	Model
	*T
}](m T) ([]byte, error) {
	p := PT(&m)
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	return json.Marshal(p)
}

// ToYAML converts a model to YAML bytes after validating it.
//
// Semantics mirror ToJSON: validation failure aborts with a wrapped error
// before any encoding happens, and the model's MarshalYAML is honored on
// success.
func ToYAML[T any, PT interface {
	Model
	*T
}](m T) ([]byte, error) {
	p := PT(&m)
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	return yaml.Marshal(p)
}

// FromJSON parses JSON bytes into a model and validates the result.
//
// Unmarshal failures (malformed JSON, type mismatches) are reported as
// unmarshal errors; syntactically valid JSON that decodes to an invalid
// model is reported as a validation error. Either way, external data that
// violates the model contract is rejected at the boundary.
//
// If FromJSON returns an error, the state of *m is undefined and MUST NOT
// be used.
//
// Example:
//
//	var sellers sellers.Sellers
//	if err := model.FromJSON(data, &sellers); err != nil {
//	    return err
//	}
func FromJSON[T any, PT interface {
	Model
	*T
}](data []byte, m *T) error {
	p := PT(m)
	if err := json.Unmarshal(data, p); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML parses YAML bytes into a model and validates the result.
//
// Semantics mirror FromJSON. If FromYAML returns an error, the state of *m
// is undefined and MUST NOT be used.
func FromYAML[T any, PT interface {
	Model
	*T
}](data []byte, m *T) error {
	p := PT(m)
	if err := yaml.Unmarshal(data, p); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// Clone creates a deep copy of a model via a JSON round trip.
//
// The round trip guarantees independence: nested slices (systems, manager
// domains, ext variables) are copied by value, so mutating the clone never
// affects the original. The cost is JSON encode/decode overhead; types on
// hot paths SHOULD implement Cloneable[T] with hand-written copy logic
// instead.
//
// If Clone returns an error, the returned model is the zero value and MUST
// NOT be used.
func Clone[T any, PT interface {
	Model
	*T
}](m T) (T, error) {
	var zero T

	data, err := json.Marshal(PT(&m))
	if err != nil {
		return zero, fmt.Errorf("clone marshal failed: %w", err)
	}

	var clone T
	if err := json.Unmarshal(data, PT(&clone)); err != nil {
		return zero, fmt.Errorf("clone unmarshal failed: %w", err)
	}

	return clone, nil
}

// Equal compares two models for equality via their JSON representations.
//
// Both models are marshaled and the resulting bytes compared. If either
// marshal fails, Equal returns false rather than mistaking an encoding
// error for inequality. Field order in struct output is deterministic, so
// the comparison is reliable for the struct-based models in this module;
// unexported fields do not participate.
//
// Types with a custom Equal method (Document, AuthorizedSystem) SHOULD be
// compared through that method instead; this generic helper exists for
// uniform handling in generic code.
func Equal[T any, PT interface {
	Model
	*T
}](a, b T) bool {
	dataA, errA := json.Marshal(PT(&a))
	dataB, errB := json.Marshal(PT(&b))

	if errA != nil || errB != nil {
		return false
	}

	return string(dataA) == string(dataB)
}
