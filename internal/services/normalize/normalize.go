// Package normalize reshapes raw model output into the canonical extraction
// result and derives the human-readable summary report.
//
// The canonical result is deliberately NOT a typed struct. The API contract
// distinguishes three states per top-level key: present with a value, present
// as null, and absent entirely — and serialization must keep a fixed key
// order. A map plus a custom MarshalJSON expresses that; a struct cannot
// (omitempty would also drop present-but-null keys).
package normalize

import (
	"bytes"
	"encoding/json"
)

// canonicalKeys is the fixed top-level key order for any serialized result.
var canonicalKeys = []string{
	"product",
	"electrical_specs",
	"mechanical_specs",
	"temperature_specs",
	"warranty",
	"certifications",
}

// Result is the canonicalized extraction result: only the known top-level
// keys that existed in the model output, serialized in canonical order.
type Result struct {
	values map[string]any
}

// Canonicalize filters raw model output down to the known top-level keys.
// Unknown keys are dropped; keys the model omitted stay absent (they are not
// inserted as null). The input map is not mutated.
func Canonicalize(raw map[string]any) *Result {
	values := make(map[string]any, len(canonicalKeys))
	for _, key := range canonicalKeys {
		if v, ok := raw[key]; ok {
			values[key] = v
		}
	}
	return &Result{values: values}
}

// Keys returns the present top-level keys in canonical order.
func (r *Result) Keys() []string {
	keys := make([]string, 0, len(r.values))
	for _, key := range canonicalKeys {
		if _, ok := r.values[key]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// Get returns the value for a top-level key and whether it was present.
func (r *Result) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// MarshalJSON serializes the result with top-level keys in canonical order.
//
// Go Pattern: encoding/json marshals maps with sorted keys, which would
// break the fixed order. Writing the object by hand, one marshal per value,
// is the standard way to control key order.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	for _, key := range canonicalKeys {
		v, ok := r.values[key]
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')

		valueJSON, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(valueJSON)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalIndent serializes the result as indented JSON, preserving canonical
// key order. Used by the CLI for the output file.
func (r *Result) MarshalIndent() ([]byte, error) {
	compact, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}
	// json.Indent reformats without reordering keys.
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
