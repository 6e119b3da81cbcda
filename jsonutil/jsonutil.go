// Package jsonutil wraps encoding/json for the common round trip: value to
// text, text to a generic structure, and a generic structure back to a
// concrete type.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// Marshal serializes v to its canonical JSON text. Key ordering and
// whitespace follow encoding/json conventions.
func Marshal(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("unable to marshal value: %w", err)
	}
	return string(data), nil
}

// Unmarshal parses JSON text into a generic structure of
// map[string]any / []any / primitives.
func Unmarshal(text string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, fmt.Errorf("unable to unmarshal text: %w", err)
	}
	return v, nil
}

// Rebind converts a generic decoded value into a value of type T, attaching
// T's behavior to the decoded fields. Fields are matched by JSON tags and
// are not validated beyond what encoding/json itself enforces.
func Rebind[T any](v any) (*T, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("unable to re-encode value: %w", err)
	}
	out := new(T)
	if err := json.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("unable to bind value to target type: %w", err)
	}
	return out, nil
}
