package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// objectWriter builds a JSON object keeping the fields in the order they are
// appended. Chart points carry free display fields, and a map would lose that order.
// Its zero value is ready to use.
type objectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a new key-value pair to the JSON object.
// Markup in values is kept as is: tooltips interpolate it verbatim.
func (w *objectWriter) Append(key string, value any) *objectWriter {
	if w.err != nil {
		return w
	}

	valBytes, err := marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	keyBytes, _ := marshal(key)

	w.Write(keyBytes)
	w.WriteByte(':')
	w.Write(valBytes)
	w.WriteByte(',')
	return w
}

// marshal is json.Marshal without HTML escaping.
func marshal(v any) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}

// Optional appends a key-value pair only if the value is not its type's zero value.
func (w *objectWriter) Optional(key string, value any) *objectWriter {
	if w.err != nil {
		return w
	}
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// MarshalJSON wraps the content in braces and returns the complete object.
func (w *objectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}

	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	final := make([]byte, 0, len(content)+2)
	final = append(final, '{')
	final = append(final, content...)
	final = append(final, '}')

	return final, nil
}
