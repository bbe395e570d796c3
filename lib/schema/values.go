// Copyright 2026 The Wirepack Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wirepack/wirepack/lib/serial"
	"github.com/wirepack/wirepack/lib/stream"
)

// Value is one typed value in a sequence: the encode input and the
// decode output. Exactly one representation is populated, selected by
// Kind: int32, float64, or string.
type Value struct {
	// Name labels the value in output documents.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Kind selects the codec operation.
	Kind Kind `yaml:"type" json:"type"`

	// Value holds the payload: int32 for int32, float64 for float,
	// string for atom.
	Value any `yaml:"value" json:"value"`
}

// valueDocument is the YAML shape of an encode input file.
type valueDocument struct {
	Values []Value `yaml:"values"`
}

// ParseValues parses a YAML value document and coerces each entry's
// payload to the representation its kind requires.
func ParseValues(data []byte) ([]Value, error) {
	var document valueDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("parsing values: %w", err)
	}
	if len(document.Values) == 0 {
		return nil, fmt.Errorf("value document has no values")
	}
	for i := range document.Values {
		if err := document.Values[i].coerce(); err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
	}
	return document.Values, nil
}

// LoadValues reads and parses a YAML value file.
func LoadValues(path string) ([]Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading values: %w", err)
	}
	values, err := ParseValues(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// coerce normalizes the YAML-decoded payload (int, uint64, float64,
// string, bool — whatever yaml.v3 produced) into the kind's canonical
// Go representation.
func (v *Value) coerce() error {
	if !v.Kind.Valid() {
		return fmt.Errorf("unknown type %q (want int32, float, or atom)", v.Kind)
	}
	switch v.Kind {
	case KindInt32:
		i, err := toInt64(v.Value)
		if err != nil {
			return fmt.Errorf("int32 value: %w", err)
		}
		if i < math.MinInt32 || i > math.MaxInt32 {
			return fmt.Errorf("int32 value %d out of range", i)
		}
		v.Value = int32(i)
	case KindFloat:
		switch payload := v.Value.(type) {
		case float64:
			// Already canonical.
		case int:
			v.Value = float64(payload)
		case int64:
			v.Value = float64(payload)
		case uint64:
			v.Value = float64(payload)
		default:
			return fmt.Errorf("float value: got %T (%v)", v.Value, v.Value)
		}
	case KindAtom:
		switch payload := v.Value.(type) {
		case string:
			// Already canonical.
		case int, int64, uint64, float64, bool:
			// Atomic scalars stringify the same way the codec's own
			// atom conversion does.
			v.Value = fmt.Sprintf("%v", payload)
		default:
			return fmt.Errorf("atom value: got %T (%v)", v.Value, v.Value)
		}
	}
	return nil
}

// toInt64 extracts a signed integer from yaml.v3's scalar types.
func toInt64(value any) (int64, error) {
	switch n := value.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("value %d out of range", n)
		}
		return int64(n), nil
	default:
		return 0, fmt.Errorf("got %T (%v), want an integer", value, value)
	}
}

// Encode writes values to s in order, applying the codec operation
// each kind requires. Fails on the first error; bytes already written
// stay written (the codec never retries or truncates).
func Encode(s *stream.Stream, values []Value) error {
	for i, value := range values {
		var err error
		switch value.Kind {
		case KindInt32:
			payload, ok := value.Value.(int32)
			if !ok {
				return fmt.Errorf("value %d (%s): payload is %T, want int32", i, value.Name, value.Value)
			}
			err = serial.WriteInt32(s, payload)
		case KindFloat:
			payload, ok := value.Value.(float64)
			if !ok {
				return fmt.Errorf("value %d (%s): payload is %T, want float64", i, value.Name, value.Value)
			}
			err = serial.WriteFloat(s, payload)
		case KindAtom:
			payload, ok := value.Value.(string)
			if !ok {
				return fmt.Errorf("value %d (%s): payload is %T, want string", i, value.Name, value.Value)
			}
			err = serial.WriteAtom(s, payload)
		default:
			return fmt.Errorf("value %d (%s): unknown type %q", i, value.Name, value.Kind)
		}
		if err != nil {
			return fmt.Errorf("encoding value %d (%s): %w", i, value.Name, err)
		}
	}
	return nil
}

// Decode reads one value per schema field from s, in schema order.
func Decode(s *stream.Stream, sc Schema) ([]Value, error) {
	values := make([]Value, 0, len(sc.Fields))
	for i, field := range sc.Fields {
		value := Value{Name: field.Name, Kind: field.Kind}
		switch field.Kind {
		case KindInt32:
			decoded, err := serial.ReadInt32(s)
			if err != nil {
				return nil, fmt.Errorf("decoding field %d (%s): %w", i, field.Name, err)
			}
			value.Value = decoded
		case KindFloat:
			decoded, err := serial.ReadFloat(s)
			if err != nil {
				return nil, fmt.Errorf("decoding field %d (%s): %w", i, field.Name, err)
			}
			value.Value = decoded
		case KindAtom:
			decoded, err := serial.ReadAtom(s)
			if err != nil {
				return nil, fmt.Errorf("decoding field %d (%s): %w", i, field.Name, err)
			}
			value.Value = decoded
		default:
			return nil, fmt.Errorf("field %d (%s): unknown type %q", i, field.Name, field.Kind)
		}
		values = append(values, value)
	}
	return values, nil
}
