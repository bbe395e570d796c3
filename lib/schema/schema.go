// Copyright 2026 The Wirepack Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Kind names one of the codec's primitive kinds.
type Kind string

const (
	// KindInt32 is a 4-byte big-endian signed integer.
	KindInt32 Kind = "int32"

	// KindFloat is an 8-byte IEEE-754 double in wire order.
	KindFloat Kind = "float"

	// KindAtom is a length-prefixed text atom.
	KindAtom Kind = "atom"
)

// Valid reports whether k names a known primitive kind.
func (k Kind) Valid() bool {
	switch k {
	case KindInt32, KindFloat, KindAtom:
		return true
	default:
		return false
	}
}

// Field is one position in a value sequence.
type Field struct {
	// Name labels the decoded value in output. Optional; synthesized
	// as "field<N>" when empty.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Kind selects the codec operation applied at this position.
	Kind Kind `yaml:"type" json:"type"`
}

// Schema is an ordered description of the values in a wire stream.
type Schema struct {
	Fields []Field `yaml:"fields" json:"fields"`
}

// Parse parses and validates a YAML schema document.
func Parse(data []byte) (Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, fmt.Errorf("parsing schema: %w", err)
	}
	if err := s.validate(); err != nil {
		return Schema{}, err
	}
	return s, nil
}

// Load reads and parses a YAML schema file.
func Load(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("reading schema: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Schema{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// validate checks field kinds and fills in synthesized names. Field
// names must be unique so decoded output is unambiguous.
func (s *Schema) validate() error {
	if len(s.Fields) == 0 {
		return fmt.Errorf("schema has no fields")
	}
	seen := make(map[string]bool, len(s.Fields))
	for i := range s.Fields {
		field := &s.Fields[i]
		if !field.Kind.Valid() {
			return fmt.Errorf("field %d (%q): unknown type %q (want int32, float, or atom)",
				i, field.Name, field.Kind)
		}
		if field.Name == "" {
			field.Name = fmt.Sprintf("field%d", i)
		}
		if seen[field.Name] {
			return fmt.Errorf("duplicate field name %q", field.Name)
		}
		seen[field.Name] = true
	}
	return nil
}
