// Copyright 2026 The Wirepack Authors
// SPDX-License-Identifier: Apache-2.0

package stream

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestSetEncodingReturnsPrevious(t *testing.T) {
	s := New(&bytes.Buffer{})

	if s.Encoding() != Octet {
		t.Fatalf("new stream encoding = %v, want octet", s.Encoding())
	}

	previous := s.SetEncoding(UTF8)
	if previous != Octet {
		t.Errorf("SetEncoding returned %v, want octet", previous)
	}
	if s.Encoding() != UTF8 {
		t.Errorf("encoding after swap = %v, want utf8", s.Encoding())
	}

	s.SetEncoding(previous)
	if s.Encoding() != Octet {
		t.Errorf("encoding after restore = %v, want octet", s.Encoding())
	}
}

func TestPutCodeOctet(t *testing.T) {
	var buffer bytes.Buffer
	s := New(&buffer)

	for _, code := range []rune{0x00, 0x41, 0x7F, 0x80, 0xFF} {
		if err := s.PutCode(code); err != nil {
			t.Fatalf("PutCode(%U): %v", code, err)
		}
	}

	want := []byte{0x00, 0x41, 0x7F, 0x80, 0xFF}
	if !bytes.Equal(buffer.Bytes(), want) {
		t.Errorf("octet output = %x, want %x", buffer.Bytes(), want)
	}
}

func TestPutCodeOctetRejectsWideCode(t *testing.T) {
	s := New(&bytes.Buffer{})

	err := s.PutCode(0x100)
	if !errors.Is(err, ErrCodeRange) {
		t.Errorf("PutCode(0x100) in octet mode = %v, want ErrCodeRange", err)
	}
}

func TestPutCodeUTF8Expansion(t *testing.T) {
	tests := []struct {
		code rune
		want []byte
	}{
		{0x41, []byte{0x41}},
		{0xE9, []byte{0xC3, 0xA9}},     // é
		{0x20AC, []byte{0xE2, 0x82, 0xAC}}, // €
		{0x1F600, []byte{0xF0, 0x9F, 0x98, 0x80}},
	}

	for _, test := range tests {
		var buffer bytes.Buffer
		s := New(&buffer)
		s.SetEncoding(UTF8)

		if err := s.PutCode(test.code); err != nil {
			t.Fatalf("PutCode(%U): %v", test.code, err)
		}
		if !bytes.Equal(buffer.Bytes(), test.want) {
			t.Errorf("PutCode(%U) wrote %x, want %x", test.code, buffer.Bytes(), test.want)
		}
	}
}

func TestGetCodeRoundtrip(t *testing.T) {
	codes := []rune{0x00, 0x41, 0x7F, 0x80, 0xE9, 0x7FF, 0x800, 0x20AC, 0xFFFD, 0x10000, 0x10FFFF}

	var buffer bytes.Buffer
	s := New(&buffer)
	s.SetEncoding(UTF8)

	for _, code := range codes {
		if err := s.PutCode(code); err != nil {
			t.Fatalf("PutCode(%U): %v", code, err)
		}
	}
	for _, want := range codes {
		got, err := s.GetCode()
		if err != nil {
			t.Fatalf("GetCode for %U: %v", want, err)
		}
		if got != want {
			t.Errorf("GetCode = %U, want %U", got, want)
		}
	}

	if _, err := s.GetCode(); err != io.EOF {
		t.Errorf("GetCode on drained stream = %v, want io.EOF", err)
	}
}

func TestGetCodeOctetReadsRawBytes(t *testing.T) {
	s := NewReader(bytes.NewReader([]byte{0xC3, 0xA9}))

	// In octet mode the two UTF-8 bytes of é come back as two codes.
	first, err := s.GetCode()
	if err != nil {
		t.Fatalf("first GetCode: %v", err)
	}
	second, err := s.GetCode()
	if err != nil {
		t.Fatalf("second GetCode: %v", err)
	}
	if first != 0xC3 || second != 0xA9 {
		t.Errorf("octet codes = %U %U, want U+00C3 U+00A9", first, second)
	}
}

func TestGetCodeInvalidLeadByte(t *testing.T) {
	s := NewReader(bytes.NewReader([]byte{0xFF}))
	s.SetEncoding(UTF8)

	if _, err := s.GetCode(); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("GetCode on 0xFF lead = %v, want ErrInvalidUTF8", err)
	}
}

func TestGetCodeInvalidContinuation(t *testing.T) {
	s := NewReader(bytes.NewReader([]byte{0xC3, 0x41}))
	s.SetEncoding(UTF8)

	if _, err := s.GetCode(); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("GetCode on broken continuation = %v, want ErrInvalidUTF8", err)
	}
}

func TestGetCodeTruncatedSequence(t *testing.T) {
	s := NewReader(bytes.NewReader([]byte{0xE2, 0x82}))
	s.SetEncoding(UTF8)

	if _, err := s.GetCode(); err != io.ErrUnexpectedEOF {
		t.Errorf("GetCode on truncated sequence = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestGetCodeRejectsOverlong(t *testing.T) {
	// 0xC0 0x80 is the overlong encoding of U+0000.
	s := NewReader(bytes.NewReader([]byte{0xC0, 0x80}))
	s.SetEncoding(UTF8)

	if _, err := s.GetCode(); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("GetCode on overlong sequence = %v, want ErrInvalidUTF8", err)
	}
}

func TestModeSwitchPreservesBytePosition(t *testing.T) {
	// Raw bytes, then a UTF-8 character, then raw bytes again, all on
	// one stream with mode switches in between.
	var buffer bytes.Buffer
	s := New(&buffer)

	if err := s.WriteByte(0x01); err != nil {
		t.Fatal(err)
	}
	previous := s.SetEncoding(UTF8)
	if err := s.PutCode(0xE9); err != nil {
		t.Fatal(err)
	}
	s.SetEncoding(previous)
	if err := s.WriteByte(0x02); err != nil {
		t.Fatal(err)
	}

	want := []byte{0x01, 0xC3, 0xA9, 0x02}
	if !bytes.Equal(buffer.Bytes(), want) {
		t.Fatalf("interleaved output = %x, want %x", buffer.Bytes(), want)
	}

	reader := New(&buffer)
	b, err := reader.ReadByte()
	if err != nil || b != 0x01 {
		t.Fatalf("ReadByte = %x, %v, want 0x01", b, err)
	}
	previous = reader.SetEncoding(UTF8)
	c, err := reader.GetCode()
	if err != nil || c != 0xE9 {
		t.Fatalf("GetCode = %U, %v, want U+00E9", c, err)
	}
	reader.SetEncoding(previous)
	b, err = reader.ReadByte()
	if err != nil || b != 0x02 {
		t.Fatalf("ReadByte = %x, %v, want 0x02", b, err)
	}
}

func TestReadOnWriteOnlyStream(t *testing.T) {
	s := NewWriter(&bytes.Buffer{})

	if _, err := s.ReadByte(); !errors.Is(err, ErrNotReadable) {
		t.Errorf("ReadByte = %v, want ErrNotReadable", err)
	}
	if _, err := s.GetCode(); !errors.Is(err, ErrNotReadable) {
		t.Errorf("GetCode = %v, want ErrNotReadable", err)
	}
}

func TestWriteOnReadOnlyStream(t *testing.T) {
	s := NewReader(bytes.NewReader(nil))

	if err := s.WriteByte(0x00); !errors.Is(err, ErrNotWritable) {
		t.Errorf("WriteByte = %v, want ErrNotWritable", err)
	}
	if err := s.PutCode('a'); !errors.Is(err, ErrNotWritable) {
		t.Errorf("PutCode = %v, want ErrNotWritable", err)
	}
}
