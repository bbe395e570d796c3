// Copyright 2026 The Wirepack Authors
// SPDX-License-Identifier: Apache-2.0

package stream

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Encoding selects how PutCode and GetCode map logical characters to
// bytes on the wire.
type Encoding int

const (
	// Octet is the default mode: one character is one raw byte.
	// Codes outside 0x00–0xFF cannot be written in this mode.
	Octet Encoding = iota

	// UTF8 expands each code point through UTF-8: one logical
	// character may occupy one to four bytes on the wire.
	UTF8
)

// String returns the encoding name for diagnostics.
func (e Encoding) String() string {
	switch e {
	case Octet:
		return "octet"
	case UTF8:
		return "utf8"
	default:
		return fmt.Sprintf("encoding(%d)", int(e))
	}
}

var (
	// ErrNotReadable is returned by read operations on a stream
	// constructed without a reader.
	ErrNotReadable = errors.New("stream: not readable")

	// ErrNotWritable is returned by write operations on a stream
	// constructed without a writer.
	ErrNotWritable = errors.New("stream: not writable")

	// ErrCodeRange is returned by PutCode when the code point cannot
	// be represented in the active encoding mode.
	ErrCodeRange = errors.New("stream: code point not representable in active encoding")

	// ErrInvalidUTF8 is returned by GetCode in UTF8 mode when the
	// input bytes do not form a valid UTF-8 sequence.
	ErrInvalidUTF8 = errors.New("stream: invalid UTF-8 sequence")
)

// Stream is a sequential byte channel with a switchable text-encoding
// mode. The zero value is unusable; construct with New, NewReader, or
// NewWriter.
type Stream struct {
	reader io.Reader
	writer io.Writer

	// encoding is the active text-encoding mode. Mutated by
	// SetEncoding within the dynamic extent of a single codec call;
	// not synchronized.
	encoding Encoding
}

// New returns a stream reading from and writing to rw, in Octet mode.
func New(rw io.ReadWriter) *Stream {
	return &Stream{reader: rw, writer: rw}
}

// NewReader returns a read-only stream over r, in Octet mode.
func NewReader(r io.Reader) *Stream {
	return &Stream{reader: r}
}

// NewWriter returns a write-only stream over w, in Octet mode.
func NewWriter(w io.Writer) *Stream {
	return &Stream{writer: w}
}

// Encoding returns the active text-encoding mode.
func (s *Stream) Encoding() Encoding {
	return s.encoding
}

// SetEncoding switches the active text-encoding mode and returns the
// previous one, so callers can swap-and-restore:
//
//	prev := s.SetEncoding(stream.UTF8)
//	defer s.SetEncoding(prev)
func (s *Stream) SetEncoding(e Encoding) Encoding {
	previous := s.encoding
	s.encoding = e
	return previous
}

// Read reads up to len(p) raw bytes, unaffected by the encoding mode.
// Implements io.Reader so io.ReadFull can be used for exact-length
// reads.
func (s *Stream) Read(p []byte) (int, error) {
	if s.reader == nil {
		return 0, ErrNotReadable
	}
	return s.reader.Read(p)
}

// Write writes len(p) raw bytes, unaffected by the encoding mode.
// Implements io.Writer: a short write always carries a non-nil error.
func (s *Stream) Write(p []byte) (int, error) {
	if s.writer == nil {
		return 0, ErrNotWritable
	}
	return s.writer.Write(p)
}

// ReadByte reads exactly one raw byte. End of input is reported as
// io.EOF — the single end-of-stream sentinel, distinct from every
// valid byte value.
func (s *Stream) ReadByte() (byte, error) {
	if s.reader == nil {
		return 0, ErrNotReadable
	}
	var b [1]byte
	if _, err := io.ReadFull(s.reader, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// WriteByte writes exactly one raw byte.
func (s *Stream) WriteByte(b byte) error {
	if s.writer == nil {
		return ErrNotWritable
	}
	_, err := s.writer.Write([]byte{b})
	return err
}

// PutCode writes one logical character through the active encoding
// mode. In Octet mode the code must fit in a byte; in UTF8 mode it is
// expanded to its UTF-8 byte sequence.
func (s *Stream) PutCode(c rune) error {
	if s.writer == nil {
		return ErrNotWritable
	}
	switch s.encoding {
	case Octet:
		if c < 0 || c > 0xFF {
			return fmt.Errorf("%w: %U in octet mode", ErrCodeRange, c)
		}
		return s.WriteByte(byte(c))
	case UTF8:
		if !utf8.ValidRune(c) {
			return fmt.Errorf("%w: %U", ErrCodeRange, c)
		}
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], c)
		_, err := s.writer.Write(buf[:n])
		return err
	default:
		return fmt.Errorf("stream: unknown encoding %v", s.encoding)
	}
}

// GetCode reads one logical character through the active encoding
// mode. End of input before the first byte is io.EOF; end of input
// inside a multi-byte sequence is io.ErrUnexpectedEOF.
func (s *Stream) GetCode() (rune, error) {
	if s.reader == nil {
		return 0, ErrNotReadable
	}
	b0, err := s.ReadByte()
	if err != nil {
		return 0, err
	}
	if s.encoding == Octet {
		return rune(b0), nil
	}

	// UTF8: the lead byte determines the sequence length.
	var length int
	var c rune
	switch {
	case b0 < 0x80:
		return rune(b0), nil
	case b0&0xE0 == 0xC0:
		length, c = 2, rune(b0&0x1F)
	case b0&0xF0 == 0xE0:
		length, c = 3, rune(b0&0x0F)
	case b0&0xF8 == 0xF0:
		length, c = 4, rune(b0&0x07)
	default:
		return 0, fmt.Errorf("%w: lead byte 0x%02x", ErrInvalidUTF8, b0)
	}
	for i := 1; i < length; i++ {
		b, err := s.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		if b&0xC0 != 0x80 {
			return 0, fmt.Errorf("%w: continuation byte 0x%02x", ErrInvalidUTF8, b)
		}
		c = c<<6 | rune(b&0x3F)
	}
	if !utf8.ValidRune(c) || utf8.RuneLen(c) != length {
		return 0, fmt.Errorf("%w: overlong or invalid sequence", ErrInvalidUTF8)
	}
	return c, nil
}
