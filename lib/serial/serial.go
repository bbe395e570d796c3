// Copyright 2026 The Wirepack Authors
// SPDX-License-Identifier: Apache-2.0

package serial

import (
	"errors"
	"io"
	"math"
	"strconv"

	"github.com/wirepack/wirepack/lib/stream"
)

const (
	// atomStackBufferSize is the decode buffer threshold: atoms
	// shorter than this are assembled in a stack buffer, longer ones
	// on the heap.
	atomStackBufferSize = 1024

	// MaxAtomLength is the largest atom character count ReadAtom will
	// allocate for. A length prefix above this fails with
	// *ResourceError before any allocation happens, so a corrupt or
	// hostile prefix cannot demand gigabytes.
	MaxAtomLength = 1 << 30
)

// floatWireShift maps wire byte position to the bit offset of that
// byte within the IEEE-754 bit pattern. The wire order is the
// little-endian layout of the double: least significant byte first.
// Fixed at initialization; never derived per call.
var floatWireShift = [8]uint{0, 8, 16, 24, 32, 40, 48, 56}

// WriteInt32 writes value as exactly 4 bytes in big-endian order:
// byte 0 carries bits 24–31 (the sign bit first), byte 3 bits 0–7.
func WriteInt32(s *stream.Stream, value int32) error {
	b := [4]byte{
		byte(value >> 24),
		byte(value >> 16),
		byte(value >> 8),
		byte(value),
	}
	if _, err := s.Write(b[:]); err != nil {
		return writeError(s, err)
	}
	return nil
}

// ReadInt32 reads exactly 4 bytes and reassembles them big-endian as
// a 32-bit two's-complement signed integer. The top bit of the first
// byte is the sign bit.
func ReadInt32(s *stream.Stream) (int32, error) {
	var b [4]byte
	if _, err := io.ReadFull(s, b[:]); err != nil {
		return 0, readError(s, err)
	}
	v := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	return int32(v), nil
}

// WriteFloat writes the 8 raw bytes of value's IEEE-754 bit pattern
// in canonical wire order (little-endian), one byte at a time. The
// bit pattern is written verbatim: NaN payloads and signed zeros
// round-trip without canonicalization.
func WriteFloat(s *stream.Stream, value float64) error {
	bits := math.Float64bits(value)
	for _, shift := range floatWireShift {
		if err := s.WriteByte(byte(bits >> shift)); err != nil {
			return writeError(s, err)
		}
	}
	return nil
}

// ReadFloat reads 8 bytes one at a time, placing each into its
// position in the bit pattern per the wire order, and reinterprets
// the result as a float64.
func ReadFloat(s *stream.Stream) (float64, error) {
	var bits uint64
	for _, shift := range floatWireShift {
		b, err := s.ReadByte()
		if err != nil {
			return 0, readError(s, err)
		}
		bits |= uint64(b) << shift
	}
	return math.Float64frombits(bits), nil
}

// WriteAtom writes text as a length-prefixed atom: the character
// count via WriteInt32, then each byte of the text as one wire
// character through the stream's UTF8 mode (bytes above 0x7F expand
// to two wire bytes). The stream's prior encoding mode is restored on
// every exit path.
//
// text must be an atomic text-like value: string, []byte, a signed or
// unsigned integer, a float, or a bool. Anything else fails with
// *TypeError.
func WriteAtom(s *stream.Stream, text any) error {
	data, ok := atomBytes(text)
	if !ok {
		return &TypeError{Expected: "atomic text value", Actual: text}
	}
	if len(data) > math.MaxInt32 {
		return &TypeError{Expected: "atom with a 32-bit length", Actual: len(data)}
	}

	if err := WriteInt32(s, int32(len(data))); err != nil {
		return err
	}

	previous := s.SetEncoding(stream.UTF8)
	defer s.SetEncoding(previous)

	for _, b := range data {
		if err := s.PutCode(rune(b)); err != nil {
			return writeError(s, err)
		}
	}
	return nil
}

// ReadAtom reads a length-prefixed atom: the character count via
// ReadInt32, then exactly that many code points through the stream's
// UTF8 mode, each truncated to a single byte. The stream's prior
// encoding mode is restored on every exit path.
func ReadAtom(s *stream.Stream) (string, error) {
	count, err := ReadInt32(s)
	if err != nil {
		return "", err
	}
	if count < 0 {
		return "", &TypeError{Expected: "non-negative atom length", Actual: count}
	}
	if count > MaxAtomLength {
		return "", &ResourceError{What: "memory"}
	}

	var stackBuffer [atomStackBufferSize]byte
	var buffer []byte
	if count < atomStackBufferSize {
		buffer = stackBuffer[:count]
	} else {
		buffer = make([]byte, count)
	}

	previous := s.SetEncoding(stream.UTF8)
	defer s.SetEncoding(previous)

	for i := range buffer {
		c, err := s.GetCode()
		if err != nil {
			return "", readError(s, err)
		}
		buffer[i] = byte(c)
	}
	return string(buffer), nil
}

// atomBytes converts an atomic value to its character sequence.
// Mirrors the conversion set of the historical format: text, numbers,
// and booleans are atomic; structured values are not.
func atomBytes(value any) ([]byte, bool) {
	switch v := value.(type) {
	case string:
		return []byte(v), true
	case []byte:
		return v, true
	case int:
		return strconv.AppendInt(nil, int64(v), 10), true
	case int32:
		return strconv.AppendInt(nil, int64(v), 10), true
	case int64:
		return strconv.AppendInt(nil, v, 10), true
	case uint:
		return strconv.AppendUint(nil, uint64(v), 10), true
	case uint32:
		return strconv.AppendUint(nil, uint64(v), 10), true
	case uint64:
		return strconv.AppendUint(nil, v, 10), true
	case float32:
		return strconv.AppendFloat(nil, float64(v), 'g', -1, 32), true
	case float64:
		return strconv.AppendFloat(nil, v, 'g', -1, 64), true
	case bool:
		return strconv.AppendBool(nil, v), true
	default:
		return nil, false
	}
}

// readError classifies a failed stream read. A stream without a
// reader is a caller mistake (wrong-shaped argument), everything else
// is an I/O fault.
func readError(s *stream.Stream, err error) error {
	if errors.Is(err, stream.ErrNotReadable) {
		return &TypeError{Expected: "readable stream", Actual: s}
	}
	return &IOError{Action: "read", Stream: s, Err: err}
}

// writeError classifies a failed stream write.
func writeError(s *stream.Stream, err error) error {
	if errors.Is(err, stream.ErrNotWritable) {
		return &TypeError{Expected: "writable stream", Actual: s}
	}
	return &IOError{Action: "write", Stream: s, Err: err}
}
