// Copyright 2026 The Wirepack Authors
// SPDX-License-Identifier: Apache-2.0

// Package serial implements the wirepack binary codec: a fixed,
// platform-independent wire format for exactly three primitive kinds,
// read from and written to a stream.Stream handle.
//
// Wire layout:
//
//   - Integer: 4 bytes, big-endian, 32-bit two's complement.
//   - Float: 8 bytes, the IEEE-754 double bit pattern in little-endian
//     byte order. NaN and Infinity bit patterns round-trip exactly as
//     written; no canonicalization is performed.
//   - Atom: a 4-byte big-endian character count followed by that many
//     characters, each one byte of the source text re-encoded as a
//     UTF-8 code point in U+0000–U+00FF. Bytes above 0x7F therefore
//     occupy two wire bytes. On decode, each code point is truncated
//     back to a single byte — code points above U+00FF do not survive.
//     This transliteration is a deliberate compatibility constraint of
//     the format, limitation included.
//
// The format carries no type tags, padding, or alignment: a reader
// must know out-of-band which operation to apply next (lib/schema
// gives that knowledge a serializable form), and every decode consumes
// exactly the bytes its encode produced.
//
// All operations are synchronous and may block indefinitely on the
// underlying I/O; callers needing bounded waits must impose them at
// the stream layer. Failures are reported as *IOError, *TypeError, or
// *ResourceError.
package serial
