// Copyright 2026 The Wirepack Authors
// SPDX-License-Identifier: Apache-2.0

// Package stream provides the stream handle the wirepack codec
// operates on: a thin wrapper around a caller-supplied io.Reader
// and/or io.Writer that adds single-byte and code-point I/O under a
// switchable text-encoding mode.
//
// The handle never opens or closes the underlying reader/writer —
// lifecycle belongs to the caller. The codec (lib/serial) swaps the
// encoding mode to UTF8 for the duration of an atom operation and
// restores it before returning, so the same handle can freely
// interleave raw binary integer/float operations with text atom
// operations.
//
// A Stream is not safe for concurrent use: the encoding-mode field is
// mutated without synchronization. Distinct Streams over distinct
// readers/writers are fully independent.
package stream
