// Copyright 2026 The Wirepack Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides wirepack's standard CBOR encoding
// configuration, used by the CLI's machine-readable output path.
//
// Decoded value sequences can be emitted as JSON (the human-facing
// default), YAML, or CBOR. The CBOR encoder uses Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items — the same decoded values
// always produce identical bytes, so output files are directly
// comparable and digestable.
//
// This package exists so that every caller encodes identically
// without duplicating configuration; consumers import lib/codec, not
// fxamacker/cbor directly.
package codec
