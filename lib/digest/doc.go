// Copyright 2026 The Wirepack Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest computes BLAKE3 digests of encoded wire payloads.
// The digest is a sidecar integrity check for files produced by the
// wirepack CLI — it is never part of the wire format itself, which
// stays a flat sequence of untagged primitives.
package digest
