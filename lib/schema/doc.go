// Copyright 2026 The Wirepack Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema gives the codec's out-of-band type knowledge a
// serializable form. The wire format carries no type tags, so a
// reader must know which operation to apply next; a Schema is that
// knowledge as an ordered field list, loadable from YAML:
//
//	fields:
//	  - name: count
//	    type: int32
//	  - name: label
//	    type: atom
//	  - name: ratio
//	    type: float
//
// Value documents drive the encode direction:
//
//	values:
//	  - type: int32
//	    value: 42
//	  - type: atom
//	    value: hello
//
// Encode and Decode walk a value list or schema and apply the
// matching lib/serial operation per entry.
package schema
