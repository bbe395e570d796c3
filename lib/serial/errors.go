// Copyright 2026 The Wirepack Authors
// SPDX-License-Identifier: Apache-2.0

package serial

import (
	"errors"
	"fmt"

	"github.com/wirepack/wirepack/lib/stream"
)

// IOError reports a read or write against the stream that did not
// complete as required: a short read or write, end of input, or a
// device fault.
type IOError struct {
	// Action is the stream operation that failed: "read" or "write".
	Action string

	// Stream is the handle the operation was acting on.
	Stream *stream.Stream

	// Err is the underlying platform error. May be nil when no error
	// description is retrievable.
	Err error
}

func (e *IOError) Error() string {
	message := "Unknown error"
	if e.Err != nil {
		message = e.Err.Error()
	}
	return fmt.Sprintf("serial: %s: %s", e.Action, message)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// TypeError reports an input value that does not satisfy the expected
// shape: a non-atomic value passed to WriteAtom, or a malformed length
// prefix encountered on decode.
type TypeError struct {
	// Expected describes the required shape (e.g., "atomic text value").
	Expected string

	// Actual is the offending value.
	Actual any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("serial: expected %s, got %T (%v)", e.Expected, e.Actual, e.Actual)
}

// ResourceError reports a resource that could not be obtained. The
// only resource the codec acquires is memory for large atom buffers.
type ResourceError struct {
	// What names the exhausted resource ("memory").
	What string
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("serial: insufficient %s", e.What)
}

// IsIOError reports whether err is a codec I/O failure.
func IsIOError(err error) bool {
	var ioError *IOError
	return errors.As(err, &ioError)
}

// IsTypeError reports whether err is a codec input-shape failure.
func IsTypeError(err error) bool {
	var typeError *TypeError
	return errors.As(err, &typeError)
}

// IsResourceError reports whether err is a codec resource failure.
func IsResourceError(err error) bool {
	var resourceError *ResourceError
	return errors.As(err, &resourceError)
}
