// Package errs defines the flat, sentinel-based error taxonomy shared by
// the wire, encode, and decode packages.
//
// Callers should use errors.Is against the sentinels below rather than
// comparing error strings; call sites wrap a sentinel with additional
// context via fmt.Errorf("...: %w", errs.ErrXxx).
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedInput is returned when the declared buffer size exceeds
	// the actual data available, or a field would read past the end of
	// the buffer.
	ErrTruncatedInput = errors.New("bos: truncated input")

	// ErrUnknownTypeCode is returned when a type-tag byte is not one of
	// the 16 codes defined by the wire format.
	ErrUnknownTypeCode = errors.New("bos: unknown type code")

	// ErrContainerTooLarge is returned when an Array has more than 255
	// elements or an Object has more than 255 keys at encode time.
	ErrContainerTooLarge = errors.New("bos: container exceeds 255 elements")

	// ErrKeyTooLong is returned when an Object key exceeds 255 bytes at
	// encode time.
	ErrKeyTooLong = errors.New("bos: object key exceeds 255 bytes")

	// ErrDuplicateKey is returned when a decoded Object contains the same
	// key twice.
	ErrDuplicateKey = errors.New("bos: duplicate object key")

	// ErrDepthExceeded is returned when nested Array/Object parsing
	// exceeds the configured recursion depth limit.
	ErrDepthExceeded = errors.New("bos: nesting depth exceeded")

	// ErrInvalidBoolean is returned in strict decode mode when the byte
	// following a Bool type code is neither 0 nor 1.
	ErrInvalidBoolean = errors.New("bos: invalid boolean payload")

	// ErrTrailingBytes is returned when decoding finishes before the
	// cursor reaches the declared total size.
	ErrTrailingBytes = errors.New("bos: trailing bytes after root value")

	// ErrOverflow is returned when a decoded unsigned 64-bit integer
	// cannot be represented in the value model's signed 64-bit Integer
	// storage (values in [2^63, 2^64)).
	ErrOverflow = errors.New("bos: integer value overflows signed 64-bit storage")
)

// PositionError pairs an error with the byte offset in the source buffer
// where it was detected, satisfying §6.3's "source-identifying position"
// requirement for decode errors.
type PositionError struct {
	Err    error
	Offset int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%v (at offset %d)", e.Err, e.Offset)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}

// AtOffset wraps err with the byte offset at which it occurred. If err is
// nil, AtOffset returns nil.
func AtOffset(err error, offset int) error {
	if err == nil {
		return nil
	}

	return &PositionError{Err: err, Offset: offset}
}
