// Package wire implements the BOS wire format's low-level building blocks
// (components C2 and C3): the type classifier that picks the narrowest
// numeric wire code for a value, the variable-length size-prefix codec, and
// the growable little-endian Writer that the encode package appends to.
//
// This package has no knowledge of the value tree (package value); it only
// knows how to turn primitive Go values into wire bytes and back.
package wire

// Code is the one-byte wire type discriminator (§3.1).
type Code uint8

const (
	CodeNull    Code = 0x00
	CodeBool    Code = 0x01
	CodeInt8    Code = 0x02
	CodeInt16   Code = 0x03
	CodeInt32   Code = 0x04
	CodeInt64   Code = 0x05
	CodeUInt8   Code = 0x06
	CodeUInt16  Code = 0x07
	CodeUInt32  Code = 0x08
	CodeUInt64  Code = 0x09
	CodeFloat32 Code = 0x0A
	CodeFloat64 Code = 0x0B
	CodeString  Code = 0x0C
	CodeBytes   Code = 0x0D
	CodeArray   Code = 0x0E
	CodeObject  Code = 0x0F
)

// IsValid reports whether c is one of the sixteen defined wire codes.
func (c Code) IsValid() bool {
	return c <= CodeObject
}
