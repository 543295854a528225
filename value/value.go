// Package value implements the tagged value tree (component C1) that BOS
// serializes and deserializes.
//
// A Value is a discriminated union over eight logical kinds: Null, Bool,
// Integer, Real, String, Bytes, Array, and Object. The wire format (package
// wire) collapses the ten numeric wire codes (Int8..UInt64, Float32,
// Float64) into the two logical kinds Integer and Real; package value never
// deals in wire codes directly, only in these logical kinds plus the
// Go-native storage each one uses.
//
// Value is an immutable-by-convention struct: once constructed, a scalar
// Value's payload never changes. Array and Object are mutable containers
// built up via Append/Set before being handed to an encoder, mirroring the
// append-then-encode usage pattern of the teacher's blob encoders.
package value

import "fmt"

// Kind identifies which of the eight logical variants a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindReal
	KindString
	KindBytes
	KindArray
	KindObject
)

// String returns a human-readable name for the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInteger:
		return "Integer"
	case KindReal:
		return "Real"
	case KindString:
		return "String"
	case KindBytes:
		return "Bytes"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// Value is a tagged union over the eight logical BOS kinds.
//
// Only the fields relevant to Kind are meaningful; reading the wrong
// accessor for the current Kind panics, the same contract the teacher's
// blob decoders use for header field access.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	buf  []byte
	arr  *Array
	obj  *Object
}

// Null returns the Null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a Bool value wrapping b.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns an Integer value wrapping i.
//
// The wire classifier (package wire) later picks the narrowest signed or
// unsigned wire code that can represent i; value.Value itself always
// stores the logical Integer as a 64-bit signed number.
func Int(i int64) Value {
	return Value{kind: KindInteger, i: i}
}

// Real returns a Real value wrapping f.
func Real(f float64) Value {
	return Value{kind: KindReal, f: f}
}

// Str returns a String value wrapping s.
func Str(s string) Value {
	return Value{kind: KindString, s: s}
}

// Bytes returns a Bytes value wrapping a copy of b.
//
// The input slice is copied so the caller may reuse or mutate it after
// this call returns, matching the spec's "decoder does not retain
// references into the input buffer" invariant extended to encode-side
// construction as well.
func Bytes(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindBytes, buf: cp}
}

// NewArray returns an empty Array value ready to receive elements via
// Append.
func NewArray() Value {
	return Value{kind: KindArray, arr: &Array{}}
}

// NewObject returns an empty Object value ready to receive entries via Set.
func NewObject() Value {
	return Value{kind: KindObject, obj: newObject()}
}

// Kind reports which logical variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is the Null value.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// BoolValue returns the Bool payload. Panics if Kind() != KindBool.
func (v Value) BoolValue() bool {
	v.mustBe(KindBool)
	return v.b
}

// IntValue returns the Integer payload. Panics if Kind() != KindInteger.
func (v Value) IntValue() int64 {
	v.mustBe(KindInteger)
	return v.i
}

// RealValue returns the Real payload. Panics if Kind() != KindReal.
func (v Value) RealValue() float64 {
	v.mustBe(KindReal)
	return v.f
}

// StringValue returns the String payload. Panics if Kind() != KindString.
func (v Value) StringValue() string {
	v.mustBe(KindString)
	return v.s
}

// BytesValue returns the Bytes payload. Panics if Kind() != KindBytes.
//
// The returned slice is owned by v; callers must not mutate it.
func (v Value) BytesValue() []byte {
	v.mustBe(KindBytes)
	return v.buf
}

// ArrayValue returns the underlying Array. Panics if Kind() != KindArray.
func (v Value) ArrayValue() *Array {
	v.mustBe(KindArray)
	return v.arr
}

// ObjectValue returns the underlying Object. Panics if Kind() != KindObject.
func (v Value) ObjectValue() *Object {
	v.mustBe(KindObject)
	return v.obj
}

func (v Value) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("value: wrong accessor: value has kind %s, want %s", v.kind, k))
	}
}
