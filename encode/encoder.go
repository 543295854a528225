// Package encode implements the BOS encoder (component C4): it walks a
// value.Value tree and emits the wire format described in spec.md §6.1
// through a wire.Writer.
package encode

import (
	"fmt"

	"github.com/mintpond/bos/endian"
	"github.com/mintpond/bos/errs"
	"github.com/mintpond/bos/internal/options"
	"github.com/mintpond/bos/value"
	"github.com/mintpond/bos/wire"
)

// maxContainerSize is the largest number of elements an Array or keys an
// Object may hold on the wire (§4.2, one-byte count prefix).
const maxContainerSize = 255

// Encoder serializes value.Value trees to the BOS wire format.
//
// An Encoder holds no tree-specific state between calls to Serialize; the
// same Encoder may be reused across goroutines and across unrelated
// value.Value trees.
type Encoder struct {
	initialCapacity int
}

// NewEncoder creates an Encoder configured by opts.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{}
	_ = options.Apply[*Encoder](e, opts...)
	return e
}

// Serialize walks root and returns a Buffer containing the complete BOS
// wire representation, per the top-level algorithm in spec §4.4:
//
//  1. Reserve 4 bytes for the total-size prefix.
//  2. Emit the root as a tagged Value.
//  3. Patch bytes [0..4) with the final buffer length.
//  4. Return the buffer.
func (e *Encoder) Serialize(root value.Value) (*Buffer, error) {
	w := wire.NewWriter(endian.GetLittleEndianEngine())
	if e.initialCapacity > 0 {
		w.Grow(e.initialCapacity)
	}

	sizeOffset := w.Reserve(4)

	if err := emitValue(w, root); err != nil {
		w.Release()
		return nil, err
	}

	w.PatchUint32(sizeOffset, uint32(w.Len()))

	return &Buffer{w: w}, nil
}

func emitValue(w *wire.Writer, v value.Value) error {
	switch v.Kind() {
	case value.KindNull:
		w.AppendU8(uint8(wire.CodeNull))
	case value.KindBool:
		w.AppendU8(uint8(wire.CodeBool))
		if v.BoolValue() {
			w.AppendU8(1)
		} else {
			w.AppendU8(0)
		}
	case value.KindInteger:
		emitInteger(w, v.IntValue())
	case value.KindReal:
		emitReal(w, v.RealValue())
	case value.KindString:
		w.AppendU8(uint8(wire.CodeString))
		s := v.StringValue()
		wire.AppendVarlen(w, uint64(len(s)))
		w.AppendBytes([]byte(s))
	case value.KindBytes:
		w.AppendU8(uint8(wire.CodeBytes))
		b := v.BytesValue()
		wire.AppendVarlen(w, uint64(len(b)))
		w.AppendBytes(b)
	case value.KindArray:
		return emitArray(w, v.ArrayValue())
	case value.KindObject:
		return emitObject(w, v.ObjectValue())
	}

	return nil
}

func emitInteger(w *wire.Writer, v int64) {
	code := wire.ClassifyInt(v)
	w.AppendU8(uint8(code))

	switch code {
	case wire.CodeUInt8:
		w.AppendU8(uint8(v))
	case wire.CodeUInt16:
		w.AppendU16LE(uint16(v))
	case wire.CodeUInt32:
		w.AppendU32LE(uint32(v))
	case wire.CodeUInt64:
		w.AppendU64LE(uint64(v))
	case wire.CodeInt8:
		w.AppendI8(int8(v))
	case wire.CodeInt16:
		w.AppendI16LE(int16(v))
	case wire.CodeInt32:
		w.AppendI32LE(int32(v))
	case wire.CodeInt64:
		w.AppendI64LE(v)
	}
}

func emitReal(w *wire.Writer, f float64) {
	code := wire.ClassifyFloat(f)
	w.AppendU8(uint8(code))

	if code == wire.CodeFloat32 {
		w.AppendF32LE(float32(f))
	} else {
		w.AppendF64LE(f)
	}
}

func emitArray(w *wire.Writer, arr *value.Array) error {
	if arr.Len() > maxContainerSize {
		return fmt.Errorf("encode array of %d elements: %w", arr.Len(), errs.ErrContainerTooLarge)
	}

	w.AppendU8(uint8(wire.CodeArray))
	w.AppendU8(uint8(arr.Len()))

	for _, elem := range arr.Elements() {
		if err := emitValue(w, elem); err != nil {
			return err
		}
	}

	return nil
}

func emitObject(w *wire.Writer, obj *value.Object) error {
	if obj.Len() > maxContainerSize {
		return fmt.Errorf("encode object of %d keys: %w", obj.Len(), errs.ErrContainerTooLarge)
	}

	w.AppendU8(uint8(wire.CodeObject))
	w.AppendU8(uint8(obj.Len()))

	var emitErr error
	obj.Entries(func(key string, val value.Value) bool {
		if len(key) > maxContainerSize {
			emitErr = fmt.Errorf("encode object key %q: %w", key, errs.ErrKeyTooLong)
			return false
		}

		w.AppendU8(uint8(len(key)))
		w.AppendBytes([]byte(key))

		if err := emitValue(w, val); err != nil {
			emitErr = err
			return false
		}

		return true
	})

	return emitErr
}
