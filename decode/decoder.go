// Package decode implements the BOS decoder (component C5): it reads a
// wire-format buffer and reconstructs a value.Value tree, mirroring
// encode's emitValue with a bounds-checked reader in place of a writer.
package decode

import (
	"math"

	"github.com/mintpond/bos/errs"
	"github.com/mintpond/bos/internal/options"
	"github.com/mintpond/bos/value"
	"github.com/mintpond/bos/wire"
)

// Decoder deserializes BOS wire bytes into value.Value trees.
//
// A Decoder holds no buffer-specific state between calls to Deserialize;
// the same Decoder may be reused across goroutines and across unrelated
// inputs.
type Decoder struct {
	maxDepth    int
	lenientBool bool
}

// NewDecoder creates a Decoder configured by opts.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{maxDepth: defaultMaxDepth}
	_ = options.Apply[*Decoder](d, opts...)
	return d
}

// Deserialize parses data as a complete BOS buffer, per the top-level
// algorithm in spec §4.5:
//
//  1. Read the declared total size at offset 0; fail TruncatedInput if the
//     buffer is shorter than declared.
//  2. Read the root tagged Value beginning at offset 4.
//  3. Require the cursor to land exactly at the declared total size.
func (d *Decoder) Deserialize(data []byte) (value.Value, error) {
	if len(data) < 4 {
		return value.Value{}, errs.AtOffset(errs.ErrTruncatedInput, 0)
	}

	total := uint64(data[0]) | uint64(data[1])<<8 | uint64(data[2])<<16 | uint64(data[3])<<24
	if total > uint64(len(data)) {
		return value.Value{}, errs.AtOffset(errs.ErrTruncatedInput, 0)
	}

	r := newReader(data[:total])
	r.pos = 4

	v, err := d.readValue(r, 0)
	if err != nil {
		return value.Value{}, err
	}

	if r.pos != len(r.buf) {
		return value.Value{}, errs.AtOffset(errs.ErrTrailingBytes, r.pos)
	}

	return v, nil
}

func (d *Decoder) readValue(r *reader, depth int) (value.Value, error) {
	if depth > d.maxDepth {
		return value.Value{}, errs.AtOffset(errs.ErrDepthExceeded, r.pos)
	}

	tagOffset := r.pos
	tag, err := r.readU8()
	if err != nil {
		return value.Value{}, err
	}
	code := wire.Code(tag)

	switch code {
	case wire.CodeNull:
		return value.Null(), nil

	case wire.CodeBool:
		return d.readBool(r)

	case wire.CodeInt8:
		n, err := r.readI8()
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(int64(n)), nil

	case wire.CodeInt16:
		n, err := r.readI16()
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(int64(n)), nil

	case wire.CodeInt32:
		n, err := r.readI32()
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(int64(n)), nil

	case wire.CodeInt64:
		n, err := r.readI64()
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(n), nil

	case wire.CodeUInt8:
		n, err := r.readU8()
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(int64(n)), nil

	case wire.CodeUInt16:
		n, err := r.readU16()
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(int64(n)), nil

	case wire.CodeUInt32:
		n, err := r.readU32()
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(int64(n)), nil

	case wire.CodeUInt64:
		n, err := r.readU64()
		if err != nil {
			return value.Value{}, err
		}
		if n > math.MaxInt64 {
			return value.Value{}, errs.AtOffset(errs.ErrOverflow, tagOffset)
		}
		return value.Int(int64(n)), nil

	case wire.CodeFloat32:
		f, err := r.readF32()
		if err != nil {
			return value.Value{}, err
		}
		return value.Real(float64(f)), nil

	case wire.CodeFloat64:
		f, err := r.readF64()
		if err != nil {
			return value.Value{}, err
		}
		return value.Real(f), nil

	case wire.CodeString:
		n, err := r.readVarlen()
		if err != nil {
			return value.Value{}, err
		}
		b, err := r.readBytes(n)
		if err != nil {
			return value.Value{}, err
		}
		return value.Str(string(b)), nil

	case wire.CodeBytes:
		n, err := r.readVarlen()
		if err != nil {
			return value.Value{}, err
		}
		b, err := r.readBytes(n)
		if err != nil {
			return value.Value{}, err
		}
		return value.Bytes(b), nil

	case wire.CodeArray:
		return d.readArray(r, depth)

	case wire.CodeObject:
		return d.readObject(r, depth)

	default:
		return value.Value{}, errs.AtOffset(errs.ErrUnknownTypeCode, tagOffset)
	}
}

func (d *Decoder) readBool(r *reader) (value.Value, error) {
	byteOffset := r.pos
	b, err := r.readU8()
	if err != nil {
		return value.Value{}, err
	}

	if b == 0 {
		return value.Bool(false), nil
	}
	if b == 1 {
		return value.Bool(true), nil
	}
	if d.lenientBool {
		return value.Bool(true), nil
	}

	return value.Value{}, errs.AtOffset(errs.ErrInvalidBoolean, byteOffset)
}

func (d *Decoder) readArray(r *reader, depth int) (value.Value, error) {
	count, err := r.readU8()
	if err != nil {
		return value.Value{}, err
	}

	arr := value.NewArray()
	for i := 0; i < int(count); i++ {
		elem, err := d.readValue(r, depth+1)
		if err != nil {
			return value.Value{}, err
		}
		arr.ArrayValue().Append(elem)
	}

	return arr, nil
}

func (d *Decoder) readObject(r *reader, depth int) (value.Value, error) {
	count, err := r.readU8()
	if err != nil {
		return value.Value{}, err
	}

	obj := value.NewObject()
	for i := 0; i < int(count); i++ {
		keyOffset := r.pos
		klen, err := r.readU8()
		if err != nil {
			return value.Value{}, err
		}

		keyBytes, err := r.readBytes(uint64(klen))
		if err != nil {
			return value.Value{}, err
		}
		key := string(keyBytes)

		val, err := d.readValue(r, depth+1)
		if err != nil {
			return value.Value{}, err
		}

		if err := obj.ObjectValue().Set(key, val); err != nil {
			return value.Value{}, errs.AtOffset(err, keyOffset)
		}
	}

	return obj, nil
}
