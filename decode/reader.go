package decode

import (
	"math"

	"github.com/mintpond/bos/endian"
	"github.com/mintpond/bos/errs"
	"github.com/mintpond/bos/wire"
)

// reader walks a single BOS buffer with a cursor, bounds-checking every
// read against the buffer's end (component C5's state machine operates on
// top of this).
type reader struct {
	buf    []byte
	pos    int
	engine endian.EndianEngine
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf, engine: endian.GetLittleEndianEngine()}
}

func (r *reader) need(n int) error {
	if r.pos+n > len(r.buf) {
		return errs.AtOffset(errs.ErrTruncatedInput, r.pos)
	}
	return nil
}

func (r *reader) readU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

func (r *reader) readI8() (int8, error) {
	v, err := r.readU8()
	return int8(v), err
}

func (r *reader) readU16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := r.engine.Uint16(r.buf[r.pos : r.pos+2])
	r.pos += 2
	return v, nil
}

func (r *reader) readI16() (int16, error) {
	v, err := r.readU16()
	return int16(v), err
}

func (r *reader) readU32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := r.engine.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

func (r *reader) readI32() (int32, error) {
	v, err := r.readU32()
	return int32(v), err
}

func (r *reader) readU64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := r.engine.Uint64(r.buf[r.pos : r.pos+8])
	r.pos += 8
	return v, nil
}

func (r *reader) readI64() (int64, error) {
	v, err := r.readU64()
	return int64(v), err
}

func (r *reader) readF32() (float32, error) {
	v, err := r.readU32()
	return math.Float32frombits(v), err
}

func (r *reader) readF64() (float64, error) {
	v, err := r.readU64()
	return math.Float64frombits(v), err
}

// readVarlen reads the varlen size prefix at the cursor (§6.1).
func (r *reader) readVarlen() (uint64, error) {
	n, next, err := wire.ReadVarlen(r.buf, r.pos)
	if err != nil {
		return 0, err
	}
	r.pos = next
	return n, nil
}

// readBytes consumes and returns n raw bytes at the cursor. The returned
// slice aliases r.buf; callers that hand it to the value model must copy
// it (value.Bytes already copies).
func (r *reader) readBytes(n uint64) ([]byte, error) {
	remaining := len(r.buf) - r.pos
	if remaining < 0 || n > uint64(remaining) {
		return nil, errs.AtOffset(errs.ErrTruncatedInput, r.pos)
	}
	start := r.pos
	r.pos += int(n)
	return r.buf[start:r.pos], nil
}
