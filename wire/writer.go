package wire

import (
	"math"

	"github.com/mintpond/bos/endian"
	"github.com/mintpond/bos/internal/pool"
)

// Writer is a growable, append-only little-endian byte buffer (component
// C3), backed by the teacher's pooled ByteBuffer for amortized growth.
//
// A Writer is not safe for concurrent use; callers serializing multiple
// value trees concurrently must use one Writer per goroutine.
type Writer struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewWriter returns a Writer using engine for multi-byte field layout. BOS
// only ever uses the little-endian engine (endian.GetLittleEndianEngine),
// but the parameter is kept explicit for symmetry with the teacher's
// encoder constructors and to make byte-order assumptions visible at call
// sites.
func NewWriter(engine endian.EndianEngine) *Writer {
	return &Writer{
		buf:    pool.GetBuffer(),
		engine: engine,
	}
}

// Reserve extends the buffer by n bytes and returns the offset at which they
// start, for later patching (used for the 4-byte total-size prefix). The
// reserved bytes are not zeroed: a buffer reused from the pool may still hold
// earlier contents there until they are patched.
func (w *Writer) Reserve(n int) int {
	offset := w.buf.Len()
	w.buf.ExtendOrGrow(n)
	return offset
}

// PatchUint32 overwrites the 4 bytes at offset with v in the writer's byte
// order, used to backfill the total-size prefix after the root value has
// been fully emitted.
func (w *Writer) PatchUint32(offset int, v uint32) {
	w.engine.PutUint32(w.buf.Bytes()[offset:offset+4], v)
}

// AppendU8 appends a single byte.
func (w *Writer) AppendU8(v uint8) {
	w.buf.MustWrite([]byte{v})
}

// AppendI8 appends a signed byte.
func (w *Writer) AppendI8(v int8) {
	w.AppendU8(uint8(v))
}

// AppendU16LE appends a 16-bit unsigned integer in little-endian order.
func (w *Writer) AppendU16LE(v uint16) {
	w.buf.B = w.engine.AppendUint16(w.buf.B, v)
}

// AppendI16LE appends a 16-bit signed integer in little-endian order.
func (w *Writer) AppendI16LE(v int16) {
	w.AppendU16LE(uint16(v))
}

// AppendU32LE appends a 32-bit unsigned integer in little-endian order.
func (w *Writer) AppendU32LE(v uint32) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, v)
}

// AppendI32LE appends a 32-bit signed integer in little-endian order.
func (w *Writer) AppendI32LE(v int32) {
	w.AppendU32LE(uint32(v))
}

// AppendU64LE appends a 64-bit unsigned integer in little-endian order.
func (w *Writer) AppendU64LE(v uint64) {
	w.buf.B = w.engine.AppendUint64(w.buf.B, v)
}

// AppendI64LE appends a 64-bit signed integer in little-endian order.
func (w *Writer) AppendI64LE(v int64) {
	w.AppendU64LE(uint64(v))
}

// AppendF32LE appends an IEEE-754 32-bit float in little-endian order.
func (w *Writer) AppendF32LE(v float32) {
	w.AppendU32LE(math.Float32bits(v))
}

// AppendF64LE appends an IEEE-754 64-bit float in little-endian order.
func (w *Writer) AppendF64LE(v float64) {
	w.AppendU64LE(math.Float64bits(v))
}

// AppendBytes appends p verbatim, with no length prefix.
func (w *Writer) AppendBytes(p []byte) {
	w.buf.MustWrite(p)
}

// Grow ensures the writer's buffer has capacity for at least n more bytes
// without reallocating, used to pre-size the buffer when the caller can
// estimate the serialized tree's size up front.
func (w *Writer) Grow(n int) {
	w.buf.Grow(n)
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Bytes returns the bytes written so far. The returned slice is owned by
// the Writer until Release is called.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Release returns the Writer's backing buffer to the pool. The Writer must
// not be used after calling Release.
func (w *Writer) Release() {
	pool.PutBuffer(w.buf)
	w.buf = nil
}
