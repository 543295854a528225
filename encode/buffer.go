package encode

import "github.com/mintpond/bos/wire"

// Buffer owns the byte storage produced by Encoder.Serialize.
//
// Per spec §3.4, the encoder allocates and returns a buffer object owning
// its byte storage; the caller releases it via Release when done.
type Buffer struct {
	w *wire.Writer
}

// Bytes returns the serialized BOS wire bytes. The returned slice is owned
// by the Buffer and becomes invalid after Release.
func (b *Buffer) Bytes() []byte {
	return b.w.Bytes()
}

// Release returns the Buffer's backing storage to the pool. The Buffer
// must not be used after calling Release.
func (b *Buffer) Release() {
	b.w.Release()
}
