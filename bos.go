// Package bos provides a compact, self-describing binary encoding for
// tagged value trees: Null, Bool, Integer, Real, String, Bytes, Array, and
// Object.
//
// # Core Features
//
//   - Narrowest-width integer and float encoding chosen automatically
//   - Self-describing type tags, no external schema required
//   - Little-endian wire format with a 4-byte total-size header
//   - Optional whole-buffer envelope compression (None, Zstd, S2, LZ4)
//   - Collision-aware object keys backed by xxHash64
//
// # Basic Usage
//
// Building and serializing a value tree:
//
//	import (
//	    "github.com/mintpond/bos"
//	    "github.com/mintpond/bos/value"
//	)
//
//	obj := value.NewObject()
//	obj.ObjectValue().Set("name", value.Str("sensor-1"))
//	obj.ObjectValue().Set("reading", value.Real(21.5))
//
//	buf, err := bos.Serialize(obj)
//	if err != nil {
//	    // handle err
//	}
//	defer buf.Release()
//
//	data := buf.Bytes()
//
// Deserializing:
//
//	v, err := bos.Deserialize(data)
//	if err != nil {
//	    // handle err
//	}
//	reading := v.ObjectValue()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the value,
// encode, decode, and compress packages. For fine-grained control over
// encoder/decoder options, use those packages directly.
package bos

import (
	"github.com/mintpond/bos/compress"
	"github.com/mintpond/bos/decode"
	"github.com/mintpond/bos/encode"
	"github.com/mintpond/bos/format"
	"github.com/mintpond/bos/value"
)

// Serialize encodes v as a BOS buffer using default encoder options.
//
// The returned Buffer owns its byte storage; callers must call
// buf.Release() once done with it.
func Serialize(v value.Value, opts ...encode.Option) (*encode.Buffer, error) {
	e := encode.NewEncoder(opts...)
	return e.Serialize(v)
}

// Deserialize parses data as a complete BOS buffer using default decoder
// options.
func Deserialize(data []byte, opts ...decode.Option) (value.Value, error) {
	d := decode.NewDecoder(opts...)
	return d.Deserialize(data)
}

// SerializeCompressed encodes v, then compresses the resulting buffer with
// the given compression algorithm.
//
// The returned slice is independent of the encoder's pooled buffer; the
// intermediate Buffer is released before this function returns.
func SerializeCompressed(v value.Value, ct format.CompressionType, opts ...encode.Option) ([]byte, error) {
	buf, err := Serialize(v, opts...)
	if err != nil {
		return nil, err
	}
	defer buf.Release()

	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, err
	}

	// The no-op codec returns its input slice, which belongs to buf.
	if ct == format.CompressionNone {
		compressed = append([]byte(nil), compressed...)
	}

	return compressed, nil
}

// DeserializeCompressed decompresses data with the given compression
// algorithm, then deserializes the result as a BOS buffer.
func DeserializeCompressed(data []byte, ct format.CompressionType, opts ...decode.Option) (value.Value, error) {
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return value.Value{}, err
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return value.Value{}, err
	}

	return Deserialize(raw, opts...)
}
