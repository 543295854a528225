// Package compress provides optional envelope compression codecs for
// serialized BOS buffers.
//
// # Overview
//
// A BOS buffer (the output of encode.Encoder.Serialize) is already a
// compact binary encoding, but callers transmitting or archiving many
// buffers may still want general-purpose compression on top. This package
// implements that as a single additional layer applied to the whole
// buffer, not to individual fields:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported algorithms
//
//   - None (format.CompressionNone): no compression, fastest
//   - Zstd (format.CompressionZstd): best compression ratio, moderate speed
//   - S2 (format.CompressionS2): balanced compression and speed
//   - LZ4 (format.CompressionLZ4): fast decompression, moderate compression
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(serializedBuffer)
//
// bos.SerializeCompressed and bos.DeserializeCompressed use GetCodec
// internally to apply this layer around an ordinary Serialize/Deserialize
// call; the compressed form carries no type tag of its own, so callers
// must track which CompressionType was used to decompress correctly.
//
// # Thread safety
//
// All codec implementations are safe for concurrent use.
package compress
