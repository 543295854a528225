// Package format defines the enumerations shared between the encode,
// decode, and compress packages.
package format

// CompressionType selects the envelope compression codec applied to an
// entire serialized BOS buffer by bos.SerializeCompressed.
//
// Compression wraps the already wire-complete BOS buffer (4-byte total-size
// prefix and all); it is not part of the tagged-value wire format itself.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
