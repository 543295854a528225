package wire

import (
	"github.com/mintpond/bos/errs"
)

// Varlen sentinel markers (§4.2): sizes up to 0xFC fit in the marker byte
// itself; 0xFD/0xFE/0xFF introduce a wider little-endian size field.
const (
	varlenSentinel16 = 0xFD
	varlenSentinel32 = 0xFE
	varlenSentinel64 = 0xFF
	varlenMaxInline  = 0xFC
)

// AppendVarlen appends the variable-length size prefix for n to w.
func AppendVarlen(w *Writer, n uint64) {
	switch {
	case n <= varlenMaxInline:
		w.AppendU8(uint8(n))
	case n <= 0xFFFF:
		w.AppendU8(varlenSentinel16)
		w.AppendU16LE(uint16(n))
	case n <= 0xFFFFFFFF:
		w.AppendU8(varlenSentinel32)
		w.AppendU32LE(uint32(n))
	default:
		w.AppendU8(varlenSentinel64)
		w.AppendU64LE(n)
	}
}

// ReadVarlen reads a variable-length size prefix from data starting at
// offset, returning the decoded size and the offset immediately following
// the prefix.
//
// Returns errs.ErrTruncatedInput (wrapped with the failing offset) if data
// is too short to hold the prefix.
func ReadVarlen(data []byte, offset int) (n uint64, next int, err error) {
	if offset >= len(data) {
		return 0, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
	}

	marker := data[offset]
	switch marker {
	case varlenSentinel16:
		if offset+3 > len(data) {
			return 0, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}
		v := uint16(data[offset+1]) | uint16(data[offset+2])<<8
		return uint64(v), offset + 3, nil
	case varlenSentinel32:
		if offset+5 > len(data) {
			return 0, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}
		v := uint32(data[offset+1]) | uint32(data[offset+2])<<8 |
			uint32(data[offset+3])<<16 | uint32(data[offset+4])<<24
		return uint64(v), offset + 5, nil
	case varlenSentinel64:
		if offset+9 > len(data) {
			return 0, 0, errs.AtOffset(errs.ErrTruncatedInput, offset)
		}
		var v uint64
		for i := 0; i < 8; i++ {
			v |= uint64(data[offset+1+i]) << (8 * i)
		}
		return v, offset + 9, nil
	default:
		return uint64(marker), offset + 1, nil
	}
}

// VarlenSize returns the number of bytes AppendVarlen would write for n,
// useful for pre-sizing a buffer before writing.
func VarlenSize(n uint64) int {
	switch {
	case n <= varlenMaxInline:
		return 1
	case n <= 0xFFFF:
		return 3
	case n <= 0xFFFFFFFF:
		return 5
	default:
		return 9
	}
}
