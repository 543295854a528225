package wire

import "math"

// ClassifyInt picks the narrowest wire code that can represent v, per the
// table in spec §4.2: non-negative values always take an unsigned code,
// negative values always take a signed code.
func ClassifyInt(v int64) Code {
	if v >= 0 {
		switch {
		case v <= math.MaxUint8:
			return CodeUInt8
		case v <= math.MaxUint16:
			return CodeUInt16
		case v <= math.MaxUint32:
			return CodeUInt32
		default:
			return CodeUInt64
		}
	}

	switch {
	case v >= math.MinInt8:
		return CodeInt8
	case v >= math.MinInt16:
		return CodeInt16
	case v >= math.MinInt32:
		return CodeInt32
	default:
		return CodeInt64
	}
}

// ClassifyFloat picks CodeFloat32 when f survives an exact round-trip
// through float32, CodeFloat64 otherwise.
//
// This is the Go edition's default narrowing rule (SPEC_FULL.md §1): the
// original C implementation always emits Float32, losing precision; this
// implementation only narrows when doing so is lossless.
func ClassifyFloat(f float64) Code {
	if float64(float32(f)) == f {
		return CodeFloat32
	}
	return CodeFloat64
}
