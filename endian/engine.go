// Package endian provides byte order utilities for binary encoding and
// decoding.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine
// interface. BOS's wire format is little-endian only (spec invariant: "All
// multi-byte integers are little-endian"), so this package exposes a single
// constructor rather than the teacher's little/big-endian pair.
//
// # Basic Usage
//
//	import "github.com/mintpond/bos/endian"
//
//	engine := endian.GetLittleEndianEngine()
//	w := wire.NewWriter(engine)
//
// # Performance
//
// Using EndianEngine (which includes AppendByteOrder) is faster for
// appending operations compared to ByteOrder alone, since it avoids an
// intermediate fixed-size buffer:
//
//	// Using EndianEngine (recommended)
//	buf = engine.AppendUint64(buf, value)
//
//	// Using ByteOrder only
//	tmp := make([]byte, 8)
//	engine.PutUint64(tmp, value)
//	buf = append(buf, tmp...) // extra allocation
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// EndianEngine is immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian from the standard
// library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used by every BOS
// writer and reader. The wire format has no big-endian variant; see the
// package doc and spec.md's non-goals (endian-neutrality across producers).
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
