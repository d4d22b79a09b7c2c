// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package compactsize

import (
	"encoding/binary"
)

// Encode returns bitcoin CompactSize encoding of n.
// Values below 0xfd are encoded as a single byte, larger ones get
// a marker byte followed by the little-endian value of matching width.
func Encode(n uint64) []byte {
	switch {
	case n < 0xfd:
		return []byte{byte(n)}
	case n <= 0xffff:
		b := make([]byte, 3)
		b[0] = 0xfd
		binary.LittleEndian.PutUint16(b[1:], uint16(n))

		return b
	case n <= 0xffff_ffff:
		b := make([]byte, 5)
		b[0] = 0xfe
		binary.LittleEndian.PutUint32(b[1:], uint32(n))

		return b
	default:
		b := make([]byte, 9)
		b[0] = 0xff
		binary.LittleEndian.PutUint64(b[1:], n)

		return b
	}
}

// PrependTo returns data prefixed with CompactSize encoding of its length.
func PrependTo(data []byte) []byte {
	prefix := Encode(uint64(len(data)))

	return append(prefix, data...)
}
