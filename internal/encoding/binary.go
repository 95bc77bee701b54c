package encoding

import (
	"encoding/binary"
)

// PackCell merges a hit count and a flag byte into one 16 bit channel value.
// The count holds the significant bits.
func PackCell(hits, flags uint8) uint16 {
	return binary.BigEndian.Uint16([]byte{hits, flags})
}

// UnpackCell splits a channel value made by PackCell.
func UnpackCell(v uint16) (hits, flags uint8) {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, v)
	return buf[0], buf[1]
}

// FlagByte reads the first byte of a bitmap's data, eg. bitmap.Bitmap.Data.
// An empty bitmap is zero.
func FlagByte(data []byte) uint8 {
	if len(data) == 0 {
		return 0
	}
	return data[0]
}

// FlagBytes is the inverse of FlagByte; the result is a bitmap of 8 bits.
func FlagBytes(flags uint8) []byte {
	return []byte{flags}
}
