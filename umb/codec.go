package umb

import (
	"encoding/binary"
	"errors"
	"strings"
)

// ErrTooLong is returned by EncodeString when the input does not fit the
// destination buffer.
var ErrTooLong = errors.New("value too long")

// EncodeString writes s into dst as little-endian UTF-16, one unit per
// input byte, and returns the number of bytes used. On success the
// remainder of dst is zeroed so stale content from a previous value never
// survives. The input is treated as single-byte text; no terminator is
// written inside the buffer.
func EncodeString(s string, dst []byte) (int, error) {
	n := 0
	for i := 0; i < len(s); i++ {
		if len(dst)-n < 2 {
			return -1, ErrTooLong
		}
		binary.LittleEndian.PutUint16(dst[n:], uint16(s[i]))
		n += 2
	}
	clear(dst[n:])
	return n, nil
}

// DecodeString reads up to units little-endian 16-bit values from src and
// returns the decoded text. A zero unit ends the value early even when
// units says more follow. Code points outside printable ASCII come out as
// '?'; decoding never fails.
func DecodeString(src []byte, units int) string {
	var b strings.Builder
	for i := 0; i < units && 2*i+2 <= len(src); i++ {
		c := binary.LittleEndian.Uint16(src[2*i:])
		if c == 0 {
			break
		}
		if c < 0x20 || c > 0x7e {
			b.WriteByte('?')
		} else {
			b.WriteByte(byte(c))
		}
	}
	return b.String()
}
