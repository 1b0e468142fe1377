package umb_test

import (
	"encoding/binary"
	"testing"

	"github.com/DRuggeri/umbctl/umb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "a", "internet", "user@apn", "0000", "Carrier Name 1"} {
		buf := make([]byte, 64)
		n, err := umb.EncodeString(s, buf)
		require.NoError(t, err, "encoding %q", s)
		assert.Equal(t, 2*len(s), n)
		assert.Equal(t, s, umb.DecodeString(buf, n/2))
	}
}

func TestEncodeStringZeroFill(t *testing.T) {
	buf := make([]byte, 16)
	for i := range buf {
		buf[i] = 0xff
	}

	n, err := umb.EncodeString("abc", buf)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	for i := n; i < len(buf); i++ {
		assert.Zero(t, buf[i], "stale byte at offset %d", i)
	}
}

func TestEncodeStringLittleEndian(t *testing.T) {
	buf := make([]byte, 8)
	n, err := umb.EncodeString("AB", buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{'A', 0, 'B', 0, 0, 0, 0, 0}, buf)
}

func TestEncodeStringTooLong(t *testing.T) {
	buf := make([]byte, 8)

	// exact fit is fine
	n, err := umb.EncodeString("abcd", buf)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	// one character over is not
	n, err = umb.EncodeString("abcde", buf)
	assert.ErrorIs(t, err, umb.ErrTooLong)
	assert.Negative(t, n)
}

func TestDecodeStringStopsAtZeroUnit(t *testing.T) {
	buf := make([]byte, 10)
	binary.LittleEndian.PutUint16(buf[0:], 'A')
	binary.LittleEndian.PutUint16(buf[2:], 'B')
	binary.LittleEndian.PutUint16(buf[4:], 0)
	binary.LittleEndian.PutUint16(buf[6:], 'C')
	binary.LittleEndian.PutUint16(buf[8:], 'D')

	assert.Equal(t, "AB", umb.DecodeString(buf, 5))
}

func TestDecodeStringLossy(t *testing.T) {
	buf := make([]byte, 6)
	binary.LittleEndian.PutUint16(buf[0:], 0x263a) // outside ASCII
	binary.LittleEndian.PutUint16(buf[2:], 0x01)   // control character
	binary.LittleEndian.PutUint16(buf[4:], 'x')

	assert.Equal(t, "??x", umb.DecodeString(buf, 3))
}

func TestDecodeStringNeverReadsPastBuffer(t *testing.T) {
	buf := []byte{'a', 0, 'b', 0, 'c'} // odd trailing byte
	assert.Equal(t, "ab", umb.DecodeString(buf, 100))
	assert.Equal(t, "", umb.DecodeString(nil, 100))
	assert.Equal(t, "", umb.DecodeString(buf, 0))
}
