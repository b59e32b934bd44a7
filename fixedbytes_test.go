package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFixedBytes(t *testing.T) {
	buf := make([]byte, WordSize)
	buf[0], buf[1], buf[2], buf[3] = 0xDE, 0xAD, 0xBE, 0xEF
	fb, err := ReadBytes4(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, FixedBytes{0xDE, 0xAD, 0xBE, 0xEF}, fb)
	assert.Equal(t, "0xdeadbeef", fb.String())
}

func TestReadFixedBytesDirtyPadding(t *testing.T) {
	buf := make([]byte, WordSize)
	buf[0] = 0xDE
	buf[WordSize-1] = 0x01
	_, err := ReadBytes4(buf, 0)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestReadFixedBytesInvalidWidth(t *testing.T) {
	_, err := ReadFixedBytes(make([]byte, WordSize), 0, 0)
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = ReadFixedBytes(make([]byte, WordSize), 0, 33)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestBytes32RoundTrip(t *testing.T) {
	buf := word32(0x42)
	var b Bytes32
	require.NoError(t, b.Decode(buf, 0))
	assert.Equal(t, WordSize, b.HeadSize())
	for _, x := range b {
		assert.Equal(t, byte(0x42), x)
	}
}
