package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexWord(n int) []byte {
	b := make([]byte, WordSize)
	for i := 0; i < 8; i++ {
		b[WordSize-1-i] = byte(n >> (8 * i))
	}
	return b
}

func buildDynamicFrame(payload []byte) []byte {
	buf := append([]byte{}, indexWord(WordSize)...) // head: pointer to tail at word 1
	buf = append(buf, indexWord(len(payload))...)   // tail: length word
	buf = append(buf, payload...)
	if rem := PaddedLen(len(payload)) - len(payload); rem > 0 {
		buf = append(buf, make([]byte, rem)...)
	}
	return buf
}

func TestReadBytes(t *testing.T) {
	buf := buildDynamicFrame([]byte("hello"))
	b, err := ReadBytes(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), []byte(b))
}

func TestReadBytesIndexExceeds64Bits(t *testing.T) {
	buf := make([]byte, WordSize)
	buf[0] = 1 // non-zero high byte of the index word
	_, err := ReadBytes(buf, 0)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestReadString(t *testing.T) {
	buf := buildDynamicFrame([]byte("zero-copy"))
	s, err := ReadString(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, Str("zero-copy"), s)
}

func TestReadStringInvalidUTF8(t *testing.T) {
	buf := buildDynamicFrame([]byte{0xff, 0xfe, 0xfd})
	_, err := ReadString(buf, 0)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestBytesFieldDecoder(t *testing.T) {
	buf := buildDynamicFrame([]byte("abi"))
	var b Bytes
	require.NoError(t, b.Decode(buf, 0))
	assert.Equal(t, Bytes("abi"), b)
	assert.Equal(t, WordSize, b.HeadSize())
}
