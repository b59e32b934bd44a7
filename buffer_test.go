package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func word32(fill byte) []byte {
	b := make([]byte, WordSize)
	for i := range b {
		b[i] = fill
	}
	return b
}

func TestPeekWord(t *testing.T) {
	buf := append(word32(0xAA), word32(0xBB)...)

	w, err := PeekWord(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, Word(append([]byte{}, word32(0xAA)...)), w)

	w, err = PeekWord(buf, WordSize)
	require.NoError(t, err)
	assert.Equal(t, byte(0xBB), w[0])
}

func TestPeekWordOutOfBounds(t *testing.T) {
	buf := word32(0x01)

	_, err := PeekWord(buf, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	var oob OutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, WordSize+1, oob.Requested)
	assert.Equal(t, WordSize, oob.Available)
}

func TestPeekWordNegativeOffset(t *testing.T) {
	_, err := PeekWord(word32(0), -1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
