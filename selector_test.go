package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSelector(t *testing.T) {
	buf := []byte{0xa9, 0x05, 0x9c, 0xbb, 0x01, 0x02}
	sel, err := ReadSelector(buf)
	require.NoError(t, err)
	assert.Equal(t, Selector{0xa9, 0x05, 0x9c, 0xbb}, sel)
	assert.Equal(t, "0xa9059cbb", sel.String())
}

func TestSkipSelector(t *testing.T) {
	buf := []byte{0xa9, 0x05, 0x9c, 0xbb, 0x01, 0x02}
	rest, err := SkipSelector(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, rest)
}

func TestReadSelectorTooShort(t *testing.T) {
	_, err := ReadSelector([]byte{0x01, 0x02})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
