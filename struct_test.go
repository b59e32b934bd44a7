package abi

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transferWithLog struct {
	To     Address
	Amount Uint64
	Active Bool
	Memo   Bytes
	Scores Array[Uint64, *Uint64]
}

func addressWord(b byte) []byte {
	w := make([]byte, WordSize)
	for i := 0; i < 20; i++ {
		w[WordSize-20+i] = b
	}
	return w
}

func buildTransferFrame() []byte {
	const headSize = 5 * WordSize
	bytesTailOffset := headSize
	memoPayload := []byte("hi")
	bytesTail := append(indexWord(len(memoPayload)), memoPayload...)
	bytesTail = append(bytesTail, make([]byte, PaddedLen(len(memoPayload))-len(memoPayload))...)

	arrayTailOffset := bytesTailOffset + len(bytesTail)
	scores := []uint64{7, 8}
	arrayTail := indexWord(len(scores))
	for _, s := range scores {
		arrayTail = append(arrayTail, wordFromUint64(s)...)
	}

	head := append([]byte{}, addressWord(0xAB)...)
	head = append(head, wordFromUint64(123)...)
	head = append(head, indexWord(1)...) // bool: true
	head = append(head, indexWord(bytesTailOffset)...)
	head = append(head, indexWord(arrayTailOffset)...)

	buf := append(head, bytesTail...)
	buf = append(buf, arrayTail...)
	return buf
}

func TestDecodeStruct(t *testing.T) {
	buf := buildTransferFrame()

	v, err := Decode[transferWithLog](buf, 0)
	require.NoError(t, err)

	assert.Equal(t, byte(0xAB), v.To[0])
	assert.Equal(t, Uint64(123), v.Amount)
	assert.True(t, bool(v.Active))
	assert.Equal(t, Bytes("hi"), v.Memo)
	assert.Equal(t, 2, v.Scores.Len())

	s0, err := v.Scores.At(0)
	require.NoError(t, err)
	assert.Equal(t, Uint64(7), s0)
}

func TestDecodePlanCached(t *testing.T) {
	buf := buildTransferFrame()
	_, err := Decode[transferWithLog](buf, 0)
	require.NoError(t, err)

	typ := reflect.TypeOf(transferWithLog{})
	assert.Same(t, planFor(typ), planFor(typ))

	t1 := HeadSizeOf[transferWithLog]()
	t2 := HeadSizeOf[transferWithLog]()
	assert.Equal(t, t1, t2)
	assert.Equal(t, 5*WordSize, t1)
}

type point struct {
	X Uint64
	Y Uint64
}

type withNestedStruct struct {
	Origin Struct[point]
}

func TestDecodeNestedStruct(t *testing.T) {
	buf := append(wordFromUint64(1), wordFromUint64(2)...)
	v, err := Decode[withNestedStruct](buf, 0)
	require.NoError(t, err)
	assert.Equal(t, Uint64(1), v.Origin.Value.X)
	assert.Equal(t, Uint64(2), v.Origin.Value.Y)
}

type fixedArrayHolder struct {
	Weights [3]Uint64
}

func TestDecodeFixedLengthArrayField(t *testing.T) {
	buf := append(wordFromUint64(10), wordFromUint64(20)...)
	buf = append(buf, wordFromUint64(30)...)

	v, err := Decode[fixedArrayHolder](buf, 0)
	require.NoError(t, err)
	assert.Equal(t, [3]Uint64{10, 20, 30}, v.Weights)
	assert.Equal(t, 3*WordSize, HeadSizeOf[fixedArrayHolder]())
}

func TestDecodeFixedLengthArrayFieldPropagatesElementError(t *testing.T) {
	buf := make([]byte, 2*WordSize) // too short for [3]Uint64
	_, err := Decode[fixedArrayHolder](buf, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
