package abi

import "unicode/utf8"

// Bytes is a borrowed view over a dynamic ABI bytes value.
type Bytes []byte

// String renders b as a 0x-prefixed hex string. Named String to satisfy
// fmt.Stringer; it does not interpret b as text.
func (b Bytes) String() string { return hexString(b) }

// Str is a dynamic ABI string value. It is always valid UTF-8. Unlike
// Bytes it does not borrow from the input buffer: ReadString converts the
// payload to a Go string, which copies it.
type Str string

// decodeIndex reads the word at offset and interprets it as a 64-bit index
// (an offset or a length). The leading 24 bytes must be zero; a non-zero
// high word would mean the index does not fit in 64 bits, which no buffer
// this package can address ever needs, and accepting it would open the
// decoder to pointer-aliasing tricks where two different 256-bit values
// collide on the same low 64 bits.
func decodeIndex(buf []byte, offset int) (int, error) {
	w, err := PeekWord(buf, offset)
	if err != nil {
		return 0, err
	}
	const pad = WordSize - 8
	for _, b := range w[:pad] {
		if b != 0 {
			return 0, InvalidEncodingError{Reason: "index word exceeds 64 bits"}
		}
	}
	var n uint64
	for _, b := range w[pad:] {
		n = n<<8 | uint64(b)
	}
	if n > uint64(^uint(0)>>1) {
		return 0, InvalidEncodingError{Reason: "index overflows a native int"}
	}
	return int(n), nil
}

// ReadBytes reads a dynamic bytes value whose head slot is at offset: a
// pointer word, resolved via decodeIndex, to a tail region holding a
// 32-byte length followed by that many bytes of payload.
func ReadBytes(buf []byte, offset int) (Bytes, error) {
	dataOffset, err := decodeIndex(buf, offset)
	if err != nil {
		return nil, err
	}
	n, err := decodeIndex(buf, dataOffset)
	if err != nil {
		return nil, err
	}
	data, err := peekBytes(buf, dataOffset+WordSize, n)
	if err != nil {
		return nil, err
	}
	return Bytes(data), nil
}

// Decode implements fieldDecoder, letting Bytes be used directly as a
// struct field.
func (b *Bytes) Decode(buf []byte, offset int) error {
	v, err := ReadBytes(buf, offset)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// HeadSize implements fieldDecoder. A dynamic bytes value's head slot is
// always a single pointer word.
func (b *Bytes) HeadSize() int { return WordSize }

// ReadString reads a dynamic string value whose head slot is at offset,
// validating that the payload is well-formed UTF-8.
func ReadString(buf []byte, offset int) (Str, error) {
	data, err := ReadBytes(buf, offset)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return Str(data), nil
}

// Decode implements fieldDecoder, letting Str be used directly as a struct
// field.
func (s *Str) Decode(buf []byte, offset int) error {
	v, err := ReadString(buf, offset)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// HeadSize implements fieldDecoder. A dynamic string value's head slot is
// always a single pointer word.
func (s *Str) HeadSize() int { return WordSize }
