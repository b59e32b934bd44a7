package abi

import "encoding/binary"

// SignedWord is a 32-byte ABI word known to carry a two's-complement signed
// integer. It is a distinct type from Word so that signed-only accessors
// like IsNegative cannot be called on a word of unknown signedness by
// accident.
type SignedWord [WordSize]byte

// ReadUint256 reads the word at offset with no padding validation: every
// one of its 32 bytes is significant to a uint256, so there is no padding
// to check.
func ReadUint256(buf []byte, offset int) (Word, error) {
	return PeekWord(buf, offset)
}

// ReadInt256 reads the word at offset as a signed 256-bit integer. As with
// ReadUint256, all 32 bytes are significant and no padding validation
// applies.
func ReadInt256(buf []byte, offset int) (SignedWord, error) {
	w, err := PeekWord(buf, offset)
	if err != nil {
		return SignedWord{}, err
	}
	return SignedWord(w), nil
}

// Decode implements fieldDecoder, letting Word be used directly as a
// struct field for a uint256.
func (w *Word) Decode(buf []byte, offset int) error {
	v, err := ReadUint256(buf, offset)
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// HeadSize implements fieldDecoder. A word always occupies one head slot.
func (w *Word) HeadSize() int { return WordSize }

// IsZero reports whether w is the all-zero word.
func (w Word) IsZero() bool {
	for _, b := range w {
		if b != 0 {
			return false
		}
	}
	return true
}

// AsBytes returns w as a zero-copy 32-byte slice borrowed from w itself.
func (w Word) AsBytes() []byte { return w[:] }

// ToBytes returns the big-endian byte representation of w as a fresh slice.
func (w Word) ToBytes() []byte {
	out := make([]byte, WordSize)
	copy(out, w[:])
	return out
}

// String renders w as a 0x-prefixed hex string.
func (w Word) String() string { return hexString(w[:]) }

// ToUint64 reinterprets w as a uint64, succeeding only if the upper 24
// bytes are all zero.
func (w Word) ToUint64() (uint64, bool) {
	for _, b := range w[:WordSize-8] {
		if b != 0 {
			return 0, false
		}
	}
	return binary.BigEndian.Uint64(w[WordSize-8:]), true
}

// ToUint128 reinterprets w as a 128-bit unsigned integer, returned as its
// big-endian byte representation, succeeding only if the upper 16 bytes are
// all zero. The result is surfaced as bytes rather than a numeric type
// because this package performs no bignum arithmetic.
func (w Word) ToUint128() ([]byte, bool) {
	for _, b := range w[:WordSize-16] {
		if b != 0 {
			return nil, false
		}
	}
	out := make([]byte, 16)
	copy(out, w[WordSize-16:])
	return out, true
}

// Decode implements fieldDecoder, letting SignedWord be used directly as a
// struct field for an int256.
func (sw *SignedWord) Decode(buf []byte, offset int) error {
	v, err := ReadInt256(buf, offset)
	if err != nil {
		return err
	}
	*sw = v
	return nil
}

// HeadSize implements fieldDecoder. A word always occupies one head slot.
func (sw *SignedWord) HeadSize() int { return WordSize }

// IsZero reports whether sw is the all-zero word.
func (sw SignedWord) IsZero() bool { return Word(sw).IsZero() }

// AsBytes returns sw as a zero-copy 32-byte slice borrowed from sw itself.
func (sw SignedWord) AsBytes() []byte { return sw[:] }

// ToBytes returns the big-endian byte representation of sw as a fresh
// slice.
func (sw SignedWord) ToBytes() []byte { return Word(sw).ToBytes() }

// String renders sw as a 0x-prefixed hex string.
func (sw SignedWord) String() string { return hexString(sw[:]) }

// IsNegative reports whether sw's sign bit is set.
func (sw SignedWord) IsNegative() bool { return sw[0]&0x80 != 0 }

// ToInt64 reinterprets sw as an int64, succeeding only if the upper 24
// bytes are a consistent sign extension of the lower 8.
func (sw SignedWord) ToInt64() (int64, bool) {
	fill := byte(0x00)
	if sw[WordSize-8]&0x80 != 0 {
		fill = 0xFF
	}
	for _, b := range sw[:WordSize-8] {
		if b != fill {
			return 0, false
		}
	}
	return int64(binary.BigEndian.Uint64(sw[WordSize-8:])), true
}

// ToInt128 reinterprets sw as a 128-bit signed integer, returned as its
// big-endian two's-complement byte representation, succeeding only if the
// upper 16 bytes are a consistent sign extension of the lower 16. As with
// ToUint128 the result is surfaced as bytes, not a numeric type.
func (sw SignedWord) ToInt128() ([]byte, bool) {
	fill := byte(0x00)
	if sw[WordSize-16]&0x80 != 0 {
		fill = 0xFF
	}
	for _, b := range sw[:WordSize-16] {
		if b != fill {
			return nil, false
		}
	}
	out := make([]byte, 16)
	copy(out, sw[WordSize-16:])
	return out, true
}

const hexDigits = "0123456789abcdef"

// hexString renders b as a 0x-prefixed lowercase hex string without pulling
// in encoding/hex for a one-shot conversion.
func hexString(b []byte) string {
	out := make([]byte, 2+2*len(b))
	out[0], out[1] = '0', 'x'
	for i, c := range b {
		out[2+2*i] = hexDigits[c>>4]
		out[2+2*i+1] = hexDigits[c&0x0f]
	}
	return string(out)
}
