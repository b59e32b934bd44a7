package abi

// FixedBytes is a borrowed view over an ABI bytesN value, 1 <= N <= 32. It
// is a zero-copy slice of the input buffer; its length is the N the caller
// requested rather than the full word.
type FixedBytes []byte

// ReadFixedBytes reads the word at offset as a bytesN value. n must be in
// [1, 32]. The word's trailing 32-n bytes, which carry no data, must be
// zero.
func ReadFixedBytes(buf []byte, offset, n int) (FixedBytes, error) {
	if n < 1 || n > WordSize {
		return nil, InvalidEncodingError{Reason: "bytesN width out of range"}
	}
	w, err := PeekWord(buf, offset)
	if err != nil {
		return nil, err
	}
	for _, b := range w[n:] {
		if b != 0 {
			return nil, InvalidEncodingError{Reason: "bytesN has non-zero padding"}
		}
	}
	data, err := peekBytes(buf, offset, n)
	if err != nil {
		return nil, err
	}
	return FixedBytes(data), nil
}

// String renders fb as a 0x-prefixed hex string.
func (fb FixedBytes) String() string { return hexString(fb) }

// ReadBytes1 reads a bytes1 value at offset.
func ReadBytes1(buf []byte, offset int) (FixedBytes, error) { return ReadFixedBytes(buf, offset, 1) }

// ReadBytes2 reads a bytes2 value at offset.
func ReadBytes2(buf []byte, offset int) (FixedBytes, error) { return ReadFixedBytes(buf, offset, 2) }

// ReadBytes4 reads a bytes4 value at offset.
func ReadBytes4(buf []byte, offset int) (FixedBytes, error) { return ReadFixedBytes(buf, offset, 4) }

// ReadBytes8 reads a bytes8 value at offset.
func ReadBytes8(buf []byte, offset int) (FixedBytes, error) { return ReadFixedBytes(buf, offset, 8) }

// ReadBytes16 reads a bytes16 value at offset.
func ReadBytes16(buf []byte, offset int) (FixedBytes, error) {
	return ReadFixedBytes(buf, offset, 16)
}

// ReadBytes20 reads a bytes20 value at offset.
func ReadBytes20(buf []byte, offset int) (FixedBytes, error) {
	return ReadFixedBytes(buf, offset, 20)
}

// ReadBytes32 reads a bytes32 value at offset.
func ReadBytes32(buf []byte, offset int) (FixedBytes, error) {
	return ReadFixedBytes(buf, offset, 32)
}

// Bytes32 is a fixed 32-byte ABI value (bytes32), the only bytesN width
// common enough in practice to warrant its own named struct-field type; for
// every other width use FixedBytes via ReadFixedBytes directly.
type Bytes32 [32]byte

// Decode implements fieldDecoder, letting Bytes32 be used directly as a
// struct field.
func (b *Bytes32) Decode(buf []byte, offset int) error {
	v, err := ReadBytes32(buf, offset)
	if err != nil {
		return err
	}
	copy(b[:], v)
	return nil
}

// HeadSize implements fieldDecoder. A bytes32 value always occupies one
// head slot.
func (b *Bytes32) HeadSize() int { return WordSize }

// String renders b as a 0x-prefixed hex string.
func (b Bytes32) String() string { return hexString(b[:]) }
