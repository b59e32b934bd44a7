package abi

import "encoding/binary"

// readUnsignedNarrow reads the word at offset, validates that its leading
// 32-width pad bytes are all zero, and returns a fresh copy of the trailing
// width bytes (the significant portion).
func readUnsignedNarrow(buf []byte, offset, width int) ([]byte, error) {
	w, err := PeekWord(buf, offset)
	if err != nil {
		return nil, err
	}
	pad := WordSize - width
	for _, b := range w[:pad] {
		if b != 0 {
			return nil, InvalidEncodingError{Reason: "unsigned value has non-zero padding"}
		}
	}
	out := make([]byte, width)
	copy(out, w[pad:])
	return out, nil
}

// readSignedNarrow reads the word at offset, validates that its leading
// 32-width pad bytes are a consistent sign extension of the trailing width
// bytes, and returns the trailing width bytes.
func readSignedNarrow(buf []byte, offset, width int) ([]byte, error) {
	w, err := PeekWord(buf, offset)
	if err != nil {
		return nil, err
	}
	pad := WordSize - width
	fill := byte(0x00)
	if w[pad]&0x80 != 0 {
		fill = 0xFF
	}
	for _, b := range w[:pad] {
		if b != fill {
			return nil, InvalidEncodingError{Reason: "signed value has inconsistent sign extension"}
		}
	}
	out := make([]byte, width)
	copy(out, w[pad:])
	return out, nil
}

// ReadUint8 reads a uint8 value at offset.
func ReadUint8(buf []byte, offset int) (uint8, error) {
	b, err := readUnsignedNarrow(buf, offset, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 reads a uint16 value at offset.
func ReadUint16(buf []byte, offset int) (uint16, error) {
	b, err := readUnsignedNarrow(buf, offset, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadUint32 reads a uint32 value at offset.
func ReadUint32(buf []byte, offset int) (uint32, error) {
	b, err := readUnsignedNarrow(buf, offset, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadUint64 reads a uint64 value at offset.
func ReadUint64(buf []byte, offset int) (uint64, error) {
	b, err := readUnsignedNarrow(buf, offset, 8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadUint128 reads a uint128 value at offset, surfaced as its big-endian
// byte representation since this package performs no bignum arithmetic.
func ReadUint128(buf []byte, offset int) ([]byte, error) {
	return readUnsignedNarrow(buf, offset, 16)
}

// ReadInt8 reads an int8 value at offset.
func ReadInt8(buf []byte, offset int) (int8, error) {
	b, err := readSignedNarrow(buf, offset, 1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

// ReadInt16 reads an int16 value at offset.
func ReadInt16(buf []byte, offset int) (int16, error) {
	b, err := readSignedNarrow(buf, offset, 2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b)), nil
}

// ReadInt32 reads an int32 value at offset.
func ReadInt32(buf []byte, offset int) (int32, error) {
	b, err := readSignedNarrow(buf, offset, 4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

// ReadInt64 reads an int64 value at offset.
func ReadInt64(buf []byte, offset int) (int64, error) {
	b, err := readSignedNarrow(buf, offset, 8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// ReadInt128 reads an int128 value at offset, surfaced as its big-endian
// two's-complement byte representation since this package performs no
// bignum arithmetic.
func ReadInt128(buf []byte, offset int) ([]byte, error) {
	return readSignedNarrow(buf, offset, 16)
}

// ReadBool reads a bool value at offset. Bytes 0..30 of the word must be
// zero and byte 31 must be 0 or 1.
func ReadBool(buf []byte, offset int) (bool, error) {
	w, err := PeekWord(buf, offset)
	if err != nil {
		return false, err
	}
	for _, b := range w[:WordSize-1] {
		if b != 0 {
			return false, InvalidEncodingError{Reason: "bool word has non-zero high bytes"}
		}
	}
	switch w[WordSize-1] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, InvalidEncodingError{Reason: "bool byte is not 0 or 1"}
	}
}
