package abi

// Named wrapper types around the scalar Read* functions in narrow.go, so
// that each width can implement fieldDecoder and be used directly as a
// struct field by the structural composer. The Read* functions remain the
// lower-level API for callers decoding outside of a struct.

// Uint8 is a uint8 ABI value.
type Uint8 uint8

func (v *Uint8) Decode(buf []byte, offset int) error {
	x, err := ReadUint8(buf, offset)
	if err != nil {
		return err
	}
	*v = Uint8(x)
	return nil
}

func (v *Uint8) HeadSize() int { return WordSize }

// Uint16 is a uint16 ABI value.
type Uint16 uint16

func (v *Uint16) Decode(buf []byte, offset int) error {
	x, err := ReadUint16(buf, offset)
	if err != nil {
		return err
	}
	*v = Uint16(x)
	return nil
}

func (v *Uint16) HeadSize() int { return WordSize }

// Uint32 is a uint32 ABI value.
type Uint32 uint32

func (v *Uint32) Decode(buf []byte, offset int) error {
	x, err := ReadUint32(buf, offset)
	if err != nil {
		return err
	}
	*v = Uint32(x)
	return nil
}

func (v *Uint32) HeadSize() int { return WordSize }

// Uint64 is a uint64 ABI value.
type Uint64 uint64

func (v *Uint64) Decode(buf []byte, offset int) error {
	x, err := ReadUint64(buf, offset)
	if err != nil {
		return err
	}
	*v = Uint64(x)
	return nil
}

func (v *Uint64) HeadSize() int { return WordSize }

// Uint128 is a uint128 ABI value, surfaced as its big-endian byte
// representation since this package performs no bignum arithmetic.
type Uint128 []byte

func (v *Uint128) Decode(buf []byte, offset int) error {
	x, err := ReadUint128(buf, offset)
	if err != nil {
		return err
	}
	*v = x
	return nil
}

func (v *Uint128) HeadSize() int { return WordSize }

// Int8 is an int8 ABI value.
type Int8 int8

func (v *Int8) Decode(buf []byte, offset int) error {
	x, err := ReadInt8(buf, offset)
	if err != nil {
		return err
	}
	*v = Int8(x)
	return nil
}

func (v *Int8) HeadSize() int { return WordSize }

// Int16 is an int16 ABI value.
type Int16 int16

func (v *Int16) Decode(buf []byte, offset int) error {
	x, err := ReadInt16(buf, offset)
	if err != nil {
		return err
	}
	*v = Int16(x)
	return nil
}

func (v *Int16) HeadSize() int { return WordSize }

// Int32 is an int32 ABI value.
type Int32 int32

func (v *Int32) Decode(buf []byte, offset int) error {
	x, err := ReadInt32(buf, offset)
	if err != nil {
		return err
	}
	*v = Int32(x)
	return nil
}

func (v *Int32) HeadSize() int { return WordSize }

// Int64 is an int64 ABI value.
type Int64 int64

func (v *Int64) Decode(buf []byte, offset int) error {
	x, err := ReadInt64(buf, offset)
	if err != nil {
		return err
	}
	*v = Int64(x)
	return nil
}

func (v *Int64) HeadSize() int { return WordSize }

// Int128 is an int128 ABI value, surfaced as its big-endian two's-complement
// byte representation since this package performs no bignum arithmetic.
type Int128 []byte

func (v *Int128) Decode(buf []byte, offset int) error {
	x, err := ReadInt128(buf, offset)
	if err != nil {
		return err
	}
	*v = x
	return nil
}

func (v *Int128) HeadSize() int { return WordSize }

// Bool is a bool ABI value.
type Bool bool

func (v *Bool) Decode(buf []byte, offset int) error {
	x, err := ReadBool(buf, offset)
	if err != nil {
		return err
	}
	*v = Bool(x)
	return nil
}

func (v *Bool) HeadSize() int { return WordSize }
