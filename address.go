package abi

// Address is a 20-byte Ethereum account address. ReadAddress and
// ReadAddressStrict return one borrowed directly from the input buffer,
// whose lifetime is tied to that buffer; the EventLog topic accessors
// return a copy.
type Address []byte

// ReadAddress reads the word at offset as an address: the low 20 bytes of
// the word. The leading 12 bytes are padding and are not validated; a
// permissive encoder is free to leave them as anything.
func ReadAddress(buf []byte, offset int) (Address, error) {
	const pad = WordSize - 20
	if _, err := PeekWord(buf, offset); err != nil {
		return nil, err
	}
	addr, err := peekBytes(buf, offset+pad, 20)
	if err != nil {
		return nil, err
	}
	return Address(addr), nil
}

// ReadAddressStrict behaves like ReadAddress but additionally requires the
// word's leading 12 bytes to be zero. It is the optional strict mode
// callers can opt into when they want to reject addresses with dirty high
// bytes instead of silently discarding them.
func ReadAddressStrict(buf []byte, offset int) (Address, error) {
	w, err := PeekWord(buf, offset)
	if err != nil {
		return nil, err
	}
	const pad = WordSize - 20
	for _, b := range w[:pad] {
		if b != 0 {
			return nil, InvalidEncodingError{Reason: "address word has non-zero high bytes"}
		}
	}
	addr, err := peekBytes(buf, offset+pad, 20)
	if err != nil {
		return nil, err
	}
	return Address(addr), nil
}

// Decode implements fieldDecoder, letting Address be used directly as a
// struct field.
func (a *Address) Decode(buf []byte, offset int) error {
	v, err := ReadAddress(buf, offset)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// HeadSize implements fieldDecoder. An address always occupies one head
// slot.
func (a *Address) HeadSize() int { return WordSize }

// IsZero reports whether a is the zero address.
func (a Address) IsZero() bool {
	for _, b := range a {
		if b != 0 {
			return false
		}
	}
	return true
}

// String renders a as a 0x-prefixed hex string.
func (a Address) String() string { return hexString(a) }
