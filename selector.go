package abi

// SelectorSize is the width in bytes of a function selector.
const SelectorSize = 4

// Selector is the 4-byte function selector prefixing calldata.
type Selector [SelectorSize]byte

// String renders s as a 0x-prefixed hex string.
func (s Selector) String() string { return hexString(s[:]) }

// ReadSelector reads the 4-byte selector at the start of buf.
func ReadSelector(buf []byte) (Selector, error) {
	b, err := peekBytes(buf, 0, SelectorSize)
	if err != nil {
		return Selector{}, err
	}
	var s Selector
	copy(s[:], b)
	return s, nil
}

// SkipSelector returns the portion of buf following the 4-byte selector,
// the frame that the argument decoders operate on.
func SkipSelector(buf []byte) ([]byte, error) {
	if _, err := peekBytes(buf, 0, SelectorSize); err != nil {
		return nil, err
	}
	return buf[SelectorSize:], nil
}
