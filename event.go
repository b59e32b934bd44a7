package abi

// EventLog is a decoded Ethereum log entry: a fixed set of indexed topics
// plus an opaque data payload encoded the same way as calldata. Topics are
// always exactly one word wide regardless of the Solidity type that
// produced them, since indexing hashes dynamic values down to 32 bytes.
type EventLog struct {
	Topics []Word
	Data   []byte
}

// Topic returns the raw word at topic index i.
func (e EventLog) Topic(i int) (Word, error) {
	if i < 0 || i >= len(e.Topics) {
		return Word{}, OutOfBoundsError{Requested: i, Available: len(e.Topics)}
	}
	return e.Topics[i], nil
}

// TopicAsWord returns topic i as an unsigned 256-bit word. It is an alias
// for Topic kept for symmetry with the other TopicAs* accessors.
func (e EventLog) TopicAsWord(i int) (Word, error) { return e.Topic(i) }

// TopicAsSignedWord reinterprets topic i as a signed 256-bit word.
func (e EventLog) TopicAsSignedWord(i int) (SignedWord, error) {
	w, err := e.Topic(i)
	if err != nil {
		return SignedWord{}, err
	}
	return SignedWord(w), nil
}

// TopicAsAddress reinterprets topic i as an address: the low 20 bytes of
// the topic word. The leading 12 bytes are padding and are not validated.
func (e EventLog) TopicAsAddress(i int) (Address, error) {
	w, err := e.Topic(i)
	if err != nil {
		return nil, err
	}
	const pad = WordSize - 20
	out := make([]byte, 20)
	copy(out, w[pad:])
	return Address(out), nil
}

// TopicAsAddressStrict behaves like TopicAsAddress but additionally
// requires the topic word's leading 12 bytes to be zero.
func (e EventLog) TopicAsAddressStrict(i int) (Address, error) {
	w, err := e.Topic(i)
	if err != nil {
		return nil, err
	}
	const pad = WordSize - 20
	for _, b := range w[:pad] {
		if b != 0 {
			return nil, InvalidEncodingError{Reason: "address topic has non-zero high bytes"}
		}
	}
	out := make([]byte, 20)
	copy(out, w[pad:])
	return Address(out), nil
}

// TopicAsBool reinterprets topic i as a bool, validating that bytes 0..30
// are zero and byte 31 is 0 or 1.
func (e EventLog) TopicAsBool(i int) (bool, error) {
	w, err := e.Topic(i)
	if err != nil {
		return false, err
	}
	for _, b := range w[:WordSize-1] {
		if b != 0 {
			return false, InvalidEncodingError{Reason: "bool topic has non-zero high bytes"}
		}
	}
	switch w[WordSize-1] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, InvalidEncodingError{Reason: "bool topic byte is not 0 or 1"}
	}
}

// DecodeData decodes the log's Data payload as a struct of type T, using
// the same structural composer as calldata and return-data decoding.
func DecodeData[T any](e EventLog) (T, error) {
	return Decode[T](e.Data, 0)
}
