// Package abi decodes the Ethereum Contract ABI wire format: calldata,
// return data, and event payloads.
//
// Bytes, FixedBytes, Array, and the Address returned by ReadAddress borrow
// from the input buffer rather than copying it, and stay valid only as
// long as the buffer they were decoded from does. Word, SignedWord,
// Bytes32, Selector, Str, the integer values, and the 128-bit byte slices
// are copies. The package does no signature or selector validation of its
// own — callers that need that layer on top build it from ReadSelector and
// Decode.
//
// Struct types decode through the generic Decode function, which walks a
// type's exported fields by reflection once per type and caches the
// resulting layout:
//
//	type Transfer struct {
//		To     abi.Address
//		Amount abi.Word
//	}
//
//	t, err := abi.Decode[Transfer](buf, offset)
package abi
