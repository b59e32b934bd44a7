package abi

import "golang.org/x/exp/constraints"

// WordSize is the width in bytes of a single ABI word.
const WordSize = 32

// Roundup rounds n up to the nearest multiple of align, which must be a
// power of two.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }

// PaddedLen returns the number of bytes a payload of length n occupies once
// padded out to a whole number of ABI words.
func PaddedLen(n int) int { return Roundup(n, WordSize) }
