package countdigits

import (
	"unsafe"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// widthOf returns the number of bits in T.
func widthOf[T constraints.Integer]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

func widthMask[T constraints.Integer]() uint64 {
	return ^uint64(0) >> (64 - widthOf[T]())
}

func isSigned[T constraints.Integer]() bool {
	return ^T(0) < 0
}

// maxOf returns the largest value of T as a uint64.
func maxOf[T constraints.Integer]() uint64 {
	limit := widthMask[T]()
	if isSigned[T]() {
		limit >>= 1
	}
	return limit
}

// rawBits returns v's two's-complement bit pattern truncated to the width of T.
func rawBits[T constraints.Integer](v T) uint128.Uint128 {
	return uint128.From64(uint64(v) & widthMask[T]())
}

// absBits returns |v|. The negation happens after widening to uint64, where
// the minimum of every signed type still has a representable magnitude.
func absBits[T constraints.Integer](v T) uint128.Uint128 {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return uint128.From64(u)
}
