package countdigits

import (
	"math/bits"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// Log2 calculates the base-2 logarithm of a given positive integer `x`.
// If x is not greater than 0, it returns 0.
func Log2[I constraints.Integer](x I) int {
	if x <= 0 {
		return 0
	}
	return bits.Len64(uint64(x)) - 1
}

// pow10[i] is 10^i for every power of ten below 2^128.
var pow10 = func() (table [39]uint128.Uint128) {
	table[0] = uint128.From64(1)
	for i := 1; i < len(table); i++ {
		table[i] = table[i-1].Mul64(10)
	}
	return table
}()

// bitLen returns the number of bits needed to represent m, 0 for m == 0.
func bitLen(m uint128.Uint128) uint {
	if m.Hi == 0 {
		return uint(bits.Len64(m.Lo))
	}
	return uint(m.Len())
}

// ilog10 returns floor(log10(m)) for m >= 1.
//
// bitLen*1233>>12 approximates bitLen*log10(2) from below, which leaves the
// answer as either that estimate or one less.
// See https://graphics.stanford.edu/~seander/bithacks.html#IntegerLog10
func ilog10(m uint128.Uint128) uint {
	r := (bitLen(m) * 1233) >> 12
	if m.Cmp(pow10[r]) < 0 {
		return r - 1
	}
	return r
}

// ilogRadix returns floor(log_radix(m)) for m >= 1 and radix >= 2.
func ilogRadix(m uint128.Uint128, radix uint64) uint {
	if radix&(radix-1) == 0 {
		return (bitLen(m) - 1) / uint(Log2(radix))
	}
	return ilogRadixIterative(m, radix)
}

// ilogRadixIterative is ilogRadix by repeated division, for any radix >= 2.
func ilogRadixIterative(m uint128.Uint128, radix uint64) (n uint) {
	// A nonzero high word means m > radix.
	for m.Hi != 0 {
		m, _ = m.QuoRem64(radix)
		n++
	}
	for lo := m.Lo; lo >= radix; lo /= radix {
		n++
	}
	return n
}
