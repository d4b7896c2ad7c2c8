package countdigits

import (
	"iter"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Boundaries yields, for each digit count n of the non-negative values of T in
// radix, the largest value that still has n digits: radix-1, radix²-1, ...
// ending with the maximum of T. It yields nothing if radix is 0 or 1.
//
// These are the values where a buffer sized with CountDigitsRadix has to grow.
func Boundaries[T constraints.Integer](radix uint64) iter.Seq2[uint, T] {
	return func(yield func(uint, T) bool) {
		if !validRadix(radix) {
			return
		}
		limit := maxOf[T]()
		n := uint(1)
		for p := radix; p-1 < limit; {
			if !yield(n, T(p-1)) {
				return
			}
			n++
			hi, lo := bits.Mul64(p, radix)
			if hi != 0 {
				break
			}
			p = lo
		}
		yield(n, T(limit))
	}
}
