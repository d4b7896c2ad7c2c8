package countdigits

import (
	"golang.org/x/exp/constraints"
)

// Counter is implemented by every integer kind the package supports: Value
// and NonZero for the built-in integer types, and Uint128, Int128,
// NonZeroUint128 and NonZeroInt128 for 128-bit integers.
//
// Narrow counts are uint32 for use with shifts and bit widths. Wide counts
// are uint for use as buffer sizes and padding widths.
type Counter interface {
	CountBits() uint32
	CountOctalDigits() uint32
	CountHexDigits() uint32
	CountDigits() uint
	// CountDigitsRadix panics if radix is 0 or 1.
	CountDigitsRadix(radix uint64) uint
	CheckedCountDigitsRadix(radix uint64) (uint, bool)
}

var (
	_ Counter = Value[int]{}
	_ Counter = NonZero[int]{}
	_ Counter = Uint128{}
	_ Counter = Int128{}
	_ Counter = NonZeroUint128{}
	_ Counter = NonZeroInt128{}
)

// Value adapts a built-in integer to Counter.
type Value[T constraints.Integer] struct {
	v T
}

func Of[T constraints.Integer](v T) Value[T] {
	return Value[T]{v: v}
}

func (x Value[T]) Get() T {
	return x.v
}

func (x Value[T]) CountBits() uint32 {
	return CountBits(x.v)
}

func (x Value[T]) CountOctalDigits() uint32 {
	return CountOctalDigits(x.v)
}

func (x Value[T]) CountHexDigits() uint32 {
	return CountHexDigits(x.v)
}

func (x Value[T]) CountDigits() uint {
	return CountDigits(x.v)
}

func (x Value[T]) CountDigitsRadix(radix uint64) uint {
	return CountDigitsRadix(x.v, radix)
}

func (x Value[T]) CheckedCountDigitsRadix(radix uint64) (uint, bool) {
	return CheckedCountDigitsRadix(x.v, radix)
}
