package countdigits

import (
	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// operand is the form every integer kind is reduced to before counting.
// Both fields are nonzero; zero is handled by the callers that can see it.
type operand struct {
	// raw is the two's-complement bit pattern read as unsigned, truncated to
	// the width of the source type. Every base other than 10 counts it.
	raw uint128.Uint128
	// abs is the magnitude. Base 10 counts it, so the sign is never a digit.
	abs uint128.Uint128
}

func operandOf[T constraints.Integer](v T) operand {
	return operand{raw: rawBits(v), abs: absBits(v)}
}

func (o operand) countBits() uint32 {
	return uint32(bitLen(o.raw))
}

// countPow2 counts digits in radix 2^k: ceil(bits / k).
func (o operand) countPow2(k uint) uint32 {
	return uint32((bitLen(o.raw) + k - 1) / k)
}

func (o operand) countOctalDigits() uint32 {
	return o.countPow2(3)
}

func (o operand) countHexDigits() uint32 {
	return o.countPow2(4)
}

func (o operand) countDigits() uint {
	return ilog10(o.abs) + 1
}

// countRadix expects a radix that already passed validRadix.
func (o operand) countRadix(radix uint64) uint {
	if radix == 10 {
		return o.countDigits()
	}
	return ilogRadix(o.raw, radix) + 1
}

// CountBits returns the number of binary digits in v. A negative value is
// counted by its two's-complement pattern, so it always fills the width of T.
func CountBits[T constraints.Integer](v T) uint32 {
	if v == 0 {
		return 1
	}
	return operandOf(v).countBits()
}

// CountOctalDigits returns the number of octal digits in v, counting negative
// values by their two's-complement pattern like CountBits.
func CountOctalDigits[T constraints.Integer](v T) uint32 {
	if v == 0 {
		return 1
	}
	return operandOf(v).countOctalDigits()
}

// CountHexDigits returns the number of hexadecimal digits in v, counting
// negative values by their two's-complement pattern like CountBits.
func CountHexDigits[T constraints.Integer](v T) uint32 {
	if v == 0 {
		return 1
	}
	return operandOf(v).countHexDigits()
}

// CountDigits returns the number of decimal digits in v. The sign of a
// negative value is not a digit, so CountDigits(v) == CountDigits(-v).
func CountDigits[T constraints.Integer](v T) uint {
	if v == 0 {
		return 1
	}
	return operandOf(v).countDigits()
}

// CountDigitsRadix returns the number of digits in v written in radix.
// Radix 10 behaves like CountDigits; every other radix counts negative values
// by their two's-complement pattern.
//
// It panics with an error wrapping ErrInvalidRadix if radix is 0 or 1.
func CountDigitsRadix[T constraints.Integer, R constraints.Unsigned](v T, radix R) uint {
	mustRadix(uint64(radix))
	if v == 0 {
		return 1
	}
	return operandOf(v).countRadix(uint64(radix))
}

// CheckedCountDigitsRadix is CountDigitsRadix, except that it reports false
// instead of panicking when radix is 0 or 1.
func CheckedCountDigitsRadix[T constraints.Integer, R constraints.Unsigned](v T, radix R) (uint, bool) {
	if !validRadix(uint64(radix)) {
		return 0, false
	}
	if v == 0 {
		return 1, true
	}
	return operandOf(v).countRadix(uint64(radix)), true
}
