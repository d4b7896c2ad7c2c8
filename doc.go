// Package countdigits counts the digits of integers in a number base without
// formatting them, for sizing buffers and padding ahead of time.
//
// Every Go integer type is supported through generic functions, plus 128-bit
// integers and "nonzero" wrappers through the Counter interface:
//
//	countdigits.CountBits(0b1111000000001101)         // 16
//	countdigits.CountOctalDigits(0o170015)            // 6
//	countdigits.CountDigits(61453)                    // 5
//	countdigits.CountHexDigits(0xF00D)                // 4
//	countdigits.CountDigitsRadix(61453, uint(36))     // 4
//	countdigits.MustNonZero(int8(-128)).CountDigits() // 3
//
// Decimal counts ignore the sign: a negative number has as many decimal digits
// as its positive counterpart. In every other base a negative number is
// counted by its two's-complement bit pattern, the way fmt formats an unsigned
// conversion of it, so int32(-0xBAD) has 32 bits and 8 hex digits while
// int32(0xBAD) has 12 bits and 3 hex digits.
//
// CountDigitsRadix panics when the radix is 0 or 1; CheckedCountDigitsRadix
// reports false instead.
package countdigits
