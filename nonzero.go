package countdigits

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// NonZero holds a built-in integer that is known not to be zero.
//
// Only NewNonZero and MustNonZero produce valid values; the counting methods
// have no zero branch, so the counts of a zero NonZero are meaningless.
type NonZero[T constraints.Integer] struct {
	v T
}

// NewNonZero returns v wrapped as a NonZero, or false if v is zero.
func NewNonZero[T constraints.Integer](v T) (NonZero[T], bool) {
	if v == 0 {
		return NonZero[T]{}, false
	}
	return NonZero[T]{v: v}, true
}

// MustNonZero is like NewNonZero but panics with an error wrapping ErrZero
// when v is zero.
func MustNonZero[T constraints.Integer](v T) NonZero[T] {
	n, ok := NewNonZero(v)
	if !ok {
		panic(errors.Wrapf(ErrZero, "new %T", v))
	}
	return n
}

// Get returns the wrapped value.
func (n NonZero[T]) Get() T {
	return n.v
}

func (n NonZero[T]) CountBits() uint32 {
	return operandOf(n.v).countBits()
}

func (n NonZero[T]) CountOctalDigits() uint32 {
	return operandOf(n.v).countOctalDigits()
}

func (n NonZero[T]) CountHexDigits() uint32 {
	return operandOf(n.v).countHexDigits()
}

func (n NonZero[T]) CountDigits() uint {
	return operandOf(n.v).countDigits()
}

func (n NonZero[T]) CountDigitsRadix(radix uint64) uint {
	mustRadix(radix)
	return operandOf(n.v).countRadix(radix)
}

func (n NonZero[T]) CheckedCountDigitsRadix(radix uint64) (uint, bool) {
	if !validRadix(radix) {
		return 0, false
	}
	return operandOf(n.v).countRadix(radix), true
}
