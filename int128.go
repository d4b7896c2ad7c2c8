package countdigits

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
	"lukechampine.com/uint128"
)

var (
	// MaxUint128 is the largest Uint128.
	MaxUint128 = Uint128{v: uint128.Max}
	// MinInt128 is the most negative Int128.
	MinInt128 = Int128{bits: uint128.New(0, 1<<63)}
	// MaxInt128 is the largest Int128.
	MaxInt128 = Int128{bits: uint128.New(math.MaxUint64, math.MaxInt64)}

	two128 = new(big.Int).Lsh(big.NewInt(1), 128)
)

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	v uint128.Uint128
}

func U128(v uint128.Uint128) Uint128 {
	return Uint128{v: v}
}

func U128From64(v uint64) Uint128 {
	return Uint128{v: uint128.From64(v)}
}

func U128FromRaw(hi, lo uint64) Uint128 {
	return Uint128{v: uint128.New(lo, hi)}
}

// ParseUint128 parses s with the base prefixes of Go literals (0b, 0o, 0x,
// or none for decimal).
func ParseUint128(s string) (Uint128, error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return Uint128{}, errors.Wrapf(ErrSyntax, "parse uint128 %q", s)
	}
	if b.Sign() < 0 || b.BitLen() > 128 {
		return Uint128{}, errors.Wrapf(ErrRange, "parse uint128 %q", s)
	}
	return Uint128{v: uint128.FromBig(b)}, nil
}

func (u Uint128) Get() uint128.Uint128 { return u.v }
func (u Uint128) IsZero() bool          { return u.v.IsZero() }
func (u Uint128) String() string        { return u.v.String() }

func (u Uint128) operand() operand {
	return operand{raw: u.v, abs: u.v}
}

func (u Uint128) CountBits() uint32 {
	if u.IsZero() {
		return 1
	}
	return u.operand().countBits()
}

func (u Uint128) CountOctalDigits() uint32 {
	if u.IsZero() {
		return 1
	}
	return u.operand().countOctalDigits()
}

func (u Uint128) CountHexDigits() uint32 {
	if u.IsZero() {
		return 1
	}
	return u.operand().countHexDigits()
}

func (u Uint128) CountDigits() uint {
	if u.IsZero() {
		return 1
	}
	return u.operand().countDigits()
}

func (u Uint128) CountDigitsRadix(radix uint64) uint {
	mustRadix(radix)
	if u.IsZero() {
		return 1
	}
	return u.operand().countRadix(radix)
}

func (u Uint128) CheckedCountDigitsRadix(radix uint64) (uint, bool) {
	if !validRadix(radix) {
		return 0, false
	}
	if u.IsZero() {
		return 1, true
	}
	return u.operand().countRadix(radix), true
}

// Int128 is a signed 128-bit integer held in two's-complement form.
type Int128 struct {
	bits uint128.Uint128
}

// I128FromRaw builds an Int128 from the high and low words of its
// two's-complement pattern.
func I128FromRaw(hi, lo uint64) Int128 {
	return Int128{bits: uint128.New(lo, hi)}
}

func I128From64(v int64) Int128 {
	var hi uint64
	if v < 0 {
		hi = math.MaxUint64
	}
	return Int128{bits: uint128.New(uint64(v), hi)}
}

// ParseInt128 parses s with an optional sign and the base prefixes of Go
// literals.
func ParseInt128(s string) (Int128, error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return Int128{}, errors.Wrapf(ErrSyntax, "parse int128 %q", s)
	}
	if b.Cmp(MinInt128.Big()) < 0 || b.Cmp(MaxInt128.Big()) > 0 {
		return Int128{}, errors.Wrapf(ErrRange, "parse int128 %q", s)
	}
	if b.Sign() < 0 {
		b.Add(b, two128)
	}
	return Int128{bits: uint128.FromBig(b)}, nil
}

// Raw returns the high and low words of the two's-complement pattern.
func (i Int128) Raw() (hi, lo uint64) {
	return i.bits.Hi, i.bits.Lo
}

func (i Int128) IsZero() bool {
	return i.bits.IsZero()
}

// Sign returns -1, 0 or +1.
func (i Int128) Sign() int {
	switch {
	case i.bits.Hi>>63 == 1:
		return -1
	case i.bits.IsZero():
		return 0
	default:
		return 1
	}
}

// Neg returns -i. MinInt128.Neg() wraps around to MinInt128.
func (i Int128) Neg() Int128 {
	return Int128{bits: uint128.Uint128{}.SubWrap(i.bits)}
}

func (i Int128) Big() *big.Int {
	b := i.bits.Big()
	if i.Sign() < 0 {
		b.Sub(b, two128)
	}
	return b
}

func (i Int128) String() string {
	return i.Big().String()
}

// abs is computed on the unsigned pattern, where |MinInt128| = 2^127 fits.
func (i Int128) abs() uint128.Uint128 {
	if i.Sign() < 0 {
		return i.Neg().bits
	}
	return i.bits
}

func (i Int128) operand() operand {
	return operand{raw: i.bits, abs: i.abs()}
}

func (i Int128) CountBits() uint32 {
	if i.IsZero() {
		return 1
	}
	return i.operand().countBits()
}

func (i Int128) CountOctalDigits() uint32 {
	if i.IsZero() {
		return 1
	}
	return i.operand().countOctalDigits()
}

func (i Int128) CountHexDigits() uint32 {
	if i.IsZero() {
		return 1
	}
	return i.operand().countHexDigits()
}

func (i Int128) CountDigits() uint {
	if i.IsZero() {
		return 1
	}
	return i.operand().countDigits()
}

func (i Int128) CountDigitsRadix(radix uint64) uint {
	mustRadix(radix)
	if i.IsZero() {
		return 1
	}
	return i.operand().countRadix(radix)
}

func (i Int128) CheckedCountDigitsRadix(radix uint64) (uint, bool) {
	if !validRadix(radix) {
		return 0, false
	}
	if i.IsZero() {
		return 1, true
	}
	return i.operand().countRadix(radix), true
}

// NonZeroUint128 holds a Uint128 that is known not to be zero. Only
// NewNonZeroUint128 produces valid values.
type NonZeroUint128 struct {
	u Uint128
}

func NewNonZeroUint128(u Uint128) (NonZeroUint128, bool) {
	if u.IsZero() {
		return NonZeroUint128{}, false
	}
	return NonZeroUint128{u: u}, true
}

func (n NonZeroUint128) Get() Uint128 { return n.u }

func (n NonZeroUint128) CountBits() uint32        { return n.u.operand().countBits() }
func (n NonZeroUint128) CountOctalDigits() uint32 { return n.u.operand().countOctalDigits() }
func (n NonZeroUint128) CountHexDigits() uint32   { return n.u.operand().countHexDigits() }
func (n NonZeroUint128) CountDigits() uint        { return n.u.operand().countDigits() }

func (n NonZeroUint128) CountDigitsRadix(radix uint64) uint {
	mustRadix(radix)
	return n.u.operand().countRadix(radix)
}

func (n NonZeroUint128) CheckedCountDigitsRadix(radix uint64) (uint, bool) {
	if !validRadix(radix) {
		return 0, false
	}
	return n.u.operand().countRadix(radix), true
}

// NonZeroInt128 holds an Int128 that is known not to be zero. Only
// NewNonZeroInt128 produces valid values.
type NonZeroInt128 struct {
	i Int128
}

func NewNonZeroInt128(i Int128) (NonZeroInt128, bool) {
	if i.IsZero() {
		return NonZeroInt128{}, false
	}
	return NonZeroInt128{i: i}, true
}

func (n NonZeroInt128) Get() Int128 { return n.i }

func (n NonZeroInt128) CountBits() uint32        { return n.i.operand().countBits() }
func (n NonZeroInt128) CountOctalDigits() uint32 { return n.i.operand().countOctalDigits() }
func (n NonZeroInt128) CountHexDigits() uint32   { return n.i.operand().countHexDigits() }
func (n NonZeroInt128) CountDigits() uint        { return n.i.operand().countDigits() }

func (n NonZeroInt128) CountDigitsRadix(radix uint64) uint {
	mustRadix(radix)
	return n.i.operand().countRadix(radix)
}

func (n NonZeroInt128) CheckedCountDigitsRadix(radix uint64) (uint, bool) {
	if !validRadix(radix) {
		return 0, false
	}
	return n.i.operand().countRadix(radix), true
}
