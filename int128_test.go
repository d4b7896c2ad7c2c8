package countdigits_test

import (
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/clickermonkey/countdigits"
)

var two128 = new(big.Int).Lsh(big.NewInt(1), 128)

// formatted128 is how many digits math/big writes for v in radix, without a
// sign; other bases than 10 see the two's-complement pattern.
func formatted128(v *big.Int, radix int) uint {
	if radix == 10 {
		return uint(len(strings.TrimPrefix(v.String(), "-")))
	}
	if v.Sign() < 0 {
		v = new(big.Int).Add(v, two128)
	}
	return uint(len(v.Text(radix)))
}

func check128(t *testing.T, c countdigits.Counter, v *big.Int) {
	t.Helper()
	assert.Equal(t, uint32(formatted128(v, 2)), c.CountBits(), "bits of %s", v)
	assert.Equal(t, uint32(formatted128(v, 8)), c.CountOctalDigits(), "octal digits of %s", v)
	assert.Equal(t, formatted128(v, 10), c.CountDigits(), "decimal digits of %s", v)
	assert.Equal(t, uint32(formatted128(v, 16)), c.CountHexDigits(), "hex digits of %s", v)
	for radix := 2; radix <= 62; radix++ {
		want := formatted128(v, radix)
		require.Equal(t, want, c.CountDigitsRadix(uint64(radix)), "radix %d digits of %s", radix, v)
		n, ok := c.CheckedCountDigitsRadix(uint64(radix))
		require.True(t, ok)
		require.Equal(t, want, n)
	}
}

func bigValues() []*big.Int {
	var values []*big.Int
	for i := 0; i < 128; i++ {
		p := new(big.Int).Lsh(big.NewInt(1), uint(i))
		values = append(values, p, new(big.Int).Sub(p, big.NewInt(1)))
	}
	p := big.NewInt(1)
	for i := 0; i <= 38; i++ {
		values = append(values, new(big.Int).Set(p), new(big.Int).Sub(p, big.NewInt(1)))
		p.Mul(p, big.NewInt(10))
	}
	return values
}

func TestUint128(t *testing.T) {
	for _, v := range bigValues() {
		u := countdigits.U128(uint128.FromBig(new(big.Int).Set(v)))
		check128(t, u, v)
		if nz, ok := countdigits.NewNonZeroUint128(u); ok {
			check128(t, nz, v)
			assert.Equal(t, u, nz.Get())
		} else {
			assert.True(t, u.IsZero())
		}
	}
	check128(t, countdigits.MaxUint128, new(big.Int).Sub(two128, big.NewInt(1)))
}

func TestInt128(t *testing.T) {
	limit := new(big.Int).Lsh(big.NewInt(1), 127)
	for _, v := range bigValues() {
		if v.Cmp(limit) >= 0 {
			continue
		}
		for _, signed := range []*big.Int{v, new(big.Int).Neg(v)} {
			i, err := countdigits.ParseInt128(signed.String())
			require.NoError(t, err)
			require.Equal(t, signed.String(), i.String())
			check128(t, i, signed)
			if nz, ok := countdigits.NewNonZeroInt128(i); ok {
				check128(t, nz, signed)
			}
		}
	}
	check128(t, countdigits.MinInt128, new(big.Int).Neg(limit))
	check128(t, countdigits.MaxInt128, new(big.Int).Sub(limit, big.NewInt(1)))
}

func TestInt128Symmetry(t *testing.T) {
	v := countdigits.I128From64(0xBAD)
	assert.Equal(t, v.CountDigits(), v.Neg().CountDigits())
	assert.NotEqual(t, v.CountBits(), v.Neg().CountBits())
	assert.NotEqual(t, v.CountHexDigits(), v.Neg().CountHexDigits())
	assert.Equal(t, uint32(128), v.Neg().CountBits())
	assert.Equal(t, countdigits.MinInt128, countdigits.MinInt128.Neg())
	assert.Equal(t, uint(39), countdigits.MinInt128.CountDigits())
}

func TestInt128From64(t *testing.T) {
	for _, v := range []int64{math.MinInt64, -1, 0, 1, math.MaxInt64} {
		i := countdigits.I128From64(v)
		assert.Equal(t, big.NewInt(v).String(), i.String())
		assert.Equal(t, countdigits.CountDigits(v), i.CountDigits())
	}
	hi, lo := countdigits.I128From64(-2).Raw()
	assert.Equal(t, uint64(math.MaxUint64), hi)
	assert.Equal(t, uint64(math.MaxUint64-1), lo)
	assert.Equal(t, countdigits.I128From64(-2), countdigits.I128FromRaw(hi, lo))
	assert.Equal(t, -1, countdigits.I128From64(-2).Sign())
	assert.Equal(t, 0, countdigits.I128From64(0).Sign())
	assert.Equal(t, 1, countdigits.I128From64(2).Sign())
}

func TestParse128(t *testing.T) {
	u, err := countdigits.ParseUint128("0xffffffffffffffffffffffffffffffff")
	require.NoError(t, err)
	assert.Equal(t, countdigits.MaxUint128, u)

	u, err = countdigits.ParseUint128("0o170015")
	require.NoError(t, err)
	assert.Equal(t, countdigits.U128From64(0o170015), u)
	assert.Equal(t, countdigits.U128FromRaw(0, 0o170015), u)

	_, err = countdigits.ParseUint128("340282366920938463463374607431768211456")
	assert.True(t, errors.Is(err, countdigits.ErrRange), "got %v", err)
	_, err = countdigits.ParseUint128("-1")
	assert.True(t, errors.Is(err, countdigits.ErrRange), "got %v", err)
	_, err = countdigits.ParseUint128("12a")
	assert.True(t, errors.Is(err, countdigits.ErrSyntax), "got %v", err)

	i, err := countdigits.ParseInt128("-170141183460469231731687303715884105728")
	require.NoError(t, err)
	assert.Equal(t, countdigits.MinInt128, i)
	i, err = countdigits.ParseInt128("0x7fffffffffffffffffffffffffffffff")
	require.NoError(t, err)
	assert.Equal(t, countdigits.MaxInt128, i)

	_, err = countdigits.ParseInt128("170141183460469231731687303715884105728")
	assert.True(t, errors.Is(err, countdigits.ErrRange), "got %v", err)
	_, err = countdigits.ParseInt128("-170141183460469231731687303715884105729")
	assert.True(t, errors.Is(err, countdigits.ErrRange), "got %v", err)
	_, err = countdigits.ParseInt128("")
	assert.True(t, errors.Is(err, countdigits.ErrSyntax), "got %v", err)
}

func TestNonZero128(t *testing.T) {
	_, ok := countdigits.NewNonZeroUint128(countdigits.U128From64(0))
	assert.False(t, ok)
	_, ok = countdigits.NewNonZeroInt128(countdigits.I128From64(0))
	assert.False(t, ok)

	nz, ok := countdigits.NewNonZeroInt128(countdigits.MinInt128)
	require.True(t, ok)
	assert.Equal(t, countdigits.MinInt128, nz.Get())
	assert.Panics(t, func() { nz.CountDigitsRadix(1) })
	_, ok = nz.CheckedCountDigitsRadix(0)
	assert.False(t, ok)
}
