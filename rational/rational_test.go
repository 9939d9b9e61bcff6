package rational

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {

	for _, tc := range []struct {
		name          string
		num           int64
		den           int64
		expectedNum   int64
		expectedDenom int64
		expectErr     error
	}{
		{name: "already reduced", num: 3, den: 4, expectedNum: 3, expectedDenom: 4},
		{name: "reduces by gcd", num: 6254, den: 20000, expectedNum: 3127, expectedDenom: 10000},
		{name: "reduces common factor", num: 640, den: 1000, expectedNum: 16, expectedDenom: 25},
		{name: "negative denominator moves sign", num: 6, den: -4, expectedNum: -3, expectedDenom: 2},
		{name: "both negative", num: -6, den: -4, expectedNum: 3, expectedDenom: 2},
		{name: "zero numerator", num: 0, den: -17, expectedNum: 0, expectedDenom: 1},
		{name: "zero denominator", num: 1, den: 0, expectErr: ErrZeroDenominator},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, err := New(big.NewInt(tc.num), big.NewInt(tc.den))
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedNum, r.Num().Int64())
			assert.Equal(t, tc.expectedDenom, r.Denom().Int64())
		})
	}
}

func TestNewNilDenominator(t *testing.T) {
	_, err := New(big.NewInt(1), nil)
	assert.ErrorIs(t, err, ErrZeroDenominator)
}

func TestNewFromIntsGeneric(t *testing.T) {
	a, err := NewFromInts[int8](-4, 6)
	require.NoError(t, err)
	assert.Equal(t, "-2/3", a.String())

	b, err := NewFromInts[uint64](1<<64-1, 1)
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551615/1", b.String())

	_, err = NewFromInts[uint](1, 0)
	assert.ErrorIs(t, err, ErrZeroDenominator)
}

func TestMustNewPanicsOnZeroDenominator(t *testing.T) {
	assert.Panics(t, func() { MustNew(1, 0) })
	assert.NotPanics(t, func() { MustNew(1, 2) })
}

func TestZeroValue(t *testing.T) {
	var z Rational
	assert.True(t, z.IsZero())
	assert.Equal(t, "0/1", z.String())
	assert.True(t, z.Equal(Zero()))
	assert.Equal(t, "3/4", z.Add(MustNew(3, 4)).String())
}

func TestArithmetic(t *testing.T) {
	half := MustNew(1, 2)
	third := MustNew(1, 3)

	for _, tc := range []struct {
		name     string
		result   Rational
		expected string
	}{
		{name: "add", result: half.Add(third), expected: "5/6"},
		{name: "sub", result: third.Sub(half), expected: "-1/6"},
		{name: "mul", result: half.Mul(third), expected: "1/6"},
		{name: "neg", result: half.Neg(), expected: "-1/2"},
		{name: "add reduces", result: half.Add(half), expected: "1/1"},
		{name: "sub to zero", result: third.Sub(third), expected: "0/1"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.result.String())
		})
	}
}

func TestDiv(t *testing.T) {
	q, err := MustNew(1, 2).Div(MustNew(-3, 4))
	require.NoError(t, err)
	assert.Equal(t, "-2/3", q.String())

	_, err = One().Div(Zero())
	assert.ErrorIs(t, err, ErrDivisionByZero)

	var zero Rational
	_, err = One().Div(zero)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestOperandsNotMutated(t *testing.T) {
	a := MustNew(2, 3)
	b := MustNew(5, 7)
	_ = a.Add(b)
	_ = a.Mul(b)
	_, _ = a.Div(b)
	_ = a.Neg()
	assert.Equal(t, "2/3", a.String())
	assert.Equal(t, "5/7", b.String())

	n := a.Num()
	n.SetInt64(99)
	assert.Equal(t, "2/3", a.String())
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, MustNew(1, 3).Cmp(MustNew(1, 2)))
	assert.Equal(t, 1, MustNew(-1, 3).Cmp(MustNew(-1, 2)))
	assert.Equal(t, 0, MustNew(2, 4).Cmp(MustNew(1, 2)))
	assert.True(t, MustNew(10, -20).Equal(MustNew(-1, 2)))
	assert.False(t, MustNew(1, 2).Equal(MustNew(1, 3)))
	assert.Equal(t, -1, MustNew(-5, 2).Sign())
}

func TestParse(t *testing.T) {

	for _, tc := range []struct {
		name      string
		input     string
		expected  string
		expectErr error
	}{
		{name: "fraction", input: "3127/10000", expected: "3127/10000"},
		{name: "fraction with spaces", input: " 640 / 1000 ", expected: "16/25"},
		{name: "negative fraction", input: "-1/-2", expected: "1/2"},
		{name: "integer", input: "7", expected: "7/1"},
		{name: "decimal", input: "0.3127", expected: "3127/10000"},
		{name: "decimal reduces", input: "0.060", expected: "3/50"},
		{name: "negative decimal", input: "-0.25", expected: "-1/4"},
		{name: "zero denominator", input: "1/0", expectErr: ErrZeroDenominator},
		{name: "empty", input: "  ", expectErr: ErrSyntax},
		{name: "garbage", input: "abc", expectErr: ErrSyntax},
		{name: "decimal in fraction", input: "0.5/2", expectErr: ErrSyntax},
		{name: "leading point", input: ".5", expectErr: ErrSyntax},
		{name: "explicit plus", input: "+0.125", expected: "1/8"},
		{name: "hex float", input: "0x1p-2", expectErr: ErrSyntax},
		{name: "binary integer", input: "0b101", expectErr: ErrSyntax},
		{name: "octal prefix", input: "0o17", expectErr: ErrSyntax},
		{name: "exponent", input: "1e1000000", expectErr: ErrSyntax},
		{name: "small exponent", input: "3.127e-1", expectErr: ErrSyntax},
		{name: "underscores", input: "1_000", expectErr: ErrSyntax},
		{name: "lone sign", input: "-", expectErr: ErrSyntax},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Parse(tc.input)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, r.String())
		})
	}
}

func TestFloatRendering(t *testing.T) {
	r := MustNew(3127, 3290)
	f, exact := r.Float64()
	assert.False(t, exact)
	assert.InDelta(t, 0.950455927, f, 1e-9)
	assert.Equal(t, "0.950456", r.FloatString(6))

	f, exact = MustNew(1, 4).Float64()
	assert.True(t, exact)
	assert.Equal(t, 0.25, f)
}

func TestLargeValuesStayExact(t *testing.T) {
	// repeated squaring overflows any fixed width integer
	r := MustNew(1_000_003, 999_983)
	for i := 0; i < 6; i++ {
		r = r.Mul(r)
	}
	back := One()
	inv, err := One().Div(r)
	require.NoError(t, err)
	back = back.Mul(r).Mul(inv)
	assert.True(t, back.Equal(One()))
	assert.Greater(t, r.Num().BitLen(), 64)
}
