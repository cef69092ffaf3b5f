package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in  string
		out Money
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // rounds half away from zero
		{"1.004", 100, true},
		{" 2.50 ", 250, true},
		{"-1.5", -150, true},
		{"0", 0, true},
		{"300.00", 30000, true},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
		{"1e30", 0, false},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if tc.ok {
			require.NoError(t, err, tc.in)
			assert.Equal(t, tc.out, got, tc.in)
		} else {
			assert.ErrorIs(t, err, ErrInvalidAmount, tc.in)
		}
	}
}

func TestParseAmount_RejectsNegative(t *testing.T) {
	_, err := ParseAmount("-0.01")
	assert.ErrorIs(t, err, ErrNegativeAmount)

	m, err := ParseAmount("40")
	require.NoError(t, err)
	assert.Equal(t, FromCents(4000), m)
}

func TestString(t *testing.T) {
	assert.Equal(t, "0.00", Zero.String())
	assert.Equal(t, "12.05", FromCents(1205).String())
	assert.Equal(t, "-0.05", FromCents(-5).String())
	assert.Equal(t, "200.00", FromCents(20000).String())
}

func TestArithmetic(t *testing.T) {
	a, b := FromCents(1000), FromCents(250)

	assert.Equal(t, FromCents(1250), a.Add(b))
	assert.Equal(t, FromCents(750), a.Sub(b))
	assert.Equal(t, FromCents(-1000), a.Neg())
	assert.Equal(t, a, a.Neg().Abs())
	assert.Equal(t, b, Min(a, b))
	assert.Equal(t, FromCents(1500), Sum(a, b, b, Zero))
	assert.True(t, a.Sub(a).IsZero())
	assert.True(t, b.Sub(a).IsNegative())
	assert.True(t, a.IsPositive())
}
