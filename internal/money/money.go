// Package money provides an exact minor-unit monetary amount.
//
// Amounts are stored as a signed count of cents. Decimal strings are converted
// once at the I/O boundary; everything past that point is integer arithmetic.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// Money is an amount in minor currency units (cents).
type Money int64

// Zero is the zero amount.
const Zero Money = 0

// FromCents wraps a raw cent count.
func FromCents(cents int64) Money {
	return Money(cents)
}

// Parse converts a decimal string such as "12.34", "12,34" or "-5" into Money.
// Values with more than two fractional digits are rounded half away from zero.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalidAmount
	}
	// Accept a decimal comma
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	cents := d.Round(2).Shift(2)
	if !cents.IsInteger() || cents.GreaterThan(decimal.NewFromInt(maxCents)) || cents.LessThan(decimal.NewFromInt(-maxCents)) {
		return Zero, fmt.Errorf("%w: %q out of range", ErrInvalidAmount, s)
	}
	return Money(cents.IntPart()), nil
}

// ParseAmount is Parse restricted to non-negative values, which is what every
// transaction field carries.
func ParseAmount(s string) (Money, error) {
	m, err := Parse(s)
	if err != nil {
		return Zero, err
	}
	if m.IsNegative() {
		return Zero, fmt.Errorf("%w: %q", ErrNegativeAmount, s)
	}
	return m, nil
}

// maxCents keeps sums of many amounts far away from int64 overflow.
const maxCents = 1 << 52

// Cents returns the raw minor-unit count.
func (m Money) Cents() int64 { return int64(m) }

// Add returns m + o. Amounts parsed by Parse stay below maxCents, so sums of
// them do not overflow.
func (m Money) Add(o Money) Money { return m + o }

// Sub returns m - o.
func (m Money) Sub(o Money) Money { return m - o }

// Neg flips the sign of m, turning a debt into a credit and back.
func (m Money) Neg() Money { return -m }

// Abs returns the magnitude of m.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// IsZero reports whether m is exactly zero cents. A settled balance is zero.
func (m Money) IsZero() bool { return m == 0 }

// IsNegative reports whether m is below zero. A negative net balance owes.
func (m Money) IsNegative() bool { return m < 0 }

// IsPositive reports whether m is above zero. A positive net balance is owed.
func (m Money) IsPositive() bool { return m > 0 }

// Min returns the smaller of a and b.
func Min(a, b Money) Money {
	if a < b {
		return a
	}
	return b
}

// Sum adds up all amounts.
func Sum(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total += a
	}
	return total
}

// Decimal returns m in major units as a decimal, for display and export.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// String formats m with exactly two fractional digits, e.g. "-12.05".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}
