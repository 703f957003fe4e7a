package rebalance

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents an exact dollar amount.
//
// Money is an immutable value: every operation returns a new Money and never
// modifies its operands. The zero value is $0.00.
type Money struct {
	value *big.Rat // nil means zero
}

// M returns the Money for an integer or decimal dollar amount.
func M[T int | int64 | decimal.Decimal](value T) Money {
	return Money{value: newRat(value)}
}

// NewMoney returns the Money with the exact value of r. r is copied.
func NewMoney(r *big.Rat) Money {
	if r == nil {
		return Money{}
	}
	return Money{value: new(big.Rat).Set(r)}
}

// ParseMoney parses a dollar amount like "1000.00", "$1,234.56" or "12".
//
// The leading "$" and the thousands separators are optional. The parsed value
// is exact, no rounding ever happens here.
func ParseMoney(s string) (Money, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, "$")
	t = strings.ReplaceAll(t, ",", "")
	d, err := decimal.NewFromString(t)
	if err != nil {
		return Money{}, fmt.Errorf("%w: invalid dollar amount %q", ErrInvalidInput, s)
	}
	return Money{value: d.Rat()}, nil
}

func (m Money) rat() *big.Rat {
	if m.value == nil {
		return new(big.Rat)
	}
	return m.value
}

// Rat returns a copy of the exact value.
func (m Money) Rat() *big.Rat { return new(big.Rat).Set(m.rat()) }

func (m Money) Sign() int                       { return m.rat().Sign() }
func (m Money) IsZero() bool                    { return m.Sign() == 0 }
func (m Money) IsPositive() bool                { return m.Sign() > 0 }
func (m Money) IsNegative() bool                { return m.Sign() < 0 }
func (m Money) Cmp(n Money) int                 { return m.rat().Cmp(n.rat()) }
func (m Money) Equal(n Money) bool              { return m.Cmp(n) == 0 }
func (m Money) LessThan(n Money) bool           { return m.Cmp(n) < 0 }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.Cmp(n) >= 0 }
func (m Money) Neg() Money                      { return Money{value: new(big.Rat).Neg(m.rat())} }
func (m Money) Add(n Money) Money               { return Money{value: new(big.Rat).Add(m.rat(), n.rat())} }
func (m Money) Sub(n Money) Money               { return Money{value: new(big.Rat).Sub(m.rat(), n.rat())} }
func (m Money) Mul(f Fraction) Money            { return Money{value: new(big.Rat).Mul(m.rat(), f.rat())} }
func (m Money) Cents() decimal.Decimal          { return roundRat(m.rat(), 2) }
func (m Money) Fixed() string                   { return m.Cents().StringFixed(2) }

// Ratio returns m/total as a Fraction.
func (m Money) Ratio(total Money) (Fraction, error) {
	if total.IsZero() {
		return Fraction{}, fmt.Errorf("%w: ratio of %s to a zero total", ErrDivisionByZero, m.Fixed())
	}
	return Fraction{value: new(big.Rat).Quo(m.rat(), total.rat())}, nil
}

// String returns the display form of the money value rounded to the cent,
// e.g. "$1,234.56".
func (m Money) String() string {
	cur := *money.New(0, money.USD).Currency()
	return cur.Formatter().Format(m.Cents().Shift(int32(cur.Fraction)).IntPart())
}

// Dollar returns the persisted form of the money value: "$" followed by the
// value rounded to the cent without thousands separators, e.g. "$1234.56".
func (m Money) Dollar() string {
	if m.IsNegative() {
		return "-$" + m.Neg().Fixed()
	}
	return "$" + m.Fixed()
}

// Sum returns the exact sum of values.
func Sum(values ...Money) Money {
	s := new(big.Rat)
	for _, v := range values {
		s.Add(s, v.rat())
	}
	return Money{value: s}
}
