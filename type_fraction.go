package rebalance

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Fraction is an exact share of a total, like a target allocation.
//
// A target Fraction lies in [0, 1] but intermediate ratios may not. The zero
// value is 0.
type Fraction struct {
	value *big.Rat // nil means zero
}

// F returns the Fraction for an integer or decimal value, F(1) is 100%.
func F[T int | int64 | decimal.Decimal](value T) Fraction {
	return Fraction{value: newRat(value)}
}

// NewFraction returns the Fraction with the exact value of r. r is copied.
func NewFraction(r *big.Rat) Fraction {
	if r == nil {
		return Fraction{}
	}
	return Fraction{value: new(big.Rat).Set(r)}
}

// ParseFraction parses a decimal fraction like "0.6".
func ParseFraction(s string) (Fraction, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: invalid fraction %q", ErrInvalidInput, s)
	}
	return Fraction{value: d.Rat()}, nil
}

// ParsePercent parses a percentage like "60", "12.5" or "12.5%" into its
// exact fraction (0.6, 0.125).
func ParsePercent(s string) (Fraction, error) {
	t := strings.TrimSuffix(strings.TrimSpace(s), "%")
	d, err := decimal.NewFromString(strings.TrimSpace(t))
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: invalid percentage %q", ErrInvalidInput, s)
	}
	r := d.Rat()
	return Fraction{value: r.Quo(r, big.NewRat(100, 1))}, nil
}

func (f Fraction) rat() *big.Rat {
	if f.value == nil {
		return new(big.Rat)
	}
	return f.value
}

// Rat returns a copy of the exact value.
func (f Fraction) Rat() *big.Rat { return new(big.Rat).Set(f.rat()) }

func (f Fraction) Sign() int                { return f.rat().Sign() }
func (f Fraction) IsZero() bool             { return f.Sign() == 0 }
func (f Fraction) IsPositive() bool         { return f.Sign() > 0 }
func (f Fraction) IsNegative() bool         { return f.Sign() < 0 }
func (f Fraction) Cmp(g Fraction) int       { return f.rat().Cmp(g.rat()) }
func (f Fraction) Equal(g Fraction) bool    { return f.Cmp(g) == 0 }
func (f Fraction) Add(g Fraction) Fraction  { return Fraction{value: new(big.Rat).Add(f.rat(), g.rat())} }
func (f Fraction) Sub(g Fraction) Fraction  { return Fraction{value: new(big.Rat).Sub(f.rat(), g.rat())} }
func (f Fraction) Mul(g Fraction) Fraction  { return Fraction{value: new(big.Rat).Mul(f.rat(), g.rat())} }
func (f Fraction) Percent() decimal.Decimal { return roundRat(new(big.Rat).Mul(f.rat(), big.NewRat(100, 1)), 2) }

// Div returns f/g.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	if g.IsZero() {
		return Fraction{}, fmt.Errorf("%w: fraction divided by a zero fraction", ErrDivisionByZero)
	}
	return Fraction{value: new(big.Rat).Quo(f.rat(), g.rat())}, nil
}

// String returns the percentage rounded to 2 decimal places, e.g. "12.34%".
func (f Fraction) String() string { return f.Percent().StringFixed(2) + "%" }
