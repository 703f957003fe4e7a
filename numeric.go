package rebalance

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidInput reports a malformed number or a value out of its domain,
	// like a negative contribution.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDivisionByZero reports a fraction computed against a zero total.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrDegenerateAllocation reports a leftover that could not be split by
	// target fractions because they are all zero. It is a warning: the
	// fallback allocation still applies.
	ErrDegenerateAllocation = errors.New("degenerate allocation")
	// ErrDuplicateTicker reports a ticker added twice to a portfolio.
	ErrDuplicateTicker = errors.New("duplicate ticker")
	// ErrUnknownTicker reports a ticker missing from a portfolio.
	ErrUnknownTicker = errors.New("unknown ticker")
)

// newRat is a convenient factory for exact values.
func newRat[T int | int64 | decimal.Decimal](value T) *big.Rat {
	switch v := any(value).(type) {
	case int:
		return new(big.Rat).SetInt64(int64(v))
	case int64:
		return new(big.Rat).SetInt64(v)
	case decimal.Decimal:
		return v.Rat()
	default:
		panic("unsupported type")
	}
}

// roundRat rounds r to places decimal digits, half away from zero.
func roundRat(r *big.Rat, places int32) decimal.Decimal {
	num := decimal.NewFromBigInt(r.Num(), 0)
	den := decimal.NewFromBigInt(r.Denom(), 0)
	return num.DivRound(den, places)
}
