package rebalance

import (
	"errors"
	"fmt"
)

// Asset is a position of the portfolio together with its target allocation.
type Asset struct {
	Ticker string   // unique within a portfolio
	Target Fraction // intended share of the total portfolio value
	Value  Money    // current dollar value held
}

// NewAsset returns a new Asset.
//
// The value cannot be negative. The target is not checked: loaders drop
// non-positive allocations before they reach the model.
func NewAsset(ticker string, target Fraction, value Money) (*Asset, error) {
	a := &Asset{Ticker: ticker, Target: target, Value: value}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks the asset invariants.
func (a Asset) Validate() error {
	var errs []error
	if a.Ticker == "" {
		errs = append(errs, fmt.Errorf("%w: empty ticker", ErrInvalidInput))
	}
	if a.Value.IsNegative() {
		errs = append(errs, fmt.Errorf("%w: negative value %s for %q", ErrInvalidInput, a.Value.Fixed(), a.Ticker))
	}
	return errors.Join(errs...)
}
