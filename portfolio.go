package rebalance

import (
	"fmt"
	"iter"
)

// Portfolio is an ordered collection of assets keyed by ticker.
//
// The order is the insertion order. It carries no meaning except for the
// degenerate allocation fallback, and it is the order of plans and records.
type Portfolio struct {
	assets []*Asset
	index  map[string]*Asset
}

// NewPortfolio returns a portfolio holding the given assets.
func NewPortfolio(assets ...*Asset) (*Portfolio, error) {
	p := &Portfolio{index: make(map[string]*Asset)}
	for _, a := range assets {
		if err := p.Add(a); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Join builds a portfolio from the target allocation and the holdings.
//
// Every target becomes an asset, valued 0 when it is not held. Holdings
// without a target are not part of the portfolio: they are returned as
// untracked, in holdings order.
func Join(targets []TargetRecord, holdings []HoldingRecord) (p *Portfolio, untracked []HoldingRecord, err error) {
	values := make(map[string]Money, len(holdings))
	for _, h := range holdings {
		if _, exists := values[h.Ticker]; exists {
			return nil, nil, fmt.Errorf("%w: %q is held twice", ErrDuplicateTicker, h.Ticker)
		}
		values[h.Ticker] = h.Value
	}

	p, _ = NewPortfolio()
	for _, t := range targets {
		a, err := NewAsset(t.Ticker, t.Target, values[t.Ticker])
		if err != nil {
			return nil, nil, err
		}
		if err := p.Add(a); err != nil {
			return nil, nil, err
		}
	}

	for _, h := range holdings {
		if !p.Has(h.Ticker) {
			untracked = append(untracked, h)
		}
	}
	return p, untracked, nil
}

// Add appends an asset to the portfolio. Tickers must be unique.
func (p *Portfolio) Add(a *Asset) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if p.index == nil {
		p.index = make(map[string]*Asset)
	}
	if p.Has(a.Ticker) {
		return fmt.Errorf("%w: %q", ErrDuplicateTicker, a.Ticker)
	}
	p.assets = append(p.assets, a)
	p.index[a.Ticker] = a
	return nil
}

// Has returns true if the ticker is part of the portfolio.
func (p *Portfolio) Has(ticker string) bool {
	_, exists := p.index[ticker]
	return exists
}

// Asset returns a copy of the asset for ticker.
func (p *Portfolio) Asset(ticker string) (Asset, bool) {
	a, exists := p.index[ticker]
	if !exists {
		return Asset{}, false
	}
	return *a, true
}

// Len returns the number of assets.
func (p *Portfolio) Len() int { return len(p.assets) }

// Assets iterates over copies of the assets in insertion order.
func (p *Portfolio) Assets() iter.Seq[Asset] {
	return func(yield func(Asset) bool) {
		for _, a := range p.assets {
			if !yield(*a) {
				return
			}
		}
	}
}

// Tickers returns the tickers in insertion order.
func (p *Portfolio) Tickers() []string {
	tickers := make([]string, 0, len(p.assets))
	for _, a := range p.assets {
		tickers = append(tickers, a.Ticker)
	}
	return tickers
}

// TotalValue returns the exact sum of all asset values.
func (p *Portfolio) TotalValue() Money {
	total := Money{}
	for _, a := range p.assets {
		total = total.Add(a.Value)
	}
	return total
}

// TotalTarget returns the sum of all target fractions. It is not required to
// be 1.
func (p *Portfolio) TotalTarget() Fraction {
	total := Fraction{}
	for _, a := range p.assets {
		total = total.Add(a.Target)
	}
	return total
}

// SetValue replaces the value held for ticker.
func (p *Portfolio) SetValue(ticker string, value Money) error {
	a, exists := p.index[ticker]
	if !exists {
		return fmt.Errorf("%w: %q", ErrUnknownTicker, ticker)
	}
	if value.IsNegative() {
		return fmt.Errorf("%w: negative value %s for %q", ErrInvalidInput, value.Fixed(), ticker)
	}
	a.Value = value
	return nil
}

// Clone returns a deep copy of the portfolio.
func (p *Portfolio) Clone() *Portfolio {
	c := &Portfolio{
		assets: make([]*Asset, 0, len(p.assets)),
		index:  make(map[string]*Asset, len(p.assets)),
	}
	for _, a := range p.assets {
		copied := *a
		c.assets = append(c.assets, &copied)
		c.index[copied.Ticker] = &copied
	}
	return c
}

// Apply adds the plan's buy amounts to the asset values.
//
// Every ticker of the plan must be part of the portfolio, this is checked
// before any value is changed.
func (p *Portfolio) Apply(plan *Plan) error {
	for _, l := range plan.Lines {
		if !p.Has(l.Ticker) {
			return fmt.Errorf("cannot apply plan: %w: %q", ErrUnknownTicker, l.Ticker)
		}
	}
	for _, l := range plan.Lines {
		a := p.index[l.Ticker]
		a.Value = a.Value.Add(l.Buy)
	}
	return nil
}

// Records returns the current holdings, in portfolio order.
func (p *Portfolio) Records() []HoldingRecord {
	records := make([]HoldingRecord, 0, len(p.assets))
	for _, a := range p.assets {
		records = append(records, HoldingRecord{Ticker: a.Ticker, Value: a.Value})
	}
	return records
}
