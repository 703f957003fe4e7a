package rebalance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAsset(t *testing.T) {
	a, err := NewAsset("VTI", frac("0.6"), M(600))
	require.NoError(t, err)
	assert.Equal(t, "VTI", a.Ticker)

	_, err = NewAsset("VTI", frac("0.6"), M(-1))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewAsset("", frac("0.6"), M(1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPortfolio_Add(t *testing.T) {
	p := newTestPortfolio(t,
		[3]string{"VTI", "0.6", "600"},
		[3]string{"BND", "0.4", "400"},
	)

	err := p.Add(&Asset{Ticker: "VTI", Target: frac("0.1")})
	assert.ErrorIs(t, err, ErrDuplicateTicker)

	err = p.Add(&Asset{Ticker: "BAD", Value: M(-3)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []string{"VTI", "BND"}, p.Tickers())
	assert.True(t, p.TotalValue().Equal(M(1000)))
	assert.True(t, p.TotalTarget().Equal(F(1)))

	a, ok := p.Asset("BND")
	require.True(t, ok)
	assert.True(t, a.Value.Equal(M(400)))
	_, ok = p.Asset("XXX")
	assert.False(t, ok)
}

func TestPortfolio_ZeroValue(t *testing.T) {
	var p Portfolio
	require.NoError(t, p.Add(&Asset{Ticker: "VTI", Target: F(1)}))
	assert.True(t, p.Has("VTI"))
	assert.True(t, p.TotalValue().IsZero())
}

func TestPortfolio_SetValue(t *testing.T) {
	p := newTestPortfolio(t, [3]string{"VTI", "1", "600"})

	require.NoError(t, p.SetValue("VTI", usd("650.25")))
	a, _ := p.Asset("VTI")
	assert.True(t, a.Value.Equal(usd("650.25")))

	assert.ErrorIs(t, p.SetValue("BND", M(1)), ErrUnknownTicker)
	assert.ErrorIs(t, p.SetValue("VTI", M(-1)), ErrInvalidInput)
}

func TestPortfolio_Clone(t *testing.T) {
	p := newTestPortfolio(t, [3]string{"VTI", "1", "600"})
	c := p.Clone()

	require.NoError(t, c.SetValue("VTI", M(1)))

	a, _ := p.Asset("VTI")
	assert.True(t, a.Value.Equal(M(600)), "the original must not change when the clone is edited")
}

func TestPortfolio_Apply(t *testing.T) {
	p := newTestPortfolio(t,
		[3]string{"VTI", "0.6", "600"},
		[3]string{"BND", "0.4", "400"},
	)
	plan := &Plan{Lines: []PlanLine{
		{Ticker: "VTI", Buy: M(60)},
		{Ticker: "BND", Buy: M(40)},
	}}
	require.NoError(t, p.Apply(plan))
	assert.True(t, p.TotalValue().Equal(M(1100)))

	bad := &Plan{Lines: []PlanLine{
		{Ticker: "VTI", Buy: M(1)},
		{Ticker: "XXX", Buy: M(1)},
	}}
	assert.ErrorIs(t, p.Apply(bad), ErrUnknownTicker)
	assert.True(t, p.TotalValue().Equal(M(1100)), "a rejected plan must not change any value")
}

func TestJoin(t *testing.T) {
	targets := []TargetRecord{
		{Ticker: "VTI", Target: frac("0.5")},
		{Ticker: "VXUS", Target: frac("0.3")},
		{Ticker: "BND", Target: frac("0.2")},
	}
	holdings := []HoldingRecord{
		{Ticker: "BND", Value: M(200)},
		{Ticker: "CASH", Value: M(50)},
		{Ticker: "VTI", Value: M(500)},
	}

	p, untracked, err := Join(targets, holdings)
	require.NoError(t, err)

	assert.Equal(t, []string{"VTI", "VXUS", "BND"}, p.Tickers(), "portfolio follows the targets order")
	vxus, _ := p.Asset("VXUS")
	assert.True(t, vxus.Value.IsZero(), "a target not held is valued 0")
	assert.True(t, p.TotalValue().Equal(M(700)), "untracked holdings are not part of the total")
	assert.Equal(t, []HoldingRecord{{Ticker: "CASH", Value: M(50)}}, untracked)
}

func TestJoin_DuplicateHolding(t *testing.T) {
	_, _, err := Join(
		[]TargetRecord{{Ticker: "VTI", Target: F(1)}},
		[]HoldingRecord{{Ticker: "VTI", Value: M(1)}, {Ticker: "VTI", Value: M(2)}},
	)
	assert.ErrorIs(t, err, ErrDuplicateTicker)
}
