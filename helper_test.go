package rebalance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// usd is a helper for test to create money from a decimal literal.
func usd(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// frac is a helper for test to create a fraction from a decimal literal.
func frac(s string) Fraction {
	f, err := ParseFraction(s)
	if err != nil {
		panic(err)
	}
	return f
}

// newTestPortfolio builds a portfolio from (ticker, target, value) triplets.
func newTestPortfolio(t *testing.T, rows ...[3]string) *Portfolio {
	t.Helper()
	p, err := NewPortfolio()
	require.NoError(t, err)
	for _, r := range rows {
		a, err := NewAsset(r[0], frac(r[1]), usd(r[2]))
		require.NoError(t, err)
		require.NoError(t, p.Add(a))
	}
	return p
}
