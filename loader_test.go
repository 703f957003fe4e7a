package rebalance

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestSession_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	targetsFile := filepath.Join(dir, "targets.csv")
	portfolioFile := filepath.Join(dir, "portfolio.csv")
	writeFile(t, targetsFile, "VTI, 45\nVXUS, 35\nBND, 15\n")
	writeFile(t, portfolioFile, "VTI,$1234.56\nBND,$789.01\nCASH,$12.00\n")

	s, err := Load(targetsFile, portfolioFile, DefaultValueColumn)
	require.NoError(t, err)
	require.Equal(t, []string{"VTI", "VXUS", "BND"}, s.Portfolio.Tickers())
	require.Len(t, s.Untracked, 1)

	plan, err := Solve(usd("333.33"), s.Portfolio)
	require.NoError(t, err)
	require.NoError(t, s.Portfolio.Apply(plan))
	require.NoError(t, s.Save())

	reloaded, err := Load(targetsFile, portfolioFile, DefaultValueColumn)
	require.NoError(t, err)
	for a := range s.Portfolio.Assets() {
		r, ok := reloaded.Portfolio.Asset(a.Ticker)
		require.True(t, ok)
		assert.True(t, r.Value.Cents().Equal(a.Value.Cents()), "%s reloaded as %s, want %s", a.Ticker, r.Value.Fixed(), a.Value.Fixed())
	}
	assert.Equal(t, "CASH", reloaded.Untracked[0].Ticker, "untracked holdings survive a save")
	assert.True(t, reloaded.Untracked[0].Value.Equal(M(12)))
}

func TestLoad_MissingPortfolio(t *testing.T) {
	dir := t.TempDir()
	targetsFile := filepath.Join(dir, "targets.csv")
	portfolioFile := filepath.Join(dir, "portfolio.csv")
	writeFile(t, targetsFile, "VTI, 100\n")

	_, err := Load(targetsFile, portfolioFile, DefaultValueColumn)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	s, err := LoadEmpty(targetsFile, portfolioFile, DefaultValueColumn)
	require.NoError(t, err)
	assert.True(t, s.Portfolio.TotalValue().IsZero())

	require.NoError(t, s.Save())
	content, err := os.ReadFile(portfolioFile)
	require.NoError(t, err)
	assert.Equal(t, "VTI,$0.00\n", string(content))
}

func TestWriteHoldings_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio.csv")
	require.NoError(t, WriteHoldings(path, []HoldingRecord{{Ticker: "VTI", Value: M(1)}}))

	holdings, err := ReadHoldings(path, DefaultValueColumn)
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.True(t, holdings[0].Value.Equal(M(1)))
}
