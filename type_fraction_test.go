package rebalance

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePercent(t *testing.T) {
	testCases := []struct {
		input string
		want  *big.Rat
	}{
		{"60", big.NewRat(3, 5)},
		{" 12.5 ", big.NewRat(1, 8)},
		{"12.5%", big.NewRat(1, 8)},
		{"0", new(big.Rat)},
		{"-5", big.NewRat(-1, 20)},
		{"100", big.NewRat(1, 1)},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParsePercent(tc.input)
			require.NoError(t, err)
			assert.Zero(t, got.Rat().Cmp(tc.want), "ParsePercent(%q) = %s, want %s", tc.input, got.Rat(), tc.want)
		})
	}

	_, err := ParsePercent("sixty")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFraction_String(t *testing.T) {
	testCases := []struct {
		value Fraction
		want  string
	}{
		{Fraction{}, "0.00%"},
		{frac("0.6"), "60.00%"},
		{F(1), "100.00%"},
		{NewFraction(big.NewRat(1, 3)), "33.33%"},
		{NewFraction(big.NewRat(2, 3)), "66.67%"},
		{frac("0.00125"), "0.13%"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.value.String())
	}
}

func TestFraction_Div(t *testing.T) {
	got, err := frac("0.3").Div(frac("0.6"))
	require.NoError(t, err)
	assert.True(t, got.Equal(frac("0.5")))

	_, err = frac("0.3").Div(Fraction{})
	assert.ErrorIs(t, err, ErrDivisionByZero)
}
