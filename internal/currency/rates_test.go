package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	amount := decimal.NewFromInt(2500)

	usd, err := Convert(amount, "USD")
	require.NoError(t, err)
	assert.True(t, usd.Equal(decimal.NewFromInt(30)), "got %s", usd)

	inr, err := Convert(amount, "INR")
	require.NoError(t, err)
	assert.True(t, inr.Equal(amount))
}

func TestConvertRounds(t *testing.T) {
	got, err := Convert(decimal.RequireFromString("199.99"), "USD")
	require.NoError(t, err)
	assert.Equal(t, int32(-2), got.Exponent())
}

func TestConvertUnknownCurrency(t *testing.T) {
	_, err := Convert(decimal.NewFromInt(100), "XYZ")
	assert.Error(t, err)
}

func TestRatesStableOrder(t *testing.T) {
	rates := Rates()
	require.NotEmpty(t, rates)
	assert.Equal(t, "INR", rates[0].Code)
	assert.True(t, rates[0].Rate.Equal(decimal.NewFromInt(1)))

	for _, r := range rates {
		assert.True(t, Supported(r.Code))
		assert.NotEmpty(t, r.Symbol)
	}
}
