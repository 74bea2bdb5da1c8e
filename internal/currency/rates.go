// Package currency holds the static display-conversion table. Prices are
// stored in INR; conversion is presentational only and rates are not live.
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const Base = "INR"

// rates are units of the target currency per 1 INR.
var rates = map[string]decimal.Decimal{
	"INR": decimal.NewFromInt(1),
	"USD": decimal.RequireFromString("0.012"),
	"EUR": decimal.RequireFromString("0.011"),
	"GBP": decimal.RequireFromString("0.0095"),
	"AUD": decimal.RequireFromString("0.018"),
	"CAD": decimal.RequireFromString("0.016"),
	"JPY": decimal.RequireFromString("1.79"),
}

var symbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"AUD": "A$",
	"CAD": "C$",
	"JPY": "¥",
}

type Rate struct {
	Code   string          `json:"code"`
	Symbol string          `json:"symbol"`
	Rate   decimal.Decimal `json:"rate"`
}

// Rates returns the full table in a stable order.
func Rates() []Rate {
	codes := []string{"INR", "USD", "EUR", "GBP", "AUD", "CAD", "JPY"}
	out := make([]Rate, 0, len(codes))
	for _, code := range codes {
		out = append(out, Rate{Code: code, Symbol: symbols[code], Rate: rates[code]})
	}
	return out
}

// Convert converts an INR amount to the target currency, rounded to 2 places.
func Convert(amount decimal.Decimal, code string) (decimal.Decimal, error) {
	rate, ok := rates[code]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("unknown currency %q", code)
	}
	return amount.Mul(rate).Round(2), nil
}

func Supported(code string) bool {
	_, ok := rates[code]
	return ok
}
