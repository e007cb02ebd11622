package pricing

import (
	"math"
	"strconv"
)

// BaseCurrency is the currency catalog prices are authored in.
const BaseCurrency = "EGP"

type Currency struct {
	Symbol         string
	SymbolPosition string // "before" or "after"
	Decimals       int
	Rate           float64 // multiplier from base-currency units
}

var currencies = map[string]Currency{
	"EGP": {Symbol: "E£", SymbolPosition: "before", Decimals: 2, Rate: 1},
	"USD": {Symbol: "$", SymbolPosition: "before", Decimals: 2, Rate: 0.021},
	"EUR": {Symbol: "€", SymbolPosition: "after", Decimals: 2, Rate: 0.019},
	"SAR": {Symbol: "SR", SymbolPosition: "before", Decimals: 2, Rate: 0.078},
	"AED": {Symbol: "AED", SymbolPosition: "after", Decimals: 2, Rate: 0.076},
}

// FormatCurrency converts a base-currency amount into the target currency
// and renders it with the currency's symbol and decimal count. Non-finite
// amounts format as zero. Unknown currencies fall back to the base currency.
func FormatCurrency(baseAmount float64, currency string) string {
	cfg, ok := currencies[currency]
	if !ok {
		cfg = currencies[BaseCurrency]
	}
	if math.IsNaN(baseAmount) || math.IsInf(baseAmount, 0) {
		baseAmount = 0
	}

	value := roundTo(baseAmount*cfg.Rate, cfg.Decimals)
	number := strconv.FormatFloat(value, 'f', cfg.Decimals, 64)

	if cfg.SymbolPosition == "after" {
		return number + " " + cfg.Symbol
	}
	return cfg.Symbol + " " + number
}

// roundTo rounds half away from zero at the given decimal count.
func roundTo(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	if value < 0 {
		return -math.Floor(-value*scale+0.5) / scale
	}
	return math.Floor(value*scale+0.5) / scale
}
