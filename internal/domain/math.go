package domain

import "github.com/shopspring/decimal"

// RoundFixed rounds half away from zero to the given number of decimal
// places and formats with exactly that many fractional digits, so "12.5"
// never leaks to the render layer where "12.50" is expected.
func RoundFixed(d decimal.Decimal, places int32) string {
	return d.Round(places).StringFixed(places)
}

// SafeParse parses a string into a decimal, returning zero for invalid or
// empty input.
func SafeParse(value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
