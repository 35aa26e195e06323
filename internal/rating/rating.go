// Package rating turns a popularity score into the star-rating display
// values the render layer paints.
package rating

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aurumworks/showcase/internal/domain"
)

// Star glyphs used by the render layer.
const (
	Filled = "★"
	Empty  = "☆"
)

const starCount = 5

// Value converts a popularity score in [0,1] to a 0.0-5.0 rating string
// with exactly one fractional digit, e.g. 0.85 -> "4.3".
func Value(popularityScore float64) string {
	score := decimal.NewFromFloat(popularityScore).Mul(decimal.NewFromInt(starCount))
	return domain.RoundFixed(score, 1)
}

// Stars renders a rating value as a row of five glyphs. Whole stars are
// filled, one extra star is filled when the fractional remainder is at
// least 0.5, the rest stay empty. Values outside [0,5] are clamped.
func Stars(value string) string {
	v := domain.SafeParse(value)
	if v.IsNegative() {
		v = decimal.Zero
	}
	max := decimal.NewFromInt(starCount)
	if v.GreaterThan(max) {
		v = max
	}

	full := int(v.IntPart())
	remainder := v.Sub(v.Floor())
	if remainder.GreaterThanOrEqual(decimal.NewFromFloat(0.5)) {
		full++
	}

	var b strings.Builder
	for i := 0; i < starCount; i++ {
		if i < full {
			b.WriteString(Filled)
		} else {
			b.WriteString(Empty)
		}
	}
	return b.String()
}
