// Package pricing derives a product's displayed price from its attributes
// and the resolved reference gold price.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/aurumworks/showcase/internal/domain"
)

// Price computes the displayed price as a fixed-point string with exactly
// two fractional digits:
//
//	round2((popularityScore + 1) * weight * perGram)
//
// Popularity acts as a 1.0-2.0 multiplier, so even an unpopular item keeps
// its base material value. Pure function: deterministic given inputs.
func Price(p domain.Product, ref domain.ReferencePrice) string {
	popularity := decimal.NewFromFloat(p.PopularityScore).Add(decimal.NewFromInt(1))
	weight := decimal.NewFromFloat(p.Weight)
	perGram := decimal.NewFromFloat(ref.PerGram)

	return domain.RoundFixed(popularity.Mul(weight).Mul(perGram), 2)
}

// Stamp returns a copy of products with each Price set from the reference
// price. Inputs are not mutated.
func Stamp(products []domain.Product, ref domain.ReferencePrice) []domain.Product {
	stamped := make([]domain.Product, len(products))
	for i, p := range products {
		p.Price = Price(p, ref)
		stamped[i] = p
	}
	return stamped
}
