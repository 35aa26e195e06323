package pricing

import (
	"strings"
	"testing"

	"github.com/aurumworks/showcase/internal/domain"
)

func ref(perGram float64) domain.ReferencePrice {
	return domain.ReferencePrice{PerGram: perGram, Source: domain.SourceLive}
}

func TestPriceFormula(t *testing.T) {
	tests := []struct {
		name       string
		popularity float64
		weight     float64
		perGram    float64
		want       string
	}{
		// (0.85+1) * 2.1 * 65 = 252.525 -> half-up
		{"half-up boundary", 0.85, 2.1, 65, "252.53"},
		// (0.51+1) * 3.4 * 65 = 333.71
		{"exact two digits", 0.51, 3.4, 65, "333.71"},
		// (0+1) * 1 * 65 = 65 -> trailing zeros kept
		{"zero popularity keeps base value", 0, 1, 65, "65.00"},
		{"full popularity doubles", 1, 2, 50, "200.00"},
		// (0.92+1) * 3.8 * 65 = 474.24
		{"fallback reference", 0.92, 3.8, 65, "474.24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.Product{PopularityScore: tt.popularity, Weight: tt.weight}
			got := Price(p, ref(tt.perGram))
			if got != tt.want {
				t.Errorf("Price(pop=%v, w=%v, ref=%v) = %q, want %q",
					tt.popularity, tt.weight, tt.perGram, got, tt.want)
			}
		})
	}
}

func TestPriceAlwaysTwoFractionalDigits(t *testing.T) {
	p := domain.Product{PopularityScore: 0.25, Weight: 2}
	got := Price(p, ref(10)) // 1.25 * 2 * 10 = 25

	if got != "25.00" {
		t.Errorf("Price = %q, want 25.00", got)
	}
	dot := strings.Index(got, ".")
	if dot < 0 || len(got)-dot-1 != 2 {
		t.Errorf("Price %q does not have exactly 2 fractional digits", got)
	}
}

func TestStamp(t *testing.T) {
	products := []domain.Product{
		{Name: "A", PopularityScore: 0.5, Weight: 2},
		{Name: "B", PopularityScore: 1, Weight: 1},
	}

	stamped := Stamp(products, ref(10))

	if stamped[0].Price != "30.00" {
		t.Errorf("stamped[0].Price = %q, want 30.00", stamped[0].Price)
	}
	if stamped[1].Price != "20.00" {
		t.Errorf("stamped[1].Price = %q, want 20.00", stamped[1].Price)
	}
	if products[0].Price != "" {
		t.Errorf("input mutated: products[0].Price = %q", products[0].Price)
	}
}
