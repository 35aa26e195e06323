package domain

// QuoteSource tells how a reference price was obtained.
type QuoteSource string

const (
	// SourceLive marks a price fetched from the spot feed.
	SourceLive QuoteSource = "live"
	// SourceFallback marks the built-in price used when the feed fails.
	SourceFallback QuoteSource = "fallback"
)

// ReferencePrice is the resolved commodity unit price used to compute every
// product's displayed price. The unit is USD per gram throughout; the
// per-troy-ounce quote from the feed never leaves the fetching client.
type ReferencePrice struct {
	PerGram float64     `json:"perGram"`
	Source  QuoteSource `json:"source"`
}

// Degraded reports whether the price came from the fallback path rather
// than the live feed.
func (r ReferencePrice) Degraded() bool {
	return r.Source == SourceFallback
}
