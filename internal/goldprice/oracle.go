package goldprice

import (
	"context"
	"log/slog"

	"github.com/aurumworks/showcase/internal/domain"
)

// FallbackPerGram is the reference price used when the spot feed cannot be
// reached or returns garbage, in USD per gram.
const FallbackPerGram = 65.0

// SpotFetcher fetches the current spot price in USD per gram.
type SpotFetcher interface {
	SpotPerGram(ctx context.Context) (float64, error)
}

// Oracle resolves the reference gold price exactly once per call, degrading
// to the fixed fallback instead of failing. Resolution is one-shot, not a
// polling loop; a caller that needs freshness re-invokes Resolve.
type Oracle struct {
	fetcher SpotFetcher
	cache   *quoteCache
}

// NewOracle creates an Oracle backed by the given spot fetcher.
func NewOracle(fetcher SpotFetcher) *Oracle {
	return &Oracle{
		fetcher: fetcher,
		cache:   newQuoteCache(),
	}
}

// Resolve returns the reference price. Any feed failure is recovered locally
// with the fallback constant; the degraded state is observable through the
// returned Source, never as an error.
func (o *Oracle) Resolve(ctx context.Context) domain.ReferencePrice {
	if cached, ok := o.cache.get(); ok {
		return cached
	}

	perGram, err := o.fetcher.SpotPerGram(ctx)
	if err != nil {
		slog.Warn("spot price unavailable, using fallback",
			"fallbackPerGram", FallbackPerGram, "error", err)
		return domain.ReferencePrice{PerGram: FallbackPerGram, Source: domain.SourceFallback}
	}

	ref := domain.ReferencePrice{PerGram: perGram, Source: domain.SourceLive}
	o.cache.set(ref)
	return ref
}
