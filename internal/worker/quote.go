package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/aurumworks/showcase/internal/domain"
)

// Resolver resolves the reference gold price.
type Resolver interface {
	Resolve(ctx context.Context) domain.ReferencePrice
}

// QuoteSaver records a resolved quote.
type QuoteSaver interface {
	SaveQuote(ctx context.Context, ref domain.ReferencePrice) error
}

// QuoteWorker periodically re-resolves the gold price and records the
// result as quote history. It never restamps product prices; those stay
// fixed from the startup resolution.
type QuoteWorker struct {
	oracle   Resolver
	repo     QuoteSaver
	interval time.Duration
}

// NewQuoteWorker creates a new QuoteWorker.
func NewQuoteWorker(oracle Resolver, repo QuoteSaver, interval time.Duration) *QuoteWorker {
	return &QuoteWorker{
		oracle:   oracle,
		repo:     repo,
		interval: interval,
	}
}

// Run starts the quote worker loop. It blocks until the context is cancelled.
func (w *QuoteWorker) Run(ctx context.Context) {
	slog.Info("QuoteWorker: starting")

	// Record immediately on startup
	w.recordQuote(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("QuoteWorker: shutting down")
			return
		case <-ticker.C:
			w.recordQuote(ctx)
		}
	}
}

func (w *QuoteWorker) recordQuote(ctx context.Context) {
	ref := w.oracle.Resolve(ctx)
	if err := w.repo.SaveQuote(ctx, ref); err != nil {
		slog.Error("QuoteWorker: saving quote failed", "error", err)
		return
	}
	slog.Info("QuoteWorker: quote recorded", "perGram", ref.PerGram, "source", ref.Source)
}
