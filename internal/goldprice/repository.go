package goldprice

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/aurumworks/showcase/internal/domain"
)

// Quote is a recorded oracle resolution.
type Quote struct {
	PerGram    decimal.Decimal    `json:"perGram"`
	Source     domain.QuoteSource `json:"source"`
	ResolvedAt time.Time          `json:"resolvedAt"`
}

// QuoteRepository defines persistent storage for resolved quotes. Product
// prices are never read back from here; the history exists for telemetry.
type QuoteRepository interface {
	SaveQuote(ctx context.Context, ref domain.ReferencePrice) error
	ListQuotes(ctx context.Context, limit int) ([]Quote, error)
}

// PgQuoteRepository implements QuoteRepository with PostgreSQL.
type PgQuoteRepository struct {
	pool *pgxpool.Pool
}

// NewPgQuoteRepository creates a new PostgreSQL quote repository.
func NewPgQuoteRepository(pool *pgxpool.Pool) *PgQuoteRepository {
	return &PgQuoteRepository{pool: pool}
}

func (r *PgQuoteRepository) SaveQuote(ctx context.Context, ref domain.ReferencePrice) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO gold_quotes (price_per_gram, source, resolved_at)
		 VALUES ($1, $2, NOW())`,
		decimal.NewFromFloat(ref.PerGram), string(ref.Source))
	if err != nil {
		return fmt.Errorf("saving gold quote: %w", err)
	}
	return nil
}

func (r *PgQuoteRepository) ListQuotes(ctx context.Context, limit int) ([]Quote, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT price_per_gram, source, resolved_at
		 FROM gold_quotes ORDER BY resolved_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing gold quotes: %w", err)
	}
	defer rows.Close()

	var quotes []Quote
	for rows.Next() {
		var q Quote
		var source string
		if err := rows.Scan(&q.PerGram, &source, &q.ResolvedAt); err != nil {
			return nil, fmt.Errorf("scanning gold quote: %w", err)
		}
		q.Source = domain.QuoteSource(source)
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}
