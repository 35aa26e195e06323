// Package export builds price-report rows from the catalog and writes them
// to a spreadsheet destination.
package export

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/aurumworks/showcase/internal/catalog"
	"github.com/aurumworks/showcase/internal/domain"
)

// Row is one product line of the price report.
type Row struct {
	Name            string
	Price           decimal.Decimal
	Rating          string
	Stars           string
	Weight          float64
	PopularityScore float64
	ActiveColor     string
}

// ReportWriter writes report rows to a spreadsheet destination.
type ReportWriter interface {
	Write(ctx context.Context, ref domain.ReferencePrice, rows []Row) error
}

// Service turns the current catalog snapshot into report rows and delegates
// writing to a ReportWriter.
type Service struct {
	store  *catalog.Store
	ref    domain.ReferencePrice
	writer ReportWriter
}

// NewService creates a new export Service.
func NewService(store *catalog.Store, ref domain.ReferencePrice, writer ReportWriter) *Service {
	return &Service{store: store, ref: ref, writer: writer}
}

// Export builds rows from the current snapshot and writes the report.
// Implements worker.ReportExporter.
func (s *Service) Export(ctx context.Context) error {
	rows := BuildRows(s.store.Snapshot())
	if err := s.writer.Write(ctx, s.ref, rows); err != nil {
		return fmt.Errorf("writing catalog report: %w", err)
	}
	return nil
}

// BuildRows converts a catalog snapshot to report rows.
func BuildRows(snap catalog.Snapshot) []Row {
	return lo.Map(snap.Products, func(card catalog.CardView, _ int) Row {
		return Row{
			Name:            card.Name,
			Price:           domain.SafeParse(card.Price),
			Rating:          card.Rating,
			Stars:           card.Stars,
			Weight:          card.Weight,
			PopularityScore: card.PopularityScore,
			ActiveColor:     card.ActiveColorLabel,
		}
	})
}

// header is the shared column order of both writers.
var header = []any{"Name", "Price (USD)", "Rating", "Stars", "Weight (g)", "Popularity", "Active Color"}

func rowValues(r Row) []any {
	price, _ := r.Price.Float64()
	return []any{r.Name, price, r.Rating, r.Stars, r.Weight, r.PopularityScore, r.ActiveColor}
}
