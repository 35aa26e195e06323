// Package catalog owns the product list and per-product presentation state.
// All mutation goes through the store's narrow API; the render layer only
// reads snapshots.
package catalog

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/aurumworks/showcase/internal/domain"
	"github.com/aurumworks/showcase/internal/pricing"
)

// Errors reported for rejected operations. These indicate caller bugs, not
// expected runtime conditions; no state is mutated when they are returned.
var (
	ErrUnknownProduct = errors.New("unknown product")
	ErrInvalidVariant = errors.New("invalid color variant")
)

// Source tells where the loaded catalog came from.
type Source string

const (
	SourceRemote  Source = "remote"
	SourceBuiltin Source = "builtin"
)

// ProductFetcher loads product records from a catalog source.
type ProductFetcher interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
}

// Listener is notified with the name of the product whose presentation
// changed, so the render layer can repaint just that card.
type Listener func(productName string)

// Store holds the ordered product list and the selection state keyed by
// product name. Products and prices are immutable after Load; only
// ActiveColor mutates, through SelectColor.
type Store struct {
	fetcher ProductFetcher

	mu        sync.RWMutex
	products  []domain.Product
	selection map[string]domain.Selection
	listeners []Listener
}

// NewStore creates an empty store backed by the given catalog source.
func NewStore(fetcher ProductFetcher) *Store {
	return &Store{
		fetcher:   fetcher,
		selection: make(map[string]domain.Selection),
	}
}

// Load fetches the catalog, stamps every product with its price and default
// selection, and makes the store ready. A failing source degrades to the
// built-in product list and is never fatal; the returned Source makes the
// degradation observable.
func (s *Store) Load(ctx context.Context, ref domain.ReferencePrice) Source {
	source := SourceRemote
	products, err := s.fetcher.FetchProducts(ctx)
	if err != nil {
		slog.Warn("catalog source unavailable, using built-in products", "error", err)
		products = FallbackProducts()
		source = SourceBuiltin
	}

	stamped := pricing.Stamp(products, ref)

	selection := make(map[string]domain.Selection, len(stamped))
	for _, p := range stamped {
		selection[p.Name] = domain.DefaultSelection(p)
	}

	s.mu.Lock()
	s.products = stamped
	s.selection = selection
	s.mu.Unlock()

	slog.Info("catalog loaded", "source", source, "products", len(stamped),
		"referencePerGram", ref.PerGram, "referenceSource", ref.Source)
	return source
}

// Products returns a copy of the ordered product list.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Product looks up a product by name.
func (s *Store) Product(name string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Name == name {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Selection returns the selection state for a product.
func (s *Store) Selection(name string) (domain.Selection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sel, ok := s.selection[name]
	return sel, ok
}

// Subscribe registers a listener for scoped invalidation events. Listeners
// run synchronously on the mutating call, outside the store lock.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// SelectColor switches a product's active color variant. It rejects unknown
// product names with ErrUnknownProduct and colors the product does not
// carry with ErrInvalidVariant, mutating nothing in either case. On success
// subscribers are notified with exactly this product's name.
func (s *Store) SelectColor(name string, color domain.ColorVariant) error {
	s.mu.Lock()

	var product domain.Product
	found := false
	for _, p := range s.products {
		if p.Name == name {
			product = p
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return ErrUnknownProduct
	}
	if !product.HasColor(color) {
		s.mu.Unlock()
		return ErrInvalidVariant
	}

	sel := s.selection[name]
	sel.ActiveColor = color
	s.selection[name] = sel

	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l(name)
	}
	return nil
}
