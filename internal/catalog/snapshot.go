package catalog

import (
	"github.com/samber/lo"

	"github.com/aurumworks/showcase/internal/domain"
	"github.com/aurumworks/showcase/internal/rating"
)

// CardView is everything the render layer needs to paint one product card.
type CardView struct {
	Name             string                `json:"name"`
	Price            string                `json:"price"`
	Rating           string                `json:"rating"`
	Stars            string                `json:"stars"`
	PopularityScore  float64               `json:"popularityScore"`
	Weight           float64               `json:"weight"`
	Colors           []domain.ColorVariant `json:"colors"`
	ActiveColor      domain.ColorVariant   `json:"activeColor"`
	ActiveColorLabel string                `json:"activeColorLabel"`
	ActiveImageURL   string                `json:"activeImageUrl"`
	ActiveImageIndex int                   `json:"activeImageIndex"`
}

// Snapshot is a read-only view of the catalog for the render layer. It
// carries no mutation channel; intents are the only way to change state.
type Snapshot struct {
	Products []CardView `json:"products"`
}

// Snapshot builds the current read-only view.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cards := lo.Map(s.products, func(p domain.Product, _ int) CardView {
		sel := s.selection[p.Name]
		imageURL, _ := p.ImageURL(sel.ActiveColor)
		ratingValue := rating.Value(p.PopularityScore)

		return CardView{
			Name:             p.Name,
			Price:            p.Price,
			Rating:           ratingValue,
			Stars:            rating.Stars(ratingValue),
			PopularityScore:  p.PopularityScore,
			Weight:           p.Weight,
			Colors:           p.Colors(),
			ActiveColor:      sel.ActiveColor,
			ActiveColorLabel: ColorLabel(sel.ActiveColor),
			ActiveImageURL:   imageURL,
			ActiveImageIndex: sel.ActiveImageIndex,
		}
	})

	return Snapshot{Products: cards}
}
