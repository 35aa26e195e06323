// Package intent serializes the three external write operations onto a
// single goroutine, so catalog and navigation state see mutations one at a
// time in arrival order regardless of how many HTTP handlers fan in.
package intent

import (
	"github.com/aurumworks/showcase/internal/domain"
	"github.com/aurumworks/showcase/internal/nav"
)

// Intent is a discrete user action delivered by the input layer.
type Intent interface {
	isIntent()
}

// SelectColor switches a product's active color variant.
type SelectColor struct {
	Product string
	Color   domain.ColorVariant
}

// Navigate moves the card list one stride in a direction.
type Navigate struct {
	Direction nav.Direction
}

// Swipe is a raw horizontal gesture; it may resolve to a navigation or to
// nothing at all.
type Swipe struct {
	StartX, EndX float64
}

func (SelectColor) isIntent() {}
func (Navigate) isIntent()    {}
func (Swipe) isIntent()       {}

// Result is the outcome of one applied intent.
type Result struct {
	// ChangedProduct is set when a product's presentation changed; the
	// render layer repaints only that card.
	ChangedProduct string `json:"changedProduct,omitempty"`
	// Navigated is true when the intent produced a scroll movement.
	Navigated bool `json:"navigated"`
	// ScrollOffset is the scroll position after the intent.
	ScrollOffset float64 `json:"scrollOffset"`
}
