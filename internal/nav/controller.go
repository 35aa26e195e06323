// Package nav translates discrete navigation intents into bounded scroll
// offsets for the card list. It never computes layout; the render layer
// supplies the scrollable extent and this package only clamps within it.
package nav

import (
	"math"
	"sync"

	"github.com/aurumworks/showcase/internal/domain"
)

// Layout constants shared with the render layer. A navigation step moves by
// one card stride: 280 card width plus 20 inter-card gap.
const (
	CardStride     = 300.0
	SwipeThreshold = 50.0
)

// Direction is a discrete navigation step.
type Direction string

const (
	Previous Direction = "previous"
	Next     Direction = "next"
)

// Controller holds the transient scroll position, bounded to [0, maxScroll].
type Controller struct {
	mu        sync.Mutex
	offset    float64
	maxScroll float64
}

// NewController creates a controller at offset 0 with no scrollable extent.
func NewController() *Controller {
	return &Controller{}
}

// SetMaxScroll updates the scrollable extent (content extent minus viewport
// extent, supplied by the render layer) and re-clamps the current offset.
func (c *Controller) SetMaxScroll(maxScroll float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.maxScroll = math.Max(0, maxScroll)
	c.offset = domain.Clamp(c.offset, 0, c.maxScroll)
}

// Offset returns the current scroll offset.
func (c *Controller) Offset() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offset
}

// Advance moves one card stride in the given direction and returns the new
// offset, clamped to bounds.
func (c *Controller) Advance(d Direction) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	step := CardStride
	if d == Previous {
		step = -CardStride
	}
	c.offset = domain.Clamp(c.offset+step, 0, c.maxScroll)
	return c.offset
}

// HandleSwipe classifies a horizontal gesture. A movement whose absolute
// distance exceeds SwipeThreshold is a swipe: dragging left (start > end)
// navigates to the next card, dragging right to the previous one. Anything
// shorter is a tap and produces no navigation.
func (c *Controller) HandleSwipe(startX, endX float64) (Direction, bool) {
	diff := startX - endX
	if math.Abs(diff) <= SwipeThreshold {
		return "", false
	}
	if diff > 0 {
		return Next, true
	}
	return Previous, true
}
