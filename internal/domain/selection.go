package domain

// Selection is the per-product, user-chosen presentation state. ActiveColor
// is always a variant present in that product's image list; it starts at the
// first variant in insertion order.
type Selection struct {
	ActiveColor      ColorVariant `json:"activeColor"`
	ActiveImageIndex int          `json:"activeImageIndex"`
}

// DefaultSelection returns the selection a product carries right after
// catalog load.
func DefaultSelection(p Product) Selection {
	return Selection{ActiveColor: p.DefaultColor(), ActiveImageIndex: 0}
}
