package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ColorVariant names a finish option for a product ("yellow", "rose", "white").
// The set is open: any tag present in a product's image list is valid for
// that product.
type ColorVariant string

// VariantImage pairs a color variant with its image URL.
type VariantImage struct {
	Color ColorVariant `json:"color"`
	URL   string       `json:"url"`
}

// VariantImages is an ordered list of variant images. Order matters: the
// first entry is the default variant at catalog-load time, so the catalog
// feed's JSON object key order must survive decoding.
type VariantImages []VariantImage

// UnmarshalJSON decodes a JSON object of color -> URL while preserving the
// document's key order, which encoding/json's map decoding would discard.
func (v *VariantImages) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("reading images object: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("images: expected JSON object, got %v", tok)
	}

	var images VariantImages
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("reading image key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("images: expected string key, got %v", keyTok)
		}

		var url string
		if err := dec.Decode(&url); err != nil {
			return fmt.Errorf("reading image URL for %q: %w", key, err)
		}

		images = append(images, VariantImage{Color: ColorVariant(key), URL: url})
	}

	*v = images
	return nil
}

// MarshalJSON encodes the list back to a JSON object in insertion order.
func (v VariantImages) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, img := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(img.Color))
		if err != nil {
			return nil, err
		}
		url, err := json.Marshal(img.URL)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(url)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Product is a single catalog entry. Name is the identity key, assumed
// unique within a catalog. Price is stamped once per reference-price
// resolution and is never user-editable.
type Product struct {
	Name            string        `json:"name"`
	PopularityScore float64       `json:"popularityScore"`
	Weight          float64       `json:"weight"`
	Images          VariantImages `json:"images"`
	Price           string        `json:"price,omitempty"`
}

// Colors returns the product's variant tags in insertion order.
func (p Product) Colors() []ColorVariant {
	colors := make([]ColorVariant, 0, len(p.Images))
	for _, img := range p.Images {
		colors = append(colors, img.Color)
	}
	return colors
}

// DefaultColor returns the first variant in insertion order, which is the
// active color right after catalog load.
func (p Product) DefaultColor() ColorVariant {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].Color
}

// ImageURL returns the image URL for a color, with ok=false when the
// product has no such variant.
func (p Product) ImageURL(color ColorVariant) (string, bool) {
	for _, img := range p.Images {
		if img.Color == color {
			return img.URL, true
		}
	}
	return "", false
}

// HasColor reports whether the product carries the given variant.
func (p Product) HasColor(color ColorVariant) bool {
	_, ok := p.ImageURL(color)
	return ok
}
