package domain

import (
	"encoding/json"
	"testing"
)

func TestVariantImagesPreservesOrder(t *testing.T) {
	raw := `{"yellow":"https://cdn.example.com/y.jpg","rose":"https://cdn.example.com/r.jpg","white":"https://cdn.example.com/w.jpg"}`

	var images VariantImages
	if err := json.Unmarshal([]byte(raw), &images); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []ColorVariant{"yellow", "rose", "white"}
	if len(images) != len(want) {
		t.Fatalf("len = %d, want %d", len(images), len(want))
	}
	for i, color := range want {
		if images[i].Color != color {
			t.Errorf("images[%d].Color = %q, want %q", i, images[i].Color, color)
		}
	}
	if images[1].URL != "https://cdn.example.com/r.jpg" {
		t.Errorf("rose URL = %q", images[1].URL)
	}
}

func TestVariantImagesReversedOrder(t *testing.T) {
	raw := `{"white":"w","rose":"r","yellow":"y"}`

	var images VariantImages
	if err := json.Unmarshal([]byte(raw), &images); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if images[0].Color != "white" {
		t.Errorf("first variant = %q, want white", images[0].Color)
	}
}

func TestVariantImagesRejectsNonObject(t *testing.T) {
	var images VariantImages
	if err := json.Unmarshal([]byte(`["yellow"]`), &images); err == nil {
		t.Error("expected error for JSON array, got nil")
	}
}

func TestVariantImagesRoundTrip(t *testing.T) {
	images := VariantImages{
		{Color: "yellow", URL: "y"},
		{Color: "rose", URL: "r"},
	}

	data, err := json.Marshal(images)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"yellow":"y","rose":"r"}` {
		t.Errorf("marshaled = %s", data)
	}
}

func TestProductDecode(t *testing.T) {
	raw := `{"name":"Engagement Ring 1","popularityScore":0.85,"weight":2.1,"images":{"yellow":"y","rose":"r","white":"w"}}`

	var p Product
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Name != "Engagement Ring 1" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.PopularityScore != 0.85 {
		t.Errorf("PopularityScore = %v", p.PopularityScore)
	}
	if p.DefaultColor() != "yellow" {
		t.Errorf("DefaultColor = %q, want yellow", p.DefaultColor())
	}
	if !p.HasColor("rose") {
		t.Error("HasColor(rose) = false, want true")
	}
	if p.HasColor("green") {
		t.Error("HasColor(green) = true, want false")
	}

	url, ok := p.ImageURL("white")
	if !ok || url != "w" {
		t.Errorf("ImageURL(white) = %q, %v", url, ok)
	}
}

func TestDefaultSelection(t *testing.T) {
	p := Product{Images: VariantImages{{Color: "rose", URL: "r"}, {Color: "white", URL: "w"}}}

	sel := DefaultSelection(p)
	if sel.ActiveColor != "rose" {
		t.Errorf("ActiveColor = %q, want rose", sel.ActiveColor)
	}
	if sel.ActiveImageIndex != 0 {
		t.Errorf("ActiveImageIndex = %d, want 0", sel.ActiveImageIndex)
	}
}
