package catalog

import (
	"testing"

	"github.com/aurumworks/showcase/internal/domain"
)

func TestColorLabel(t *testing.T) {
	tests := []struct {
		color string
		want  string
	}{
		{"rose", "Rose Gold"},
		{"white", "White Gold"},
		{"yellow", "Yellow Gold"},
		{"champagne", "Champagne Gold"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ColorLabel(domain.ColorVariant(tt.color)); got != tt.want {
			t.Errorf("ColorLabel(%q) = %q, want %q", tt.color, got, tt.want)
		}
	}
}
