package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRoundFixed(t *testing.T) {
	tests := []struct {
		in     string
		places int32
		want   string
	}{
		{"252.525", 2, "252.53"},
		{"12.5", 2, "12.50"},
		{"12", 2, "12.00"},
		{"4.25", 1, "4.3"},
		{"4.24", 1, "4.2"},
		{"0", 1, "0.0"},
	}

	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		if err != nil {
			t.Fatalf("parsing %q: %v", tt.in, err)
		}
		if got := RoundFixed(d, tt.places); got != tt.want {
			t.Errorf("RoundFixed(%s, %d) = %q, want %q", tt.in, tt.places, got, tt.want)
		}
	}
}

func TestSafeParse(t *testing.T) {
	if got := SafeParse("4.3"); !got.Equal(decimal.RequireFromString("4.3")) {
		t.Errorf("SafeParse(4.3) = %s", got)
	}
	if got := SafeParse(""); !got.IsZero() {
		t.Errorf("SafeParse(\"\") = %s, want 0", got)
	}
	if got := SafeParse("not-a-number"); !got.IsZero() {
		t.Errorf("SafeParse(garbage) = %s, want 0", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-10, 0, 100); got != 0 {
		t.Errorf("Clamp(-10) = %v, want 0", got)
	}
	if got := Clamp(150, 0, 100); got != 100 {
		t.Errorf("Clamp(150) = %v, want 100", got)
	}
	if got := Clamp(42, 0, 100); got != 42 {
		t.Errorf("Clamp(42) = %v, want 42", got)
	}
}
