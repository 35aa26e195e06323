package rating

import "testing"

func TestValue(t *testing.T) {
	tests := []struct {
		popularity float64
		want       string
	}{
		{0.85, "4.3"},
		{0.9, "4.5"},
		{0.51, "2.6"},
		{0, "0.0"},
		{1, "5.0"},
	}

	for _, tt := range tests {
		if got := Value(tt.popularity); got != tt.want {
			t.Errorf("Value(%v) = %q, want %q", tt.popularity, got, tt.want)
		}
	}
}

func TestStars(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		// remainder 0.3 < 0.5: fourth star is the last filled one
		{"4.3", "★★★★☆"},
		// remainder exactly 0.5 fills the fifth star
		{"4.5", "★★★★★"},
		{"0.0", "☆☆☆☆☆"},
		{"5.0", "★★★★★"},
		{"2.6", "★★★☆☆"},
		{"0.5", "★☆☆☆☆"},
		{"0.4", "☆☆☆☆☆"},
	}

	for _, tt := range tests {
		if got := Stars(tt.value); got != tt.want {
			t.Errorf("Stars(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestStarsClamps(t *testing.T) {
	if got := Stars("7.2"); got != "★★★★★" {
		t.Errorf("Stars(7.2) = %q, want all filled", got)
	}
	if got := Stars("-1"); got != "☆☆☆☆☆" {
		t.Errorf("Stars(-1) = %q, want all empty", got)
	}
	if got := Stars("garbage"); got != "☆☆☆☆☆" {
		t.Errorf("Stars(garbage) = %q, want all empty", got)
	}
}
