package ranking

import "testing"

func TestIsFuzzyBoundaryMatch(t *testing.T) {
	tests := []struct {
		name        string
		candidate   string
		query       string
		maxDistance int
		want        bool
	}{
		{"umlaut folded prefix", "München", "muni", 1, true},
		{"plain prefix", "Passau", "pass", 1, true},
		{"second word prefix", "Bad Tölz", "tolc", 1, true},
		{"mid-word never matches", "Rekonzeption", "konz", 1, false},
		{"two edits rejected", "München", "mani", 1, false},
		{"unrelated name", "Berlin", "muni", 1, false},
		{"empty query", "München", "", 1, false},
		{"zero distance disables", "München", "muni", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsFuzzyBoundaryMatch(tt.candidate, tt.query, tt.maxDistance)
			if got != tt.want {
				t.Errorf("IsFuzzyBoundaryMatch(%q, %q, %d) = %v, want %v",
					tt.candidate, tt.query, tt.maxDistance, got, tt.want)
			}
		})
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"muni", "munc", 1},
		{"muni", "muni", 0},
		{"kitten", "sitting", 3},
		{"weiss", "weis", 1},
	}

	for _, tt := range tests {
		if got := editDistance([]rune(tt.a), []rune(tt.b)); got != tt.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
