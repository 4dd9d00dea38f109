package ranking

import "testing"

func TestIsExactMatch(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		query     string
		want      bool
	}{
		{"identical", "Konzert", "Konzert", true},
		{"case insensitive", "Konzert", "konzert", true},
		{"umlaut folding", "München", "munchen", true},
		{"eszett folding", "Straßenfest", "strassenfest", true},
		{"prefix is not exact", "Konzert", "Konz", false},
		{"different", "Konzert", "Theater", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsExactMatch(tt.candidate, tt.query); got != tt.want {
				t.Errorf("IsExactMatch(%q, %q) = %v, want %v", tt.candidate, tt.query, got, tt.want)
			}
		})
	}
}

func TestIsWordBoundaryMatch(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		query     string
		want      bool
	}{
		{"start of text", "Konzert am See", "Konz", true},
		{"after space", "Open-Air Konzert", "konz", true},
		{"after hyphen", "Open-Air Konzert", "air", true},
		{"inside word", "Rekonzeption", "konz", false},
		{"exact is also boundary", "Konzert", "Konzert", true},
		{"folded boundary", "Münchner Freiheit", "munch", true},
		{"empty query", "Konzert", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWordBoundaryMatch(tt.candidate, tt.query); got != tt.want {
				t.Errorf("IsWordBoundaryMatch(%q, %q) = %v, want %v", tt.candidate, tt.query, got, tt.want)
			}
		})
	}
}

func TestContainsMatch(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		query     string
		want      bool
	}{
		{"inside word", "Rekonzeption", "konz", true},
		{"boundary is also contained", "Open-Air Konzert", "konz", true},
		{"no hit", "Theater", "konz", false},
		{"folded containment", "Weißwurstfrühstück", "fruhstuck", true},
		{"empty query", "Konzert", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsMatch(tt.candidate, tt.query); got != tt.want {
				t.Errorf("ContainsMatch(%q, %q) = %v, want %v", tt.candidate, tt.query, got, tt.want)
			}
		})
	}
}
