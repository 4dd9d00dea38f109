package ranking

import (
	"testing"

	"github.com/festmap/suggest/internal/models"
)

func TestPlaceScorer_ScoreCity(t *testing.T) {
	scorer := NewPlaceScorer(DefaultScoringConfig())
	munich := models.City{Name: "München", PriorityTier: 1}
	passau := models.City{Name: "Passau", PriorityTier: 2}

	tests := []struct {
		name  string
		city  models.City
		query string
		want  float64
	}{
		{"exact top tier", munich, "münchen", 100},
		{"exact folded top tier", munich, "munchen", 100},
		{"exact lower tier", passau, "passau", 90},
		{"boundary top tier", munich, "muni", 95},
		{"boundary lower tier", passau, "pass", 80},
		{"near-miss prefix top tier", munich, "munic", 95},
		{"near-miss prefix lower tier", models.City{Name: "Konstanz", PriorityTier: 2}, "konz", 80},
		{"short query gets no edit slack", munich, "mni", 0},
		{"substring", munich, "chen", 40},
		{"no match", passau, "berlin", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scorer.ScoreCity(tt.city, tt.query); got != tt.want {
				t.Errorf("ScoreCity(%q, %q) = %v, want %v", tt.city.Name, tt.query, got, tt.want)
			}
		})
	}
}

func TestPlaceScorer_ScoreRemote(t *testing.T) {
	scorer := NewPlaceScorer(DefaultScoringConfig())

	tests := []struct {
		name   string
		result models.PlaceResult
		query  string
		want   float64
	}{
		{"exact carries penalty", models.PlaceResult{DisplayName: "Freising"}, "freising", 80},
		{"boundary carries penalty", models.PlaceResult{DisplayName: "Bad Tölz"}, "tolz", 70},
		{"substring carries penalty", models.PlaceResult{DisplayName: "Oberammergau"}, "ammer", 30},
		{"no match stays zero", models.PlaceResult{DisplayName: "Freising"}, "hamburg", 0},
		{"empty display name", models.PlaceResult{}, "freising", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scorer.ScoreRemote(tt.result, tt.query); got != tt.want {
				t.Errorf("ScoreRemote(%q, %q) = %v, want %v", tt.result.DisplayName, tt.query, got, tt.want)
			}
		})
	}
}
