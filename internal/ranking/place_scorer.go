package ranking

import (
	"unicode/utf8"

	"github.com/festmap/suggest/internal/models"
)

// PlaceScorer scores place names against a query. Curated cities are scored
// with a tier split; free-text geocoder results are scored as non-top-tier
// with a flat penalty, reflecting lower trust in them. Place names tolerate a
// near-miss: a query within one edit of a word prefix still scores at the
// boundary tier, so "muni" finds "München" even though the folded name is
// "munchen".
type PlaceScorer struct {
	config *ScoringConfig
}

// NewPlaceScorer creates a new PlaceScorer with the given config.
func NewPlaceScorer(config *ScoringConfig) *PlaceScorer {
	return &PlaceScorer{config: config}
}

// Name returns the scorer name.
func (s *PlaceScorer) Name() string {
	return "place"
}

// ScoreCity returns the match score for a curated city, or 0 for no match.
func (s *PlaceScorer) ScoreCity(city models.City, query string) float64 {
	return s.score(city.Name, query, city.PriorityTier == 1)
}

// ScoreRemote returns the match score for a free-text place-lookup result,
// or 0 for no match. Remote results are never top-tier and carry the
// configured penalty relative to an equivalent curated-city match.
func (s *PlaceScorer) ScoreRemote(result models.PlaceResult, query string) float64 {
	raw := s.score(result.DisplayName, query, false)
	if raw == 0 {
		return 0
	}
	penalized := raw - s.config.RemotePlacePenalty
	if penalized < 0 {
		return 0
	}
	return penalized
}

func (s *PlaceScorer) score(name, query string, topTier bool) float64 {
	if name == "" || query == "" {
		return 0
	}
	if IsExactMatch(name, query) {
		if topTier {
			return s.config.PlaceExactTopScore
		}
		return s.config.PlaceExactScore
	}
	if IsWordBoundaryMatch(name, query) || s.fuzzyBoundaryMatch(name, query) {
		if topTier {
			return s.config.PlaceBoundaryTopScore
		}
		return s.config.PlaceBoundaryScore
	}
	if ContainsMatch(name, query) {
		return s.config.PlaceSubstringScore
	}
	return 0
}

// fuzzyBoundaryMatch gates fuzzy matching to queries long enough that the
// edit slack cannot pull in unrelated names.
func (s *PlaceScorer) fuzzyBoundaryMatch(name, query string) bool {
	if utf8.RuneCountInString(Fold(query)) < s.config.PlaceFuzzyMinLength {
		return false
	}
	return IsFuzzyBoundaryMatch(name, query, s.config.PlaceFuzzyDistance)
}
