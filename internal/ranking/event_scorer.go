package ranking

import "github.com/festmap/suggest/internal/models"

// EventScorer scores event titles against a query. Boundary matches carry a
// popularity bonus derived from the attendee count; weak substring-only hits
// still get a score so the Aggregator can apply its floor.
type EventScorer struct {
	config *ScoringConfig
}

// NewEventScorer creates a new EventScorer with the given config.
func NewEventScorer(config *ScoringConfig) *EventScorer {
	return &EventScorer{config: config}
}

// Name returns the scorer name.
func (s *EventScorer) Name() string {
	return "event"
}

// Score returns the match score for an event title, or 0 for no match.
func (s *EventScorer) Score(event models.Event, query string) float64 {
	if event.Title == "" || query == "" {
		return 0
	}
	if IsExactMatch(event.Title, query) {
		return s.config.EventExactScore
	}
	if IsWordBoundaryMatch(event.Title, query) {
		return s.config.EventBoundaryScore + s.popularityBonus(event.AttendeeCount)
	}
	if ContainsMatch(event.Title, query) {
		return s.config.EventSubstringScore
	}
	return 0
}

// popularityBonus converts an attendee count into a capped score bonus.
func (s *EventScorer) popularityBonus(attendees int) float64 {
	if attendees <= 0 {
		return 0
	}
	bonus := float64(attendees) / s.config.PopularityDivisor
	if bonus > s.config.PopularityBonusCap {
		return s.config.PopularityBonusCap
	}
	return bonus
}
