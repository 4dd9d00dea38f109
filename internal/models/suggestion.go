package models

// SuggestionType identifies which source a suggestion came from.
type SuggestionType string

const (
	SuggestionTypeHistory  SuggestionType = "history"
	SuggestionTypeCategory SuggestionType = "category"
	SuggestionTypeSeason   SuggestionType = "season"
	SuggestionTypeEvent    SuggestionType = "event"
	SuggestionTypePlace    SuggestionType = "place"
)

// Priority returns the tie-break rank of the type when scores are equal.
// Lower sorts first. Category and season share a rank.
func (t SuggestionType) Priority() int {
	switch t {
	case SuggestionTypeHistory:
		return 0
	case SuggestionTypeCategory, SuggestionTypeSeason:
		return 1
	case SuggestionTypeEvent:
		return 2
	case SuggestionTypePlace:
		return 3
	default:
		return 4
	}
}

// Suggestion is one ranked entry of the suggestion list.
type Suggestion struct {
	Text        string         `json:"text"`
	Type        SuggestionType `json:"type"`
	Score       float64        `json:"score"`
	SearchCount int            `json:"search_count,omitempty"`
}

// GroupedSuggestions partitions an already-ranked suggestion list into
// per-type display buckets. Buckets preserve input order and never re-rank.
type GroupedSuggestions struct {
	History    []Suggestion `json:"history"`
	Categories []Suggestion `json:"categories"`
	Events     []Suggestion `json:"events"`
	Places     []Suggestion `json:"places"`
}
