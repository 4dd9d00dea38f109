package models

import "fmt"

// SuggestRequest is a suggestion request as accepted by the HTTP API.
type SuggestRequest struct {
	Query string `json:"query"`
	// UserID selects whose search history contributes candidates and bonuses.
	UserID string `json:"user_id,omitempty"`
	// IncludePlaces enables the network place lookup for this request.
	IncludePlaces bool `json:"include_places,omitempty"`
}

// SuggestResponse is the response for a suggestion request.
type SuggestResponse struct {
	Query       string             `json:"query"`
	Suggestions []Suggestion       `json:"suggestions"`
	Grouped     GroupedSuggestions `json:"grouped"`
	Intent      string             `json:"intent,omitempty"`
	QueryTime   int64              `json:"query_time_ms"`
}

// MaxQueryLength bounds the query so pattern construction stays cheap.
const MaxQueryLength = 200

// Validate checks request fields. An empty query is valid and yields an
// empty suggestion list, so it is not an error here.
func (r *SuggestRequest) Validate() error {
	if len(r.Query) > MaxQueryLength {
		return fmt.Errorf("query exceeds %d bytes", MaxQueryLength)
	}
	return nil
}
