package models

import "time"

// HistoryRecord is one distinct term a user has searched before.
// The history store increments SearchCount and refreshes LastSearchedAt on
// every repeat selection; records are never deleted implicitly.
type HistoryRecord struct {
	Term           string    `json:"term"`
	Type           string    `json:"type"`
	SearchCount    int       `json:"search_count"`
	LastSearchedAt time.Time `json:"last_searched_at"`
}
