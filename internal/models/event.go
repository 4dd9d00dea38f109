// Package models defines core data structures for events, search history, and suggestions.
package models

// Event is one entry of the local event snapshot the engine scores against.
type Event struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Location      string `json:"location"`
	AttendeeCount int    `json:"attendee_count"`
}
