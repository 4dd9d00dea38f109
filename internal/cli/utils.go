// Package cli provides CLI output utilities for suggestd.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/festmap/suggest/internal/models"
)

// OutputFormat is the format for suggestion output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteSuggestions writes a suggestion response to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteSuggestions(w io.Writer, response *models.SuggestResponse, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		writeSuggestionsText(w, response)
		return nil
	}
}

func writeSuggestionsText(w io.Writer, response *models.SuggestResponse) {
	if len(response.Suggestions) == 0 {
		fmt.Fprintln(w, "(no suggestions)")
		return
	}
	writeBucket(w, "History", response.Grouped.History)
	writeBucket(w, "Categories", response.Grouped.Categories)
	writeBucket(w, "Events", response.Grouped.Events)
	writeBucket(w, "Places", response.Grouped.Places)
	if response.Intent != "" {
		fmt.Fprintf(w, "\nintent: %s  query_time: %dms\n", response.Intent, response.QueryTime)
	}
}

func writeBucket(w io.Writer, label string, suggestions []models.Suggestion) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", label)
	for _, s := range suggestions {
		if s.SearchCount > 0 {
			fmt.Fprintf(w, "  %6.1f  %s (%dx)\n", s.Score, s.Text, s.SearchCount)
		} else {
			fmt.Fprintf(w, "  %6.1f  %s\n", s.Score, s.Text)
		}
	}
}
