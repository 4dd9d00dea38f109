package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/festmap/suggest/internal/models"
)

func sampleResponse() *models.SuggestResponse {
	return &models.SuggestResponse{
		Query: "konz",
		Suggestions: []models.Suggestion{
			{Text: "Konzert", Type: models.SuggestionTypeCategory, Score: 90},
			{Text: "Konzert am See", Type: models.SuggestionTypeHistory, Score: 75, SearchCount: 3},
		},
		Grouped: models.GroupedSuggestions{
			History:    []models.Suggestion{{Text: "Konzert am See", Type: models.SuggestionTypeHistory, Score: 75, SearchCount: 3}},
			Categories: []models.Suggestion{{Text: "Konzert", Type: models.SuggestionTypeCategory, Score: 90}},
		},
		Intent:    "mixed",
		QueryTime: 2,
	}
}

func TestWriteSuggestions_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSuggestions(&buf, sampleResponse(), OutputText); err != nil {
		t.Fatalf("WriteSuggestions failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"History:", "Categories:", "Konzert", "(3x)", "intent: mixed"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Places:") {
		t.Errorf("empty bucket rendered:\n%s", out)
	}
}

func TestWriteSuggestions_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSuggestions(&buf, &models.SuggestResponse{Query: "zzz"}, OutputText); err != nil {
		t.Fatalf("WriteSuggestions failed: %v", err)
	}
	if !strings.Contains(buf.String(), "(no suggestions)") {
		t.Errorf("empty response output: %q", buf.String())
	}
}

func TestWriteSuggestions_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSuggestions(&buf, sampleResponse(), OutputJSON); err != nil {
		t.Fatalf("WriteSuggestions failed: %v", err)
	}
	var decoded models.SuggestResponse
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("JSON output does not round-trip: %v", err)
	}
	if decoded.Query != "konz" || len(decoded.Suggestions) != 2 {
		t.Errorf("decoded response: %+v", decoded)
	}
}
