package ranking

import "github.com/festmap/suggest/internal/models"

// Grouper partitions a ranked suggestion list into capped per-type display
// buckets. Buckets are purely a display partition: order within each bucket
// is preserved from the already-sorted input, and nothing is re-ranked.
type Grouper struct {
	config *ScoringConfig
}

// NewGrouper creates a new Grouper with the given config.
func NewGrouper(config *ScoringConfig) *Grouper {
	if config == nil {
		config = DefaultScoringConfig()
	}
	config.ApplyDefaults()
	return &Grouper{config: config}
}

// Group partitions suggestions in a single pass. Category and season
// suggestions share the categories bucket.
func (g *Grouper) Group(suggestions []models.Suggestion) models.GroupedSuggestions {
	grouped := models.GroupedSuggestions{}
	for _, s := range suggestions {
		switch s.Type {
		case models.SuggestionTypeHistory:
			if len(grouped.History) < g.config.GroupHistoryCap {
				grouped.History = append(grouped.History, s)
			}
		case models.SuggestionTypeCategory, models.SuggestionTypeSeason:
			if len(grouped.Categories) < g.config.GroupCategoriesCap {
				grouped.Categories = append(grouped.Categories, s)
			}
		case models.SuggestionTypeEvent:
			if len(grouped.Events) < g.config.GroupEventsCap {
				grouped.Events = append(grouped.Events, s)
			}
		case models.SuggestionTypePlace:
			if len(grouped.Places) < g.config.GroupPlacesCap {
				grouped.Places = append(grouped.Places, s)
			}
		}
	}
	return grouped
}
