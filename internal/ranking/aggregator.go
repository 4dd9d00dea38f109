package ranking

import (
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/festmap/suggest/internal/models"
)

// Aggregator runs all scorers over all candidate sources for one query and
// merges the results into a single deduplicated, ordered suggestion list.
//
// Inputs are treated as immutable snapshots for the duration of one call; the
// Aggregator never mutates them. GenerateSuggestions never panics: malformed
// records degrade to skipped candidates, never to an aborted aggregation.
type Aggregator struct {
	config         *ScoringConfig
	categoryScorer *CategoryScorer
	seasonScorer   *SeasonScorer
	eventScorer    *EventScorer
	placeScorer    *PlaceScorer
	booster        *HistoryBooster
	categories     []string
	seasons        []string
	cities         []models.City
	logger         *zap.Logger
}

// AggregatorOption configures an Aggregator.
type AggregatorOption func(*Aggregator)

// WithLogger sets a logger for debug output (skipped records, source counts).
func WithLogger(l *zap.Logger) AggregatorOption {
	return func(a *Aggregator) { a.logger = l }
}

// WithBooster replaces the history booster, e.g. to inject a test clock.
func WithBooster(b *HistoryBooster) AggregatorOption {
	return func(a *Aggregator) { a.booster = b }
}

// NewAggregator creates an Aggregator over the static reference lists.
// A nil config uses defaults.
func NewAggregator(config *ScoringConfig, categories, seasons []string, cities []models.City, opts ...AggregatorOption) *Aggregator {
	if config == nil {
		config = DefaultScoringConfig()
	}
	config.ApplyDefaults()

	a := &Aggregator{
		config:         config,
		categoryScorer: NewCategoryScorer(config),
		seasonScorer:   NewSeasonScorer(config),
		eventScorer:    NewEventScorer(config),
		placeScorer:    NewPlaceScorer(config),
		booster:        NewHistoryBooster(config),
		categories:     categories,
		seasons:        seasons,
		cities:         cities,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Config returns the scoring configuration.
func (a *Aggregator) Config() *ScoringConfig {
	return a.config
}

// GenerateSuggestions scores all candidate sources against query and returns
// the deduplicated, sorted, truncated suggestion list.
//
// Gating by query length: an empty query returns nothing. History candidates
// are always scanned. Categories, seasons, and the curated city directory
// need two characters. Event titles and network place results need three;
// place results additionally require that a lookup response already exists.
func (a *Aggregator) GenerateSuggestions(query string, events []models.Event, history []models.HistoryRecord, places []models.PlaceResult) (result []models.Suggestion) {
	// The suggestion panel degrades to empty rather than surfacing an error,
	// so the no-panic guarantee lives here instead of in every caller.
	defer func() {
		if r := recover(); r != nil {
			if a.logger != nil {
				a.logger.Error("suggestion aggregation panicked", zap.Any("panic", r))
			}
			result = nil
		}
	}()

	trimmed := strings.TrimSpace(query)
	length := utf8.RuneCountInString(trimmed)
	if length == 0 {
		return nil
	}

	var candidates []models.Suggestion
	candidates = append(candidates, a.historyCandidates(trimmed, history)...)

	if length >= 2 {
		candidates = append(candidates, a.categoryCandidates(trimmed, history)...)
		candidates = append(candidates, a.cityCandidates(trimmed, history)...)
	}
	if length >= 3 {
		candidates = append(candidates, a.eventCandidates(trimmed, events, history)...)
		if len(places) > 0 {
			candidates = append(candidates, a.placeCandidates(trimmed, places, history)...)
		}
	}

	deduped := dedupeByFoldedText(candidates)
	sortSuggestions(deduped)

	if len(deduped) > a.config.MaxSuggestions {
		deduped = deduped[:a.config.MaxSuggestions]
	}
	return deduped
}

// historyCandidates scans the user's history with plain substring containment,
// independent of the scoring tiers, and keeps the first matches in order.
func (a *Aggregator) historyCandidates(query string, history []models.HistoryRecord) []models.Suggestion {
	folded := Fold(query)
	var out []models.Suggestion
	for _, rec := range history {
		if rec.Term == "" || rec.SearchCount < 1 {
			a.skip("history", rec.Term)
			continue
		}
		if !strings.Contains(Fold(rec.Term), folded) {
			continue
		}
		out = append(out, models.Suggestion{
			Text:        rec.Term,
			Type:        models.SuggestionTypeHistory,
			Score:       a.config.HistoryBaseScore + a.booster.Bonus(history, rec.Term),
			SearchCount: rec.SearchCount,
		})
		if len(out) >= a.config.MaxHistory {
			break
		}
	}
	return out
}

func (a *Aggregator) categoryCandidates(query string, history []models.HistoryRecord) []models.Suggestion {
	var out []models.Suggestion
	for _, name := range a.categories {
		if name == "" {
			continue
		}
		if score := a.categoryScorer.Score(name, query); score > 0 {
			out = append(out, models.Suggestion{
				Text:  name,
				Type:  models.SuggestionTypeCategory,
				Score: score + a.booster.Bonus(history, name),
			})
		}
	}
	for _, name := range a.seasons {
		if name == "" {
			continue
		}
		if score := a.seasonScorer.Score(name, query); score > 0 {
			out = append(out, models.Suggestion{
				Text:  name,
				Type:  models.SuggestionTypeSeason,
				Score: score + a.booster.Bonus(history, name),
			})
		}
	}
	return out
}

func (a *Aggregator) cityCandidates(query string, history []models.HistoryRecord) []models.Suggestion {
	var out []models.Suggestion
	for _, city := range a.cities {
		if city.Name == "" {
			a.skip("city", city.Name)
			continue
		}
		if score := a.placeScorer.ScoreCity(city, query); score > 0 {
			out = append(out, models.Suggestion{
				Text:  city.Name,
				Type:  models.SuggestionTypePlace,
				Score: score + a.booster.Bonus(history, city.Name),
			})
		}
	}
	return out
}

// eventCandidates applies the acceptance floor to the raw scorer result so
// weak substring hits stay out even when a history bonus would lift them.
func (a *Aggregator) eventCandidates(query string, events []models.Event, history []models.HistoryRecord) []models.Suggestion {
	var out []models.Suggestion
	for _, event := range events {
		if event.Title == "" {
			a.skip("event", event.ID)
			continue
		}
		score := a.eventScorer.Score(event, query)
		if score < a.config.EventMinScore {
			continue
		}
		out = append(out, models.Suggestion{
			Text:  event.Title,
			Type:  models.SuggestionTypeEvent,
			Score: score + a.booster.Bonus(history, event.Title),
		})
		if len(out) >= a.config.MaxEvents {
			break
		}
	}
	return out
}

func (a *Aggregator) placeCandidates(query string, places []models.PlaceResult, history []models.HistoryRecord) []models.Suggestion {
	var out []models.Suggestion
	for _, place := range places {
		if place.DisplayName == "" {
			a.skip("place", place.DisplayName)
			continue
		}
		if score := a.placeScorer.ScoreRemote(place, query); score > 0 {
			out = append(out, models.Suggestion{
				Text:  place.DisplayName,
				Type:  models.SuggestionTypePlace,
				Score: score + a.booster.Bonus(history, place.DisplayName),
			})
		}
		if len(out) >= a.config.MaxPlaces {
			break
		}
	}
	return out
}

func (a *Aggregator) skip(source, id string) {
	if a.logger != nil {
		a.logger.Debug("skipping malformed candidate", zap.String("source", source), zap.String("id", id))
	}
}

// dedupeByFoldedText keeps exactly one suggestion per folded text: the
// highest-scoring variant, resolving ties in favor of the first seen. This is
// an explicit reduction; a plain map insert would silently keep the last
// variant instead.
func dedupeByFoldedText(candidates []models.Suggestion) []models.Suggestion {
	index := make(map[string]int, len(candidates))
	out := make([]models.Suggestion, 0, len(candidates))
	for _, cand := range candidates {
		key := Fold(cand.Text)
		if at, seen := index[key]; seen {
			if cand.Score > out[at].Score {
				out[at] = cand
			}
			continue
		}
		index[key] = len(out)
		out = append(out, cand)
	}
	return out
}

// sortSuggestions orders by score descending, then type priority ascending
// (history before categories before events before places), then text.
func sortSuggestions(suggestions []models.Suggestion) {
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		if pi, pj := suggestions[i].Type.Priority(), suggestions[j].Type.Priority(); pi != pj {
			return pi < pj
		}
		return suggestions[i].Text < suggestions[j].Text
	})
}
