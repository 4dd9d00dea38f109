package ranking

// ScoringConfig holds all tunable values for suggestion scoring.
type ScoringConfig struct {
	// Category scoring values
	CategoryExactScore    float64 `yaml:"category_exact_score"`    // default: 100
	CategoryBoundaryScore float64 `yaml:"category_boundary_score"` // default: 90

	// Season tag scoring values
	SeasonExactScore    float64 `yaml:"season_exact_score"`    // default: 95
	SeasonBoundaryScore float64 `yaml:"season_boundary_score"` // default: 85

	// Event title scoring values
	EventExactScore     float64 `yaml:"event_exact_score"`     // default: 90
	EventBoundaryScore  float64 `yaml:"event_boundary_score"`  // default: 70
	EventSubstringScore float64 `yaml:"event_substring_score"` // default: 30
	EventMinScore       float64 `yaml:"event_min_score"`       // default: 50
	PopularityDivisor   float64 `yaml:"popularity_divisor"`    // default: 10
	PopularityBonusCap  float64 `yaml:"popularity_bonus_cap"`  // default: 20

	// Place scoring values, split by priority tier of the city
	PlaceExactTopScore    float64 `yaml:"place_exact_top_score"`    // default: 100
	PlaceExactScore       float64 `yaml:"place_exact_score"`        // default: 90
	PlaceBoundaryTopScore float64 `yaml:"place_boundary_top_score"` // default: 95
	PlaceBoundaryScore    float64 `yaml:"place_boundary_score"`     // default: 80
	PlaceSubstringScore   float64 `yaml:"place_substring_score"`    // default: 40
	RemotePlacePenalty    float64 `yaml:"remote_place_penalty"`     // default: 10

	// Fuzzy place matching: a query at least PlaceFuzzyMinLength runes long
	// that is within PlaceFuzzyDistance edits of a word prefix of a place name
	// counts as a boundary match.
	PlaceFuzzyDistance  int `yaml:"place_fuzzy_distance"`   // default: 1
	PlaceFuzzyMinLength int `yaml:"place_fuzzy_min_length"` // default: 4

	// History suggestion scoring
	HistoryBaseScore float64 `yaml:"history_base_score"` // default: 50

	// History bonus values
	FrequentBonus    float64 `yaml:"frequent_bonus"`     // default: 30 (count > 5)
	RegularBonus     float64 `yaml:"regular_bonus"`      // default: 20 (count > 2)
	OccasionalBonus  float64 `yaml:"occasional_bonus"`   // default: 10 (count >= 1)
	RecentWeekBonus  float64 `yaml:"recent_week_bonus"`  // default: 15 (<= 7 days)
	RecentMonthBonus float64 `yaml:"recent_month_bonus"` // default: 5 (<= 30 days)

	// Result caps
	MaxHistory     int `yaml:"max_history"`     // default: 3
	MaxEvents      int `yaml:"max_events"`      // default: 10
	MaxPlaces      int `yaml:"max_places"`      // default: 5
	MaxSuggestions int `yaml:"max_suggestions"` // default: 12

	// Display bucket caps
	GroupHistoryCap    int `yaml:"group_history_cap"`    // default: 3
	GroupCategoriesCap int `yaml:"group_categories_cap"` // default: 4
	GroupEventsCap     int `yaml:"group_events_cap"`     // default: 4
	GroupPlacesCap     int `yaml:"group_places_cap"`     // default: 3
}

// DefaultScoringConfig returns the default scoring configuration.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		CategoryExactScore:    100,
		CategoryBoundaryScore: 90,

		SeasonExactScore:    95,
		SeasonBoundaryScore: 85,

		EventExactScore:     90,
		EventBoundaryScore:  70,
		EventSubstringScore: 30,
		EventMinScore:       50,
		PopularityDivisor:   10,
		PopularityBonusCap:  20,

		PlaceExactTopScore:    100,
		PlaceExactScore:       90,
		PlaceBoundaryTopScore: 95,
		PlaceBoundaryScore:    80,
		PlaceSubstringScore:   40,
		RemotePlacePenalty:    10,
		PlaceFuzzyDistance:    1,
		PlaceFuzzyMinLength:   4,
		HistoryBaseScore:      50,

		FrequentBonus:    30,
		RegularBonus:     20,
		OccasionalBonus:  10,
		RecentWeekBonus:  15,
		RecentMonthBonus: 5,

		MaxHistory:     3,
		MaxEvents:      10,
		MaxPlaces:      5,
		MaxSuggestions: 12,

		GroupHistoryCap:    3,
		GroupCategoriesCap: 4,
		GroupEventsCap:     4,
		GroupPlacesCap:     3,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *ScoringConfig) ApplyDefaults() {
	defaults := DefaultScoringConfig()

	if c.CategoryExactScore == 0 {
		c.CategoryExactScore = defaults.CategoryExactScore
	}
	if c.CategoryBoundaryScore == 0 {
		c.CategoryBoundaryScore = defaults.CategoryBoundaryScore
	}

	if c.SeasonExactScore == 0 {
		c.SeasonExactScore = defaults.SeasonExactScore
	}
	if c.SeasonBoundaryScore == 0 {
		c.SeasonBoundaryScore = defaults.SeasonBoundaryScore
	}

	if c.EventExactScore == 0 {
		c.EventExactScore = defaults.EventExactScore
	}
	if c.EventBoundaryScore == 0 {
		c.EventBoundaryScore = defaults.EventBoundaryScore
	}
	if c.EventSubstringScore == 0 {
		c.EventSubstringScore = defaults.EventSubstringScore
	}
	if c.EventMinScore == 0 {
		c.EventMinScore = defaults.EventMinScore
	}
	if c.PopularityDivisor == 0 {
		c.PopularityDivisor = defaults.PopularityDivisor
	}
	if c.PopularityBonusCap == 0 {
		c.PopularityBonusCap = defaults.PopularityBonusCap
	}

	if c.PlaceExactTopScore == 0 {
		c.PlaceExactTopScore = defaults.PlaceExactTopScore
	}
	if c.PlaceExactScore == 0 {
		c.PlaceExactScore = defaults.PlaceExactScore
	}
	if c.PlaceBoundaryTopScore == 0 {
		c.PlaceBoundaryTopScore = defaults.PlaceBoundaryTopScore
	}
	if c.PlaceBoundaryScore == 0 {
		c.PlaceBoundaryScore = defaults.PlaceBoundaryScore
	}
	if c.PlaceSubstringScore == 0 {
		c.PlaceSubstringScore = defaults.PlaceSubstringScore
	}
	if c.RemotePlacePenalty == 0 {
		c.RemotePlacePenalty = defaults.RemotePlacePenalty
	}
	if c.PlaceFuzzyDistance == 0 {
		c.PlaceFuzzyDistance = defaults.PlaceFuzzyDistance
	}
	if c.PlaceFuzzyMinLength == 0 {
		c.PlaceFuzzyMinLength = defaults.PlaceFuzzyMinLength
	}
	if c.HistoryBaseScore == 0 {
		c.HistoryBaseScore = defaults.HistoryBaseScore
	}

	if c.FrequentBonus == 0 {
		c.FrequentBonus = defaults.FrequentBonus
	}
	if c.RegularBonus == 0 {
		c.RegularBonus = defaults.RegularBonus
	}
	if c.OccasionalBonus == 0 {
		c.OccasionalBonus = defaults.OccasionalBonus
	}
	if c.RecentWeekBonus == 0 {
		c.RecentWeekBonus = defaults.RecentWeekBonus
	}
	if c.RecentMonthBonus == 0 {
		c.RecentMonthBonus = defaults.RecentMonthBonus
	}

	if c.MaxHistory == 0 {
		c.MaxHistory = defaults.MaxHistory
	}
	if c.MaxEvents == 0 {
		c.MaxEvents = defaults.MaxEvents
	}
	if c.MaxPlaces == 0 {
		c.MaxPlaces = defaults.MaxPlaces
	}
	if c.MaxSuggestions == 0 {
		c.MaxSuggestions = defaults.MaxSuggestions
	}

	if c.GroupHistoryCap == 0 {
		c.GroupHistoryCap = defaults.GroupHistoryCap
	}
	if c.GroupCategoriesCap == 0 {
		c.GroupCategoriesCap = defaults.GroupCategoriesCap
	}
	if c.GroupEventsCap == 0 {
		c.GroupEventsCap = defaults.GroupEventsCap
	}
	if c.GroupPlacesCap == 0 {
		c.GroupPlacesCap = defaults.GroupPlacesCap
	}
}
