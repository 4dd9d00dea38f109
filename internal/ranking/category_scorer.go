package ranking

// CategoryScorer scores static category names against a query.
// Categories are short and enumerable, so there is no substring tier:
// substring hits on them are too noisy to surface.
type CategoryScorer struct {
	config *ScoringConfig
}

// NewCategoryScorer creates a new CategoryScorer with the given config.
func NewCategoryScorer(config *ScoringConfig) *CategoryScorer {
	return &CategoryScorer{config: config}
}

// Name returns the scorer name.
func (s *CategoryScorer) Name() string {
	return "category"
}

// Score returns the match score for a category name, or 0 for no match.
func (s *CategoryScorer) Score(name, query string) float64 {
	if name == "" || query == "" {
		return 0
	}
	if IsExactMatch(name, query) {
		return s.config.CategoryExactScore
	}
	if IsWordBoundaryMatch(name, query) {
		return s.config.CategoryBoundaryScore
	}
	return 0
}

// SeasonScorer scores seasonal tag names ("Weihnachtsmarkt", "Silvester", ...)
// against a query. Same shape as CategoryScorer with slightly lower values so
// an equally good category match wins.
type SeasonScorer struct {
	config *ScoringConfig
}

// NewSeasonScorer creates a new SeasonScorer with the given config.
func NewSeasonScorer(config *ScoringConfig) *SeasonScorer {
	return &SeasonScorer{config: config}
}

// Name returns the scorer name.
func (s *SeasonScorer) Name() string {
	return "season"
}

// Score returns the match score for a season tag, or 0 for no match.
func (s *SeasonScorer) Score(name, query string) float64 {
	if name == "" || query == "" {
		return 0
	}
	if IsExactMatch(name, query) {
		return s.config.SeasonExactScore
	}
	if IsWordBoundaryMatch(name, query) {
		return s.config.SeasonBoundaryScore
	}
	return 0
}
