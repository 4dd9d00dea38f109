package ranking

import (
	"time"

	"github.com/festmap/suggest/internal/models"
)

// HistoryBooster converts a user's past-search frequency and recency into an
// additive score bonus. Every scorer's raw result gets this bonus added
// before the suggestion is emitted; the two contributions are independent.
type HistoryBooster struct {
	config *ScoringConfig
	now    func() time.Time
}

// NewHistoryBooster creates a new HistoryBooster with the given config.
func NewHistoryBooster(config *ScoringConfig) *HistoryBooster {
	return &HistoryBooster{config: config, now: time.Now}
}

// WithClock sets the clock used for recency, for deterministic tests.
func (b *HistoryBooster) WithClock(now func() time.Time) *HistoryBooster {
	b.now = now
	return b
}

// Bonus returns the history bonus for term, or 0 when the user never searched
// it. The frequency and recency components are additive (max total 45 with
// default config).
func (b *HistoryBooster) Bonus(records []models.HistoryRecord, term string) float64 {
	folded := Fold(term)
	if folded == "" {
		return 0
	}
	for _, rec := range records {
		if rec.Term == "" || rec.SearchCount < 1 {
			continue
		}
		if Fold(rec.Term) != folded {
			continue
		}
		return b.frequencyBonus(rec.SearchCount) + b.recencyBonus(rec.LastSearchedAt)
	}
	return 0
}

func (b *HistoryBooster) frequencyBonus(count int) float64 {
	switch {
	case count > 5:
		return b.config.FrequentBonus
	case count > 2:
		return b.config.RegularBonus
	default:
		return b.config.OccasionalBonus
	}
}

// recencyBonus is computed from whole days since the last search.
func (b *HistoryBooster) recencyBonus(lastSearched time.Time) float64 {
	if lastSearched.IsZero() {
		return 0
	}
	days := int(b.now().Sub(lastSearched).Hours() / 24)
	switch {
	case days < 0:
		return 0
	case days <= 7:
		return b.config.RecentWeekBonus
	case days <= 30:
		return b.config.RecentMonthBonus
	default:
		return 0
	}
}
