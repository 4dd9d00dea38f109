package places

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/festmap/suggest/internal/models"
)

// DefaultMinInterval is the minimum spacing between outbound place lookups.
const DefaultMinInterval = time.Second

// Pacer serializes outbound place lookups so at most one request goes out per
// minimum interval, process-wide. Callers await their turn; an in-flight
// request is never interleaved with unrelated work.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a pacer enforcing minInterval between requests.
// Burst is one: there is no credit for idle time beyond a single request.
func NewPacer(minInterval time.Duration) *Pacer {
	if minInterval <= 0 {
		minInterval = DefaultMinInterval
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Every(minInterval), 1)}
}

// Wait blocks until the caller may issue a request, or until ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// AllowAt reports whether a request issued at t would be admitted without
// waiting. It consumes the slot when admitted; used for deterministic tests.
func (p *Pacer) AllowAt(t time.Time) bool {
	return p.limiter.AllowN(t, 1)
}

// PacedSearcher wraps a Searcher so every call first awaits the shared pacer.
type PacedSearcher struct {
	inner Searcher
	pacer *Pacer
}

// NewPacedSearcher wraps inner with the given pacer.
func NewPacedSearcher(inner Searcher, pacer *Pacer) *PacedSearcher {
	return &PacedSearcher{inner: inner, pacer: pacer}
}

// Search awaits the pacer, then delegates to the wrapped searcher.
func (s *PacedSearcher) Search(ctx context.Context, query string) ([]models.PlaceResult, error) {
	if err := s.pacer.Wait(ctx); err != nil {
		return nil, err
	}
	return s.inner.Search(ctx, query)
}
