// Package suggest provides the debounce coordinator, the outward-facing entry
// point of the suggestion engine.
package suggest

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/festmap/suggest/internal/models"
	"github.com/festmap/suggest/internal/places"
	"github.com/festmap/suggest/internal/ranking"
)

// DefaultSettleDelay is how long input must stop changing before work fires.
const DefaultSettleDelay = 300 * time.Millisecond

// Snapshots supplies the engine's read-only inputs. Implementations return
// snapshots the engine may hold for the duration of one evaluation; the
// engine never mutates them.
type Snapshots interface {
	Events() []models.Event
	History() []models.HistoryRecord
}

// Result is one delivery of ranked suggestions for a query. Query tags the
// result so consumers can discard deliveries for superseded input.
type Result struct {
	Query       string
	Suggestions []models.Suggestion
	Grouped     models.GroupedSuggestions
}

// Coordinator watches query changes, debounces them, and runs the aggregator
// plus the asynchronous place lookup. It guarantees that results for an older
// query never clobber results for a newer one: every fired evaluation and
// every network response is tagged with the query it was issued for and
// discarded when the tag no longer matches the current query.
//
// The pending debounce timer is the only state kept across keystrokes besides
// the cached place-lookup response; each evaluation recomputes from scratch.
type Coordinator struct {
	aggregator *ranking.Aggregator
	grouper    *ranking.Grouper
	snapshots  Snapshots
	searcher   places.Searcher
	onResult   func(Result)
	settle     time.Duration
	logger     *zap.Logger

	mu           sync.Mutex
	timer        *time.Timer
	current      string
	placeResults []models.PlaceResult
	closed       bool
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithSettleDelay overrides the debounce settle delay.
func WithSettleDelay(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.settle = d
		}
	}
}

// WithPlaceSearcher sets the network place-lookup source. The searcher should
// already be paced; the coordinator issues at most one lookup per fired query.
func WithPlaceSearcher(s places.Searcher) Option {
	return func(c *Coordinator) { c.searcher = s }
}

// WithCoordinatorLogger sets a logger for debug output.
func WithCoordinatorLogger(l *zap.Logger) Option {
	return func(c *Coordinator) { c.logger = l }
}

// NewCoordinator creates a coordinator. onResult is invoked from timer and
// lookup goroutines, possibly more than once per query (a second delivery
// when the place lookup lands); it must be safe for concurrent use.
func NewCoordinator(aggregator *ranking.Aggregator, grouper *ranking.Grouper, snapshots Snapshots, onResult func(Result), opts ...Option) *Coordinator {
	c := &Coordinator{
		aggregator: aggregator,
		grouper:    grouper,
		snapshots:  snapshots,
		onResult:   onResult,
		settle:     DefaultSettleDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetQuery registers a query change. Any pending timer is cancelled
// unconditionally and a new one started; clearing the query resets results
// immediately without waiting for the timer.
func (c *Coordinator) SetQuery(query string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.current = query
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if strings.TrimSpace(query) == "" {
		c.placeResults = nil
		c.mu.Unlock()
		c.deliver(Result{Query: query})
		return
	}
	c.timer = time.AfterFunc(c.settle, func() { c.fire(query) })
	c.mu.Unlock()
}

// fire runs one evaluation for the query the expired timer was armed with.
func (c *Coordinator) fire(query string) {
	c.mu.Lock()
	if c.closed || query != c.current {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	placeResults := c.placeResults
	c.mu.Unlock()

	c.evaluate(query, placeResults)

	if c.searcher != nil && utf8.RuneCountInString(strings.TrimSpace(query)) >= 2 {
		go c.lookupPlaces(query)
	}
}

// evaluate aggregates synchronously and delivers, unless the query has been
// superseded in the meantime.
func (c *Coordinator) evaluate(query string, placeResults []models.PlaceResult) {
	var events []models.Event
	var history []models.HistoryRecord
	if c.snapshots != nil {
		events = c.snapshots.Events()
		history = c.snapshots.History()
	}

	suggestions := c.aggregator.GenerateSuggestions(query, events, history, placeResults)
	grouped := c.grouper.Group(suggestions)

	c.mu.Lock()
	stale := query != c.current || c.closed
	c.mu.Unlock()
	if stale {
		return
	}
	c.deliver(Result{Query: query, Suggestions: suggestions, Grouped: grouped})
}

// lookupPlaces issues the network lookup tagged with query and re-evaluates
// when the response still matches the current query. Cancellation of an
// in-flight request is not attempted; staleness is handled here instead.
func (c *Coordinator) lookupPlaces(query string) {
	results, err := c.searcher.Search(context.Background(), query)

	c.mu.Lock()
	if c.closed || query != c.current {
		c.mu.Unlock()
		if c.logger != nil {
			c.logger.Debug("discarding stale place lookup", zap.String("query", query))
		}
		return
	}
	if err != nil {
		c.mu.Unlock()
		if c.logger != nil {
			c.logger.Debug("place lookup degraded to empty", zap.String("query", query), zap.Error(err))
		}
		return
	}
	c.placeResults = results
	c.mu.Unlock()

	if len(results) > 0 {
		c.evaluate(query, results)
	}
}

func (c *Coordinator) deliver(result Result) {
	if c.onResult != nil {
		c.onResult(result)
	}
}

// Close cancels any pending timer and stops further deliveries. In-flight
// lookups finish but their responses are discarded.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
