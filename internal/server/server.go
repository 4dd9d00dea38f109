// Package server provides the HTTP API for the suggestion engine.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/festmap/suggest/internal/config"
	"github.com/festmap/suggest/internal/history"
	"github.com/festmap/suggest/internal/models"
	"github.com/festmap/suggest/internal/places"
	"github.com/festmap/suggest/internal/ranking"
	"github.com/festmap/suggest/internal/refdata"
)

// Server is the HTTP server for the suggest API.
//
// It keeps an in-memory snapshot of nearby events, replaced wholesale by the
// events endpoint; suggestion requests evaluate against whatever snapshot is
// current.
type Server struct {
	refdata  *refdata.Store
	history  *history.Store
	searcher places.Searcher
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server

	eventsMu sync.RWMutex
	events   []models.Event

	engineMu sync.Mutex
	engine   *rankingEngine
}

// rankingEngine bundles the pieces built from one reference-data snapshot.
// It is shared across requests and replaced wholesale after a reload.
type rankingEngine struct {
	aggregator *ranking.Aggregator
	grouper    *ranking.Grouper
	detector   *ranking.IntentDetector
	refVersion uint64
}

// NewServer creates a server with the given dependencies. searcher may be nil
// to disable place lookups.
func NewServer(
	ref *refdata.Store,
	hist *history.Store,
	searcher places.Searcher,
	cfg *config.Config,
	logger *zap.Logger,
) *Server {
	s := &Server{
		refdata:  ref,
		history:  hist,
		searcher: searcher,
		config:   cfg,
		logger:   logger,
	}
	s.rankingEngine()
	return s
}

// rankingEngine returns the engine for the current reference data. It is
// built once and reused; a reference-data reload invalidates it and the next
// call rebuilds from fresh snapshots.
func (s *Server) rankingEngine() *rankingEngine {
	version := s.refdata.Version()
	s.engineMu.Lock()
	defer s.engineMu.Unlock()
	if s.engine != nil && s.engine.refVersion == version {
		return s.engine
	}

	categories := s.refdata.Categories()
	seasons := s.refdata.Seasons()
	cities := s.refdata.Cities()
	topCities := make([]string, 0, len(cities))
	for _, c := range cities {
		if c.PriorityTier == 1 {
			topCities = append(topCities, c.Name)
		}
	}
	s.engine = &rankingEngine{
		aggregator: ranking.NewAggregator(&s.config.Ranking, categories, seasons, cities, ranking.WithLogger(s.logger)),
		grouper:    ranking.NewGrouper(&s.config.Ranking),
		detector:   ranking.NewIntentDetector(topCities, categories, seasons),
		refVersion: version,
	}
	return s.engine
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/v1/suggest", s.handleSuggest)
	r.Put("/api/v1/events", s.handleReplaceEvents)
	r.Post("/api/v1/history/select", s.handleHistorySelect)
	r.Get("/api/v1/history", s.handleHistoryList)
	r.Delete("/api/v1/history", s.handleHistoryDelete)
	r.Get("/health", s.handleHealth)

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// SetEvents replaces the event snapshot.
func (s *Server) SetEvents(events []models.Event) {
	s.eventsMu.Lock()
	s.events = append([]models.Event(nil), events...)
	s.eventsMu.Unlock()
}

// Events returns the current event snapshot.
func (s *Server) Events() []models.Event {
	s.eventsMu.RLock()
	defer s.eventsMu.RUnlock()
	return append([]models.Event(nil), s.events...)
}
