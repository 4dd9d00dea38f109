// Package refdata holds the static reference lists the ranking engine scores
// against: category names, season tags, and the curated city directory.
// Built-in data ships with the binary; an optional YAML file overrides it and
// can be hot-reloaded while the server runs.
package refdata

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/festmap/suggest/internal/models"
)

// Store provides concurrency-safe snapshots of the reference lists. The
// version counter advances on every successful reload so callers can cache
// work derived from a snapshot and invalidate it only when the data changed.
type Store struct {
	mu         sync.RWMutex
	version    uint64
	categories []string
	seasons    []string
	cities     []models.City
}

type fileFormat struct {
	Categories []string      `yaml:"categories"`
	Seasons    []string      `yaml:"seasons"`
	Cities     []models.City `yaml:"cities"`
}

// NewStore returns a store seeded with the built-in lists.
func NewStore() *Store {
	return &Store{
		categories: append([]string(nil), defaultCategories...),
		seasons:    append([]string(nil), defaultSeasons...),
		cities:     append([]models.City(nil), defaultCities...),
	}
}

// LoadFile replaces sections of the store from a YAML file. Sections missing
// from the file keep their current values; a section that is present replaces
// the current list wholesale. A parse error leaves the store untouched.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read reference data: %w", err)
	}

	var parsed fileFormat
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("failed to parse reference data: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if parsed.Categories != nil {
		s.categories = parsed.Categories
	}
	if parsed.Seasons != nil {
		s.seasons = parsed.Seasons
	}
	if parsed.Cities != nil {
		s.cities = parsed.Cities
	}
	s.version++
	return nil
}

// Version returns a counter that changes whenever a reload succeeded.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Categories returns a copy of the category list.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.categories...)
}

// Seasons returns a copy of the season-tag list.
func (s *Store) Seasons() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.seasons...)
}

// Cities returns a copy of the city directory.
func (s *Store) Cities() []models.City {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.City(nil), s.cities...)
}
