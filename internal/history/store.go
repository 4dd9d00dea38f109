// Package history provides the SQLite-backed search-history store.
//
// Ranking only reads snapshots from here; writes happen when a user selects
// a suggestion, never during ranking itself.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/festmap/suggest/internal/models"
	"github.com/festmap/suggest/internal/ranking"
)

// Store persists per-user search history in SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore opens or creates a SQLite database at dbPath and initializes the
// schema. Parent directories are created if they do not exist.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS search_history (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		term TEXT NOT NULL,
		term_folded TEXT NOT NULL,
		type TEXT NOT NULL,
		search_count INTEGER NOT NULL DEFAULT 1,
		last_searched_at TIMESTAMP NOT NULL,
		UNIQUE(user_id, term_folded)
	);

	CREATE INDEX IF NOT EXISTS idx_history_user ON search_history(user_id, last_searched_at);
	`
	_, err := db.Exec(schema)
	return err
}

// WithClock sets the clock used for timestamps, for deterministic tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// RecordSelection registers that the user selected (searched) term. A first
// selection inserts a record; repeats increment the count and refresh the
// timestamp. Terms are matched case- and diacritic-insensitively.
func (s *Store) RecordSelection(ctx context.Context, userID, term, termType string) error {
	folded := ranking.Fold(term)
	if strings.TrimSpace(folded) == "" {
		return fmt.Errorf("empty history term")
	}

	now := s.now()
	res, err := s.db.ExecContext(ctx,
		`UPDATE search_history
		 SET search_count = search_count + 1, last_searched_at = ?, term = ?, type = ?
		 WHERE user_id = ? AND term_folded = ?`,
		now, term, termType, userID, folded,
	)
	if err != nil {
		return fmt.Errorf("failed to update history: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected > 0 {
		return nil
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO search_history (id, user_id, term, term_folded, type, search_count, last_searched_at)
		 VALUES (?, ?, ?, ?, ?, 1, ?)`,
		uuid.NewString(), userID, term, folded, termType, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert history: %w", err)
	}
	return nil
}

// List returns the user's history snapshot, most recently searched first.
func (s *Store) List(ctx context.Context, userID string) ([]models.HistoryRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT term, type, search_count, last_searched_at
		 FROM search_history WHERE user_id = ?
		 ORDER BY last_searched_at DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []models.HistoryRecord
	for rows.Next() {
		var rec models.HistoryRecord
		if err := rows.Scan(&rec.Term, &rec.Type, &rec.SearchCount, &rec.LastSearchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Delete removes one term from the user's history. Deleting a term that does
// not exist is not an error.
func (s *Store) Delete(ctx context.Context, userID, term string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM search_history WHERE user_id = ? AND term_folded = ?`,
		userID, ranking.Fold(term),
	)
	if err != nil {
		return fmt.Errorf("failed to delete history: %w", err)
	}
	return nil
}

// Count returns the number of history records for the user.
func (s *Store) Count(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM search_history WHERE user_id = ?`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return count, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
