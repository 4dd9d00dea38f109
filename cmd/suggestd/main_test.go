package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/festmap/suggest/internal/history"
	"github.com/festmap/suggest/internal/models"
	"github.com/festmap/suggest/internal/ranking"
	"github.com/festmap/suggest/internal/suggest"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"single word", []string{"konzert"}, "konzert"},
		{"multiple words", []string{"konzert", "berlin"}, "konzert berlin"},
		{"single quoted phrase", []string{"konzert berlin"}, "konzert berlin"},
		{"empty args", []string{}, ""},
		{"blank args", []string{"  ", "  "}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildQuery(tt.args)
			if got != tt.expected {
				t.Errorf("buildQuery(%v) = %q, want %q", tt.args, got, tt.expected)
			}
		})
	}
}

// syncBuffer is a bytes.Buffer safe for the concurrent writes the result
// printer produces.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newLoopCoordinator(out *syncBuffer) *suggest.Coordinator {
	cfg := ranking.DefaultScoringConfig()
	agg := ranking.NewAggregator(cfg, []string{"Konzert"}, nil, nil)
	return suggest.NewCoordinator(agg, ranking.NewGrouper(cfg), nil,
		interactiveResultPrinter(out), suggest.WithSettleDelay(5*time.Millisecond))
}

func TestInteractiveLoop_DeliversSettledQuery(t *testing.T) {
	out := &syncBuffer{}
	coord := newLoopCoordinator(out)
	defer coord.Close()

	interactiveLoop(strings.NewReader("konz\n"), coord)

	deadline := time.After(2 * time.Second)
	for !strings.Contains(out.String(), "Konzert") {
		select {
		case <-deadline:
			t.Fatalf("no delivery after input settled, output: %q", out.String())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestInteractiveLoop_EmptyLineClears(t *testing.T) {
	out := &syncBuffer{}
	coord := newLoopCoordinator(out)
	defer coord.Close()

	// Clearing delivers synchronously, so the output is there when the loop
	// returns.
	interactiveLoop(strings.NewReader("\n"), coord)
	if !strings.Contains(out.String(), "(cleared)") {
		t.Errorf("empty line did not clear, output: %q", out.String())
	}
}

func TestLocalSnapshots(t *testing.T) {
	store, err := history.NewStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if err := store.RecordSelection(context.Background(), "u1", "Konzert", "category"); err != nil {
		t.Fatal(err)
	}

	events := []models.Event{{ID: "e1", Title: "Jazz am Fluss"}}
	snaps := &localSnapshots{store: store, userID: "u1", events: events}

	if got := snaps.Events(); len(got) != 1 || got[0].Title != "Jazz am Fluss" {
		t.Errorf("Events() = %+v", got)
	}
	if got := snaps.History(); len(got) != 1 || got[0].Term != "Konzert" {
		t.Errorf("History() = %+v", got)
	}

	// No user id means no history contribution.
	anon := &localSnapshots{store: store}
	if got := anon.History(); len(got) != 0 {
		t.Errorf("History() without user = %+v", got)
	}
}

func TestLoadConfig_prefersCwdConfigWhenDefaultPath(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
debug: true
server:
  host: "localhost"
  port: 8080
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	origWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(origWd) }()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, err := loadConfig(defaultConfigPath)
	if err != nil {
		t.Fatal(err)
	}
	// On macOS, cwd can be /private/var/... while configPath from t.TempDir() is /var/...; compare canonical paths.
	resolvedCanon, _ := filepath.EvalSymlinks(resolved)
	configPathCanon, _ := filepath.EvalSymlinks(configPath)
	if resolvedCanon != configPathCanon {
		t.Errorf("resolved path = %s (canon %s), want %s (canon %s)", resolved, resolvedCanon, configPath, configPathCanon)
	}
	if !cfg.Debug {
		t.Error("debug should be true from cwd config.yaml")
	}
}

func TestLoadConfig_usesExplicitPath(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
server:
  host: "127.0.0.1"
  port: 9000
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, err := loadConfig(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if resolved != configPath {
		t.Errorf("resolved path = %s, want %s", resolved, configPath)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9000 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
}
