package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  host: "127.0.0.1"
  port: 9000
history:
  database_path: "test.db"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9000 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.History.DatabasePath == "" {
		t.Error("database_path should be set")
	}
	if cfg.Debug {
		t.Error("debug should default to false when unset")
	}
}

func TestLoad_debugTrue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
debug: true
server:
  host: "localhost"
  port: 8080
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Error("debug should be true when set in config")
	}
}

func TestLoad_expandPathDotSlashRelativeToConfigDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
history:
  database_path: "./data/history.db"
refdata:
  path: "./refdata.yaml"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	wantDB := filepath.Join(dir, "data", "history.db")
	if cfg.History.DatabasePath != wantDB {
		t.Errorf("database_path = %s, want %s", cfg.History.DatabasePath, wantDB)
	}
	wantRef := filepath.Join(dir, "refdata.yaml")
	if cfg.RefData.Path != wantRef {
		t.Errorf("refdata path = %s, want %s", cfg.RefData.Path, wantRef)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	if cfg.Server.Host != "localhost" {
		t.Errorf("default host: got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port: got %d", cfg.Server.Port)
	}
	if cfg.Places.BaseURL == "" {
		t.Error("default place-lookup base URL should be set")
	}
	if cfg.Places.MinRequestInterval() != time.Second {
		t.Errorf("default min request interval: got %v, want 1s", cfg.Places.MinRequestInterval())
	}
	if cfg.Suggest.SettleDelay() != 300*time.Millisecond {
		t.Errorf("default settle delay: got %v, want 300ms", cfg.Suggest.SettleDelay())
	}
	if cfg.Ranking.CategoryExactScore != 100 {
		t.Errorf("ranking defaults not applied: %+v", cfg.Ranking)
	}
	if cfg.Ranking.MaxSuggestions != 12 {
		t.Errorf("default max suggestions: got %d", cfg.Ranking.MaxSuggestions)
	}
}

func TestPlacesConfig_EnabledOrDefault(t *testing.T) {
	t.Run("nil_returns_true", func(t *testing.T) {
		p := &PlacesConfig{}
		if !p.EnabledOrDefault() {
			t.Error("EnabledOrDefault() = false, want true")
		}
	})
	t.Run("false_returns_false", func(t *testing.T) {
		f := false
		p := &PlacesConfig{Enabled: &f}
		if p.EnabledOrDefault() {
			t.Error("EnabledOrDefault() = true, want false")
		}
	})
}

func TestRefDataConfig_WatchOrDefault(t *testing.T) {
	t.Run("no_path_defaults_false", func(t *testing.T) {
		r := &RefDataConfig{}
		if r.WatchOrDefault() {
			t.Error("WatchOrDefault() = true without a path, want false")
		}
	})
	t.Run("path_defaults_true", func(t *testing.T) {
		r := &RefDataConfig{Path: "/tmp/refdata.yaml"}
		if !r.WatchOrDefault() {
			t.Error("WatchOrDefault() = false with a path, want true")
		}
	})
	t.Run("explicit_false_wins", func(t *testing.T) {
		f := false
		r := &RefDataConfig{Path: "/tmp/refdata.yaml", Watch: &f}
		if r.WatchOrDefault() {
			t.Error("WatchOrDefault() = true, want false when explicitly disabled")
		}
	})
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saved.yaml")
	cfg := &Config{
		Server:  ServerConfig{Host: "localhost", Port: 9090},
		History: HistoryConfig{DatabasePath: "/tmp/history.db"},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("loaded port: got %d", loaded.Server.Port)
	}
}
