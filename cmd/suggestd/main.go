// Package main is the suggestd CLI entry point.
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/festmap/suggest/internal/cli"
	"github.com/festmap/suggest/internal/config"
	"github.com/festmap/suggest/internal/history"
	"github.com/festmap/suggest/internal/models"
	"github.com/festmap/suggest/internal/places"
	"github.com/festmap/suggest/internal/ranking"
	"github.com/festmap/suggest/internal/refdata"
	"github.com/festmap/suggest/internal/server"
	"github.com/festmap/suggest/internal/suggest"
	"github.com/festmap/suggest/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/festmap/suggest.yaml"

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development); if that exists it is used,
// so that "suggestd server" from the project dir uses the project's config.
// Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "suggest":
		runSuggest()
	case "history":
		runHistory()
	case "events":
		runEvents()
	case "version", "--version", "-v":
		fmt.Printf("suggestd version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (candidate skips, reload events, etc.)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	ref := refdata.NewStore()
	if cfg.RefData.Path != "" {
		if err := ref.LoadFile(cfg.RefData.Path); err != nil {
			logger.Warn("reference data load failed, using built-in lists", zap.Error(err))
		}
	}

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if cfg.RefData.WatchOrDefault() {
		watchOpts := []refdata.WatcherOption{}
		if debugMode {
			watchOpts = append(watchOpts, refdata.WithLogger(logger))
		}
		refWatcher := refdata.NewWatcher(ref, cfg.RefData.Path, watchOpts...)
		if err := refWatcher.Start(watchCtx); err != nil {
			logger.Fatal("Failed to start reference data watcher", zap.Error(err))
		}
		defer refWatcher.Stop()
	}

	store, err := history.NewStore(cfg.History.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to initialize history store", zap.Error(err))
	}
	defer store.Close()

	var searcher places.Searcher
	if cfg.Places.EnabledOrDefault() {
		client := places.NewClient(cfg.Places.BaseURL, cfg.Places.Limit, cfg.Places.Timeout(), cfg.Places.UserAgent)
		searcher = places.NewPacedSearcher(client, places.NewPacer(cfg.Places.MinRequestInterval()))
	}

	srv := server.NewServer(ref, store, searcher, cfg, logger)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// buildQuery joins all positional args with spaces so multi-word queries work
// the same with or without shell quoting.
func buildQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func runSuggest() {
	fs := flag.NewFlagSet("suggest", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	userID := fs.String("user", "", "user whose history contributes candidates")
	withPlaces := fs.Bool("places", false, "include the network place lookup")
	outputFormat := fs.String("output", "text", "output format: text or json")
	interactive := fs.Bool("interactive", false, "read queries from stdin and suggest as input settles")
	configPath := fs.String("config", defaultConfigPath, "config file path (interactive mode)")
	eventsPath := fs.String("events", "", "events JSON file for the local snapshot (interactive mode)")
	_ = fs.Parse(os.Args[2:])

	query := buildQuery(fs.Args())
	if *interactive {
		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		runSuggestInteractive(cfg, *userID, *eventsPath, query, *withPlaces)
		return
	}
	req := models.SuggestRequest{Query: query, UserID: *userID, IncludePlaces: *withPlaces}
	body, err := json.Marshal(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Request encoding failed: %v\n", err)
		os.Exit(1)
	}
	resp, err := http.Post(*serverURL+"/api/v1/suggest", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		fmt.Fprintf(os.Stderr, "Suggest failed (%d): %s\n", resp.StatusCode, string(b))
		os.Exit(1)
	}
	var response models.SuggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		fmt.Fprintf(os.Stderr, "Parse failed: %v\n", err)
		os.Exit(1)
	}

	format := cli.OutputText
	switch *outputFormat {
	case "json":
		format = cli.OutputJSON
	case "text":
		format = cli.OutputText
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}
	if err := cli.WriteSuggestions(os.Stdout, &response, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

// runSuggestInteractive drives the debounce coordinator against a locally
// built engine: queries are read line by line and results print once input
// settles, the same path an embedding UI takes.
func runSuggestInteractive(cfg *config.Config, userID, eventsPath, initialQuery string, withPlaces bool) {
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ref := refdata.NewStore()
	if cfg.RefData.Path != "" {
		if err := ref.LoadFile(cfg.RefData.Path); err != nil {
			logger.Warn("reference data load failed, using built-in lists", zap.Error(err))
		}
	}

	snaps := &localSnapshots{userID: userID}
	if userID != "" {
		store, err := history.NewStore(cfg.History.DatabasePath)
		if err != nil {
			logger.Warn("history unavailable, continuing without it", zap.Error(err))
		} else {
			snaps.store = store
			defer store.Close()
		}
	}
	if eventsPath != "" {
		data, err := os.ReadFile(eventsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read events file: %v\n", err)
			os.Exit(1)
		}
		if err := json.Unmarshal(data, &snaps.events); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to parse events file: %v\n", err)
			os.Exit(1)
		}
	}

	agg := ranking.NewAggregator(&cfg.Ranking, ref.Categories(), ref.Seasons(), ref.Cities(), ranking.WithLogger(logger))
	opts := []suggest.Option{
		suggest.WithSettleDelay(cfg.Suggest.SettleDelay()),
		suggest.WithCoordinatorLogger(logger),
	}
	if withPlaces && cfg.Places.EnabledOrDefault() {
		client := places.NewClient(cfg.Places.BaseURL, cfg.Places.Limit, cfg.Places.Timeout(), cfg.Places.UserAgent)
		opts = append(opts, suggest.WithPlaceSearcher(
			places.NewPacedSearcher(client, places.NewPacer(cfg.Places.MinRequestInterval()))))
	}
	coord := suggest.NewCoordinator(agg, ranking.NewGrouper(&cfg.Ranking), snaps,
		interactiveResultPrinter(os.Stdout), opts...)
	defer coord.Close()

	fmt.Println("Type a query and press enter; an empty line clears, Ctrl-D exits.")
	if initialQuery != "" {
		coord.SetQuery(initialQuery)
	}
	interactiveLoop(os.Stdin, coord)
}

// localSnapshots supplies coordinator inputs from local state: a fixed event
// snapshot and the user's history, re-read on every evaluation.
type localSnapshots struct {
	store  *history.Store
	userID string
	events []models.Event
}

func (s *localSnapshots) Events() []models.Event { return s.events }

func (s *localSnapshots) History() []models.HistoryRecord {
	if s.store == nil || s.userID == "" {
		return nil
	}
	records, err := s.store.List(context.Background(), s.userID)
	if err != nil {
		return nil
	}
	return records
}

// interactiveResultPrinter returns an onResult callback rendering each
// delivery as text. Deliveries arrive from timer and lookup goroutines, so
// writes are serialized.
func interactiveResultPrinter(w io.Writer) func(suggest.Result) {
	var mu sync.Mutex
	return func(res suggest.Result) {
		mu.Lock()
		defer mu.Unlock()
		if strings.TrimSpace(res.Query) == "" {
			fmt.Fprintln(w, "(cleared)")
			return
		}
		fmt.Fprintf(w, "\n> %s\n", res.Query)
		resp := models.SuggestResponse{Query: res.Query, Suggestions: res.Suggestions, Grouped: res.Grouped}
		_ = cli.WriteSuggestions(w, &resp, cli.OutputText)
	}
}

// interactiveLoop feeds each input line to the coordinator as the current
// query until EOF.
func interactiveLoop(in io.Reader, coord *suggest.Coordinator) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		coord.SetQuery(scanner.Text())
	}
}

func runHistory() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: suggestd history <select|list|delete> [flags]")
		fmt.Println("  suggestd history select --user <id> <term>   Record a selection")
		fmt.Println("  suggestd history list --user <id>            List a user's history")
		fmt.Println("  suggestd history delete --user <id> <term>   Delete one term")
		os.Exit(1)
	}
	sub := os.Args[2]
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	userID := fs.String("user", "", "user id")
	termType := fs.String("type", "", "term type recorded with a selection")
	_ = fs.Parse(os.Args[3:])
	if *userID == "" {
		fmt.Println("--user is required")
		os.Exit(1)
	}

	switch sub {
	case "select":
		term := buildQuery(fs.Args())
		if term == "" {
			fmt.Println("Usage: suggestd history select --user <id> <term>")
			os.Exit(1)
		}
		body, _ := json.Marshal(map[string]string{"user_id": *userID, "term": term, "type": *termType})
		resp, err := http.Post(*serverURL+"/api/v1/history/select", "application/json", bytes.NewReader(body))
		if err != nil {
			fmt.Printf("Request failed: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			b, _ := io.ReadAll(resp.Body)
			fmt.Printf("Select failed (%d): %s\n", resp.StatusCode, string(b))
			os.Exit(1)
		}
		fmt.Printf("Recorded: %s\n", term)
	case "list":
		resp, err := http.Get(*serverURL + "/api/v1/history?user_id=" + url.QueryEscape(*userID))
		if err != nil {
			fmt.Printf("Request failed: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(resp.Body)
			fmt.Printf("List failed (%d): %s\n", resp.StatusCode, string(b))
			os.Exit(1)
		}
		var out struct {
			History []models.HistoryRecord `json:"history"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			fmt.Printf("Parse failed: %v\n", err)
			os.Exit(1)
		}
		for _, rec := range out.History {
			fmt.Printf("%3dx  %-10s  %s\n", rec.SearchCount, rec.Type, rec.Term)
		}
	case "delete":
		term := buildQuery(fs.Args())
		if term == "" {
			fmt.Println("Usage: suggestd history delete --user <id> <term>")
			os.Exit(1)
		}
		target := fmt.Sprintf("%s/api/v1/history?user_id=%s&term=%s",
			*serverURL, url.QueryEscape(*userID), url.QueryEscape(term))
		req, _ := http.NewRequest(http.MethodDelete, target, nil)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			fmt.Printf("Request failed: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(resp.Body)
			fmt.Printf("Delete failed (%d): %s\n", resp.StatusCode, string(b))
			os.Exit(1)
		}
		fmt.Printf("Deleted: %s\n", term)
	default:
		fmt.Printf("Unknown history subcommand: %s\n", sub)
		os.Exit(1)
	}
}

func runEvents() {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: suggestd events <events.json>")
		os.Exit(1)
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Printf("Failed to read events file: %v\n", err)
		os.Exit(1)
	}
	var events []models.Event
	if err := json.Unmarshal(data, &events); err != nil {
		fmt.Printf("Failed to parse events file: %v\n", err)
		os.Exit(1)
	}

	req, _ := http.NewRequest(http.MethodPut, *serverURL+"/api/v1/events", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("Request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		fmt.Printf("Replace failed (%d): %s\n", resp.StatusCode, string(b))
		os.Exit(1)
	}
	fmt.Printf("Replaced event snapshot with %d event(s)\n", len(events))
}

func printUsage() {
	fmt.Println(`suggestd - Search suggestion service for local event discovery

Usage:
  suggestd server [flags]                      Start the HTTP server
  suggestd suggest [flags] <query>             Request suggestions for a query
  suggestd history <select|list|delete>        Manage a user's search history
  suggestd events <events.json>                Replace the event snapshot
  suggestd version                             Show version
  suggestd help                                Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/festmap/suggest.yaml)
  --debug            Enable debug logging (candidate skips, reload events, etc.)

Suggest Flags:
  --server string    Server URL (default: http://localhost:8080)
  --user string      User whose history contributes candidates
  --places           Include the network place lookup
  --output string    Output format: text or json (default: text)
  --interactive      Read queries from stdin, suggesting as input settles
  --config string    Config file path (interactive mode)
  --events string    Events JSON file for the local snapshot (interactive mode)

History Flags:
  --server string    Server URL (default: http://localhost:8080)
  --user string      User id (required)
  --type string      Term type recorded with a selection

Examples:
  suggestd server
  suggestd suggest "konz"
  suggestd suggest --user u1 --places "münchen"
  suggestd suggest --interactive --events dev/events.json
  suggestd history select --user u1 --type category Konzert
  suggestd history list --user u1
  suggestd events dev/events.json`)
}
