package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/reelterm/reel/internal/auth"
	"github.com/reelterm/reel/internal/config"
	"github.com/reelterm/reel/internal/domain"
	"github.com/reelterm/reel/internal/log"
	"github.com/reelterm/reel/internal/service"
	"github.com/reelterm/reel/internal/state"
	"github.com/reelterm/reel/internal/store"
	"github.com/reelterm/reel/internal/tmdb"
	"github.com/reelterm/reel/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("reel %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting reel", "version", Version)

	if !cfg.IsConfigured() {
		fmt.Println("No catalog API key configured.")
		fmt.Println("Set REEL_CATALOG_API_KEY or add catalog.api_key to your config file.")
		return nil
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("reel requires an interactive terminal")
	}

	// Durable storage; falls back to memory-only when unavailable
	st, err := store.Open(cfg.State.Dir)
	if err != nil {
		logger.Warn("failed to open state store, running memory-only", "error", err)
		st, _ = store.Open("")
	}
	defer st.Close()

	// State containers
	catalogState := state.NewCatalogState()
	favoritesState := state.NewFavoritesState()
	sessionState := state.NewSessionState()

	// Persistence manifest: session and favorites are durable, the
	// catalog cache is refreshable and stays memory-only.
	gateway := store.NewGateway(st, logger,
		store.Binding{
			Name:      "session",
			Persist:   true,
			Subscribe: sessionState.Subscribe,
			Snapshot: func() ([]byte, error) {
				return json.Marshal(sessionState.Current())
			},
			Restore: func(data []byte) error {
				var session *domain.Session
				if err := json.Unmarshal(data, &session); err != nil {
					return err
				}
				if session != nil {
					sessionState.SignIn(*session)
				}
				return nil
			},
		},
		store.Binding{
			Name:      "favorites",
			Persist:   true,
			Subscribe: favoritesState.Subscribe,
			Snapshot: func() ([]byte, error) {
				return json.Marshal(favoritesState.Entries())
			},
			Restore: func(data []byte) error {
				var entries []domain.FavoriteEntry
				if err := json.Unmarshal(data, &entries); err != nil {
					return err
				}
				favoritesState.ReplaceAll(entries)
				return nil
			},
		},
		store.Binding{
			Name:    "catalog",
			Persist: false,
		},
	)

	// Restore persisted state before the UI renders anything
	gateway.Hydrate()
	gateway.Watch()

	// Remote catalog client and services
	client := tmdb.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.APIKey, cfg.Catalog.Language, logger)
	authSvc := auth.NewService(st, logger)

	catalogSvc := service.NewCatalogService(client, catalogState, logger)
	favoritesSvc := service.NewFavoritesService(favoritesState, logger)
	sessionSvc := service.NewSessionService(authSvc, sessionState, logger)

	model := tui.NewModel(catalogSvc, favoritesSvc, sessionSvc, catalogState, domain.MediaType(cfg.UI.MediaType))

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	// Make sure the last mutations reach disk before exiting
	gateway.Flush()

	logger.Info("shutting down")
	return nil
}
