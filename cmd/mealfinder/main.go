package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/mealfinder/internal/adapter"
	"github.com/mmcdole/mealfinder/internal/mealdb"
	"github.com/mmcdole/mealfinder/internal/service"
	"github.com/mmcdole/mealfinder/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

// defaultPlainWidth is used when stdout is not a terminal
const defaultPlainWidth = 80

func main() {
	var (
		showVersion bool
		query       string
		configPath  string
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&query, "q", "", "search once, print the results and exit")
	flag.StringVar(&configPath, "config", "", "path to config file (default "+adapter.ConfigDir()+"/config.yaml)")
	flag.Parse()

	if showVersion {
		fmt.Printf("mealfinder %s\n", Version)
		return
	}

	// Positional words are the query when -q is absent
	if !isFlagSet("q") && flag.NArg() > 0 {
		query = strings.Join(flag.Args(), " ")
	}
	plain := isFlagSet("q") || flag.NArg() > 0 || !term.IsTerminal(int(os.Stdout.Fd()))

	if err := run(configPath, plain, query); err != nil {
		if !errors.Is(err, tui.ErrSearchFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(configPath string, plain bool, query string) error {
	// Load configuration
	cfg, err := adapter.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, logFile, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		defer logFile.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting mealfinder", "version", Version, "plain", plain)

	client, err := mealdb.NewClient(cfg.API.BaseURL, logger, mealdb.WithUserAgent(cfg.API.UserAgent))
	if err != nil {
		return fmt.Errorf("failed to create recipe client: %w", err)
	}

	sessionOpts := []service.SessionOption{service.WithSessionLogger(logger)}
	if cfg.Session.DiscardStale {
		sessionOpts = append(sessionOpts, service.WithStaleGuard())
	}
	session := service.NewSearchSession(client, sessionOpts...)
	defer session.Close()

	if plain {
		return tui.RunPlain(session, query, os.Stdout, cfg.UI.ExcerptLength, plainWidth())
	}

	launcher := adapter.NewLauncher(cfg.Viewer.Command, cfg.Viewer.Args, logger)

	model := tui.NewModel(session, launcher, tui.Options{
		ExcerptLength: cfg.UI.ExcerptLength,
		Logger:        logger,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// plainWidth returns the terminal width for wrapping plain output
func plainWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultPlainWidth
	}
	return width
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
