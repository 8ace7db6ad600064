package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"eatgo/cmd"
	"eatgo/internal/api"
	"eatgo/internal/db"
	"eatgo/internal/model"
	"eatgo/internal/store"
	"eatgo/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Parse CLI flags
	config, err := cmd.ParseFlags(version, os.Args[1:])
	if errors.Is(err, cmd.ErrVersionRequested) || errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := cmd.NewLogger(config.LogPath, config.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	// Open database
	database, err := db.Open(config.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	client := api.NewClient(api.Options{
		BaseURL:           config.APIBaseURL,
		LoginBaseURL:      config.LoginBaseURL,
		HTTPClient:        &http.Client{Timeout: config.Timeout},
		RequestsPerSecond: config.RateLimit,
		Logger:            logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := store.New(model.NewState())
	orchestrator := store.NewOrchestrator(client, db.NewStorage(database), logger)

	logger.Info("starting eatgo",
		slog.String("version", version),
		slog.String("api_url", config.APIBaseURL),
		slog.String("db", config.DBPath),
	)

	// Create and run Bubble Tea app
	p := tea.NewProgram(ui.New(ctx, s, orchestrator), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error("app exited with error", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
