// Package main is the entry point for the tripplan CLI.
// Its sole responsibility is wiring dependencies together and dispatching
// the command. No business logic belongs here.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Nazish-kiran/travel-planner/internal/cli"
	"github.com/Nazish-kiran/travel-planner/internal/config"
	"github.com/Nazish-kiran/travel-planner/internal/destinfo"
	"github.com/Nazish-kiran/travel-planner/internal/service"
	"github.com/Nazish-kiran/travel-planner/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		return 1
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger. Logs go to stderr so stdout
	// stays clean for command output.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelWarn
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Ctrl-C cancels in-flight work (API lookups, DB writes) cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ----------------------------------------------------------
	db, err := store.OpenDB(cfg.DataPath)
	if err != nil {
		slog.Error("failed to open trip database", "path", cfg.DataPath, "error", err)
		return 1
	}
	defer db.Close()

	if err := store.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate trip database", "error", err)
		return 1
	}

	// --- Document store ---------------------------------------------------
	// The store's initial value comes from the persisted slot; a corrupt
	// slot degrades to "no trip" inside the mirror, never an error here.
	documents, err := store.Open(ctx, store.NewSQLiteMirror(db))
	if err != nil {
		slog.Error("failed to load trip", "error", err)
		return 1
	}

	// --- Services & CLI ---------------------------------------------------
	app := &cli.App{
		Trips: service.NewTripService(documents),
		Lookup: destinfo.NewService(destinfo.NewClient(destinfo.Config{
			GeocodingBaseURL: cfg.API.GeocodingBaseURL,
			WeatherBaseURL:   cfg.API.WeatherBaseURL,
			CountriesBaseURL: cfg.API.CountriesBaseURL,
			PrayerBaseURL:    cfg.API.PrayerBaseURL,
			CurrencyBaseURL:  cfg.API.CurrencyBaseURL,
			Timeout:          cfg.API.Timeout,
		})),
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}

	return app.Run(ctx, os.Args[1:])
}
