package main

import (
	"log/slog"
	"os"

	"github.com/DanteArceneaux/wegovy/internal/catalog"
	"github.com/DanteArceneaux/wegovy/internal/config"
	"github.com/DanteArceneaux/wegovy/internal/database"
	"github.com/DanteArceneaux/wegovy/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	configureLogging(cfg.LogLevel)

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		slog.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("migrating database", "error", err)
		os.Exit(1)
	}

	content, err := catalog.Load()
	if err != nil {
		slog.Error("loading catalog", "error", err)
		os.Exit(1)
	}

	srv := server.New(db, cfg, content)
	if err := srv.Start(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func configureLogging(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))
}
