// Package main is the entry point for the portfolio API server.
//
// Its job is deliberately small: set up logging, load configuration,
// make sure the database directory exists, and hand off to
// internal/server. All actual behaviour lives in the imported packages.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sakif/portfolio-api/internal/config"
	"github.com/sakif/portfolio-api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	if cfg.UsingInsecureSecret() {
		logger.Warn("JWT_SECRET not set — using an insecure built-in secret; " +
			"set JWT_SECRET=$(openssl rand -hex 32) before exposing this server")
	}
	if cfg.OpenRegistration {
		logger.Warn("registration is open — set OPEN_REGISTRATION=false once the admin account exists")
	}

	// The SQLite file lives under a directory that may not exist on a
	// fresh checkout (e.g. data/portfolio.db).
	if dbDir := filepath.Dir(cfg.DBPath); dbDir != "." {
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			logger.Error("failed to create database directory",
				slog.String("dir", dbDir),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start blocks until SIGINT/SIGTERM.
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
