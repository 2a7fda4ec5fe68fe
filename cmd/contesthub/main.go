package main

import (
	"log/slog"
	"os"

	"contesthub/internal/config"
	"contesthub/internal/infra/db"
	httpinfra "contesthub/internal/infra/http"
)

func main() {
	cfg := config.FromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.SlogLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	store, err := db.NewStore(cfg)
	if err != nil {
		logger.Error("failed to init store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	srv := httpinfra.NewServer(cfg, store, logger)
	if err := srv.Run(); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
