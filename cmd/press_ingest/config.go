package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/press-hunter/internal/app"
	"github.com/DjordjeVuckovic/press-hunter/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

func (as *AppConfig) Load() (*app.IngestConfig, error) {
	if err := env.LoadDotEnv(as.ENV, "cmd/press_ingest/.env", ".env"); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	cfg, err := app.LoadIngestConfig()
	if err != nil {
		return nil, err
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)
	return cfg, nil
}
