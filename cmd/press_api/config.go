package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/press-hunter/internal/app"
	"github.com/DjordjeVuckovic/press-hunter/internal/server"
	"github.com/DjordjeVuckovic/press-hunter/internal/storage/factory"
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

type APIConfig struct {
	Server *server.Config
	factory.StorageConfig
}

func (as *AppConfig) Load() (*APIConfig, error) {
	if err := env.LoadDotEnv(as.ENV, "cmd/press_api/.env", ".env"); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	level, err := app.ParseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}
	slog.SetLogLoggerLevel(level)

	serverCfg, err := server.LoadConfig()
	if err != nil {
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &APIConfig{
		Server:        serverCfg,
		StorageConfig: *storageCfg,
	}, nil
}
