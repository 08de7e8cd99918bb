// Package main serves stored press comments over HTTP.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/DjordjeVuckovic/press-hunter/internal/router"
	"github.com/DjordjeVuckovic/press-hunter/internal/server"
	"github.com/DjordjeVuckovic/press-hunter/internal/storage/factory"
	"github.com/labstack/echo/v4"
)

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	stores, err := factory.New(context.Background(), &cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create storage", "error", err)
		os.Exit(1)
	}
	defer stores.Close()

	s := server.New(cfg.Server, stores.Health).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Press Hunter API is running")
	})

	router.NewPressRouter(s.Echo, stores.Reader).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		stores.Close()
		os.Exit(1)
	}
}
