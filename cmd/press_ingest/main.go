package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DjordjeVuckovic/press-hunter/internal/app"
)

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner, err := app.NewRunner(ctx, cfg)
	if err != nil {
		slog.Error("failed to create pipeline", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer runner.Close()
	fmt.Printf("Storage: %s connected\n", cfg.Storage.Type)

	summary, err := runner.Coordinator.Run(ctx)
	if err != nil {
		slog.Error("pipeline run interrupted", "error", err)
	}

	for _, team := range summary.Teams {
		fmt.Printf("[%s] candidates=%d saved=%d duplicates=%d skipped=%d failed=%d\n",
			team.TeamName, team.Candidates, team.Saved, team.Duplicates, team.Skipped, team.Failed)
	}
	fmt.Printf("Done: saved %d press comments (run %s, %s)\n", summary.Saved, summary.RunID, summary.Duration.Round(time.Millisecond))
}
