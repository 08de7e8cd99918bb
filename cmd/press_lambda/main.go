package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/press-hunter/internal/app"
	"github.com/DjordjeVuckovic/press-hunter/internal/ingest"
	"github.com/aws/aws-lambda-go/lambda"
)

type Response struct {
	StatusCode int                `json:"statusCode"`
	Summary    *ingest.RunSummary `json:"summary,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// Handler runs one ingestion per scheduled invocation.
func Handler(ctx context.Context) (Response, error) {
	cfg, err := app.LoadIngestConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return Response{StatusCode: 500, Error: err.Error()}, err
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	runner, err := app.NewRunner(ctx, cfg, ingest.WithName("press-lambda"))
	if err != nil {
		slog.Error("failed to create pipeline", "error", err)
		return Response{StatusCode: 500, Error: err.Error()}, err
	}
	defer runner.Close()

	summary, err := runner.Coordinator.Run(ctx)
	if err != nil {
		slog.Error("pipeline run interrupted", "error", err, "saved", summary.Saved)
		return Response{StatusCode: 500, Summary: summary, Error: err.Error()}, nil
	}

	return Response{StatusCode: 200, Summary: summary}, nil
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	lambda.Start(Handler)
}
