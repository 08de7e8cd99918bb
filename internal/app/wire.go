package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/press-hunter/internal/discovery"
	"github.com/DjordjeVuckovic/press-hunter/internal/extractor"
	"github.com/DjordjeVuckovic/press-hunter/internal/fetch"
	"github.com/DjordjeVuckovic/press-hunter/internal/ingest"
	"github.com/DjordjeVuckovic/press-hunter/internal/matcher"
	"github.com/DjordjeVuckovic/press-hunter/internal/roster"
	"github.com/DjordjeVuckovic/press-hunter/internal/storage/factory"
)

// Runner owns the resources of one ingestion job.
type Runner struct {
	Coordinator ingest.Pipeline
	stores      *factory.Stores
}

func (r *Runner) Close() {
	if r.stores != nil {
		r.stores.Close()
	}
}

// NewRunner loads the roster, opens storage and wires the coordinator.
func NewRunner(ctx context.Context, cfg *IngestConfig, opts ...ingest.Option) (*Runner, error) {
	teams, err := roster.Load(cfg.TeamsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	stores, err := factory.New(ctx, &cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage: %w", err)
	}
	slog.Info("Storage ready", "type", cfg.Storage.Type)

	fetcher := fetch.NewHTTPFetcher(fetch.WithTimeout(cfg.FetchTimeout))
	coordinatorOpts := append([]ingest.Option{
		ingest.WithArticleDelay(cfg.ArticleDelay),
		ingest.WithTeamDelay(cfg.TeamDelay),
	}, opts...)

	return &Runner{
		Coordinator: ingest.NewCoordinator(
			teams,
			discovery.NewLinkDiscoverer(fetcher),
			extractor.NewArticleExtractor(fetcher),
			matcher.NewFixtureMatcher(stores.Fixtures),
			stores.Storer,
			coordinatorOpts...,
		),
		stores: stores,
	}, nil
}
