package ingest

import (
	"context"
	"time"
)

// Pipeline is a single ingestion run over the configured teams.
type Pipeline interface {
	Run(ctx context.Context) (*RunSummary, error)
}

// PipelineConfig holds the pacing of a run.
type PipelineConfig struct {
	Name         string
	ArticleDelay time.Duration
	TeamDelay    time.Duration
}
