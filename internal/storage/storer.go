package storage

import (
	"context"

	"github.com/DjordjeVuckovic/press-hunter/internal/domain"
)

// Storer persists press comments. Exists and Save are used as a non-transactional
// check-then-insert by a single periodic job.
type Storer interface {
	Exists(ctx context.Context, articleURL string) (bool, error)
	Save(ctx context.Context, comment domain.PressComment) error
}

// FixtureReader is the read-only view of the external fixture store.
// Results are ordered by match date, newest first, and capped at query.Limit when positive.
type FixtureReader interface {
	FindFixtures(ctx context.Context, query domain.FixtureQuery) ([]domain.Fixture, error)
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
