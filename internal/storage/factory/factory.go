package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/press-hunter/internal/storage"
	"github.com/DjordjeVuckovic/press-hunter/internal/storage/es"
	"github.com/DjordjeVuckovic/press-hunter/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/press-hunter/internal/storage/pg"
	"github.com/DjordjeVuckovic/press-hunter/pkg/server"
)

// Stores bundles the storage views built for one backend.
type Stores struct {
	Storer   storage.Storer
	Fixtures storage.FixtureReader
	Reader   storage.Reader
	Health   server.HealthChecker

	pool *pg.ConnectionPool
}

func (s *Stores) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// New creates the stores for cfg.Type.
func New(ctx context.Context, cfg *StorageConfig) (*Stores, error) {
	switch cfg.Type {
	case storage.InMem:
		comments := in_mem.NewCommentStore()
		return &Stores{
			Storer:   comments,
			Fixtures: in_mem.NewFixtureStore(),
			Reader:   comments,
			Health:   server.NewOkHealthChecker(),
		}, nil

	case storage.PG:
		pool, err := newPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		storer, err := pg.NewStorer(pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to create PostgreSQL storer: %w", err)
		}
		reader, err := pg.NewReader(pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to create PostgreSQL reader: %w", err)
		}
		return &Stores{
			Storer:   storer,
			Fixtures: pg.NewFixtureReader(pool),
			Reader:   reader,
			Health:   pg.NewHealthChecker(pool),
			pool:     pool,
		}, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("%w: elasticsearch config is nil", ErrMissingCredentials)
		}
		pool, err := newPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		storer, err := es.NewStorer(ctx, *cfg.Es)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to create Elasticsearch storer: %w", err)
		}
		reader, err := es.NewReader(*cfg.Es)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to create Elasticsearch reader: %w", err)
		}
		esHealth, err := es.NewHealthChecker(*cfg.Es)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to create Elasticsearch health checker: %w", err)
		}
		return &Stores{
			Storer:   storer,
			Fixtures: pg.NewFixtureReader(pool),
			Reader:   reader,
			Health:   server.AllHealthy{pg.NewHealthChecker(pool), esHealth},
			pool:     pool,
		}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}

func newPool(ctx context.Context, cfg *StorageConfig) (*pg.ConnectionPool, error) {
	if cfg.Pg == nil {
		return nil, fmt.Errorf("%w: postgres config is nil", ErrMissingCredentials)
	}
	pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
	if err != nil {
		return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
	}
	return pool, nil
}
