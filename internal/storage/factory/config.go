package factory

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/press-hunter/internal/storage"
	"github.com/DjordjeVuckovic/press-hunter/internal/storage/es"
	"github.com/DjordjeVuckovic/press-hunter/internal/storage/pg"
	"github.com/DjordjeVuckovic/press-hunter/pkg/stringsutil"
)

var ErrMissingCredentials = errors.New("storage credentials are missing")

type StorageConfig struct {
	storage.Type
	Pg *pg.PoolConfig
	Es *es.ClientConfig
}

// LoadEnv reads the storage configuration. STORAGE_TYPE defaults to pg.
// Fixtures are read from Postgres for every backend except in_mem.
func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_TYPE"))))
	if storageType == "" {
		storageType = storage.PG
	}
	if storageType != storage.ES && storageType != storage.PG && storageType != storage.InMem {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.ES, storage.PG, storage.InMem})
	}

	cfg := &StorageConfig{Type: storageType}
	if storageType == storage.InMem {
		return cfg, nil
	}

	connStr := os.Getenv("PG_CONNECTION_STRING")
	if connStr == "" {
		connStr = os.Getenv("DATABASE_URL")
	}
	if connStr == "" {
		slog.Error("PostgreSQL connection string is not set")
		return nil, fmt.Errorf("%w: PG_CONNECTION_STRING or DATABASE_URL must be set", ErrMissingCredentials)
	}
	cfg.Pg = &pg.PoolConfig{ConnStr: connStr}
	if raw := os.Getenv("PG_MAX_CONNS"); raw != "" {
		maxConns, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || maxConns <= 0 {
			return nil, fmt.Errorf("invalid PG_MAX_CONNS value %q: must be a positive integer", raw)
		}
		cfg.Pg.MaxConns = int32(maxConns)
	}
	if raw := os.Getenv("PG_MAX_CONN_IDLE_TIME"); raw != "" {
		idle, err := time.ParseDuration(raw)
		if err != nil || idle <= 0 {
			return nil, fmt.Errorf("invalid PG_MAX_CONN_IDLE_TIME value %q: must be a positive duration", raw)
		}
		cfg.Pg.MaxConnIdleTime = idle
	}

	if storageType == storage.ES {
		esCfg := &es.ClientConfig{
			Addresses: stringsutil.SplitTrim(os.Getenv("ES_ADDRESSES"), ","),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
			APIKey:    os.Getenv("ES_API_KEY"),
		}
		if len(esCfg.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", esCfg.Addresses)
			return nil, fmt.Errorf("%w: ES_ADDRESSES must be set", ErrMissingCredentials)
		}
		cfg.Es = esCfg
	}

	return cfg, nil
}
