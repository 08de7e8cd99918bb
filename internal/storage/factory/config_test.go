package factory

import (
	"context"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/press-hunter/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"STORAGE_TYPE", "PG_CONNECTION_STRING", "DATABASE_URL", "ES_ADDRESSES", "ES_INDEX_NAME", "ES_USERNAME", "ES_PASSWORD", "ES_API_KEY", "PG_MAX_CONNS", "PG_MAX_CONN_IDLE_TIME"} {
		t.Setenv(key, "")
	}
}

func TestLoadEnv_DefaultsToPostgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("PG_CONNECTION_STRING", "postgres://u:p@localhost:5432/press")

	cfg, err := LoadEnv()

	require.NoError(t, err)
	assert.Equal(t, storage.PG, cfg.Type)
	require.NotNil(t, cfg.Pg)
	assert.Equal(t, "postgres://u:p@localhost:5432/press", cfg.Pg.ConnStr)
	assert.Nil(t, cfg.Es)
}

func TestLoadEnv_FallsBackToDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://fallback")

	cfg, err := LoadEnv()

	require.NoError(t, err)
	assert.Equal(t, "postgres://fallback", cfg.Pg.ConnStr)
}

func TestLoadEnv_MissingCredentials(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "pg without connection string", env: map[string]string{"STORAGE_TYPE": "pg"}},
		{name: "es without addresses", env: map[string]string{"STORAGE_TYPE": "es", "PG_CONNECTION_STRING": "postgres://x"}},
		{name: "es without postgres", env: map[string]string{"STORAGE_TYPE": "es", "ES_ADDRESSES": "http://localhost:9200"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadEnv()

			assert.ErrorIs(t, err, ErrMissingCredentials)
		})
	}
}

func TestLoadEnv_Elasticsearch(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_TYPE", "ES")
	t.Setenv("PG_CONNECTION_STRING", "postgres://x")
	t.Setenv("ES_ADDRESSES", "http://es1:9200, http://es2:9200,")
	t.Setenv("ES_INDEX_NAME", "comments")

	cfg, err := LoadEnv()

	require.NoError(t, err)
	assert.Equal(t, storage.ES, cfg.Type)
	require.NotNil(t, cfg.Es)
	assert.Equal(t, []string{"http://es1:9200", "http://es2:9200"}, cfg.Es.Addresses)
	assert.Equal(t, "comments", cfg.Es.IndexName)
}

func TestLoadEnv_PoolLimits(t *testing.T) {
	clearEnv(t)
	t.Setenv("PG_CONNECTION_STRING", "postgres://x")
	t.Setenv("PG_MAX_CONNS", "4")
	t.Setenv("PG_MAX_CONN_IDLE_TIME", "90s")

	cfg, err := LoadEnv()

	require.NoError(t, err)
	assert.Equal(t, int32(4), cfg.Pg.MaxConns)
	assert.Equal(t, 90*time.Second, cfg.Pg.MaxConnIdleTime)

	t.Setenv("PG_MAX_CONN_IDLE_TIME", "soon")
	_, err = LoadEnv()
	assert.Error(t, err)

	t.Setenv("PG_MAX_CONN_IDLE_TIME", "")
	t.Setenv("PG_MAX_CONNS", "zero")
	_, err = LoadEnv()
	assert.Error(t, err)
}

func TestLoadEnv_ElasticsearchAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_TYPE", "es")
	t.Setenv("PG_CONNECTION_STRING", "postgres://x")
	t.Setenv("ES_ADDRESSES", "http://es1:9200")
	t.Setenv("ES_API_KEY", "key")

	cfg, err := LoadEnv()

	require.NoError(t, err)
	assert.Equal(t, "key", cfg.Es.APIKey)
}

func TestLoadEnv_InvalidType(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_TYPE", "mongo")

	_, err := LoadEnv()

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingCredentials)
}

func TestNew_InMemNeedsNoCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_TYPE", "in_mem")
	cfg, err := LoadEnv()
	require.NoError(t, err)

	stores, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer stores.Close()

	assert.NotNil(t, stores.Storer)
	assert.NotNil(t, stores.Fixtures)
	assert.NotNil(t, stores.Reader)
	assert.True(t, stores.Health.Healthy(context.Background()))
}

func TestNew_UnsupportedType(t *testing.T) {
	_, err := New(context.Background(), &StorageConfig{Type: "mongo"})

	assert.Error(t, err)
}
