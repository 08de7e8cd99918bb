package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/press-hunter/internal/fetch"
	"github.com/DjordjeVuckovic/press-hunter/internal/ingest"
	"github.com/DjordjeVuckovic/press-hunter/internal/storage"
	"github.com/DjordjeVuckovic/press-hunter/internal/storage/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, key := range []string{
		"ENV", "LOG_LEVEL", "TEAMS_CONFIG_PATH", "ARTICLE_DELAY", "TEAM_DELAY", "FETCH_TIMEOUT",
		"STORAGE_TYPE", "PG_CONNECTION_STRING", "DATABASE_URL", "ES_ADDRESSES",
	} {
		t.Setenv(key, env[key])
	}
}

func TestLoadIngestConfig_Defaults(t *testing.T) {
	setEnv(t, map[string]string{"STORAGE_TYPE": "in_mem"})

	cfg, err := LoadIngestConfig()

	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, ingest.DefaultArticleDelay, cfg.ArticleDelay)
	assert.Equal(t, ingest.DefaultTeamDelay, cfg.TeamDelay)
	assert.Equal(t, fetch.DefaultTimeout, cfg.FetchTimeout)
	assert.Equal(t, storage.InMem, cfg.Storage.Type)
}

func TestLoadIngestConfig_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"STORAGE_TYPE":      "in_mem",
		"LOG_LEVEL":         "debug",
		"ARTICLE_DELAY":     "500ms",
		"TEAM_DELAY":        "0s",
		"FETCH_TIMEOUT":     "30s",
		"TEAMS_CONFIG_PATH": "teams.yaml",
	})

	cfg, err := LoadIngestConfig()

	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 500*time.Millisecond, cfg.ArticleDelay)
	assert.Equal(t, time.Duration(0), cfg.TeamDelay)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "teams.yaml", cfg.TeamsConfigPath)
}

func TestLoadIngestConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad delay", env: map[string]string{"STORAGE_TYPE": "in_mem", "ARTICLE_DELAY": "two"}},
		{name: "negative delay", env: map[string]string{"STORAGE_TYPE": "in_mem", "TEAM_DELAY": "-1s"}},
		{name: "bad level", env: map[string]string{"STORAGE_TYPE": "in_mem", "LOG_LEVEL": "loud"}},
		{name: "missing credentials", env: map[string]string{"STORAGE_TYPE": "pg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)

			_, err := LoadIngestConfig()

			assert.Error(t, err)
		})
	}
}

func TestLoadIngestConfig_MissingCredentialsIsDetectable(t *testing.T) {
	setEnv(t, map[string]string{})

	_, err := LoadIngestConfig()

	assert.ErrorIs(t, err, factory.ErrMissingCredentials)
}

func TestParseLogLevel(t *testing.T) {
	for raw, want := range map[string]slog.Level{"": slog.LevelInfo, "warn": slog.LevelWarn, "ERROR": slog.LevelError, " debug ": slog.LevelDebug} {
		got, err := ParseLogLevel(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestNewRunner_InMemory(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "teams.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
teams:
  - id: 42
    name: Arsenal
    newsIndexUrl: http://127.0.0.1:1/news
    keywords: ["press conference", "arteta"]
    speaker: Arteta
`), 0o600))
	cfg := &IngestConfig{
		TeamsConfigPath: path,
		FetchTimeout:    time.Second,
		Storage:         factory.StorageConfig{Type: storage.InMem},
	}

	// Act
	runner, err := NewRunner(context.Background(), cfg)
	require.NoError(t, err)
	defer runner.Close()
	summary, err := runner.Coordinator.Run(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Saved)
	require.Len(t, summary.Teams, 1)
	assert.Equal(t, "Arsenal", summary.Teams[0].TeamName)
}

func TestNewRunner_InvalidRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.yaml")
	require.NoError(t, os.WriteFile(path, []byte("teams: []\n"), 0o600))

	_, err := NewRunner(context.Background(), &IngestConfig{
		TeamsConfigPath: path,
		Storage:         factory.StorageConfig{Type: storage.InMem},
	})

	assert.Error(t, err)
}
