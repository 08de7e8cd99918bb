package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/press-hunter/internal/fetch"
	"github.com/DjordjeVuckovic/press-hunter/internal/ingest"
	"github.com/DjordjeVuckovic/press-hunter/internal/storage/factory"
)

// IngestConfig is everything a run needs, read once at startup.
type IngestConfig struct {
	Env             string
	LogLevel        slog.Level
	TeamsConfigPath string
	ArticleDelay    time.Duration
	TeamDelay       time.Duration
	FetchTimeout    time.Duration
	Storage         factory.StorageConfig
}

// LoadIngestConfig reads the run configuration from the environment.
// Storage credentials are checked here so a misconfigured run fails before any fetch.
func LoadIngestConfig() (*IngestConfig, error) {
	level, err := ParseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	articleDelay, err := durationEnv("ARTICLE_DELAY", ingest.DefaultArticleDelay)
	if err != nil {
		return nil, err
	}
	teamDelay, err := durationEnv("TEAM_DELAY", ingest.DefaultTeamDelay)
	if err != nil {
		return nil, err
	}
	fetchTimeout, err := durationEnv("FETCH_TIMEOUT", fetch.DefaultTimeout)
	if err != nil {
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load storage configuration: %w", err)
	}

	return &IngestConfig{
		Env:             os.Getenv("ENV"),
		LogLevel:        level,
		TeamsConfigPath: os.Getenv("TEAMS_CONFIG_PATH"),
		ArticleDelay:    articleDelay,
		TeamDelay:       teamDelay,
		FetchTimeout:    fetchTimeout,
		Storage:         *storageCfg,
	}, nil
}

// ParseLogLevel maps debug|info|warn|error to a slog level. Empty means info.
func ParseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(raw) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
	}
	return level, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s %q: expected a non-negative duration such as 2s", key, raw)
	}
	return d, nil
}
