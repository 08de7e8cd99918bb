package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from .env files.
// ENV_PATH overrides the given paths. A missing file is an error only when env is "local".
// Variables already present in the environment are never overwritten.
func LoadDotEnv(env string, paths ...string) error {
	if p := os.Getenv("ENV_PATH"); p != "" {
		paths = []string{p}
	} else if len(paths) == 0 {
		paths = []string{".env"}
	}

	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}

	if len(existing) == 0 {
		if env == "local" {
			slog.Error("No .env file found in local mode", "paths", paths)
			return os.ErrNotExist
		}
		slog.Debug("Skipping .env ...", "paths", paths)
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		slog.Error("Failed to load environment variables", "paths", existing, "error", err)
		return err
	}
	slog.Info("Loaded environment variables", "paths", existing)
	return nil
}
