package roster

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/press-hunter/internal/domain"
	"gopkg.in/yaml.v3"
)

type File struct {
	Teams []domain.TeamConfig `yaml:"teams"`
}

type YAMLLoader struct {
	reader io.Reader
}

func NewYAMLLoader(reader io.Reader) *YAMLLoader {
	return &YAMLLoader{
		reader: reader,
	}
}

func (l *YAMLLoader) Load(validate bool) ([]domain.TeamConfig, error) {
	decoder := yaml.NewDecoder(l.reader)
	decoder.KnownFields(true)

	var file File
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode roster: %w", err)
	}
	if validate {
		if err := Validate(file.Teams); err != nil {
			return nil, err
		}
	}
	return file.Teams, nil
}

// Load reads and validates the roster at path, or returns DefaultTeams when path is empty.
func Load(path string) ([]domain.TeamConfig, error) {
	if path == "" {
		slog.Info("No roster file configured, using default teams")
		return DefaultTeams(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()

	teams, err := NewYAMLLoader(f).Load(true)
	if err != nil {
		return nil, err
	}
	slog.Info("Roster loaded", "path", path, "teams", len(teams))
	return teams, nil
}
