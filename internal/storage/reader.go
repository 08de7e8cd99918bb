package storage

import (
	"context"

	"github.com/DjordjeVuckovic/press-hunter/internal/domain"
	"github.com/DjordjeVuckovic/press-hunter/pkg/pagination"
)

const (
	DefaultListSize = 20
	MaxListSize     = 100
)

// Reader serves stored comments, newest publication first. ListByFixture returns
// at most MaxListSize comments.
type Reader interface {
	ListByTeam(ctx context.Context, teamID int, limit int) ([]domain.PressComment, error)
	ListByFixture(ctx context.Context, fixtureID int) ([]domain.PressComment, error)
}

// ClampLimit bounds a requested page size to (0, MaxListSize].
func ClampLimit(limit int) int {
	return pagination.Clamp(limit, DefaultListSize, MaxListSize)
}
