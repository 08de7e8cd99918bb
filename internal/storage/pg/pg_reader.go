package pg

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/press-hunter/internal/domain"
	"github.com/DjordjeVuckovic/press-hunter/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const commentColumns = `id, fixture_id, team_id, article_url, article_title, published_at, speaker, comment_text, created_at`

type Reader struct {
	db *pgxpool.Pool
}

func NewReader(pool *ConnectionPool) (*Reader, error) {
	return &Reader{db: pool.conn}, nil
}

func (r *Reader) ListByTeam(ctx context.Context, teamID int, limit int) ([]domain.PressComment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM press_comments
		WHERE team_id = $1
		ORDER BY published_at DESC NULLS LAST, created_at DESC
		LIMIT $2
	`
	return r.list(ctx, query, teamID, storage.ClampLimit(limit))
}

func (r *Reader) ListByFixture(ctx context.Context, fixtureID int) ([]domain.PressComment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM press_comments
		WHERE fixture_id = $1
		ORDER BY published_at DESC NULLS LAST, created_at DESC
		LIMIT $2
	`
	return r.list(ctx, query, fixtureID, storage.MaxListSize)
}

func (r *Reader) list(ctx context.Context, query string, args ...any) ([]domain.PressComment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query press comments: %w", err)
	}

	comments, err := pgx.CollectRows(rows, scanComment)
	if err != nil {
		return nil, fmt.Errorf("failed to scan press comments: %w", err)
	}
	return comments, nil
}

func scanComment(row pgx.CollectableRow) (domain.PressComment, error) {
	var (
		c       domain.PressComment
		title   *string
		speaker *string
	)
	err := row.Scan(
		&c.ID,
		&c.FixtureID,
		&c.TeamID,
		&c.ArticleURL,
		&title,
		&c.PublishedAt,
		&speaker,
		&c.CommentText,
		&c.CreatedAt,
	)
	if title != nil {
		c.ArticleTitle = *title
	}
	if speaker != nil {
		c.Speaker = *speaker
	}
	return c, err
}
