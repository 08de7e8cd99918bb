package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/press-hunter/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Storer writes press comments to the press_comments table.
type Storer struct {
	db *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	return &Storer{db: pool.conn}, nil
}

func (s *Storer) Exists(ctx context.Context, articleURL string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM press_comments WHERE article_url = $1)`

	var exists bool
	if err := s.db.QueryRow(ctx, query, articleURL).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check comment existence: %w", err)
	}
	return exists, nil
}

// Save inserts the comment. A row with the same article URL is left untouched.
func (s *Storer) Save(ctx context.Context, comment domain.PressComment) error {
	if comment.ID == "" {
		comment.ID = domain.NewCommentID(comment.ArticleURL)
	}

	cmd := `
		INSERT INTO press_comments (id, fixture_id, team_id, article_url, article_title, published_at, speaker, comment_text)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (article_url) DO NOTHING;
	`
	tag, err := s.db.Exec(
		ctx,
		cmd,
		comment.ID,
		comment.FixtureID,
		comment.TeamID,
		comment.ArticleURL,
		comment.ArticleTitle,
		comment.PublishedAt,
		comment.Speaker,
		comment.CommentText,
	)
	if err != nil {
		return fmt.Errorf("failed to insert press comment: %w", err)
	}

	if tag.RowsAffected() == 0 {
		slog.Info("Press comment already stored", "id", comment.ID, "url", comment.ArticleURL)
	}
	return nil
}
