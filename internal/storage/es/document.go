package es

import (
	"time"

	"github.com/DjordjeVuckovic/press-hunter/internal/domain"
)

// Document is the stored shape of a press comment.
type Document struct {
	ID           string     `json:"id"`
	FixtureID    *int       `json:"fixture_id,omitempty"`
	TeamID       int        `json:"team_id"`
	ArticleURL   string     `json:"article_url"`
	ArticleTitle string     `json:"article_title"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	Speaker      string     `json:"speaker"`
	CommentText  string     `json:"comment_text"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toDocument(c domain.PressComment, now time.Time) Document {
	if c.ID == "" {
		c.ID = domain.NewCommentID(c.ArticleURL)
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now.UTC()
	}
	return Document{
		ID:           c.ID,
		FixtureID:    c.FixtureID,
		TeamID:       c.TeamID,
		ArticleURL:   c.ArticleURL,
		ArticleTitle: c.ArticleTitle,
		PublishedAt:  c.PublishedAt,
		Speaker:      c.Speaker,
		CommentText:  c.CommentText,
		CreatedAt:    c.CreatedAt,
	}
}

func (d Document) toDomain() domain.PressComment {
	return domain.PressComment{
		ID:           d.ID,
		FixtureID:    d.FixtureID,
		TeamID:       d.TeamID,
		ArticleURL:   d.ArticleURL,
		ArticleTitle: d.ArticleTitle,
		PublishedAt:  d.PublishedAt,
		Speaker:      d.Speaker,
		CommentText:  d.CommentText,
		CreatedAt:    d.CreatedAt,
	}
}
