package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

const commentIDLength = 20

// PressComment is a persisted excerpt of a press conference article.
// ArticleURL is the dedup key and ID is derived from it.
type PressComment struct {
	ID           string     `json:"id"`
	FixtureID    *int       `json:"fixtureId,omitempty"`
	TeamID       int        `json:"teamId"`
	ArticleURL   string     `json:"articleUrl"`
	ArticleTitle string     `json:"articleTitle"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
	Speaker      string     `json:"speaker"`
	CommentText  string     `json:"commentText"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// NewCommentID returns the first 20 hex characters of the SHA-256 of the article URL.
func NewCommentID(articleURL string) string {
	sum := sha256.Sum256([]byte(articleURL))
	return hex.EncodeToString(sum[:])[:commentIDLength]
}

// NewPressComment assembles a record for a successfully extracted article.
func NewPressComment(team TeamConfig, link CandidateLink, article ExtractedArticle, fixtureID *int) PressComment {
	return PressComment{
		ID:           NewCommentID(link.URL),
		FixtureID:    fixtureID,
		TeamID:       team.ID,
		ArticleURL:   link.URL,
		ArticleTitle: link.Title,
		PublishedAt:  article.PublishedAt,
		Speaker:      team.Speaker,
		CommentText:  article.CommentText,
	}
}
