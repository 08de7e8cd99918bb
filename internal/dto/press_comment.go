package dto

import (
	"time"

	"github.com/DjordjeVuckovic/press-hunter/internal/domain"
	"github.com/DjordjeVuckovic/press-hunter/pkg/pagination"
)

type PressComment struct {
	ID           string    `json:"id"`
	FixtureID    *int      `json:"fixtureId"`
	TeamID       int       `json:"teamId"`
	ArticleURL   string    `json:"articleUrl"`
	ArticleTitle string    `json:"articleTitle,omitempty"`
	PublishedAt  *string   `json:"publishedAt"`
	Speaker      string    `json:"speaker,omitempty"`
	CommentText  string    `json:"commentText"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
}

type PressCommentList = pagination.ListResult[PressComment]

func NewPressComment(c domain.PressComment) PressComment {
	var published *string
	if c.PublishedAt != nil {
		s := domain.FormatTimestamp(*c.PublishedAt)
		published = &s
	}
	return PressComment{
		ID:           c.ID,
		FixtureID:    c.FixtureID,
		TeamID:       c.TeamID,
		ArticleURL:   c.ArticleURL,
		ArticleTitle: c.ArticleTitle,
		PublishedAt:  published,
		Speaker:      c.Speaker,
		CommentText:  c.CommentText,
		CreatedAt:    c.CreatedAt,
	}
}

func NewPressCommentList(comments []domain.PressComment) PressCommentList {
	items := make([]PressComment, 0, len(comments))
	for _, c := range comments {
		items = append(items, NewPressComment(c))
	}
	return pagination.NewListResult(items)
}
