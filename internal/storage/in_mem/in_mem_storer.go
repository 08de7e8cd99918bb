package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/press-hunter/internal/domain"
	"github.com/DjordjeVuckovic/press-hunter/internal/storage"
)

// CommentStore keeps press comments in memory, keyed by article URL.
type CommentStore struct {
	storageLock sync.RWMutex
	storage     map[string]domain.PressComment
	now         func() time.Time
}

func NewCommentStore() *CommentStore {
	return &CommentStore{
		storage: make(map[string]domain.PressComment),
		now:     time.Now,
	}
}

func (s *CommentStore) Exists(_ context.Context, articleURL string) (bool, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	_, ok := s.storage[articleURL]
	return ok, nil
}

// Save ignores a comment whose article URL is already stored.
func (s *CommentStore) Save(_ context.Context, comment domain.PressComment) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, ok := s.storage[comment.ArticleURL]; ok {
		slog.Debug("Comment already stored", "url", comment.ArticleURL)
		return nil
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = s.now().UTC()
	}
	s.storage[comment.ArticleURL] = comment
	slog.Info("Saving comment to in-memory storage", "id", comment.ID, "title", comment.ArticleTitle)
	return nil
}

func (s *CommentStore) ListByTeam(_ context.Context, teamID int, limit int) ([]domain.PressComment, error) {
	comments := s.filter(func(c domain.PressComment) bool { return c.TeamID == teamID })
	limit = storage.ClampLimit(limit)
	if len(comments) > limit {
		comments = comments[:limit]
	}
	return comments, nil
}

func (s *CommentStore) ListByFixture(_ context.Context, fixtureID int) ([]domain.PressComment, error) {
	comments := s.filter(func(c domain.PressComment) bool {
		return c.FixtureID != nil && *c.FixtureID == fixtureID
	})
	if len(comments) > storage.MaxListSize {
		comments = comments[:storage.MaxListSize]
	}
	return comments, nil
}

// All returns every stored comment, newest publication first.
func (s *CommentStore) All() []domain.PressComment {
	return s.filter(func(domain.PressComment) bool { return true })
}

func (s *CommentStore) Len() int {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()
	return len(s.storage)
}

func (s *CommentStore) filter(keep func(domain.PressComment) bool) []domain.PressComment {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	out := make([]domain.PressComment, 0, len(s.storage))
	for _, c := range s.storage {
		if keep(c) {
			out = append(out, c)
		}
	}
	sortNewestFirst(out)
	return out
}

// sortNewestFirst orders by publication time descending, undated comments last.
func sortNewestFirst(comments []domain.PressComment) {
	sort.SliceStable(comments, func(i, j int) bool {
		a, b := comments[i].PublishedAt, comments[j].PublishedAt
		switch {
		case a == nil && b == nil:
			return comments[i].ArticleURL < comments[j].ArticleURL
		case a == nil:
			return false
		case b == nil:
			return true
		case a.Equal(*b):
			return comments[i].ArticleURL < comments[j].ArticleURL
		default:
			return a.After(*b)
		}
	})
}
