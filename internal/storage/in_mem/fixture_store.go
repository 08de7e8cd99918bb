package in_mem

import (
	"context"
	"sort"
	"sync"

	"github.com/DjordjeVuckovic/press-hunter/internal/domain"
)

// FixtureStore serves fixtures from memory.
type FixtureStore struct {
	mu       sync.RWMutex
	fixtures []domain.Fixture
}

func NewFixtureStore(fixtures ...domain.Fixture) *FixtureStore {
	return &FixtureStore{fixtures: append([]domain.Fixture(nil), fixtures...)}
}

func (s *FixtureStore) Add(fixtures ...domain.Fixture) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fixtures = append(s.fixtures, fixtures...)
}

func (s *FixtureStore) FindFixtures(_ context.Context, query domain.FixtureQuery) ([]domain.Fixture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Fixture
	for _, f := range s.fixtures {
		if f.Involves(query.TeamID) && query.Contains(f.MatchDate) {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchDate.After(out[j].MatchDate)
	})
	if query.Limit > 0 && len(out) > query.Limit {
		out = out[:query.Limit]
	}
	return out, nil
}
