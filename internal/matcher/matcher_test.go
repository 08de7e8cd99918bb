package matcher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/press-hunter/internal/domain"
	"github.com/DjordjeVuckovic/press-hunter/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingFixtures struct{}

func (failingFixtures) FindFixtures(context.Context, domain.FixtureQuery) ([]domain.Fixture, error) {
	return nil, errors.New("connection reset")
}

func TestWindow(t *testing.T) {
	published := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	q := Window(42, published)

	assert.Equal(t, 42, q.TeamID)
	assert.Equal(t, time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC), q.From)
	assert.Equal(t, time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC), q.To)
	assert.Equal(t, 1, q.Limit)
}

func TestWindow_UsesWallClockDate(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	published := time.Date(2024, 3, 1, 1, 0, 0, 0, tokyo)

	q := Window(42, published)

	assert.Equal(t, time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC), q.From)
	assert.Equal(t, time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC), q.To)
}

func TestMatch_PicksMostRecentFixtureInWindow(t *testing.T) {
	// Arrange
	published := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour
	store := in_mem.NewFixtureStore(
		domain.Fixture{ID: 105, TeamID: 42, MatchDate: published.Add(-5 * day)},
		domain.Fixture{ID: 103, TeamID: 42, MatchDate: published.Add(-3 * day)},
		domain.Fixture{ID: 101, TeamID: 42, MatchDate: published.Add(-1 * day)},
		domain.Fixture{ID: 201, TeamID: 42, MatchDate: published.Add(1 * day)},
	)

	// Act
	got := NewFixtureMatcher(store).Match(context.Background(), 42, &published)

	// Assert
	require.NotNil(t, got)
	assert.Equal(t, 101, *got)
}

func TestMatch_OnlyOutOfWindowFixtures(t *testing.T) {
	published := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	store := in_mem.NewFixtureStore(
		domain.Fixture{ID: 1, TeamID: 42, MatchDate: time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC)},
		domain.Fixture{ID: 2, TeamID: 42, MatchDate: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
		domain.Fixture{ID: 3, TeamID: 40, MatchDate: time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC)},
	)

	got := NewFixtureMatcher(store).Match(context.Background(), 42, &published)

	assert.Nil(t, got)
}

func TestMatch_WindowEdgesAreInclusive(t *testing.T) {
	published := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	store := in_mem.NewFixtureStore(
		domain.Fixture{ID: 6, TeamID: 42, MatchDate: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)},
	)

	got := NewFixtureMatcher(store).Match(context.Background(), 42, &published)

	require.NotNil(t, got)
	assert.Equal(t, 6, *got)
}

func TestMatch_AwayFixtureCounts(t *testing.T) {
	published := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	store := in_mem.NewFixtureStore(
		domain.Fixture{ID: 9, TeamID: 50, HomeTeamID: 50, AwayTeamID: 42, MatchDate: time.Date(2024, 3, 9, 17, 30, 0, 0, time.UTC)},
	)

	got := NewFixtureMatcher(store).Match(context.Background(), 42, &published)

	require.NotNil(t, got)
	assert.Equal(t, 9, *got)
}

func TestMatch_AbsentPublishedAtSkipsLookup(t *testing.T) {
	got := NewFixtureMatcher(failingFixtures{}).Match(context.Background(), 42, nil)

	assert.Nil(t, got)
}

func TestMatch_LookupErrorIsNoMatch(t *testing.T) {
	published := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	got := NewFixtureMatcher(failingFixtures{}).Match(context.Background(), 42, &published)

	assert.Nil(t, got)
}

func TestLatest_IgnoresFixturesOutsideQuery(t *testing.T) {
	q := Window(42, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	fixtures := []domain.Fixture{
		{ID: 1, MatchDate: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
		{ID: 2, MatchDate: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)},
	}

	got, ok := Latest(fixtures, q)

	require.True(t, ok)
	assert.Equal(t, 2, got.ID)
}
