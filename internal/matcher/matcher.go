package matcher

import (
	"context"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/press-hunter/internal/domain"
	"github.com/DjordjeVuckovic/press-hunter/internal/storage"
)

// LookbackDays is how long after a match its press conference is expected to appear.
const LookbackDays = 4

// Matcher links an article to the fixture it most likely discusses.
type Matcher interface {
	Match(ctx context.Context, teamID int, publishedAt *time.Time) *int
}

type FixtureMatcher struct {
	fixtures storage.FixtureReader
}

func NewFixtureMatcher(fixtures storage.FixtureReader) *FixtureMatcher {
	return &FixtureMatcher{fixtures: fixtures}
}

// Match returns the id of the team's latest fixture within the lookback window ending on
// the publication day, or nil. Lookup failures are logged and treated as no match.
func (m *FixtureMatcher) Match(ctx context.Context, teamID int, publishedAt *time.Time) *int {
	if publishedAt == nil || publishedAt.IsZero() {
		return nil
	}

	query := Window(teamID, *publishedAt)
	fixtures, err := m.fixtures.FindFixtures(ctx, query)
	if err != nil {
		slog.Warn("Fixture lookup failed", "team_id", teamID, "from", query.From, "to", query.To, "error", err)
		return nil
	}

	latest, ok := Latest(fixtures, query)
	if !ok {
		slog.Debug("No fixture in window", "team_id", teamID, "from", query.From, "to", query.To)
		return nil
	}

	id := latest.ID
	return &id
}

// Window spans from 00:00:00 four days before the publication date to 23:59:59 on it.
// Bounds use the wall-clock date of publishedAt, expressed in UTC.
func Window(teamID int, publishedAt time.Time) domain.FixtureQuery {
	y, mo, d := publishedAt.Date()
	return domain.FixtureQuery{
		TeamID: teamID,
		From:   time.Date(y, mo, d-LookbackDays, 0, 0, 0, 0, time.UTC),
		To:     time.Date(y, mo, d, 23, 59, 59, 0, time.UTC),
		Limit:  1,
	}
}

// Latest picks the most recent fixture inside the window.
func Latest(fixtures []domain.Fixture, query domain.FixtureQuery) (domain.Fixture, bool) {
	var (
		best  domain.Fixture
		found bool
	)
	for _, f := range fixtures {
		if !query.Contains(f.MatchDate) {
			continue
		}
		if !found || f.MatchDate.After(best.MatchDate) {
			best = f
			found = true
		}
	}
	return best, found
}
