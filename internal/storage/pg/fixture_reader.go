package pg

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/press-hunter/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FixtureReader queries the fixtures table populated by the fixture importer.
type FixtureReader struct {
	db *pgxpool.Pool
}

func NewFixtureReader(pool *ConnectionPool) *FixtureReader {
	return &FixtureReader{db: pool.conn}
}

func (r *FixtureReader) FindFixtures(ctx context.Context, q domain.FixtureQuery) ([]domain.Fixture, error) {
	query := `
		SELECT id, team_id, COALESCE(home_team_id, 0), COALESCE(away_team_id, 0),
		       COALESCE(home_team_name, ''), COALESCE(away_team_name, ''), match_date
		FROM fixtures
		WHERE (team_id = $1 OR home_team_id = $1 OR away_team_id = $1)
		  AND match_date BETWEEN $2 AND $3
		ORDER BY match_date DESC
	`
	args := []any{q.TeamID, q.From, q.To}
	if q.Limit > 0 {
		query += " LIMIT $4"
		args = append(args, q.Limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixtures: %w", err)
	}

	fixtures, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Fixture, error) {
		var f domain.Fixture
		err := row.Scan(&f.ID, &f.TeamID, &f.HomeTeamID, &f.AwayTeamID, &f.HomeTeamName, &f.AwayTeamName, &f.MatchDate)
		return f, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan fixtures: %w", err)
	}
	return fixtures, nil
}
