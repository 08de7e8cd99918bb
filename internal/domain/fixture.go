package domain

import "time"

// Fixture is a match record owned by the external fixture store.
type Fixture struct {
	ID           int       `json:"id"`
	TeamID       int       `json:"teamId"`
	HomeTeamID   int       `json:"homeTeamId,omitempty"`
	AwayTeamID   int       `json:"awayTeamId,omitempty"`
	HomeTeamName string    `json:"homeTeamName,omitempty"`
	AwayTeamName string    `json:"awayTeamName,omitempty"`
	MatchDate    time.Time `json:"matchDate"`
}

// Involves reports whether the team played in the fixture.
func (f Fixture) Involves(teamID int) bool {
	return f.TeamID == teamID || f.HomeTeamID == teamID || f.AwayTeamID == teamID
}

// FixtureQuery selects fixtures of a team whose match date falls in [From, To].
type FixtureQuery struct {
	TeamID int
	From   time.Time
	To     time.Time
	Limit  int
}

func (q FixtureQuery) Contains(t time.Time) bool {
	return !t.Before(q.From) && !t.After(q.To)
}
