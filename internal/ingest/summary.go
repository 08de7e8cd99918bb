package ingest

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is what happened to one candidate article.
type Outcome string

const (
	OutcomeSaved     Outcome = "saved"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeFailed    Outcome = "failed"
)

type TeamSummary struct {
	TeamID     int    `json:"teamId"`
	TeamName   string `json:"teamName"`
	Candidates int    `json:"candidates"`
	Saved      int    `json:"saved"`
	Duplicates int    `json:"duplicates"`
	Skipped    int    `json:"skipped"`
	Failed     int    `json:"failed"`
}

func (t *TeamSummary) record(o Outcome) {
	switch o {
	case OutcomeSaved:
		t.Saved++
	case OutcomeDuplicate:
		t.Duplicates++
	case OutcomeSkipped:
		t.Skipped++
	case OutcomeFailed:
		t.Failed++
	}
}

type RunSummary struct {
	RunID      uuid.UUID     `json:"runId"`
	StartedAt  time.Time     `json:"startedAt"`
	Duration   time.Duration `json:"duration"`
	Candidates int           `json:"candidates"`
	Saved      int           `json:"saved"`
	Duplicates int           `json:"duplicates"`
	Skipped    int           `json:"skipped"`
	Failed     int           `json:"failed"`
	Teams      []TeamSummary `json:"teams"`
}

func newRunSummary(start time.Time) *RunSummary {
	return &RunSummary{
		RunID:     uuid.New(),
		StartedAt: start,
		Teams:     []TeamSummary{},
	}
}

func (s *RunSummary) add(team TeamSummary) {
	s.Teams = append(s.Teams, team)
	s.Candidates += team.Candidates
	s.Saved += team.Saved
	s.Duplicates += team.Duplicates
	s.Skipped += team.Skipped
	s.Failed += team.Failed
}
