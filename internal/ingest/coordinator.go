package ingest

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/press-hunter/internal/discovery"
	"github.com/DjordjeVuckovic/press-hunter/internal/domain"
	"github.com/DjordjeVuckovic/press-hunter/internal/extractor"
	"github.com/DjordjeVuckovic/press-hunter/internal/matcher"
	"github.com/DjordjeVuckovic/press-hunter/internal/storage"
)

const (
	DefaultArticleDelay = 2 * time.Second
	DefaultTeamDelay    = 3 * time.Second
)

// Coordinator runs discovery, extraction, fixture matching and persistence
// for each team in order, one article at a time.
type Coordinator struct {
	teams      []domain.TeamConfig
	discoverer discovery.Discoverer
	extractor  extractor.Extractor
	matcher    matcher.Matcher
	storer     storage.Storer
	sleep      Sleeper
	now        func() time.Time
	config     *PipelineConfig
}

var _ Pipeline = (*Coordinator)(nil)

type Option func(*Coordinator)

// WithArticleDelay sets the pause before each article fetch.
func WithArticleDelay(d time.Duration) Option {
	return func(c *Coordinator) {
		c.config.ArticleDelay = d
	}
}

// WithTeamDelay sets the pause between teams.
func WithTeamDelay(d time.Duration) Option {
	return func(c *Coordinator) {
		c.config.TeamDelay = d
	}
}

func WithSleeper(s Sleeper) Option {
	return func(c *Coordinator) {
		if s != nil {
			c.sleep = s
		}
	}
}

func WithName(name string) Option {
	return func(c *Coordinator) {
		c.config.Name = name
	}
}

func NewCoordinator(
	teams []domain.TeamConfig,
	d discovery.Discoverer,
	e extractor.Extractor,
	m matcher.Matcher,
	s storage.Storer,
	opts ...Option,
) *Coordinator {
	c := &Coordinator{
		teams:      teams,
		discoverer: d,
		extractor:  e,
		matcher:    m,
		storer:     s,
		sleep:      ContextSleep,
		now:        time.Now,
		config: &PipelineConfig{
			Name:         "press-ingest",
			ArticleDelay: DefaultArticleDelay,
			TeamDelay:    DefaultTeamDelay,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Run processes every team and returns the run summary. Per-article failures are
// counted and never abort the run. On context cancellation the partial summary is
// returned together with ctx.Err().
func (c *Coordinator) Run(ctx context.Context) (*RunSummary, error) {
	start := c.now()
	summary := newRunSummary(start)
	slog.Info("🛫 Starting pipeline run",
		"pipeline", c.config.Name,
		"run_id", summary.RunID,
		"teams", len(c.teams),
		"article_delay", c.config.ArticleDelay,
		"team_delay", c.config.TeamDelay,
	)

	var runErr error
	for i, team := range c.teams {
		teamSummary, hadLinks, err := c.runTeam(ctx, team)
		summary.add(teamSummary)
		if err != nil {
			runErr = err
			break
		}

		if hadLinks && i < len(c.teams)-1 {
			if err := c.sleep(ctx, c.config.TeamDelay); err != nil {
				runErr = err
				break
			}
		}
	}

	summary.Duration = c.now().Sub(start)
	slog.Info("Pipeline run completed",
		"pipeline", c.config.Name,
		"run_id", summary.RunID,
		"duration", summary.Duration,
		"candidates", summary.Candidates,
		"saved", summary.Saved,
		"duplicates", summary.Duplicates,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"error", runErr,
	)

	return summary, runErr
}

func (c *Coordinator) runTeam(ctx context.Context, team domain.TeamConfig) (TeamSummary, bool, error) {
	ts := TeamSummary{TeamID: team.ID, TeamName: team.Name}
	slog.Info("Searching press conference articles", "team", team.Name, "team_id", team.ID)

	links := c.discoverer.Discover(ctx, team)
	ts.Candidates = len(links)
	if len(links) == 0 {
		slog.Info("No articles found", "team", team.Name, "url", team.NewsIndexURL)
		return ts, false, ctx.Err()
	}

	for _, link := range links {
		if err := c.sleep(ctx, c.config.ArticleDelay); err != nil {
			return ts, true, err
		}
		ts.record(c.processLink(ctx, team, link))
	}

	slog.Info("Team completed",
		"team", team.Name,
		"candidates", ts.Candidates,
		"saved", ts.Saved,
		"duplicates", ts.Duplicates,
		"skipped", ts.Skipped,
		"failed", ts.Failed,
	)
	return ts, true, nil
}

func (c *Coordinator) processLink(ctx context.Context, team domain.TeamConfig, link domain.CandidateLink) Outcome {
	slog.Info("Processing article", "team", team.Name, "title", link.Title, "url", link.URL)

	article := c.extractor.Extract(ctx, link.URL, team.Speaker)
	if !article.HasComment() {
		slog.Info("Skipping article without comment", "url", link.URL)
		return OutcomeSkipped
	}

	fixtureID := c.matcher.Match(ctx, team.ID, article.PublishedAt)
	comment := domain.NewPressComment(team, link, article, fixtureID)
	fixture := "none"
	if fixtureID != nil {
		fixture = strconv.Itoa(*fixtureID)
	}
	slog.Debug("Press comment assembled",
		"id", comment.ID,
		"published_at", domain.FormatOptionalTimestamp(comment.PublishedAt),
		"fixture_id", fixture,
		"comment_chars", len([]rune(comment.CommentText)),
	)

	exists, err := c.storer.Exists(ctx, comment.ArticleURL)
	if err != nil {
		slog.Error("Error checking existing comment", "error", err, "pipeline", c.config.Name, "url", comment.ArticleURL)
		return OutcomeFailed
	}
	if exists {
		slog.Info("Skipping existing record", "url", comment.ArticleURL)
		return OutcomeDuplicate
	}

	if err := c.storer.Save(ctx, comment); err != nil {
		slog.Error("Error saving comment", "error", err, "pipeline", c.config.Name, "url", comment.ArticleURL)
		return OutcomeFailed
	}

	slog.Info("Comment saved", "id", comment.ID, "url", comment.ArticleURL)
	return OutcomeSaved
}
