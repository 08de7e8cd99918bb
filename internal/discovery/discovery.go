package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/press-hunter/internal/domain"
	"github.com/DjordjeVuckovic/press-hunter/internal/fetch"
	"github.com/DjordjeVuckovic/press-hunter/internal/htmltext"
	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// DefaultLimit caps how many candidates one index page may contribute.
const DefaultLimit = 10

// Discoverer finds candidate press conference articles for a team.
type Discoverer interface {
	Discover(ctx context.Context, team domain.TeamConfig) []domain.CandidateLink
}

type LinkDiscoverer struct {
	fetcher fetch.Fetcher
	feeds   *gofeed.Parser
	limit   int
}

type Option func(*LinkDiscoverer)

func WithLimit(limit int) Option {
	return func(d *LinkDiscoverer) {
		if limit > 0 {
			d.limit = limit
		}
	}
}

func NewLinkDiscoverer(fetcher fetch.Fetcher, opts ...Option) *LinkDiscoverer {
	d := &LinkDiscoverer{
		fetcher: fetcher,
		feeds:   gofeed.NewParser(),
		limit:   DefaultLimit,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Discover scans the team's news index page and returns up to limit candidate links in
// document order. An unreachable index page yields no links; when the team has a feed, the
// feed is consulted instead.
func (d *LinkDiscoverer) Discover(ctx context.Context, team domain.TeamConfig) []domain.CandidateLink {
	slog.Info("Fetching news index", "team", team.Name, "url", team.NewsIndexURL)

	links, err := d.fromIndexPage(ctx, team)
	if err != nil {
		slog.Warn("News index unavailable", "team", team.Name, "url", team.NewsIndexURL, "error", err)
	}

	if len(links) == 0 && team.FeedURL != "" {
		feedLinks, err := d.fromFeed(ctx, team)
		if err != nil {
			slog.Warn("News feed unavailable", "team", team.Name, "url", team.FeedURL, "error", err)
		}
		links = feedLinks
	}

	slog.Info("Found candidate articles", "team", team.Name, "count", len(links))
	return links
}

func (d *LinkDiscoverer) fromIndexPage(ctx context.Context, team domain.TeamConfig) ([]domain.CandidateLink, error) {
	body, err := d.fetcher.Fetch(ctx, team.NewsIndexURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse index page: %w", err)
	}

	return ScanAnchors(doc, team, d.limit), nil
}

// ScanAnchors applies the candidate predicates to every anchor of an index document.
func ScanAnchors(doc *goquery.Document, team domain.TeamConfig, limit int) []domain.CandidateLink {
	keywords := team.SpeakerKeywords()
	set := newCandidateSet()

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if strings.TrimSpace(href) == "" {
			return
		}

		title := htmltext.Text(a)
		absolute := ResolveAgainstOrigin(href, team.NewsIndexURL)
		if !IsCandidate(title, href, absolute, keywords) {
			return
		}

		set.add(domain.CandidateLink{URL: absolute, Title: title})
	})

	if set.len() > limit {
		slog.Debug("Truncating candidate links", "team", team.Name, "found", set.len(), "limit", limit)
	}
	return set.first(limit)
}

func (d *LinkDiscoverer) fromFeed(ctx context.Context, team domain.TeamConfig) ([]domain.CandidateLink, error) {
	body, err := d.fetcher.Fetch(ctx, team.FeedURL)
	if err != nil {
		return nil, err
	}

	feed, err := d.feeds.ParseString(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	keywords := team.SpeakerKeywords()
	set := newCandidateSet()
	for _, item := range feed.Items {
		if item == nil || item.Link == "" {
			continue
		}

		title := htmltext.Normalize(item.Title)
		absolute := ResolveAgainstOrigin(item.Link, team.NewsIndexURL)
		if !IsCandidate(title, item.Link, absolute, keywords) {
			continue
		}

		set.add(domain.CandidateLink{URL: absolute, Title: title})
	}

	return set.first(d.limit), nil
}
