package extractor

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// metaCandidates are tried in order; the first one that parses wins.
var metaCandidates = []string{
	`meta[property="article:published_time"]`,
	`meta[name="publishdate"]`,
	`meta[itemprop="datePublished"]`,
	`meta[name="date"]`,
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15",
	"20060102T150405Z0700",
	"20060102T150405",
	"2006-01-02",
}

// PublishedAt finds the publication time from metadata, falling back to the first <time>
// element. It returns nil when nothing parses.
func PublishedAt(doc *goquery.Document) *time.Time {
	for _, selector := range metaCandidates {
		content, ok := doc.Find(selector).First().Attr("content")
		if !ok || content == "" {
			continue
		}
		if t, ok := ParseTimestamp(content); ok {
			return &t
		}
	}

	timeTag := doc.Find("time").First()
	if timeTag.Length() == 0 {
		return nil
	}

	// Falls back to the visible text when datetime is missing.
	raw, _ := timeTag.Attr("datetime")
	if raw == "" {
		raw = timeTag.Text()
	}
	if t, ok := ParseTimestamp(raw); ok {
		return &t
	}
	return nil
}

// ParseTimestamp parses an ISO-8601 timestamp. A trailing "Z" means UTC and values without
// an offset are taken as UTC.
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
