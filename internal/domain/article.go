package domain

import "time"

// CandidateLink is a discovered article URL not yet known to hold usable commentary.
type CandidateLink struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// ExtractedArticle holds the result of extracting one article page.
// An empty CommentText or a nil PublishedAt means that part could not be extracted.
type ExtractedArticle struct {
	CommentText string
	PublishedAt *time.Time
}

func (a ExtractedArticle) HasComment() bool {
	return a.CommentText != ""
}

// isoOffsetLayout renders a numeric offset even for UTC ("+00:00" rather than "Z").
const isoOffsetLayout = "2006-01-02T15:04:05.999999-07:00"

// FormatTimestamp renders t as ISO-8601 with a numeric UTC offset.
func FormatTimestamp(t time.Time) string {
	return t.Format(isoOffsetLayout)
}

// FormatOptionalTimestamp is FormatTimestamp for an optional value; nil renders as "".
func FormatOptionalTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatTimestamp(*t)
}
