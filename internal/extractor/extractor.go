package extractor

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/press-hunter/internal/domain"
	"github.com/DjordjeVuckovic/press-hunter/internal/fetch"
	"github.com/PuerkitoBio/goquery"
)

// Extractor turns an article page into speaker commentary and a publication time.
type Extractor interface {
	Extract(ctx context.Context, url, speaker string) domain.ExtractedArticle
}

type ArticleExtractor struct {
	fetcher fetch.Fetcher
}

func NewArticleExtractor(fetcher fetch.Fetcher) *ArticleExtractor {
	return &ArticleExtractor{fetcher: fetcher}
}

// Extract never fails: each stage that cannot produce a value leaves its field absent and
// stops the remaining stages.
func (e *ArticleExtractor) Extract(ctx context.Context, url, speaker string) domain.ExtractedArticle {
	body, err := e.fetcher.Fetch(ctx, url)
	if err != nil {
		return domain.ExtractedArticle{}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		slog.Warn("Failed to parse article HTML", "url", url, "error", err)
		return domain.ExtractedArticle{}
	}

	return ExtractDocument(doc, url, speaker)
}

// ExtractDocument runs the extraction stages over an already parsed page.
func ExtractDocument(doc *goquery.Document, url, speaker string) domain.ExtractedArticle {
	result := domain.ExtractedArticle{PublishedAt: PublishedAt(doc)}

	container, ok := IsolateBody(doc)
	if !ok {
		slog.Warn("No article body found", "url", url)
		return result
	}

	paragraphs := Paragraphs(container)
	if len(paragraphs) == 0 {
		slog.Warn("No paragraphs found, page may require JavaScript rendering", "url", url)
		return result
	}

	fullText := strings.Join(paragraphs, "\n")
	if !passesQualityGate(fullText) {
		slog.Warn("Article body too short, page may require JavaScript rendering",
			"url", url,
			"chars", utf8.RuneCountInString(fullText),
		)
		return result
	}

	if comment, ok := SelectQuotes(paragraphs, speaker); ok {
		result.CommentText = comment
	}
	return result
}
