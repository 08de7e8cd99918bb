package extractor

import (
	"strings"
	"unicode/utf8"
)

const (
	maxQuoteParagraphs = 25
	fallbackChars      = 2000

	// Below this the page most likely returned placeholder markup.
	minBodyChars = 100
)

// IsQuoteParagraph reports whether a paragraph looks like reported speech: it names the
// speaker, uses "Name: ..." attribution, or says "said"/"explained".
func IsQuoteParagraph(paragraph, speaker string) bool {
	lower := strings.ToLower(paragraph)
	speaker = strings.ToLower(strings.TrimSpace(speaker))

	switch {
	case speaker != "" && strings.Contains(lower, speaker):
		return true
	case strings.Contains(paragraph, ": "):
		return true
	case strings.Contains(lower, "said"), strings.Contains(lower, "explained"):
		return true
	}
	return false
}

// SelectQuotes keeps the first 25 quote-like paragraphs; without any it falls back to the
// first 2000 characters of the full text. An empty result is reported as absent.
func SelectQuotes(paragraphs []string, speaker string) (string, bool) {
	var relevant []string
	for _, p := range paragraphs {
		if IsQuoteParagraph(p, speaker) {
			relevant = append(relevant, p)
		}
	}

	var comment string
	if len(relevant) > 0 {
		if len(relevant) > maxQuoteParagraphs {
			relevant = relevant[:maxQuoteParagraphs]
		}
		comment = strings.Join(relevant, "\n")
	} else {
		comment = truncateChars(strings.Join(paragraphs, "\n"), fallbackChars)
	}

	comment = strings.TrimSpace(comment)
	return comment, comment != ""
}

func passesQualityGate(fullText string) bool {
	return utf8.RuneCountInString(fullText) >= minBodyChars
}

func truncateChars(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
