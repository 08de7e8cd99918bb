package extractor

import (
	"regexp"
	"strings"

	"github.com/DjordjeVuckovic/press-hunter/internal/htmltext"
	"github.com/PuerkitoBio/goquery"
)

// contentClassPattern approximates "this element holds the article" across club sites.
var contentClassPattern = regexp.MustCompile(`(?i)article|content|body|text|story`)

// IsolateBody picks the main content container: the first <article>, else the first
// element with a content-like class, else <main>, else <body>.
func IsolateBody(doc *goquery.Document) (*goquery.Selection, bool) {
	if s := doc.Find("article").First(); s.Length() > 0 {
		return s, true
	}

	byClass := doc.Find("[class]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return HasContentClass(class)
	}).First()
	if byClass.Length() > 0 {
		return byClass, true
	}

	if s := doc.Find("main").First(); s.Length() > 0 {
		return s, true
	}

	if s := doc.Find("body").First(); s.Length() > 0 {
		return s, true
	}

	return nil, false
}

func HasContentClass(class string) bool {
	return contentClassPattern.MatchString(class)
}

// Paragraphs returns the non-blank text of every <p> under the container, in order.
func Paragraphs(container *goquery.Selection) []string {
	var out []string
	container.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := htmltext.Text(p); strings.TrimSpace(text) != "" {
			out = append(out, text)
		}
	})
	return out
}
