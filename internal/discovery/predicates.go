package discovery

import (
	"net/url"
	"strings"
)

// The predicates below are approximate substring heuristics over link wording and URL shape.

var matchContextPhrases = []string{"press conference", "pre-match", "post-match"}

var articlePathSegments = []string{"/news/", "/article/"}

// IsMatchContext reports whether the lowercased text mentions a press conference or a
// pre/post-match piece.
func IsMatchContext(combined string) bool {
	return containsAny(combined, matchContextPhrases)
}

// HasSpeakerKeyword reports whether the lowercased text mentions any speaker keyword.
func HasSpeakerKeyword(combined string, speakerKeywords []string) bool {
	return containsAny(combined, speakerKeywords)
}

// IsArticlePath reports whether the absolute URL looks like a news or article page.
func IsArticlePath(absoluteURL string) bool {
	return containsAny(absoluteURL, articlePathSegments)
}

// IsCandidate combines the keyword and path predicates for one anchor.
func IsCandidate(text, href, absoluteURL string, speakerKeywords []string) bool {
	combined := strings.ToLower(text + " " + href)
	if !IsMatchContext(combined) && !HasSpeakerKeyword(combined, speakerKeywords) {
		return false
	}
	return IsArticlePath(absoluteURL)
}

// ResolveAgainstOrigin turns href into an absolute URL using only the scheme and host of
// base. Hrefs that already start with "http" are returned unchanged.
func ResolveAgainstOrigin(href, base string) string {
	href = strings.TrimSpace(href)
	if strings.HasPrefix(href, "http") {
		return href
	}

	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}

	if strings.HasPrefix(href, "//") {
		return u.Scheme + ":" + href
	}

	origin := u.Scheme + "://" + u.Host
	if strings.HasPrefix(href, "/") {
		return origin + href
	}
	return origin + "/" + href
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(s, n) {
			return true
		}
	}
	return false
}
