package roster

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/DjordjeVuckovic/press-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/press-hunter/internal/domain"
)

// Validate checks that every team can be discovered and attributed.
func Validate(teams []domain.TeamConfig) error {
	if len(teams) == 0 {
		return apperr.NewValidation("roster has no teams")
	}

	seen := make(map[int]bool, len(teams))
	for i, t := range teams {
		field := func(name string) string { return fmt.Sprintf("teams[%d].%s", i, name) }

		switch {
		case t.ID <= 0:
			return apperr.NewFieldValidation(field("id"), "must be a positive integer")
		case seen[t.ID]:
			return apperr.NewFieldValidation(field("id"), "duplicate team id %d", t.ID)
		case strings.TrimSpace(t.Name) == "":
			return apperr.NewFieldValidation(field("name"), "is required")
		case strings.TrimSpace(t.Speaker) == "":
			return apperr.NewFieldValidation(field("speaker"), "is required")
		case len(t.SpeakerKeywords()) == 0:
			return apperr.NewFieldValidation(field("keywords"), "needs a generic phrase followed by at least one speaker keyword")
		}
		if !isAbsoluteHTTP(t.NewsIndexURL) {
			return apperr.NewFieldValidation(field("newsIndexUrl"), "must be an absolute http(s) URL")
		}
		if t.FeedURL != "" && !isAbsoluteHTTP(t.FeedURL) {
			return apperr.NewFieldValidation(field("feedUrl"), "must be an absolute http(s) URL")
		}
		seen[t.ID] = true
	}
	return nil
}

func isAbsoluteHTTP(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
