package roster

import "github.com/DjordjeVuckovic/press-hunter/internal/domain"

// DefaultTeams is the built-in roster used when no roster file is configured.
func DefaultTeams() []domain.TeamConfig {
	return []domain.TeamConfig{
		{
			ID:           42,
			Name:         "Arsenal",
			NewsIndexURL: "https://www.arsenal.com/news",
			Keywords:     []string{"press conference", "arteta"},
			Speaker:      "Arteta",
		},
		{
			ID:           40,
			Name:         "Liverpool",
			NewsIndexURL: "https://www.liverpoolfc.com/news",
			Keywords:     []string{"press conference", "slot"},
			Speaker:      "Slot",
		},
	}
}
