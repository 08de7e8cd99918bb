package domain

import "strings"

// TeamConfig describes one club news source.
// Keywords[0] is the generic phrase ("press conference"), the rest identify the speaker.
type TeamConfig struct {
	ID           int      `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	NewsIndexURL string   `json:"newsIndexUrl" yaml:"newsIndexUrl"`
	FeedURL      string   `json:"feedUrl,omitempty" yaml:"feedUrl,omitempty"`
	Keywords     []string `json:"keywords" yaml:"keywords"`
	Speaker      string   `json:"speaker" yaml:"speaker"`
}

// SpeakerKeywords returns the lowercased speaker keywords (every keyword but the first).
func (t TeamConfig) SpeakerKeywords() []string {
	if len(t.Keywords) < 2 {
		return nil
	}

	out := make([]string, 0, len(t.Keywords)-1)
	for _, kw := range t.Keywords[1:] {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
