package discovery

import "github.com/DjordjeVuckovic/press-hunter/internal/domain"

// candidateSet keeps candidate links unique by URL in first-seen order.
type candidateSet struct {
	seen  map[string]bool
	links []domain.CandidateLink
}

func newCandidateSet() *candidateSet {
	return &candidateSet{seen: make(map[string]bool)}
}

func (s *candidateSet) add(link domain.CandidateLink) {
	if link.URL == "" || s.seen[link.URL] {
		return
	}
	s.seen[link.URL] = true
	s.links = append(s.links, link)
}

func (s *candidateSet) len() int {
	return len(s.links)
}

func (s *candidateSet) first(limit int) []domain.CandidateLink {
	if limit > 0 && len(s.links) > limit {
		return s.links[:limit]
	}
	return s.links
}
