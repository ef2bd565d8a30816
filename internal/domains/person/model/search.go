package model

import "strings"

const (
	// MaxSearchCandidates caps how many records are loaded before filtering.
	MaxSearchCandidates = 1000
	// MaxSearchResults caps how many matches are returned.
	MaxSearchResults = 50
	// MaxListSize caps the unfiltered listing endpoint.
	MaxListSize = 1000
)

// ValidateSearchTerm rejects empty and whitespace-only terms.
func ValidateSearchTerm(term string) error {
	if strings.TrimSpace(term) == "" {
		return ErrEmptySearchTerm
	}
	return nil
}

// Search returns the candidates whose nickname, name or any stack tag contains
// term, case-insensitively. Input order is kept and at most MaxSearchResults
// records are returned.
func Search(candidates []Person, term string) ([]Person, error) {
	if err := ValidateSearchTerm(term); err != nil {
		return nil, err
	}

	// Simple per-rune mapping: no locale, no context (Σ is always σ).
	needle := strings.ToLower(term)

	matches := make([]Person, 0, min(len(candidates), MaxSearchResults))
	for _, p := range candidates {
		if len(matches) == MaxSearchResults {
			break
		}
		if p.containsTerm(needle) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// containsTerm expects needle to be lower-cased already.
func (p Person) containsTerm(needle string) bool {
	if strings.Contains(strings.ToLower(p.Nickname), needle) ||
		strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	for _, tag := range p.Stack {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
