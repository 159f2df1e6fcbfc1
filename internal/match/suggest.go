package match

import (
	"slices"
	"strings"
)

const (
	// DefaultMinScore is the similarity a name needs to be suggested.
	DefaultMinScore = 0.6
	// DefaultMaxSuggestions caps the number of suggestions per unknown name.
	DefaultMaxSuggestions = 3
)

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a list of candidates, best first.
type CandidateList []Candidate

// Rank scores every known name against name. Exact matches after
// normalization score 1. Candidates are sorted by score, then by name.
func Rank(name string, known []string) CandidateList {
	norm := NormalizeIdent(name)
	out := make(CandidateList, 0, len(known))

	for _, k := range known {
		score := LevenshteinNormalized(norm, NormalizeIdent(k))

		// prefix matches such as "Stat" for "Status" read as typos too
		if kn := NormalizeIdent(k); norm != "" && strings.HasPrefix(kn, norm) {
			score = max(score, DefaultMinScore)
		}

		out = append(out, Candidate{Name: k, Score: score})
	}

	slices.SortStableFunc(out, func(a, b Candidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return strings.Compare(a.Name, b.Name)
		}
	})

	return out
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Top returns the first n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Names returns the candidate names in order.
func (c CandidateList) Names() []string {
	names := make([]string, len(c))
	for i, cand := range c {
		names[i] = cand.Name
	}

	return names
}

// Suggest returns up to DefaultMaxSuggestions known names close to name.
func Suggest(name string, known []string) []string {
	return Rank(name, known).AboveThreshold(DefaultMinScore).Top(DefaultMaxSuggestions).Names()
}
