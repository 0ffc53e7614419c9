package services

import (
	"math"
	"sort"
)

// MatchResult holds the lexical overlap between resume and job-description
// terms. Matched and Missing are ordered by descending job-description
// frequency, ties broken alphabetically; this ordering decides which gaps
// get surfaced to the user first.
type MatchResult struct {
	Matched       []string
	Missing       []string
	CoverageScore float64
}

type LexicalMatcherService interface {
	Match(resumeTerms, jdTerms TermSet) MatchResult
}

type lexicalMatcherService struct{}

func NewLexicalMatcherService() LexicalMatcherService {
	return &lexicalMatcherService{}
}

// Match implements LexicalMatcherService.
func (m *lexicalMatcherService) Match(resumeTerms, jdTerms TermSet) MatchResult {
	var matched, missing []string

	for term := range jdTerms.Set {
		if resumeTerms.Contains(term) {
			matched = append(matched, term)
		} else {
			missing = append(missing, term)
		}
	}

	sortByJDWeight(matched, jdTerms)
	sortByJDWeight(missing, jdTerms)

	totalWeight := jdTerms.TotalWeight()
	if totalWeight == 0 {
		return MatchResult{Matched: matched, Missing: missing, CoverageScore: 0.0}
	}

	coveredWeight := 0
	for _, term := range matched {
		coveredWeight += jdTerms.Freq[term]
	}

	score := roundOne(100 * float64(coveredWeight) / float64(totalWeight))

	return MatchResult{
		Matched:       matched,
		Missing:       missing,
		CoverageScore: score,
	}
}

func sortByJDWeight(terms []string, jdTerms TermSet) {
	sort.Slice(terms, func(i, j int) bool {
		fi, fj := jdTerms.Freq[terms[i]], jdTerms.Freq[terms[j]]
		if fi != fj {
			return fi > fj
		}
		return terms[i] < terms[j]
	})
}

func roundOne(v float64) float64 {
	return math.Round(v*10) / 10
}
