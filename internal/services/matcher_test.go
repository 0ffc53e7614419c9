package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchSelfGivesFullCoverage(t *testing.T) {
	extractor := NewTermExtractorService()
	matcher := NewLexicalMatcherService()

	ts := extractor.ExtractTerms("python sql data engineering")
	require.False(t, ts.Empty())

	result := matcher.Match(ts, ts)

	assert.Equal(t, 100.0, result.CoverageScore)
	assert.Empty(t, result.Missing)
}

func TestMatchSubsetProperties(t *testing.T) {
	extractor := NewTermExtractorService()
	matcher := NewLexicalMatcherService()

	resume := extractor.ExtractTerms("python etl pipelines airflow")
	jd := extractor.ExtractTerms("python sql cloud aws terraform")

	result := matcher.Match(resume, jd)

	for _, term := range result.Missing {
		assert.True(t, jd.Contains(term), "missing term %q not in jd set", term)
	}
	for _, term := range result.Matched {
		assert.True(t, jd.Contains(term), "matched term %q not in jd set", term)
		assert.True(t, resume.Contains(term), "matched term %q not in resume set", term)
	}
}

func TestMatchOrderingByJDFrequencyThenAlpha(t *testing.T) {
	matcher := NewLexicalMatcherService()

	jd := TermSet{
		Set:  map[string]struct{}{"python": {}, "sql": {}, "cloud": {}, "aws": {}},
		Freq: map[string]int{"python": 3, "sql": 3, "cloud": 1, "aws": 1},
	}
	resume := TermSet{
		Set:  map[string]struct{}{},
		Freq: map[string]int{},
	}

	result := matcher.Match(resume, jd)

	// desc frequency, alphabetical tie-break
	assert.Equal(t, []string{"python", "sql", "aws", "cloud"}, result.Missing)
	assert.Equal(t, 0.0, result.CoverageScore)
}

func TestMatchEmptyJDYieldsZeroCoverage(t *testing.T) {
	extractor := NewTermExtractorService()
	matcher := NewLexicalMatcherService()

	resume := extractor.ExtractTerms("python sql")
	jd := extractor.ExtractTerms("")

	result := matcher.Match(resume, jd)

	assert.Equal(t, 0.0, result.CoverageScore)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
}

func TestMatchCoverageWeightedByJDFrequency(t *testing.T) {
	matcher := NewLexicalMatcherService()

	jd := TermSet{
		Set:  map[string]struct{}{"python": {}, "cloud": {}},
		Freq: map[string]int{"python": 3, "cloud": 1},
	}
	resume := TermSet{
		Set:  map[string]struct{}{"python": {}},
		Freq: map[string]int{"python": 1},
	}

	result := matcher.Match(resume, jd)

	// 3 of 4 total jd weight covered
	assert.Equal(t, 75.0, result.CoverageScore)
}
