package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportFitScoreIsWeightedBlend(t *testing.T) {
	agg := NewAggregatorService(DefaultWeights())

	match := MatchResult{CoverageScore: 80.0}
	report := agg.BuildReport(match, 60.0, 50.0, 90.0, emptyTermSet(), emptyTermSet(), nil)

	// 0.45*80 + 0.35*60 + 0.10*50 + 0.10*90 = 71.0
	assert.Equal(t, 71.0, report.FitScore)
	assert.Equal(t, 80.0, report.KeywordScore)
	assert.Equal(t, 60.0, report.SemanticScore)
	assert.Equal(t, 50.0, report.ReadabilityScore)
	assert.Equal(t, 90.0, report.ATSScore)
}

func TestBuildReportFitScoreMonotonicInComponents(t *testing.T) {
	agg := NewAggregatorService(DefaultWeights())

	base := agg.BuildReport(MatchResult{CoverageScore: 50}, 50, 50, 50, emptyTermSet(), emptyTermSet(), nil)

	higher := []struct {
		name   string
		report func() float64
	}{
		{"lexical", func() float64 {
			return agg.BuildReport(MatchResult{CoverageScore: 70}, 50, 50, 50, emptyTermSet(), emptyTermSet(), nil).FitScore
		}},
		{"semantic", func() float64 {
			return agg.BuildReport(MatchResult{CoverageScore: 50}, 70, 50, 50, emptyTermSet(), emptyTermSet(), nil).FitScore
		}},
		{"readability", func() float64 {
			return agg.BuildReport(MatchResult{CoverageScore: 50}, 50, 70, 50, emptyTermSet(), emptyTermSet(), nil).FitScore
		}},
		{"ats", func() float64 {
			return agg.BuildReport(MatchResult{CoverageScore: 50}, 50, 50, 70, emptyTermSet(), emptyTermSet(), nil).FitScore
		}},
	}

	for _, tt := range higher {
		t.Run(tt.name, func(t *testing.T) {
			assert.GreaterOrEqual(t, tt.report(), base.FitScore)
		})
	}
}

func TestKeywordGapsTopTermsAbsentFromResume(t *testing.T) {
	agg := NewAggregatorService(DefaultWeights())
	extractor := NewTermExtractorService()

	resume := extractor.ExtractTerms("python sql")

	// 25 distinct jd terms with descending frequency
	var parts []string
	for i := 0; i < 25; i++ {
		term := fmt.Sprintf("term%02d", i)
		for j := 0; j < 25-i; j++ {
			parts = append(parts, term)
		}
	}
	jd := extractor.ExtractTerms(strings.Join(parts, " junk "))

	report := agg.BuildReport(MatchResult{}, 0, 0, 0, resume, jd, nil)

	require.NotEmpty(t, report.KeywordGaps)
	assert.LessOrEqual(t, len(report.KeywordGaps), 10)
	for _, gap := range report.KeywordGaps {
		assert.False(t, resume.Contains(gap), "gap %q present in resume", gap)
		assert.True(t, jd.Contains(gap), "gap %q not a jd term", gap)
	}
}

func TestBuildReportSuggestions(t *testing.T) {
	agg := NewAggregatorService(DefaultWeights())
	extractor := NewTermExtractorService()

	resume := extractor.ExtractTerms("python")
	jd := extractor.ExtractTerms("python cloud aws terraform kubernetes docker ansible")

	report := agg.BuildReport(MatchResult{}, 0, 0, 0, resume, jd, nil)

	require.Len(t, report.RewriteSuggestions, 2)
	assert.True(t, strings.HasPrefix(report.RewriteSuggestions[0], "Add context for: "))
	assert.Contains(t, report.RewriteSuggestions[1], "verb + metric + outcome")

	// the gap suggestion names at most the first five gaps
	named := strings.TrimSuffix(strings.TrimPrefix(report.RewriteSuggestions[0], "Add context for: "), ".")
	assert.LessOrEqual(t, len(strings.Split(named, ", ")), 5)
}

func TestBuildReportNoGapsOnlyGenericSuggestion(t *testing.T) {
	agg := NewAggregatorService(DefaultWeights())
	extractor := NewTermExtractorService()

	ts := extractor.ExtractTerms("python sql cloud")

	report := agg.BuildReport(MatchResult{CoverageScore: 100}, 100, 100, 100, ts, ts, nil)

	assert.Empty(t, report.KeywordGaps)
	require.Len(t, report.RewriteSuggestions, 1)
	assert.Contains(t, report.RewriteSuggestions[0], "verb + metric + outcome")
}

func emptyTermSet() TermSet {
	return TermSet{Set: map[string]struct{}{}, Freq: map[string]int{}}
}
