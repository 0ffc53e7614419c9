package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer(embedder Embedder) AnalyzerService {
	return NewAnalyzerService(
		NewExtractorService(),
		NewTermExtractorService(),
		NewLexicalMatcherService(),
		NewSemanticScorerService(embedder),
		NewReadabilityService(),
		NewAggregatorService(DefaultWeights()),
		NewPhraseSplitter(),
		nil,
		nil,
		nil,
		0.78,
	)
}

func TestAnalyzeEndToEnd(t *testing.T) {
	analyzer := newTestAnalyzer(&fakeEmbedder{})

	resume := []byte("Experience: Built ETL pipelines. Skills: Python, SQL. Contact: a@b.com, 2022-2023.")
	jd := "We need Python, SQL, and cloud experience with AWS."

	report := analyzer.Analyze(context.Background(), resume, "resume.txt", []string{jd})

	require.NotNil(t, report)

	assert.Contains(t, report.MissingSkills, "cloud")
	assert.Contains(t, report.MissingSkills, "aws")
	assert.NotContains(t, report.MissingSkills, "python")
	assert.NotContains(t, report.MissingSkills, "sql")

	assert.Contains(t, report.MatchedSkills, "python")
	assert.Contains(t, report.MatchedSkills, "sql")

	assert.Empty(t, report.ATSFlags)
	assert.Equal(t, 100.0, report.ATSScore)

	assert.Greater(t, report.KeywordScore, 0.0)
	assert.GreaterOrEqual(t, report.FitScore, 0.0)
	assert.LessOrEqual(t, report.FitScore, 100.0)
	// embedding backend unavailable in tests; semantic contribution degrades
	assert.Equal(t, 0.0, report.SemanticScore)
}

func TestAnalyzeUnreadableResumeStillProducesReport(t *testing.T) {
	analyzer := newTestAnalyzer(&fakeEmbedder{})

	report := analyzer.Analyze(context.Background(), []byte("not really a pdf"), "resume.pdf", []string{"Python developer"})

	require.NotNil(t, report)
	assert.Equal(t, 0.0, report.KeywordScore)
	assert.Equal(t, 0.0, report.SemanticScore)
	assert.Len(t, report.ATSFlags, 4)
	assert.Equal(t, 60.0, report.ATSScore)
	assert.NotEmpty(t, report.RewriteSuggestions)
}

func TestAnalyzeNoJobDescriptions(t *testing.T) {
	analyzer := newTestAnalyzer(&fakeEmbedder{})

	report := analyzer.Analyze(context.Background(), []byte("Skills: Python"), "resume.txt", nil)

	require.NotNil(t, report)
	assert.Equal(t, 0.0, report.KeywordScore)
	assert.Empty(t, report.MissingSkills)
	assert.Empty(t, report.KeywordGaps)
}
