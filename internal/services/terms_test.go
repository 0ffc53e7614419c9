package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTermsEmptyInput(t *testing.T) {
	extractor := NewTermExtractorService()

	for _, text := range []string{"", "   ", "\n\t"} {
		ts := extractor.ExtractTerms(text)
		assert.Empty(t, ts.Set)
		assert.Empty(t, ts.Freq)
	}
}

func TestExtractTermsSetAndFreqShareKeys(t *testing.T) {
	extractor := NewTermExtractorService()

	ts := extractor.ExtractTerms("Built ETL pipelines with Python and SQL for data teams using Python")

	require.NotEmpty(t, ts.Set)
	assert.Len(t, ts.Freq, len(ts.Set))
	for term := range ts.Set {
		assert.Contains(t, ts.Freq, term)
		assert.Greater(t, ts.Freq[term], 0)
	}
	for term := range ts.Freq {
		assert.Contains(t, ts.Set, term)
	}
}

func TestExtractTermsKeepsTechTokens(t *testing.T) {
	extractor := NewTermExtractorService()

	ts := extractor.ExtractTerms("Expert in C++, node.js and ci-cd pipelines.")

	assert.True(t, ts.Contains("c++"))
	assert.True(t, ts.Contains("node.js"))
	assert.True(t, ts.Contains("ci-cd"))
}

func TestExtractTermsFiltersStopwordsAndShortTokens(t *testing.T) {
	extractor := NewTermExtractorService()

	ts := extractor.ExtractTerms("the and of go python")

	assert.False(t, ts.Contains("the"))
	assert.False(t, ts.Contains("and"))
	assert.False(t, ts.Contains("go")) // length <= 2
	assert.True(t, ts.Contains("python"))
}

func TestExtractTermsAppliesNormalizationTable(t *testing.T) {
	extractor := NewTermExtractorService()

	ts := extractor.ExtractTerms("strong js and sklearn background")

	assert.True(t, ts.Contains("javascript"))
	assert.True(t, ts.Contains("scikit learn"))
	assert.False(t, ts.Contains("sklearn"))
}

func TestExtractTermsNormalizationOverrides(t *testing.T) {
	extractor := NewTermExtractorServiceWithTable(map[string]string{"k8s": "kubernetes"}, nil)

	ts := extractor.ExtractTerms("deployed with k8s")

	assert.True(t, ts.Contains("kubernetes"))
	assert.False(t, ts.Contains("k8s"))
}

func TestExtractTermsBigramsFromFilteredStream(t *testing.T) {
	extractor := NewTermExtractorService()

	// "and" is filtered out before bigram generation, so the adjacent pair
	// bridges over it.
	ts := extractor.ExtractTerms("python and sql")

	assert.True(t, ts.Contains("python sql"))
	assert.False(t, ts.Contains("and sql"))
	assert.False(t, ts.Contains("python and"))
}

func TestExtractTermsBigramHalvesPassFilter(t *testing.T) {
	extractor := NewTermExtractorService()

	ts := extractor.ExtractTerms("We are seeking engineers who build scalable data pipelines in the cloud for our customers")

	for term := range ts.Set {
		words := strings.Split(term, " ")
		if len(words) != 2 {
			continue
		}
		for _, w := range words {
			assert.Greater(t, len(w), 2, "bigram %q contains short word %q", term, w)
			assert.NotContains(t, defaultStopwords, w, "bigram %q contains stopword %q", term, w)
		}
	}
}

func TestExtractTermsFrequenciesOverCombinedStream(t *testing.T) {
	extractor := NewTermExtractorService()

	ts := extractor.ExtractTerms("python sql python")

	assert.Equal(t, 2, ts.Freq["python"])
	assert.Equal(t, 1, ts.Freq["sql"])
	assert.Equal(t, 1, ts.Freq["python sql"])
	assert.Equal(t, 1, ts.Freq["sql python"])
}
