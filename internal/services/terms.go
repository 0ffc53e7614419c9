package services

import (
	"regexp"
	"strings"
)

// TermSet pairs the unique normalized terms of a text with their occurrence
// counts. Set and Freq always carry the same keys.
type TermSet struct {
	Set  map[string]struct{}
	Freq map[string]int
}

func (ts TermSet) Contains(term string) bool {
	_, ok := ts.Set[term]
	return ok
}

func (ts TermSet) Empty() bool {
	return len(ts.Set) == 0
}

func (ts TermSet) TotalWeight() int {
	total := 0
	for _, count := range ts.Freq {
		total += count
	}
	return total
}

type TermExtractorService interface {
	ExtractTerms(text string) TermSet
}

type termExtractorService struct {
	stopwords map[string]struct{}
	normalize map[string]string
}

// tokenPattern keeps + # . - inside tokens so "c++", "c#", "node.js" and
// "ci-cd" survive tokenization.
var tokenPattern = regexp.MustCompile(`[a-z0-9+#.\-]+`)

var defaultStopwords = []string{
	"and", "or", "with", "the", "to", "a", "in", "for", "of", "on", "at",
	"is", "are", "be", "as", "by", "from", "an", "that", "this", "it",
	"you", "your", "we", "our", "will", "can", "able", "etc", "using",
	"use", "about", "into", "per", "across", "such", "via", "over",
	"under", "within", "their", "they", "them",
}

var defaultNormalization = map[string]string{
	"ml":           "machine learning",
	"ai":           "artificial intelligence",
	"nlp":          "natural language processing",
	"db":           "database",
	"dbs":          "database",
	"oop":          "object oriented programming",
	"sqlserver":    "sql server",
	"powerbi":      "power bi",
	"gcp":          "google cloud",
	"azuredevops":  "azure devops",
	"tfidf":        "tf idf",
	"tf-idf":       "tf idf",
	"tf":           "tensorflow",
	"sklearn":      "scikit learn",
	"scikit-learn": "scikit learn",
	"py":           "python",
	"python3":      "python",
	"js":           "javascript",
	"ts":           "typescript",
}

func NewTermExtractorService() TermExtractorService {
	return NewTermExtractorServiceWithTable(nil, nil)
}

// NewTermExtractorServiceWithTable builds an extractor whose normalization
// table is the default table merged with the given overrides, and whose
// stopword list is extended with extraStopwords.
func NewTermExtractorServiceWithTable(overrides map[string]string, extraStopwords []string) TermExtractorService {
	stopwords := make(map[string]struct{}, len(defaultStopwords)+len(extraStopwords))
	for _, word := range defaultStopwords {
		stopwords[word] = struct{}{}
	}
	for _, word := range extraStopwords {
		stopwords[strings.ToLower(word)] = struct{}{}
	}

	normalize := make(map[string]string, len(defaultNormalization)+len(overrides))
	for variant, canonical := range defaultNormalization {
		normalize[variant] = canonical
	}
	for variant, canonical := range overrides {
		normalize[strings.ToLower(variant)] = strings.ToLower(canonical)
	}

	return &termExtractorService{
		stopwords: stopwords,
		normalize: normalize,
	}
}

// ExtractTerms tokenizes text into normalized unigrams and adjacent-word
// bigrams, filtering stopwords and short tokens. Bigrams are built from the
// already-filtered unigram stream, so no bigram contains a filtered word.
// Frequencies are counted over the combined unigram+bigram stream.
func (t *termExtractorService) ExtractTerms(text string) TermSet {
	termSet := TermSet{
		Set:  make(map[string]struct{}),
		Freq: make(map[string]int),
	}

	if strings.TrimSpace(text) == "" {
		return termSet
	}

	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)

	var tokens []string
	for _, tok := range raw {
		tok = t.normalizeToken(tok)
		if t.keep(tok) {
			tokens = append(tokens, tok)
		}
	}

	allTerms := make([]string, 0, len(tokens)*2)
	allTerms = append(allTerms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		allTerms = append(allTerms, tokens[i]+" "+tokens[i+1])
	}

	for _, term := range allTerms {
		termSet.Set[term] = struct{}{}
		termSet.Freq[term]++
	}

	return termSet
}

func (t *termExtractorService) normalizeToken(tok string) string {
	// Strip surrounding punctuation but keep internal + # . - ("node.js",
	// "c++" stay intact)
	tok = strings.Trim(tok, ".-")
	if canonical, ok := t.normalize[tok]; ok {
		return canonical
	}
	return tok
}

func (t *termExtractorService) keep(tok string) bool {
	if len(tok) <= 2 {
		return false
	}
	// Multi-word canonical forms may include stopword-length pieces; only
	// single words are checked against the stopword list.
	if strings.Contains(tok, " ") {
		return true
	}
	_, stop := t.stopwords[tok]
	return !stop
}
