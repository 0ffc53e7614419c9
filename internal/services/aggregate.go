package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// Weights are the fixed blend for the composite fit score. They come from
// configuration and are validated to sum to 1.0 before any analysis runs.
type Weights struct {
	Lexical     float64
	Semantic    float64
	Readability float64
	ATS         float64
}

func DefaultWeights() Weights {
	return Weights{Lexical: 0.45, Semantic: 0.35, Readability: 0.10, ATS: 0.10}
}

type AggregatorService interface {
	BuildReport(match MatchResult, semanticScore, readabilityScore, atsScore float64, resumeTerms, jdTerms TermSet, atsFlags []string) *models.AnalysisReport
}

type aggregatorService struct {
	weights Weights
}

func NewAggregatorService(weights Weights) AggregatorService {
	return &aggregatorService{weights: weights}
}

// BuildReport combines the component signals into the terminal report.
func (a *aggregatorService) BuildReport(match MatchResult, semanticScore, readabilityScore, atsScore float64, resumeTerms, jdTerms TermSet, atsFlags []string) *models.AnalysisReport {
	fit := roundOne(a.weights.Lexical*match.CoverageScore +
		a.weights.Semantic*semanticScore +
		a.weights.Readability*readabilityScore +
		a.weights.ATS*atsScore)

	gaps := keywordGaps(resumeTerms, jdTerms)

	suggestions := []string{}
	if len(gaps) > 0 {
		named := gaps
		if len(named) > 5 {
			named = named[:5]
		}
		suggestions = append(suggestions, fmt.Sprintf("Add context for: %s.", strings.Join(named, ", ")))
	}
	suggestions = append(suggestions, "Use impact bullets: verb + metric + outcome (e.g., 'Built X reducing Y by 15%').")

	return &models.AnalysisReport{
		FitScore:           fit,
		KeywordScore:       roundOne(match.CoverageScore),
		SemanticScore:      roundOne(semanticScore),
		ReadabilityScore:   roundOne(readabilityScore),
		ATSScore:           atsScore,
		MatchedSkills:      match.Matched,
		MissingSkills:      match.Missing,
		KeywordGaps:        gaps,
		RewriteSuggestions: suggestions,
		ATSFlags:           atsFlags,
	}
}

// keywordGaps takes the top 20 job-description terms by frequency, keeps
// those absent from the resume vocabulary, and truncates to the first 10
// in that same order.
func keywordGaps(resumeTerms, jdTerms TermSet) []string {
	top := make([]string, 0, len(jdTerms.Set))
	for term := range jdTerms.Set {
		top = append(top, term)
	}
	sortByJDWeight(top, jdTerms)

	if len(top) > 20 {
		top = top[:20]
	}

	gaps := []string{}
	for _, term := range top {
		if !resumeTerms.Contains(term) {
			gaps = append(gaps, term)
		}
		if len(gaps) == 10 {
			break
		}
	}

	return gaps
}
