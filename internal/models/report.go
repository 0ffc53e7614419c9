package models

// AnalysisReport is the terminal aggregate returned to callers. Scores are
// 0-100 with one decimal; the ATS score is integer-valued by construction.
type AnalysisReport struct {
	FitScore           float64  `json:"fit_score"`
	KeywordScore       float64  `json:"keyword_score"`
	SemanticScore      float64  `json:"semantic_score"`
	ReadabilityScore   float64  `json:"readability_score"`
	ATSScore           float64  `json:"ats_score"`
	MatchedSkills      []string `json:"matched_skills"`
	MissingSkills      []string `json:"missing_skills"`
	KeywordGaps        []string `json:"keyword_gaps"`
	RewriteSuggestions []string `json:"rewrite_suggestions"`
	ATSFlags           []string `json:"ats_flags"`
}
