package services

import (
	"regexp"
	"strings"
)

type ReadabilityService interface {
	ReadingEase(text string) float64
	ATSFlags(text string) []string
	ATSScore(flags []string) float64
}

type readabilityService struct{}

func NewReadabilityService() ReadabilityService {
	return &readabilityService{}
}

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	yearPattern  = regexp.MustCompile(`\b20\d{2}\b`)
	wordPattern  = regexp.MustCompile(`[A-Za-z]+`)
)

// ReadingEase computes the Flesch reading-ease score clamped into [0,100].
// The formula is undefined on empty text, so a minimal placeholder is
// substituted instead of returning an error.
func (r *readabilityService) ReadingEase(text string) float64 {
	if strings.TrimSpace(text) == "" {
		text = "a"
	}

	words := wordPattern.FindAllString(text, -1)
	if len(words) == 0 {
		words = []string{"a"}
	}

	sentences := countSentences(text)
	syllables := 0
	for _, word := range words {
		syllables += countSyllables(word)
	}

	wordCount := float64(len(words))
	score := 206.835 - 1.015*(wordCount/float64(sentences)) - 84.6*(float64(syllables)/wordCount)

	return clamp(score, 0, 100)
}

// ATSFlags runs the structural heuristics an automated resume scanner
// would apply. Each flag names one missing element; all four checks run
// even on empty text.
func (r *readabilityService) ATSFlags(text string) []string {
	flags := []string{}
	low := strings.ToLower(text)

	if !strings.Contains(low, "skills") {
		flags = append(flags, "Add a dedicated 'Skills' section.")
	}
	if !emailPattern.MatchString(text) {
		flags = append(flags, "Add a professional email.")
	}
	if !yearPattern.MatchString(text) {
		flags = append(flags, "Add years for roles (YYYY).")
	}
	if !strings.Contains(low, "experience") && !strings.Contains(low, "work") {
		flags = append(flags, "Add 'Experience' section header.")
	}

	return flags
}

// ATSScore implements ReadabilityService.
func (r *readabilityService) ATSScore(flags []string) float64 {
	score := 100.0 - 10.0*float64(len(flags))
	if score < 0 {
		return 0.0
	}
	return score
}

func countSentences(text string) int {
	count := strings.Count(text, ".") + strings.Count(text, "!") + strings.Count(text, "?")
	if count == 0 {
		return 1
	}
	return count
}

// countSyllables approximates syllables as vowel groups, with a silent-e
// adjustment. Every word counts as at least one.
func countSyllables(word string) int {
	word = strings.ToLower(word)

	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}

	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}

	if count == 0 {
		return 1
	}
	return count
}
