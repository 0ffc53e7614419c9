package services

import (
	"strings"
	"unicode/utf8"
)

type PhraseSplitter interface {
	SplitPhrases(text string, maxPhraseLen int) []string
}

type phraseSplitter struct{}

func NewPhraseSplitter() PhraseSplitter {
	return &phraseSplitter{}
}

// SplitPhrases breaks text into sentence-or-line sized fragments suitable
// for per-phrase embedding. Fragments longer than maxPhraseLen runes are
// split again on commas and semicolons so a single dense bullet does not
// dominate a whole embedding.
func (p *phraseSplitter) SplitPhrases(text string, maxPhraseLen int) []string {
	if maxPhraseLen <= 0 {
		maxPhraseLen = 200
	}

	var phrases []string
	for _, line := range strings.Split(text, "\n") {
		for _, sentence := range splitIntoSentences(line) {
			if utf8.RuneCountInString(sentence) <= maxPhraseLen {
				phrases = append(phrases, sentence)
				continue
			}

			for _, part := range strings.FieldsFunc(sentence, func(r rune) bool {
				return r == ',' || r == ';'
			}) {
				part = strings.TrimSpace(part)
				if part != "" {
					phrases = append(phrases, part)
				}
			}
		}
	}

	return phrases
}

func splitIntoSentences(text string) []string {
	sentences := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var result []string
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}
