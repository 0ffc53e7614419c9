package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSkillBagJSONArray(t *testing.T) {
	response := "```json\n[\"Python\", \"SQL\", \" python \", \"\"]\n```"

	skills := ParseSkillBag(response, "ignored source", 60)

	assert.Equal(t, []string{"python", "sql"}, skills)
}

func TestParseSkillBagTruncatesToMaxItems(t *testing.T) {
	response := `["a1", "b22", "c33", "d44"]`

	skills := ParseSkillBag(response, "", 2)

	assert.Len(t, skills, 2)
}

func TestParseSkillBagFallbackOnInvalidJSON(t *testing.T) {
	skills := ParseSkillBag("sorry, I cannot do that", "Python SQL airflow python", 60)

	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "sql")
	assert.Contains(t, skills, "airflow")
	// de-duplicated
	assert.Len(t, skills, 3)
}

func TestBuildSuggestionPromptCapsSkillLists(t *testing.T) {
	pb := NewPromptBuilder()

	missing := make([]string, 30)
	for i := range missing {
		missing[i] = strings.Repeat("m", i+1)
	}

	prompt := pb.BuildSuggestionPrompt("resume", "jd", missing, []string{"go"})

	assert.Contains(t, prompt, "Resume:\nresume")
	assert.Contains(t, prompt, "Job Description:\njd")
	// the 21st missing skill is cut off
	assert.NotContains(t, prompt, strings.Repeat("m", 21))
}

func TestSplitPhrasesSentencesAndLines(t *testing.T) {
	splitter := NewPhraseSplitter()

	phrases := splitter.SplitPhrases("Built ETL pipelines. Shipped dashboards!\nMentored juniors", 200)

	assert.Equal(t, []string{"Built ETL pipelines", "Shipped dashboards", "Mentored juniors"}, phrases)
}

func TestSplitPhrasesBreaksLongFragments(t *testing.T) {
	splitter := NewPhraseSplitter()

	long := strings.Repeat("very long clause, ", 20)
	phrases := splitter.SplitPhrases(long, 50)

	assert.Greater(t, len(phrases), 1)
	for _, phrase := range phrases {
		assert.NotEmpty(t, phrase)
	}
}
