package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildSuggestionPrompt creates the resume-coach prompt for suggestion
// enrichment.
func (pb *PromptBuilder) BuildSuggestionPrompt(resumeText, jdText string, missingSkills, matchedSkills []string) string {
	return fmt.Sprintf(`You are a resume coach. Compare the resume with the job description.

- Missing skills to prioritize: %s
- Already matched strengths: %s

Write a concise, actionable plan:
1) Top 5 changes to the SUMMARY (bullet list)
2) 3-5 STAR bullets to add under EXPERIENCE (start each with a strong verb)
3) Keywords to insert naturally (comma-separated)
4) Optional: short project idea (2-3 lines) that showcases 2-3 missing skills.

Resume:
%s

Job Description:
%s`,
		strings.Join(capList(missingSkills, 20), ", "),
		strings.Join(capList(matchedSkills, 15), ", "),
		resumeText, jdText)
}

// BuildSkillBagPrompt creates the prompt for extracting a de-duplicated
// skill list from free text.
func (pb *PromptBuilder) BuildSkillBagPrompt(text string, maxItems int) string {
	return fmt.Sprintf(`Extract a concise, de-duplicated list of SKILLS/TOOLS/KEYWORDS from the text.
- Prefer nouns/bigrams ("data visualization", "feature engineering", "Power BI")
- Include programming languages, libraries, cloud, DBs, ML topics, domain terms
- Return ONLY a JSON array of strings (max %d items). No commentary.

TEXT:
%s`, maxItems, text)
}

func capList(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}

// SuggesterService is the optional LLM enrichment boundary. Failures here
// never affect the deterministic score fields; callers surface them as a
// separate, clearly-labeled error.
type SuggesterService interface {
	GenerateSuggestions(ctx context.Context, resumeText, jdText string, missingSkills, matchedSkills []string) (string, error)
	ExtractSkillBag(ctx context.Context, text string, maxItems int) ([]string, error)
}

type suggesterService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewSuggesterService(gemini GeminiService, maxRetries int) SuggesterService {
	return &suggesterService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// GenerateSuggestions implements SuggesterService.
func (s *suggesterService) GenerateSuggestions(ctx context.Context, resumeText, jdText string, missingSkills, matchedSkills []string) (string, error) {
	prompt := s.promptBuilder.BuildSuggestionPrompt(resumeText, jdText, missingSkills, matchedSkills)

	response, err := s.gemini.GenerateTextWithRetry(ctx, prompt, 0.4, s.maxRetries)
	if err != nil {
		return "", fmt.Errorf("failed to generate suggestions: %w", err)
	}

	return strings.TrimSpace(response), nil
}

// ExtractSkillBag implements SuggesterService.
func (s *suggesterService) ExtractSkillBag(ctx context.Context, text string, maxItems int) ([]string, error) {
	if maxItems <= 0 {
		maxItems = 60
	}

	prompt := s.promptBuilder.BuildSkillBagPrompt(text, maxItems)

	response, err := s.gemini.GenerateTextWithRetry(ctx, prompt, 0.2, s.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to extract skill bag: %w", err)
	}

	return ParseSkillBag(response, text, maxItems), nil
}

// ParseSkillBag parses the model's JSON array of skills, falling back to a
// naive token split over the source text when the response is not valid
// JSON.
func ParseSkillBag(response, sourceText string, maxItems int) []string {
	jsonStr := extractJSON(response)

	var raw []string
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return naiveSkillSplit(sourceText, maxItems)
	}

	seen := make(map[string]struct{}, len(raw))
	skills := make([]string, 0, len(raw))
	for _, item := range raw {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		skills = append(skills, item)
		if len(skills) == maxItems {
			break
		}
	}

	return skills
}

func naiveSkillSplit(text string, maxItems int) []string {
	seen := make(map[string]struct{})
	var skills []string

	for _, word := range strings.Fields(text) {
		word = strings.ToLower(strings.Trim(word, " ,.;:"))
		if len(word) <= 2 {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		skills = append(skills, word)
		if len(skills) == maxItems {
			break
		}
	}

	return skills
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	// Find JSON object or array boundaries
	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	} else if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	}

	return text
}
