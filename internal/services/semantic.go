package services

import (
	"context"
	"math"
	"sort"
)

// Embedder is the narrow boundary to the embedding backend. GeminiService
// satisfies it; tests supply a deterministic fake.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// SkillMatchResult is the skill-level outcome: for every job skill the best
// resume-phrase similarity and whether it cleared the threshold.
type SkillMatchResult struct {
	Matched []string
	Missing []string
	Scores  map[string]float64
}

type SemanticScorerService interface {
	DocumentScore(ctx context.Context, resumeText string, jobDescriptions []string) float64
	SkillMatch(ctx context.Context, jdSkills, resumePhrases []string, threshold float64) SkillMatchResult
}

type semanticScorerService struct {
	embedder Embedder
}

func NewSemanticScorerService(embedder Embedder) SemanticScorerService {
	return &semanticScorerService{embedder: embedder}
}

// DocumentScore embeds the resume once and each job description once and
// returns 100 x the best cosine similarity, clamped into [0,100]. Backend
// failures degrade to 0.0 rather than failing the analysis.
func (s *semanticScorerService) DocumentScore(ctx context.Context, resumeText string, jobDescriptions []string) float64 {
	if len(jobDescriptions) == 0 || resumeText == "" {
		return 0.0
	}

	resumeVec, err := s.embedder.GenerateEmbedding(ctx, resumeText)
	if err != nil || len(resumeVec) == 0 {
		return 0.0
	}

	best := 0.0
	for _, jd := range jobDescriptions {
		jdVec, err := s.embedder.GenerateEmbedding(ctx, jd)
		if err != nil || len(jdVec) == 0 {
			continue
		}
		if sim := cosineSimilarity(resumeVec, jdVec); sim > best {
			best = sim
		}
	}

	return clamp(best*100, 0, 100)
}

// SkillMatch embeds every job skill and resume phrase, L2-normalizes both
// sides so cosine similarity reduces to a dot product, and matches each
// skill to its nearest phrase. A skill is matched iff its best similarity
// reaches threshold; raising the threshold can only move skills from
// matched to missing.
func (s *semanticScorerService) SkillMatch(ctx context.Context, jdSkills, resumePhrases []string, threshold float64) SkillMatchResult {
	if len(jdSkills) == 0 || len(resumePhrases) == 0 {
		return SkillMatchResult{
			Matched: []string{},
			Missing: jdSkills,
			Scores:  map[string]float64{},
		}
	}

	phraseVecs := s.embedBatch(ctx, resumePhrases)

	result := SkillMatchResult{
		Matched: []string{},
		Missing: []string{},
		Scores:  make(map[string]float64, len(jdSkills)),
	}

	for _, skill := range jdSkills {
		best := 0.0
		skillVec, err := s.embedder.GenerateEmbedding(ctx, skill)
		if err == nil && len(skillVec) > 0 {
			normalized := l2Normalize(skillVec)
			for _, phraseVec := range phraseVecs {
				if sim := dot(normalized, phraseVec); sim > best {
					best = sim
				}
			}
		}

		result.Scores[skill] = best
		if best >= threshold {
			result.Matched = append(result.Matched, skill)
		} else {
			result.Missing = append(result.Missing, skill)
		}
	}

	sort.Strings(result.Matched)
	sort.Strings(result.Missing)

	return result
}

func (s *semanticScorerService) embedBatch(ctx context.Context, texts []string) [][]float64 {
	var vecs [][]float64
	for _, text := range texts {
		vec, err := s.embedder.GenerateEmbedding(ctx, text)
		if err != nil || len(vec) == 0 {
			continue
		}
		vecs = append(vecs, l2Normalize(vec))
	}
	return vecs
}

func l2Normalize(vec []float32) []float64 {
	norm := 0.0
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	norm = math.Sqrt(norm) + 1e-9

	out := make([]float64, len(vec))
	for i, v := range vec {
		out[i] = float64(v) / norm
	}
	return out
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

func cosineSimilarity(a, b []float32) float64 {
	return dot(l2Normalize(a), l2Normalize(b))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
