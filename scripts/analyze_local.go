package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/services"
)

// Local analysis runner: scores a resume file against one or more
// job-description text files without the API, database or worker.
//
//	go run ./scripts resume.pdf jd1.txt [jd2.txt ...]
func main() {
	if len(os.Args) < 3 {
		log.Fatalf("usage: %s <resume-file> <jd-file> [jd-file ...]", os.Args[0])
	}

	log.Println("🚀 Starting local analysis...")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	resumePath := os.Args[1]
	resumeData, err := os.ReadFile(resumePath)
	if err != nil {
		log.Fatalf("❌ Failed to read resume: %v", err)
	}

	var jobDescriptions []string
	for _, jdPath := range os.Args[2:] {
		jdData, err := os.ReadFile(jdPath)
		if err != nil {
			log.Fatalf("❌ Failed to read job description %s: %v", jdPath, err)
		}
		jobDescriptions = append(jobDescriptions, string(jdData))
	}

	normOverrides, err := cfg.LoadNormalizationOverrides()
	if err != nil {
		log.Fatalf("❌ Failed to load normalization table: %v", err)
	}

	// Semantic scoring needs the embedding backend; without an API key the
	// semantic contribution degrades to 0.0 and everything else still runs.
	var embedder services.Embedder = unavailableEmbedder{}
	var suggester services.SuggesterService
	if cfg.Gemini.APIKey != "" {
		gemini, err := services.NewGeminiService(cfg.Gemini.APIKey)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini: %v", err)
		}
		embedder = gemini
		suggester = services.NewSuggesterService(gemini, cfg.Worker.RetryMaxAttempts)
	} else {
		log.Println("⚠️  GEMINI_API_KEY not set; semantic score will be 0.0")
	}

	analyzer := services.NewAnalyzerService(
		services.NewExtractorService(),
		services.NewTermExtractorServiceWithTable(normOverrides, nil),
		services.NewLexicalMatcherService(),
		services.NewSemanticScorerService(embedder),
		services.NewReadabilityService(),
		services.NewAggregatorService(services.Weights{
			Lexical:     cfg.Scoring.LexicalWeight,
			Semantic:    cfg.Scoring.SemanticWeight,
			Readability: cfg.Scoring.ReadabilityWeight,
			ATS:         cfg.Scoring.ATSWeight,
		}),
		services.NewPhraseSplitter(),
		suggester,
		nil,
		nil,
		cfg.Scoring.SemanticThreshold,
	)

	report := analyzer.Analyze(context.Background(), resumeData, resumePath, jobDescriptions)

	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("❌ Failed to encode report: %v", err)
	}

	fmt.Println(string(output))
	log.Printf("✅ Analysis completed (fit score: %.1f)", report.FitScore)
}

type unavailableEmbedder struct{}

func (unavailableEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return nil, fmt.Errorf("embedding backend not configured")
}
