package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

type AnalyzerService interface {
	// Analyze runs the full scoring pipeline on raw document bytes. It is
	// pure given its inputs and always returns a report, degraded rather
	// than absent.
	Analyze(ctx context.Context, data []byte, filename string, jobDescriptions []string) *models.AnalysisReport
	// ProcessAnalysis loads a queued analysis job, runs the pipeline and
	// persists the report.
	ProcessAnalysis(ctx context.Context, analysisID uuid.UUID) error
}

type analyzerService struct {
	extractor    ExtractorService
	terms        TermExtractorService
	matcher      LexicalMatcherService
	semantic     SemanticScorerService
	readability  ReadabilityService
	aggregator   AggregatorService
	splitter     PhraseSplitter
	suggester    SuggesterService
	analysisRepo repositories.AnalysisRepository
	docRepo      repositories.DocumentRepository
	threshold    float64
}

func NewAnalyzerService(
	extractor ExtractorService,
	terms TermExtractorService,
	matcher LexicalMatcherService,
	semantic SemanticScorerService,
	readability ReadabilityService,
	aggregator AggregatorService,
	splitter PhraseSplitter,
	suggester SuggesterService,
	analysisRepo repositories.AnalysisRepository,
	docRepo repositories.DocumentRepository,
	threshold float64,
) AnalyzerService {
	return &analyzerService{
		extractor:    extractor,
		terms:        terms,
		matcher:      matcher,
		semantic:     semantic,
		readability:  readability,
		aggregator:   aggregator,
		splitter:     splitter,
		suggester:    suggester,
		analysisRepo: analysisRepo,
		docRepo:      docRepo,
		threshold:    threshold,
	}
}

// Analyze implements AnalyzerService.
func (a *analyzerService) Analyze(ctx context.Context, data []byte, filename string, jobDescriptions []string) *models.AnalysisReport {
	resumeText := a.extractor.ExtractText(ctx, data, filename)

	resumeTerms := a.terms.ExtractTerms(resumeText)
	jdTerms := a.terms.ExtractTerms(strings.Join(jobDescriptions, " "))

	match := a.matcher.Match(resumeTerms, jdTerms)
	semanticScore := a.semantic.DocumentScore(ctx, resumeText, jobDescriptions)
	readabilityScore := a.readability.ReadingEase(resumeText)
	atsFlags := a.readability.ATSFlags(resumeText)
	atsScore := a.readability.ATSScore(atsFlags)

	report := a.aggregator.BuildReport(match, semanticScore, readabilityScore, atsScore, resumeTerms, jdTerms, atsFlags)

	// Skill-level semantic matching is an enrichment on top of the
	// deterministic scores: when the LLM skill bag is available, its
	// matched/missing lists replace the lexical ones in the report.
	a.enrichSkillMatch(ctx, resumeText, jobDescriptions, report)

	return report
}

func (a *analyzerService) enrichSkillMatch(ctx context.Context, resumeText string, jobDescriptions []string, report *models.AnalysisReport) {
	if a.suggester == nil || resumeText == "" || len(jobDescriptions) == 0 {
		return
	}

	jdSkills, err := a.suggester.ExtractSkillBag(ctx, strings.Join(jobDescriptions, "\n\n"), 60)
	if err != nil || len(jdSkills) == 0 {
		if err != nil {
			log.Printf("⚠️  Skill bag extraction failed, keeping lexical lists: %v\n", err)
		}
		return
	}

	phrases := a.splitter.SplitPhrases(resumeText, 200)
	result := a.semantic.SkillMatch(ctx, jdSkills, phrases, a.threshold)

	report.MatchedSkills = result.Matched
	report.MissingSkills = result.Missing
}

// ProcessAnalysis implements AnalyzerService.
func (a *analyzerService) ProcessAnalysis(ctx context.Context, analysisID uuid.UUID) error {
	if err := a.analysisRepo.UpdateStatus(analysisID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting analysis for job ID: %s\n", analysisID)

	analysis, err := a.analysisRepo.FindByID(analysisID)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("failed to get analysis: %w", err)
	}

	doc, err := a.docRepo.FindByID(analysis.ResumeDocumentID)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("Resume document not found: %v", err))
		return fmt.Errorf("failed to get resume document: %w", err)
	}

	var jobDescriptions []string
	if err := json.Unmarshal([]byte(analysis.JobDescriptions), &jobDescriptions); err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("Invalid job descriptions: %v", err))
		return fmt.Errorf("failed to decode job descriptions: %w", err)
	}

	data, err := os.ReadFile(doc.FilePath)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("Failed to read resume file: %v", err))
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	log.Println("📄 Scoring resume against job descriptions...")
	report := a.Analyze(ctx, data, doc.OriginalFileName, jobDescriptions)

	reportJSON, err := json.Marshal(report)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("Failed to encode report: %v", err))
		return fmt.Errorf("failed to encode report: %w", err)
	}

	updateData := &repositories.AnalysisUpdateData{
		ReportJSON: ptr(string(reportJSON)),
	}

	// Suggestion enrichment is best-effort: its failure is stored as a
	// distinct error next to the already-computed scores.
	if a.suggester != nil {
		log.Println("🤖 Generating rewrite suggestions with LLM...")
		resumeText := a.extractor.ExtractText(ctx, data, doc.OriginalFileName)
		suggestion, err := a.suggester.GenerateSuggestions(
			ctx,
			resumeText,
			strings.Join(jobDescriptions, "\n\n"),
			report.MissingSkills,
			report.MatchedSkills,
		)
		if err != nil {
			log.Printf("⚠️  Suggestion enrichment failed: %v\n", err)
			updateData.SuggestionError = ptr(err.Error())
		} else {
			updateData.Suggestion = ptr(suggestion)
		}
	}

	log.Println("💾 Saving analysis results...")
	if err := a.analysisRepo.UpdateResult(analysisID, updateData); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	log.Printf("✅ Analysis completed successfully for job ID: %s\n", analysisID)
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
