package handlers

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analysisRepo repositories.AnalysisRepository
	docRepo      repositories.DocumentRepository
	worker       services.Worker
}

func NewAnalyzeHandler(
	analysisRepo repositories.AnalysisRepository,
	docRepo repositories.DocumentRepository,
	worker services.Worker,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysisRepo: analysisRepo,
		docRepo:      docRepo,
		worker:       worker,
	}
}

// HandleAnalyze handles POST /analyze. Input validation happens here, at
// the boundary, so the scoring engine itself never rejects a request.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ResumeDocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_document_id is required",
		})
	}

	if len(req.JobDescriptions) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_descriptions is required",
		})
	}

	for _, jd := range req.JobDescriptions {
		if strings.TrimSpace(jd) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "job_descriptions must not contain empty entries",
			})
		}
	}

	resumeDocID, err := uuid.Parse(req.ResumeDocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume_document_id format",
		})
	}

	if _, err := h.docRepo.FindByID(resumeDocID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume document not found",
		})
	}

	jdsJSON, err := json.Marshal(req.JobDescriptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to encode job descriptions",
		})
	}

	analysis := &models.Analysis{
		ID:               uuid.New(),
		ResumeDocumentID: resumeDocID,
		JobDescriptions:  string(jdsJSON),
		Status:           models.StatusQueued,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.analysisRepo.Create(analysis); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create analysis job",
		})
	}

	// Enqueue job to worker
	h.worker.EnqueueJob(analysis.ID)

	// Return job ID immediately
	return c.Status(fiber.StatusAccepted).JSON(models.AnalyzeResponse{
		ID:     analysis.ID.String(),
		Status: string(models.StatusQueued),
	})
}
