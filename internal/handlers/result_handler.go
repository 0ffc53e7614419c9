package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

type ResultHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewResultHandler(analysisRepo repositories.AnalysisRepository) *ResultHandler {
	return &ResultHandler{
		analysisRepo: analysisRepo,
	}
}

func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	// Parse ID from params
	idParam := c.Params("id")
	analysisID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	response := models.ResultResponse{
		ID:     analysis.ID.String(),
		Status: string(analysis.Status),
	}

	// If completed, include the report
	if analysis.Status == models.StatusCompleted && analysis.ReportJSON != nil {
		var report models.AnalysisReport
		if err := json.Unmarshal([]byte(*analysis.ReportJSON), &report); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to decode stored report",
			})
		}
		response.Report = &report
		response.Suggestion = analysis.Suggestion
		response.SuggestionError = analysis.SuggestionError
	}

	// If failed, include error message
	if analysis.Status == models.StatusFailed && analysis.ErrorMessage != "" {
		response.ErrorMessage = &analysis.ErrorMessage
	}

	return c.JSON(response)
}
