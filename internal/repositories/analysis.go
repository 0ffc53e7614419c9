package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type AnalysisRepository interface {
	Create(analysis *models.Analysis) error
	FindByID(id uuid.UUID) (*models.Analysis, error)
	UpdateStatus(id uuid.UUID, status models.AnalysisStatus) error
	UpdateResult(id uuid.UUID, result *AnalysisUpdateData) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.Analysis, error)
}

type AnalysisUpdateData struct {
	ReportJSON      *string
	Suggestion      *string
	SuggestionError *string
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) Create(analysis *models.Analysis) error {
	if err := r.db.Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}
	return nil
}

func (r *analysisRepository) FindByID(id uuid.UUID) (*models.Analysis, error) {
	var analysis models.Analysis
	if err := r.db.Where("id = ?", id).First(&analysis).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("analysis not found")
		}
		return nil, fmt.Errorf("failed to find analysis: %w", err)
	}
	return &analysis, nil
}

func (r *analysisRepository) UpdateStatus(id uuid.UUID, status models.AnalysisStatus) error {
	result := r.db.Model(&models.Analysis{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("analysis not found")
	}

	return nil
}

func (r *analysisRepository) UpdateResult(id uuid.UUID, data *AnalysisUpdateData) error {
	updates := map[string]interface{}{
		"status":     models.StatusCompleted,
		"updated_at": time.Now(),
	}

	if data.ReportJSON != nil {
		updates["report_json"] = *data.ReportJSON
	}
	if data.Suggestion != nil {
		updates["suggestion"] = *data.Suggestion
	}
	if data.SuggestionError != nil {
		updates["suggestion_error"] = *data.SuggestionError
	}

	result := r.db.Model(&models.Analysis{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("analysis not found")
	}

	return nil
}

func (r *analysisRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.Analysis{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("analysis not found")
	}

	return nil
}

func (r *analysisRepository) FindPendingJobs(limit int) ([]models.Analysis, error) {
	var analyses []models.Analysis
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&analyses).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}

	return analyses, nil
}
