package models

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisStatus string

const (
	StatusQueued     AnalysisStatus = "queued"
	StatusProcessing AnalysisStatus = "processing"
	StatusCompleted  AnalysisStatus = "completed"
	StatusFailed     AnalysisStatus = "failed"
)

// Analysis is the stored history record for one resume/job-description run.
// The scoring engine itself never reads or writes this table; the worker
// writes it once per completed report.
type Analysis struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResumeDocumentID uuid.UUID      `gorm:"type:uuid;not null" json:"resume_document_id"`
	JobDescriptions  string         `gorm:"type:text" json:"job_descriptions"`
	Status           AnalysisStatus `gorm:"not null;default:'queued'" json:"status"`
	ReportJSON       *string        `gorm:"type:text" json:"report_json,omitempty"`
	Suggestion       *string        `gorm:"type:text" json:"suggestion,omitempty"`
	SuggestionError  *string        `gorm:"type:text" json:"suggestion_error,omitempty"`
	ErrorMessage     string         `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	ResumeDocument Document `gorm:"foreignKey:ResumeDocumentID" json:"-"`
}

func (Analysis) TableName() string {
	return "analyses"
}
