package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
}

type AnalyzeRequest struct {
	ResumeDocumentID string   `json:"resume_document_id" validate:"required,uuid"`
	JobDescriptions  []string `json:"job_descriptions" validate:"required"`
}

type AnalyzeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ResultResponse struct {
	ID              string          `json:"id"`
	Status          string          `json:"status"`
	Report          *AnalysisReport `json:"report,omitempty"`
	Suggestion      *string         `json:"suggestion,omitempty"`
	SuggestionError *string         `json:"suggestion_error,omitempty"`
	ErrorMessage    *string         `json:"error_message,omitempty"`
}
