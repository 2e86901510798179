package dto

import (
	"encoding/json"

	"github.com/nsmosa/alumni-portal-api/internal/models"
)

// SubmitContentRequest carries a content submission. Full-permission
// actors publish directly; representative admins enter the approval queue.
type SubmitContentRequest struct {
	Type    models.SubmissionType `json:"type"`
	Payload json.RawMessage       `json:"payload"`
}

// RejectSubmissionRequest carries the reviewer's optional notes.
type RejectSubmissionRequest struct {
	Notes string `json:"notes"`
}

// SubmitContentResponse reports the outcome of a submission.
type SubmitContentResponse struct {
	// Status is "pending" when the submission entered the approval queue
	// and "published" when it was written directly.
	Status     string             `json:"status"`
	Submission *models.Submission `json:"submission,omitempty"`
}
