package models

import (
	"encoding/json"
	"time"
)

// SubmissionType enumerates the content kinds that flow through the
// approval queue.
type SubmissionType string

const (
	SubmissionTypeUpdate       SubmissionType = "update"
	SubmissionTypeEventPhoto   SubmissionType = "event_photo"
	SubmissionTypeGalleryPhoto SubmissionType = "gallery_photo"
	SubmissionTypeChapterPhoto SubmissionType = "chapter_photo"
	SubmissionTypeReunionPhoto SubmissionType = "reunion_photo"
	SubmissionTypeContent      SubmissionType = "content"
)

// Valid reports whether the type is one of the known submission kinds.
func (t SubmissionType) Valid() bool {
	switch t {
	case SubmissionTypeUpdate, SubmissionTypeEventPhoto, SubmissionTypeGalleryPhoto,
		SubmissionTypeChapterPhoto, SubmissionTypeReunionPhoto, SubmissionTypeContent:
		return true
	}
	return false
}

// Label returns the human-readable name used in notification messages.
func (t SubmissionType) Label() string {
	switch t {
	case SubmissionTypeUpdate:
		return "update"
	case SubmissionTypeEventPhoto:
		return "event photo"
	case SubmissionTypeGalleryPhoto:
		return "gallery photo"
	case SubmissionTypeChapterPhoto:
		return "chapter photo"
	case SubmissionTypeReunionPhoto:
		return "reunion photo"
	case SubmissionTypeContent:
		return "content"
	}
	return string(t)
}

// SubmissionStatus captures the approval workflow states.
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// Submission is a content change awaiting privileged review. It is created
// by a representative admin, transitions exactly once to approved or
// rejected, and is removed from the pending list on resolution.
type Submission struct {
	ID              string           `json:"id"`
	Type            SubmissionType   `json:"type"`
	Payload         json.RawMessage  `json:"payload"`
	SubmittedBy     string           `json:"submittedBy"`
	SubmittedByName string           `json:"submittedByName"`
	SubmittedAt     time.Time        `json:"submittedAt"`
	Status          SubmissionStatus `json:"status"`
	ReviewedBy      string           `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time       `json:"reviewedAt,omitempty"`
	ReviewNotes     string           `json:"reviewNotes,omitempty"`
}

// ContentOverride is the payload of a "content" submission: a raw value
// destined for a scalar override key (hero title, quote and similar).
type ContentOverride struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// HeroContent is the composite value stored under the hero override key.
type HeroContent struct {
	Title string `json:"title,omitempty"`
	Quote string `json:"quote,omitempty"`
}
