package document

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusReview1  Status = "review1"
	StatusReview2  Status = "review2"
	StatusReview3  Status = "review3"
	StatusApprove  Status = "approve"
	StatusSign     Status = "sign"
	StatusArchived Status = "archived"
	StatusRejected Status = "rejected"
	StatusRevision Status = "revision"
)

// Editable reports whether the owning submitter may still change the document.
func (s Status) Editable() bool { return s == StatusDraft || s == StatusRevision }

// ReviewStage reports whether s is one of the three review stages.
func (s Status) ReviewStage() bool {
	return s == StatusReview1 || s == StatusReview2 || s == StatusReview3
}

type Document struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	DocumentID string `gorm:"size:32;uniqueIndex:ux_documents_document_id_active" json:"document_id"`

	Title        string     `gorm:"size:255;not null" json:"title"`
	DocumentType string     `gorm:"size:64" json:"document_type"`
	Unit         string     `gorm:"size:128" json:"unit"`
	Description  string     `gorm:"type:text" json:"description"`
	ValidDate    *time.Time `gorm:"type:date" json:"valid_date,omitempty"`

	Status Status `gorm:"type:enum('draft','review1','review2','review3','approve','sign','archived','rejected','revision');default:'draft'" json:"status"`
	// Assigned once, on first submission. Never changed afterwards.
	DocumentNumber *string `gorm:"size:32;index" json:"document_number,omitempty"`

	SubmitterID uint64 `gorm:"not null;index:idx_documents_submitter" json:"submitter_id"`
	// Non-null only while the document sits in a review or approve stage.
	CurrentReviewerID *uint64 `gorm:"index:idx_documents_current_reviewer" json:"current_reviewer_id,omitempty"`

	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	SignedAt    *time.Time `json:"signed_at,omitempty"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`

	// True only once archived.
	IsLocked      bool       `gorm:"default:false" json:"is_locked"`
	RetentionDate *time.Time `gorm:"type:date" json:"retention_date,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Document) TableName() string { return "documents" }

// Number formats the document number stamped on first submission,
// e.g. DOC-2025-000042.
func Number(id uint64, year int) string {
	return fmt.Sprintf("DOC-%d-%06d", year, id)
}
