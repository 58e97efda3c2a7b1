package document

import (
	"time"

	"docflow-backend/internal/domain/assignment"
	"docflow-backend/internal/domain/audit"
	"docflow-backend/internal/domain/comment"
	domain "docflow-backend/internal/domain/document"
	"docflow-backend/internal/domain/signature"
	"docflow-backend/internal/domain/user"
)

type CreateInput struct {
	Title        string
	DocumentType string
	Unit         string
	Description  string
	ValidDate    *time.Time
	Actor        *user.User
	Meta         audit.RequestMeta
}

type UpdateInput struct {
	DocumentID   string
	Title        string
	DocumentType string
	Unit         string
	Description  string
	ValidDate    *time.Time
	Actor        *user.User
	Meta         audit.RequestMeta
}

type DeleteInput struct {
	DocumentID string
	Actor      *user.User
	Meta       audit.RequestMeta
}

type ListInput struct {
	Status string
	Search string
	Page   int
	Limit  int
	Actor  *user.User
}

type ArchiveListInput struct {
	Search       string
	DocumentType string
	ArchivedFrom *time.Time
	ArchivedTo   *time.Time
	Page         int
	Limit        int
	Actor        *user.User
}

type DocumentDTO struct {
	DocumentID     string     `json:"document_id"`
	DocumentNumber string     `json:"document_number,omitempty"`
	Title          string     `json:"title"`
	DocumentType   string     `json:"document_type"`
	Unit           string     `json:"unit"`
	Description    string     `json:"description"`
	ValidDate      *time.Time `json:"valid_date,omitempty"`
	Status         string     `json:"status"`
	SubmitterID    uint64     `json:"submitter_id"`
	SubmittedAt    *time.Time `json:"submitted_at,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	SignedAt       *time.Time `json:"signed_at,omitempty"`
	ArchivedAt     *time.Time `json:"archived_at,omitempty"`
	IsLocked       bool       `json:"is_locked"`
	RetentionDate  *time.Time `json:"retention_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// DetailDTO is the full aggregate view: the document plus its assignment
// history, comments, signature batch and audit trail.
type DetailDTO struct {
	Document    DocumentDTO             `json:"document"`
	Assignments []assignment.Assignment `json:"workflow"`
	Comments    []comment.Comment       `json:"comments"`
	Signatures  []signature.Log         `json:"signatures"`
	Audit       []audit.Entry           `json:"audit"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type PageDTO struct {
	Documents  []DocumentDTO `json:"documents"`
	Pagination Pagination    `json:"pagination"`
}

func toDTO(d *domain.Document) DocumentDTO {
	dto := DocumentDTO{
		DocumentID:    d.DocumentID,
		Title:         d.Title,
		DocumentType:  d.DocumentType,
		Unit:          d.Unit,
		Description:   d.Description,
		ValidDate:     d.ValidDate,
		Status:        string(d.Status),
		SubmitterID:   d.SubmitterID,
		SubmittedAt:   d.SubmittedAt,
		ApprovedAt:    d.ApprovedAt,
		SignedAt:      d.SignedAt,
		ArchivedAt:    d.ArchivedAt,
		IsLocked:      d.IsLocked,
		RetentionDate: d.RetentionDate,
		CreatedAt:     d.CreatedAt,
	}
	if d.DocumentNumber != nil {
		dto.DocumentNumber = *d.DocumentNumber
	}
	return dto
}
