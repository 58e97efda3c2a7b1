package workflow

import (
	"encoding/json"
	"time"

	"docflow-backend/internal/domain/audit"
	"docflow-backend/internal/domain/user"
)

// Review / approve action keywords. Anything else is rejected with
// document.ErrInvalidAction before any state is touched.
const (
	ActionApprove        = "approve"
	ActionReject         = "reject"
	ActionRequestChanges = "request_changes"
)

type SubmitInput struct {
	DocumentID string
	Actor      *user.User
	Meta       audit.RequestMeta
}

type ReviewInput struct {
	DocumentID string
	Actor      *user.User
	Action     string
	Notes      string
	Meta       audit.RequestMeta
}

type ApproveInput struct {
	DocumentID string
	Actor      *user.User
	Action     string
	Notes      string
	Meta       audit.RequestMeta
}

type SignInput struct {
	DocumentID      string
	Actor           *user.User
	SignatureType   string
	CertificateInfo json.RawMessage
	SignatureData   string
	Meta            audit.RequestMeta
}

type CommentInput struct {
	DocumentID     string
	Actor          *user.User
	Body           string
	IsInline       bool
	InlinePosition *string
	Meta           audit.RequestMeta
}

// TransitionDTO is what every successful transition hands back: the
// document's public id and its resulting status.
type TransitionDTO struct {
	DocumentID     string `json:"document_id"`
	DocumentNumber string `json:"document_number,omitempty"`
	Status         string `json:"status"`
}

type CommentDTO struct {
	DocumentID     string    `json:"document_id"`
	UserID         uint64    `json:"user_id"`
	Stage          string    `json:"stage"`
	Comment        string    `json:"comment"`
	IsInline       bool      `json:"is_inline"`
	InlinePosition *string   `json:"inline_position,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type SignatureDTO struct {
	SignerID        uint64     `json:"signer_id"`
	SignerName      string     `json:"signer_name,omitempty"`
	SignatureStatus string     `json:"signature_status"`
	IsSequential    bool       `json:"is_sequential"`
	SequenceOrder   int        `json:"sequence_order"`
	SignatureType   string     `json:"signature_type,omitempty"`
	SignedAt        *time.Time `json:"signed_at,omitempty"`
}
