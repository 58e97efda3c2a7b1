package signature

import (
	"time"

	"gorm.io/datatypes"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusSigned  Status = "signed"
)

// Log is one required signer in a document's signing batch. Rows are
// created together when the document enters the sign stage and only ever
// transition pending → signed.
type Log struct {
	ID              uint64 `gorm:"primaryKey;column:id" json:"-"`
	DocumentID      uint64 `gorm:"not null;index:idx_signature_logs_document" json:"document_id"`
	SignerID        uint64 `gorm:"not null;index:idx_signature_logs_signer" json:"signer_id"`
	SignatureStatus Status `gorm:"type:enum('pending','signed');default:'pending'" json:"signature_status"`
	IsSequential    bool   `gorm:"default:true" json:"is_sequential"`
	// 1-based position within the batch.
	SequenceOrder int `gorm:"not null" json:"sequence_order"`

	SignatureType   string         `gorm:"size:64" json:"signature_type,omitempty"`
	CertificateInfo datatypes.JSON `json:"certificate_info,omitempty"`
	SignatureData   string         `gorm:"type:text" json:"signature_data,omitempty"`
	SignedAt        *time.Time     `json:"signed_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Log) TableName() string { return "signature_logs" }
