package audit

import "time"

// RequestMeta is the request context recorded alongside every entry.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// Entry is the permanent record of one state-changing action. Entries are
// never edited or deleted.
type Entry struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-"`
	DocumentID uint64    `gorm:"not null;index:idx_audit_logs_document" json:"document_id"`
	UserID     uint64    `gorm:"not null" json:"user_id"`
	Action     string    `gorm:"size:32;not null" json:"action"`
	Stage      string    `gorm:"size:16;not null" json:"stage"`
	Details    string    `gorm:"type:text" json:"details,omitempty"`
	IPAddress  string    `gorm:"size:64" json:"ip_address,omitempty"`
	UserAgent  string    `gorm:"size:255" json:"user_agent,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string { return "audit_logs" }
