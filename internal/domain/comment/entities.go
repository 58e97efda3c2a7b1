package comment

import "time"

// Comment is immutable once created. Stage records the document status at
// the time of posting.
type Comment struct {
	ID             uint64    `gorm:"primaryKey;column:id" json:"-"`
	DocumentID     uint64    `gorm:"not null;index:idx_comments_document" json:"document_id"`
	UserID         uint64    `gorm:"not null" json:"user_id"`
	Stage          string    `gorm:"size:16;not null" json:"stage"`
	Body           string    `gorm:"column:comment;type:text;not null" json:"comment"`
	IsInline       bool      `gorm:"default:false" json:"is_inline"`
	InlinePosition *string   `gorm:"size:255" json:"inline_position,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Comment) TableName() string { return "comments" }
