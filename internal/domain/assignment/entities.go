package assignment

import "time"

// Assignment is one review-stage handoff. A row is created when a document
// enters a review stage and closed when that reviewer acts. History is
// append-only; rows are never overwritten or deleted.
type Assignment struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-"`
	DocumentID uint64    `gorm:"not null;index:idx_assignments_document" json:"document_id"`
	Stage      string    `gorm:"size:16;not null" json:"stage"`
	AssignedTo uint64    `gorm:"not null;index:idx_assignments_assignee" json:"assigned_to"`
	AssignedAt time.Time `gorm:"autoCreateTime" json:"assigned_at"`
	Deadline   time.Time `gorm:"not null" json:"deadline"`

	CompletedAt *time.Time `json:"completed_at,omitempty"`
	IsCompleted bool       `gorm:"default:false" json:"is_completed"`
	Action      string     `gorm:"size:32" json:"action,omitempty"`
	Notes       string     `gorm:"type:text" json:"notes,omitempty"`
}

func (Assignment) TableName() string { return "workflow_assignments" }
