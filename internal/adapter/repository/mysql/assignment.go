package mysql

import (
	"context"
	"time"

	domain "docflow-backend/internal/domain/assignment"

	"gorm.io/gorm"
)

type AssignmentRepository struct{ db *gorm.DB }

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) Create(ctx context.Context, a *domain.Assignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AssignmentRepository) CloseOpen(ctx context.Context, documentID, assignedTo uint64, action, notes string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Model(&domain.Assignment{}).
		Where("document_id = ? AND assigned_to = ? AND is_completed = ?", documentID, assignedTo, false).
		Updates(map[string]any{
			"completed_at": now,
			"is_completed": true,
			"action":       action,
			"notes":        notes,
		}).Error
}

func (r *AssignmentRepository) ListByDocument(ctx context.Context, documentID uint64) ([]domain.Assignment, error) {
	var out []domain.Assignment
	res := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("assigned_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
