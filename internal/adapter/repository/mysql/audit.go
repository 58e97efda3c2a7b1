package mysql

import (
	"context"

	domain "docflow-backend/internal/domain/audit"

	"gorm.io/gorm"
)

type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Create(ctx context.Context, e *domain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AuditRepository) ListByDocument(ctx context.Context, documentID uint64) ([]domain.Entry, error) {
	var out []domain.Entry
	res := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
