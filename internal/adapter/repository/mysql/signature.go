package mysql

import (
	"context"

	domain "docflow-backend/internal/domain/signature"

	"gorm.io/gorm"
)

type SignatureRepository struct{ db *gorm.DB }

func NewSignatureRepository(db *gorm.DB) *SignatureRepository {
	return &SignatureRepository{db: db}
}

func (r *SignatureRepository) CreateBatch(ctx context.Context, logs []*domain.Log) error {
	if len(logs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(logs).Error
}

func (r *SignatureRepository) ListByDocument(ctx context.Context, documentID uint64) ([]domain.Log, error) {
	var out []domain.Log
	res := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("sequence_order ASC").
		Find(&out)
	return out, res.Error
}

func (r *SignatureRepository) Save(ctx context.Context, l *domain.Log) error {
	return r.db.WithContext(ctx).Save(l).Error
}
