package mysql

import (
	"context"

	domain "docflow-backend/internal/domain/comment"

	"gorm.io/gorm"
)

type CommentRepository struct{ db *gorm.DB }

func NewCommentRepository(db *gorm.DB) *CommentRepository { return &CommentRepository{db: db} }

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CommentRepository) ListByDocument(ctx context.Context, documentID uint64) ([]domain.Comment, error) {
	var out []domain.Comment
	res := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
