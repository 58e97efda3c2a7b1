package mysql

import (
	"context"

	domain "docflow-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	var out domain.User
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	var out domain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) FirstActiveByRole(ctx context.Context, role domain.Role) (*domain.User, error) {
	var out domain.User
	res := r.db.WithContext(ctx).
		Where("role = ? AND is_active = ?", role, true).
		Order("id ASC").
		First(&out)
	return &out, res.Error
}

func (r *UserRepository) ActiveByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	var out []domain.User
	res := r.db.WithContext(ctx).
		Where("role = ? AND is_active = ?", role, true).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
