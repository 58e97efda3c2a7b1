package usermock

import (
	"context"

	domain "docflow-backend/internal/domain/user"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies user.Repository. Unfilled
// role lookups report "no such user", which is the common default in
// staffing tests.
type Repo struct {
	GetByIDFn           func(ctx context.Context, id uint64) (*domain.User, error)
	GetByUserIDFn       func(ctx context.Context, userID string) (*domain.User, error)
	FirstActiveByRoleFn func(ctx context.Context, role domain.Role) (*domain.User, error)
	ActiveByRoleFn      func(ctx context.Context, role domain.Role) ([]domain.User, error)
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) FirstActiveByRole(ctx context.Context, role domain.Role) (*domain.User, error) {
	if m.FirstActiveByRoleFn != nil {
		return m.FirstActiveByRoleFn(ctx, role)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ActiveByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if m.ActiveByRoleFn != nil {
		return m.ActiveByRoleFn(ctx, role)
	}
	return nil, nil
}
