package user

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*User, error)
	GetByUserID(ctx context.Context, userID string) (*User, error)
	// FirstActiveByRole picks the single active user a stage is handed to.
	FirstActiveByRole(ctx context.Context, role Role) (*User, error)
	// ActiveByRole lists every active user holding role, in discovery order.
	ActiveByRole(ctx context.Context, role Role) ([]User, error)
}
