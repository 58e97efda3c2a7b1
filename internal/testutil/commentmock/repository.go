package commentmock

import (
	"context"

	domain "docflow-backend/internal/domain/comment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies comment.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, c *domain.Comment) error
	ListByDocumentFn func(ctx context.Context, documentID uint64) ([]domain.Comment, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) ListByDocument(ctx context.Context, documentID uint64) ([]domain.Comment, error) {
	if m.ListByDocumentFn != nil {
		return m.ListByDocumentFn(ctx, documentID)
	}
	return nil, nil
}
