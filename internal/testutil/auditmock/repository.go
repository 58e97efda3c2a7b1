package auditmock

import (
	"context"

	domain "docflow-backend/internal/domain/audit"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies audit.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, e *domain.Entry) error
	ListByDocumentFn func(ctx context.Context, documentID uint64) ([]domain.Entry, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.Entry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListByDocument(ctx context.Context, documentID uint64) ([]domain.Entry, error) {
	if m.ListByDocumentFn != nil {
		return m.ListByDocumentFn(ctx, documentID)
	}
	return nil, nil
}
