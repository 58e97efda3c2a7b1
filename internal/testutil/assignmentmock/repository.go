package assignmentmock

import (
	"context"

	domain "docflow-backend/internal/domain/assignment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies assignment.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, a *domain.Assignment) error
	CloseOpenFn      func(ctx context.Context, documentID, assignedTo uint64, action, notes string) error
	ListByDocumentFn func(ctx context.Context, documentID uint64) ([]domain.Assignment, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Assignment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) CloseOpen(ctx context.Context, documentID, assignedTo uint64, action, notes string) error {
	if m.CloseOpenFn != nil {
		return m.CloseOpenFn(ctx, documentID, assignedTo, action, notes)
	}
	return nil
}

func (m *Repo) ListByDocument(ctx context.Context, documentID uint64) ([]domain.Assignment, error) {
	if m.ListByDocumentFn != nil {
		return m.ListByDocumentFn(ctx, documentID)
	}
	return nil, nil
}
