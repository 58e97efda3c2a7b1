package documentmock

import (
	"context"

	domain "docflow-backend/internal/domain/document"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies document.Repository.
// Fill in the function fields you need in a test; unfilled ones behave
// as harmless no-ops or return context.Canceled.
type Repo struct {
	CreateFn                   func(ctx context.Context, d *domain.Document) error
	GetByDocumentIDFn          func(ctx context.Context, documentID string) (*domain.Document, error)
	GetByDocumentIDForUpdateFn func(ctx context.Context, documentID string) (*domain.Document, error)
	SaveFn                     func(ctx context.Context, d *domain.Document) error
	DeleteFn                   func(ctx context.Context, d *domain.Document) error
	ListFn                     func(ctx context.Context, f domain.ListFilter) ([]domain.Document, int64, error)
	ListArchivedFn             func(ctx context.Context, f domain.ListFilter) ([]domain.Document, int64, error)
	ArchiveStatsFn             func(ctx context.Context) (*domain.ArchiveStats, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Document) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByDocumentID(ctx context.Context, documentID string) (*domain.Document, error) {
	if m.GetByDocumentIDFn != nil {
		return m.GetByDocumentIDFn(ctx, documentID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByDocumentIDForUpdate(ctx context.Context, documentID string) (*domain.Document, error) {
	if m.GetByDocumentIDForUpdateFn != nil {
		return m.GetByDocumentIDForUpdateFn(ctx, documentID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, d *domain.Document) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, d *domain.Document) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, d)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Document, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, nil
}

func (m *Repo) ListArchived(ctx context.Context, f domain.ListFilter) ([]domain.Document, int64, error) {
	if m.ListArchivedFn != nil {
		return m.ListArchivedFn(ctx, f)
	}
	return nil, 0, nil
}

func (m *Repo) ArchiveStats(ctx context.Context) (*domain.ArchiveStats, error) {
	if m.ArchiveStatsFn != nil {
		return m.ArchiveStatsFn(ctx)
	}
	return &domain.ArchiveStats{}, nil
}
