package signaturemock

import (
	"context"

	domain "docflow-backend/internal/domain/signature"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies signature.Repository.
type Repo struct {
	CreateBatchFn    func(ctx context.Context, logs []*domain.Log) error
	ListByDocumentFn func(ctx context.Context, documentID uint64) ([]domain.Log, error)
	SaveFn           func(ctx context.Context, l *domain.Log) error
}

func (m *Repo) CreateBatch(ctx context.Context, logs []*domain.Log) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, logs)
	}
	return nil
}

func (m *Repo) ListByDocument(ctx context.Context, documentID uint64) ([]domain.Log, error) {
	if m.ListByDocumentFn != nil {
		return m.ListByDocumentFn(ctx, documentID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Log) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
