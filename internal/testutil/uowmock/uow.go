package uowmock

import (
	"context"
	"errors"

	"docflow-backend/internal/domain/document"
	"docflow-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return
// errUnimplemented.
type UoW struct {
	WithinTxFn         func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinDocumentTxFn func(ctx context.Context, documentID string, fn func(r uow.Repos, d *document.Document) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough builds a UoW that runs callbacks directly against the given
// repos, with doc as the locked document row.
func Passthrough(r uow.Repos, doc *document.Document) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(r)
		},
		WithinDocumentTxFn: func(ctx context.Context, documentID string, fn func(r uow.Repos, d *document.Document) error) error {
			if doc == nil || doc.DocumentID != documentID {
				return document.ErrNotFound
			}
			return fn(r, doc)
		},
	}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinDocumentTx(ctx context.Context, documentID string, fn func(r uow.Repos, d *document.Document) error) error {
	if m.WithinDocumentTxFn != nil {
		return m.WithinDocumentTxFn(ctx, documentID, fn)
	}
	return errUnimplemented
}
