package audit

import "context"

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	ListByDocument(ctx context.Context, documentID uint64) ([]Entry, error)
}
