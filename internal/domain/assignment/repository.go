package assignment

import "context"

type Repository interface {
	Create(ctx context.Context, a *Assignment) error
	// CloseOpen marks the reviewer's open assignment on the document as
	// completed with the action taken. A no-op when nothing is open.
	CloseOpen(ctx context.Context, documentID, assignedTo uint64, action, notes string) error
	ListByDocument(ctx context.Context, documentID uint64) ([]Assignment, error)
}
