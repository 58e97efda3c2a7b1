package comment

import "context"

type Repository interface {
	Create(ctx context.Context, c *Comment) error
	ListByDocument(ctx context.Context, documentID uint64) ([]Comment, error)
}
