package signature

import "context"

type Repository interface {
	// CreateBatch inserts one row per required signer in a single call.
	CreateBatch(ctx context.Context, logs []*Log) error
	// ListByDocument returns the full batch ordered by sequence_order.
	ListByDocument(ctx context.Context, documentID uint64) ([]Log, error)
	Save(ctx context.Context, l *Log) error
}
