package document

import (
	"context"
	"time"

	"docflow-backend/internal/domain/user"
)

// ListFilter scopes a listing to what the viewer is allowed to see:
// submitters see their own documents, admins see everything, everyone
// else sees documents currently assigned to them plus the archive.
type ListFilter struct {
	ViewerID   uint64
	ViewerRole user.Role

	Status       Status
	Search       string
	DocumentType string
	ArchivedFrom *time.Time
	ArchivedTo   *time.Time

	Page  int
	Limit int
}

type TypeCount struct {
	DocumentType string `json:"document_type"`
	Count        int64  `json:"count"`
}

type ArchiveStats struct {
	TotalArchived     int64       `json:"total_archived"`
	DocumentTypes     int64       `json:"document_types_count"`
	ArchivedLastMonth int64       `json:"archived_last_month"`
	ExpiredRetention  int64       `json:"expired_retention"`
	PerType           []TypeCount `json:"per_type"`
}

type Repository interface {
	Create(ctx context.Context, d *Document) error
	GetByDocumentID(ctx context.Context, documentID string) (*Document, error)
	// GetByDocumentIDForUpdate locks the row for the duration of the
	// surrounding transaction. Every workflow transition loads through this.
	GetByDocumentIDForUpdate(ctx context.Context, documentID string) (*Document, error)
	Save(ctx context.Context, d *Document) error
	Delete(ctx context.Context, d *Document) error
	List(ctx context.Context, f ListFilter) ([]Document, int64, error)
	ListArchived(ctx context.Context, f ListFilter) ([]Document, int64, error)
	ArchiveStats(ctx context.Context) (*ArchiveStats, error)
}
