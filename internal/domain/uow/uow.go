package uow

import (
	"context"

	"docflow-backend/internal/domain/assignment"
	"docflow-backend/internal/domain/audit"
	"docflow-backend/internal/domain/comment"
	"docflow-backend/internal/domain/document"
	"docflow-backend/internal/domain/signature"
	"docflow-backend/internal/domain/user"
)

type Repos struct {
	Documents   document.Repository
	Users       user.Repository
	Assignments assignment.Repository
	Signatures  signature.Repository
	Comments    comment.Repository
	Audits      audit.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the document row first, then pass it in. Every
	// workflow transition runs through this so two actors cannot race the
	// same document into conflicting next states.
	WithinDocumentTx(ctx context.Context, documentID string, fn func(r Repos, d *document.Document) error) error
}
