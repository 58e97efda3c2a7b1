package mysql

import (
	"context"
	"errors"

	"docflow-backend/internal/domain/document"
	"docflow-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Documents:   &DocumentRepository{db: tx},
		Users:       &UserRepository{db: tx},
		Assignments: &AssignmentRepository{db: tx},
		Signatures:  &SignatureRepository{db: tx},
		Comments:    &CommentRepository{db: tx},
		Audits:      &AuditRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repos(tx))
	})
}

func (u *GormUoW) WithinDocumentTx(ctx context.Context, documentID string, fn func(r uow.Repos, d *document.Document) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := repos(tx)
		// lock the document row up-front to prevent races
		d, err := r.Documents.GetByDocumentIDForUpdate(ctx, documentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return document.ErrNotFound
			}
			return err
		}
		return fn(r, d)
	})
}
