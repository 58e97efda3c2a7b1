package document

import (
	"context"
	"errors"
	"strings"

	"docflow-backend/internal/domain/audit"
	domain "docflow-backend/internal/domain/document"
	"docflow-backend/internal/domain/rbac"
	"docflow-backend/internal/domain/uow"
	"docflow-backend/internal/domain/user"
	"docflow-backend/pkg/id"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Usecase struct {
	uow uow.UnitOfWork
	log *zap.Logger
}

func NewUsecase(tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	return &Usecase{uow: tx, log: log.With(zap.String("service", "document"))}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*DocumentDTO, error) {
	if in.Actor == nil || !rbac.Can(in.Actor.Role, rbac.ActionCreate) {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, errors.New("title is required")
	}

	d := &domain.Document{
		DocumentID:   id.NewID32(),
		Title:        in.Title,
		DocumentType: in.DocumentType,
		Unit:         in.Unit,
		Description:  in.Description,
		ValidDate:    in.ValidDate,
		Status:       domain.StatusDraft,
		SubmitterID:  in.Actor.ID,
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Documents.Create(ctx, d); err != nil {
			return err
		}
		u.record(ctx, r, d, in.Actor.ID, "create", "document created as draft", in.Meta)
		return nil
	})
	if err != nil {
		return nil, err
	}

	dto := toDTO(d)
	return &dto, nil
}

func (u *Usecase) Update(ctx context.Context, in UpdateInput) (*DocumentDTO, error) {
	if in.Actor == nil || !rbac.Can(in.Actor.Role, rbac.ActionUpdate) {
		return nil, domain.ErrForbidden
	}

	var dto DocumentDTO
	err := u.uow.WithinDocumentTx(ctx, in.DocumentID, func(r uow.Repos, d *domain.Document) error {
		if d.SubmitterID != in.Actor.ID && in.Actor.Role != user.RoleAdmin {
			return domain.ErrForbidden
		}
		if !d.Status.Editable() {
			return domain.ErrInvalidTransition
		}

		d.Title = in.Title
		d.DocumentType = in.DocumentType
		d.Unit = in.Unit
		d.Description = in.Description
		d.ValidDate = in.ValidDate
		if err := r.Documents.Save(ctx, d); err != nil {
			return err
		}
		u.record(ctx, r, d, in.Actor.ID, "update", "document updated", in.Meta)
		dto = toDTO(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// Delete removes a document. Only drafts may be deleted, and only by the
// owning submitter or an admin.
func (u *Usecase) Delete(ctx context.Context, in DeleteInput) error {
	if in.Actor == nil || !rbac.Can(in.Actor.Role, rbac.ActionDelete) {
		return domain.ErrForbidden
	}

	return u.uow.WithinDocumentTx(ctx, in.DocumentID, func(r uow.Repos, d *domain.Document) error {
		if d.SubmitterID != in.Actor.ID && in.Actor.Role != user.RoleAdmin {
			return domain.ErrForbidden
		}
		if d.Status != domain.StatusDraft {
			return domain.ErrInvalidTransition
		}
		return r.Documents.Delete(ctx, d)
	})
}

func (u *Usecase) Get(ctx context.Context, documentID string) (*DetailDTO, error) {
	var out DetailDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.Documents.GetByDocumentID(ctx, documentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		out.Document = toDTO(d)
		if out.Assignments, err = r.Assignments.ListByDocument(ctx, d.ID); err != nil {
			return err
		}
		if out.Comments, err = r.Comments.ListByDocument(ctx, d.ID); err != nil {
			return err
		}
		if out.Signatures, err = r.Signatures.ListByDocument(ctx, d.ID); err != nil {
			return err
		}
		if out.Audit, err = r.Audits.ListByDocument(ctx, d.ID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *Usecase) List(ctx context.Context, in ListInput) (*PageDTO, error) {
	if in.Actor == nil {
		return nil, domain.ErrForbidden
	}

	var docs []domain.Document
	var total int64
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		docs, total, err = r.Documents.List(ctx, domain.ListFilter{
			ViewerID:   in.Actor.ID,
			ViewerRole: in.Actor.Role,
			Status:     domain.Status(in.Status),
			Search:     in.Search,
			Page:       in.Page,
			Limit:      in.Limit,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return page(docs, total, in.Page, in.Limit), nil
}

func (u *Usecase) ListArchived(ctx context.Context, in ArchiveListInput) (*PageDTO, error) {
	if in.Actor == nil || !rbac.Can(in.Actor.Role, rbac.ActionViewArchive) {
		return nil, domain.ErrForbidden
	}

	var docs []domain.Document
	var total int64
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		docs, total, err = r.Documents.ListArchived(ctx, domain.ListFilter{
			Search:       in.Search,
			DocumentType: in.DocumentType,
			ArchivedFrom: in.ArchivedFrom,
			ArchivedTo:   in.ArchivedTo,
			Page:         in.Page,
			Limit:        in.Limit,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return page(docs, total, in.Page, in.Limit), nil
}

func (u *Usecase) ArchiveStats(ctx context.Context) (*domain.ArchiveStats, error) {
	var stats *domain.ArchiveStats
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		stats, err = r.Documents.ArchiveStats(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

/// record mirrors the workflow engine's audit policy: best effort, logged
// and swallowed on failure.
func (u *Usecase) record(ctx context.Context, r uow.Repos, d *domain.Document, userID uint64, action, details string, meta audit.RequestMeta) {
	e := &audit.Entry{
		DocumentID: d.ID,
		UserID:     userID,
		Action:     action,
		Stage:      string(d.Status),
		Details:    details,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
	}
	if err := r.Audits.Create(ctx, e); err != nil {
		u.log.Warn("audit write failed",
			zap.String("document_id", d.DocumentID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

func page(docs []domain.Document, total int64, pageNum, limit int) *PageDTO {
	if pageNum < 1 {
		pageNum = 1
	}
	if limit < 1 {
		limit = 10
	}
	out := &PageDTO{
		Documents: make([]DocumentDTO, 0, len(docs)),
		Pagination: Pagination{
			Page:       pageNum,
			Limit:      limit,
			Total:      total,
			TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		},
	}
	for i := range docs {
		out.Documents = append(out.Documents, toDTO(&docs[i]))
	}
	return out
}
