package workflow

import (
	"context"
	"errors"
	"time"

	"docflow-backend/internal/domain/assignment"
	"docflow-backend/internal/domain/audit"
	"docflow-backend/internal/domain/comment"
	"docflow-backend/internal/domain/document"
	"docflow-backend/internal/domain/rbac"
	"docflow-backend/internal/domain/signature"
	"docflow-backend/internal/domain/uow"
	"docflow-backend/internal/domain/user"
	"docflow-backend/internal/notify"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Usecase is the workflow engine. Every transition runs as one atomic unit
// of work: the document row is locked, authority and the current-status
// precondition are validated under the lock, and all writes commit or roll
// back together. Notifications are dispatched strictly after commit.
type Usecase struct {
	uow        uow.UnitOfWork
	dispatcher notify.Dispatcher
	log        *zap.Logger

	reviewDeadline time.Duration
	retentionYears int
}

func NewUsecase(tx uow.UnitOfWork, d notify.Dispatcher, log *zap.Logger, reviewDeadline time.Duration, retentionYears int) *Usecase {
	return &Usecase{
		uow:            tx,
		dispatcher:     d,
		log:            log.With(zap.String("service", "workflow")),
		reviewDeadline: reviewDeadline,
		retentionYears: retentionYears,
	}
}

// Submit moves a draft or revision into review1. The document number is
// assigned here, once, and never changed by any later transition.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*TransitionDTO, error) {
	if in.Actor == nil || !rbac.Can(in.Actor.Role, rbac.ActionSubmit) {
		return nil, document.ErrForbidden
	}

	var dto *TransitionDTO
	var outbox []notify.Message

	err := u.uow.WithinDocumentTx(ctx, in.DocumentID, func(r uow.Repos, d *document.Document) error {
		if d.SubmitterID != in.Actor.ID && in.Actor.Role != user.RoleAdmin {
			return document.ErrForbidden
		}
		if !d.Status.Editable() {
			return document.ErrInvalidTransition
		}

		reviewer, err := r.Users.FirstActiveByRole(ctx, user.RoleReviewer1)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return document.ErrNoReviewerAvailable
			}
			return err
		}

		now := time.Now().UTC()
		if d.DocumentNumber == nil {
			n := document.Number(d.ID, now.Year())
			d.DocumentNumber = &n
		}
		d.Status = document.StatusReview1
		d.SubmittedAt = &now
		d.CurrentReviewerID = &reviewer.ID

		if err := r.Assignments.Create(ctx, &assignment.Assignment{
			DocumentID: d.ID,
			Stage:      string(document.StatusReview1),
			AssignedTo: reviewer.ID,
			AssignedAt: now,
			Deadline:   now.Add(u.reviewDeadline),
		}); err != nil {
			return err
		}
		if err := r.Documents.Save(ctx, d); err != nil {
			return err
		}

		u.audit(ctx, r, d, in.Actor.ID, "submit", "document submitted for review", in.Meta)
		outbox = append(outbox, message(reviewer.Email, notify.KindReviewRequested, d, ""))
		dto = transitionDTO(d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.send(ctx, outbox)
	return dto, nil
}

// Review handles the assigned reviewer's decision on review1/2/3.
// Approving advances the chain; missing reviewer2/reviewer3 staffing
// short-circuits straight to the approve stage.
func (u *Usecase) Review(ctx context.Context, in ReviewInput) (*TransitionDTO, error) {
	switch in.Action {
	case ActionApprove, ActionReject, ActionRequestChanges:
	default:
		return nil, document.ErrInvalidAction
	}
	if in.Actor == nil || !rbac.Can(in.Actor.Role, rbac.ActionReview) {
		return nil, document.ErrForbidden
	}

	var dto *TransitionDTO
	var outbox []notify.Message

	err := u.uow.WithinDocumentTx(ctx, in.DocumentID, func(r uow.Repos, d *document.Document) error {
		if !d.Status.ReviewStage() {
			return document.ErrInvalidTransition
		}
		if d.CurrentReviewerID == nil || *d.CurrentReviewerID != in.Actor.ID {
			return document.ErrForbidden
		}

		if err := r.Assignments.CloseOpen(ctx, d.ID, in.Actor.ID, in.Action, in.Notes); err != nil {
			return err
		}

		switch in.Action {
		case ActionReject:
			d.Status = document.StatusRejected
			d.CurrentReviewerID = nil
			m, err := u.submitterUpdate(ctx, r, d, in.Notes)
			if err != nil {
				return err
			}
			outbox = append(outbox, m)

		case ActionRequestChanges:
			d.Status = document.StatusRevision
			d.CurrentReviewerID = nil
			m, err := u.submitterUpdate(ctx, r, d, in.Notes)
			if err != nil {
				return err
			}
			outbox = append(outbox, m)

		case ActionApprove:
			msgs, err := u.advance(ctx, r, d)
			if err != nil {
				return err
			}
			outbox = append(outbox, msgs...)
		}

		if err := r.Documents.Save(ctx, d); err != nil {
			return err
		}
		u.audit(ctx, r, d, in.Actor.ID, in.Action, in.Notes, in.Meta)
		dto = transitionDTO(d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.send(ctx, outbox)
	return dto, nil
}

// advance moves d from its current review stage to the next staffed one,
// or to the approve stage when the chain runs out of reviewers.
func (u *Usecase) advance(ctx context.Context, r uow.Repos, d *document.Document) ([]notify.Message, error) {
	var nextRole user.Role
	var nextStatus document.Status
	switch d.Status {
	case document.StatusReview1:
		nextRole, nextStatus = user.RoleReviewer2, document.StatusReview2
	case document.StatusReview2:
		nextRole, nextStatus = user.RoleReviewer3, document.StatusReview3
	}

	if nextRole != "" {
		reviewer, err := r.Users.FirstActiveByRole(ctx, nextRole)
		switch {
		case err == nil:
			now := time.Now().UTC()
			d.Status = nextStatus
			d.CurrentReviewerID = &reviewer.ID
			if err := r.Assignments.Create(ctx, &assignment.Assignment{
				DocumentID: d.ID,
				Stage:      string(nextStatus),
				AssignedTo: reviewer.ID,
				AssignedAt: now,
				Deadline:   now.Add(u.reviewDeadline),
			}); err != nil {
				return nil, err
			}
			return []notify.Message{message(reviewer.Email, notify.KindReviewRequested, d, "")}, nil
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}

	// review stages are optional based on staffing: no next reviewer
	// means the chain short-circuits to approve
	d.Status = document.StatusApprove
	d.CurrentReviewerID = nil
	approver, err := r.Users.FirstActiveByRole(ctx, user.RoleApprover)
	switch {
	case err == nil:
		d.CurrentReviewerID = &approver.ID
		return []notify.Message{message(approver.Email, notify.KindApprovalRequested, d, "")}, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, err
	}
}

// Approve handles the approver's decision. Approving stamps approved_at,
// creates the sequential signing batch (one row per active signer, in
// discovery order) and notifies only the first signer.
func (u *Usecase) Approve(ctx context.Context, in ApproveInput) (*TransitionDTO, error) {
	switch in.Action {
	case ActionApprove, ActionReject:
	default:
		return nil, document.ErrInvalidAction
	}
	if in.Actor == nil || !rbac.Can(in.Actor.Role, rbac.ActionApprove) {
		return nil, document.ErrForbidden
	}

	var dto *TransitionDTO
	var outbox []notify.Message

	err := u.uow.WithinDocumentTx(ctx, in.DocumentID, func(r uow.Repos, d *document.Document) error {
		if d.Status != document.StatusApprove {
			return document.ErrInvalidTransition
		}

		switch in.Action {
		case ActionReject:
			d.Status = document.StatusRejected
			d.CurrentReviewerID = nil
			m, err := u.submitterUpdate(ctx, r, d, in.Notes)
			if err != nil {
				return err
			}
			outbox = append(outbox, m)

		case ActionApprove:
			signers, err := r.Users.ActiveByRole(ctx, user.RoleSigner)
			if err != nil {
				return err
			}
			if len(signers) == 0 {
				// approving into an unstaffed sign stage would strand the
				// document with no path forward
				return document.ErrNoSignerAvailable
			}

			now := time.Now().UTC()
			logs := make([]*signature.Log, len(signers))
			for i, s := range signers {
				logs[i] = &signature.Log{
					DocumentID:      d.ID,
					SignerID:        s.ID,
					SignatureStatus: signature.StatusPending,
					IsSequential:    true,
					SequenceOrder:   i + 1,
				}
			}
			if err := r.Signatures.CreateBatch(ctx, logs); err != nil {
				return err
			}

			d.Status = document.StatusSign
			d.ApprovedAt = &now
			d.CurrentReviewerID = nil
			outbox = append(outbox, message(signers[0].Email, notify.KindSignatureRequested, d, ""))
		}

		if err := r.Documents.Save(ctx, d); err != nil {
			return err
		}
		u.audit(ctx, r, d, in.Actor.ID, in.Action, in.Notes, in.Meta)
		dto = transitionDTO(d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.send(ctx, outbox)
	return dto, nil
}

// Sign records one signer's signature. The last pending→signed flip in the
// batch, and only that one, archives the document: signed_at, archived_at,
// is_locked and the retention date are all stamped in the same transaction.
func (u *Usecase) Sign(ctx context.Context, in SignInput) (*TransitionDTO, error) {
	if in.Actor == nil || !rbac.Can(in.Actor.Role, rbac.ActionSign) {
		return nil, document.ErrForbidden
	}

	var dto *TransitionDTO
	var outbox []notify.Message

	err := u.uow.WithinDocumentTx(ctx, in.DocumentID, func(r uow.Repos, d *document.Document) error {
		if d.Status != document.StatusSign {
			return document.ErrInvalidTransition
		}

		logs, err := r.Signatures.ListByDocument(ctx, d.ID)
		if err != nil {
			return err
		}
		seq := signature.NewSequence(logs)
		row, err := seq.Sign(in.Actor.ID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		row.SignatureType = in.SignatureType
		if len(in.CertificateInfo) > 0 {
			row.CertificateInfo = datatypes.JSON(in.CertificateInfo)
		}
		row.SignatureData = in.SignatureData
		row.SignedAt = &now
		if err := r.Signatures.Save(ctx, row); err != nil {
			return err
		}

		if seq.Remaining() == 0 {
			retention := now.AddDate(u.retentionYears, 0, 0)
			d.Status = document.StatusArchived
			d.SignedAt = &now
			d.ArchivedAt = &now
			d.IsLocked = true
			d.RetentionDate = &retention
			if err := r.Documents.Save(ctx, d); err != nil {
				return err
			}
			u.audit(ctx, r, d, in.Actor.ID, "archive", "all signatures completed, document archived", in.Meta)
		} else if row.IsSequential {
			if next := seq.NextPending(); next != nil {
				signer, err := r.Users.GetByID(ctx, next.SignerID)
				if err != nil {
					return err
				}
				outbox = append(outbox, message(signer.Email, notify.KindSignatureRequested, d, ""))
			}
		}

		u.audit(ctx, r, d, in.Actor.ID, "sign", "document signed", in.Meta)
		dto = transitionDTO(d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.send(ctx, outbox)
	return dto, nil
}

// Comment appends an immutable comment at the document's current stage.
func (u *Usecase) Comment(ctx context.Context, in CommentInput) (*CommentDTO, error) {
	if in.Actor == nil || !rbac.Can(in.Actor.Role, rbac.ActionComment) {
		return nil, document.ErrForbidden
	}

	var dto *CommentDTO
	err := u.uow.WithinDocumentTx(ctx, in.DocumentID, func(r uow.Repos, d *document.Document) error {
		c := &comment.Comment{
			DocumentID:     d.ID,
			UserID:         in.Actor.ID,
			Stage:          string(d.Status),
			Body:           in.Body,
			IsInline:       in.IsInline,
			InlinePosition: in.InlinePosition,
		}
		if err := r.Comments.Create(ctx, c); err != nil {
			return err
		}
		u.audit(ctx, r, d, in.Actor.ID, "comment", in.Body, in.Meta)
		dto = &CommentDTO{
			DocumentID:     d.DocumentID,
			UserID:         c.UserID,
			Stage:          c.Stage,
			Comment:        c.Body,
			IsInline:       c.IsInline,
			InlinePosition: c.InlinePosition,
			CreatedAt:      c.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ListSignatures returns the signing board for a document, ordered by
// sequence_order.
func (u *Usecase) ListSignatures(ctx context.Context, documentID string) ([]SignatureDTO, error) {
	var out []SignatureDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.Documents.GetByDocumentID(ctx, documentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return document.ErrNotFound
			}
			return err
		}
		logs, err := r.Signatures.ListByDocument(ctx, d.ID)
		if err != nil {
			return err
		}
		out = make([]SignatureDTO, 0, len(logs))
		for _, l := range logs {
			dto := SignatureDTO{
				SignerID:        l.SignerID,
				SignatureStatus: string(l.SignatureStatus),
				IsSequential:    l.IsSequential,
				SequenceOrder:   l.SequenceOrder,
				SignatureType:   l.SignatureType,
				SignedAt:        l.SignedAt,
			}
			if signer, err := r.Users.GetByID(ctx, l.SignerID); err == nil {
				dto.SignerName = signer.FullName
			}
			out = append(out, dto)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ---- internals ----

// audit writes the permanent record for a state-changing action. Best
// effort: a failed insert is logged and swallowed, never aborting the
// transition it records.
func (u *Usecase) audit(ctx context.Context, r uow.Repos, d *document.Document, userID uint64, action, details string, meta audit.RequestMeta) {
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

func (u *Usecase) send(ctx context.Context, msgs []notify.Message) {
	for _, m := range msgs {
		u.dispatcher.Notify(ctx, m)
	}
}

func (u *Usecase) submitterUpdate(ctx context.Context, r uow.Repos, d *document.Document, notes string) (notify.Message, error) {
	submitter, err := r.Users.GetByID(ctx, d.SubmitterID)
	if err != nil {
		return notify.Message{}, err
	}
	return message(submitter.Email, notify.KindSubmitterUpdate, d, notes), nil
}

func message(recipient string, kind notify.Kind, d *document.Document, notes string) notify.Message {
	c := map[string]string{
		"title":       d.Title,
		"document_id": d.DocumentID,
		"status":      string(d.Status),
	}
	if notes != "" {
		c["notes"] = notes
	}
	return notify.Message{Recipient: recipient, Kind: kind, Context: c}
}

func transitionDTO(d *document.Document) *TransitionDTO {
	dto := &TransitionDTO{DocumentID: d.DocumentID, Status: string(d.Status)}
	if d.DocumentNumber != nil {
		dto.DocumentNumber = *d.DocumentNumber
	}
	return dto
}
