package mysql

import (
	"context"
	"time"

	domain "docflow-backend/internal/domain/document"
	"docflow-backend/internal/domain/user"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository { return &DocumentRepository{db: db} }

func (r *DocumentRepository) Create(ctx context.Context, d *domain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepository) Save(ctx context.Context, d *domain.Document) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DocumentRepository) Delete(ctx context.Context, d *domain.Document) error {
	return r.db.WithContext(ctx).Delete(d).Error
}

func (r *DocumentRepository) GetByDocumentID(ctx context.Context, documentID string) (*domain.Document, error) {
	var out domain.Document
	res := r.db.WithContext(ctx).Where("document_id = ?", documentID).First(&out)
	return &out, res.Error
}

// GetByDocumentIDForUpdate takes a row-level lock; it must run inside a
// transaction or the lock is released immediately.
func (r *DocumentRepository) GetByDocumentIDForUpdate(ctx context.Context, documentID string) (*domain.Document, error) {
	var out domain.Document
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("document_id = ?", documentID).
		First(&out)
	return &out, res.Error
}

func (r *DocumentRepository) List(ctx context.Context, f domain.ListFilter) ([]domain.Document, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Document{})

	switch f.ViewerRole {
	case user.RoleAdmin:
		// sees everything
	case user.RoleSubmitter:
		q = q.Where("submitter_id = ?", f.ViewerID)
	default:
		q = q.Where("current_reviewer_id = ? OR status = ?", f.ViewerID, domain.StatusArchived)
	}

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("title LIKE ? OR document_number LIKE ?", like, like)
	}

	return r.page(q.Order("created_at DESC"), f)
}

func (r *DocumentRepository) ListArchived(ctx context.Context, f domain.ListFilter) ([]domain.Document, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Document{}).
		Where("status = ?", domain.StatusArchived)

	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("title LIKE ? OR document_number LIKE ?", like, like)
	}
	if f.DocumentType != "" {
		q = q.Where("document_type = ?", f.DocumentType)
	}
	if f.ArchivedFrom != nil {
		q = q.Where("archived_at >= ?", *f.ArchivedFrom)
	}
	if f.ArchivedTo != nil {
		q = q.Where("archived_at <= ?", *f.ArchivedTo)
	}

	return r.page(q.Order("archived_at DESC"), f)
}

func (r *DocumentRepository) page(q *gorm.DB, f domain.ListFilter) ([]domain.Document, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := f.Page, f.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var out []domain.Document
	if err := q.Offset((page - 1) * limit).Limit(limit).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *DocumentRepository) ArchiveStats(ctx context.Context) (*domain.ArchiveStats, error) {
	archived := r.db.WithContext(ctx).Model(&domain.Document{}).
		Where("status = ?", domain.StatusArchived)

	stats := &domain.ArchiveStats{}
	if err := archived.Session(&gorm.Session{}).Count(&stats.TotalArchived).Error; err != nil {
		return nil, err
	}
	if err := archived.Session(&gorm.Session{}).
		Distinct("document_type").Count(&stats.DocumentTypes).Error; err != nil {
		return nil, err
	}
	monthAgo := time.Now().UTC().AddDate(0, 0, -30)
	if err := archived.Session(&gorm.Session{}).
		Where("archived_at >= ?", monthAgo).Count(&stats.ArchivedLastMonth).Error; err != nil {
		return nil, err
	}
	if err := archived.Session(&gorm.Session{}).
		Where("retention_date < ?", time.Now().UTC()).Count(&stats.ExpiredRetention).Error; err != nil {
		return nil, err
	}
	if err := archived.Session(&gorm.Session{}).
		Select("document_type, COUNT(*) as count").
		Group("document_type").
		Order("count DESC").
		Scan(&stats.PerType).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
