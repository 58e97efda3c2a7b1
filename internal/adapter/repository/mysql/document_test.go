package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"docflow-backend/internal/domain/assignment"
	"docflow-backend/internal/domain/audit"
	"docflow-backend/internal/domain/comment"
	domain "docflow-backend/internal/domain/document"
	"docflow-backend/internal/domain/user"
	"docflow-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM) ---

type documentSQLite struct {
	ID                uint64         `gorm:"primaryKey;column:id"`
	DocumentID        string         `gorm:"size:32;column:document_id"`
	Title             string         `gorm:"column:title"`
	DocumentType      string         `gorm:"column:document_type"`
	Unit              string         `gorm:"column:unit"`
	Description       string         `gorm:"column:description"`
	ValidDate         *time.Time     `gorm:"column:valid_date"`
	Status            string         `gorm:"type:text;column:status"` // ← no enum
	DocumentNumber    *string        `gorm:"column:document_number"`
	SubmitterID       uint64         `gorm:"column:submitter_id"`
	CurrentReviewerID *uint64        `gorm:"column:current_reviewer_id"`
	SubmittedAt       *time.Time     `gorm:"column:submitted_at"`
	ApprovedAt        *time.Time     `gorm:"column:approved_at"`
	SignedAt          *time.Time     `gorm:"column:signed_at"`
	ArchivedAt        *time.Time     `gorm:"column:archived_at"`
	IsLocked          bool           `gorm:"column:is_locked"`
	RetentionDate     *time.Time     `gorm:"column:retention_date"`
	CreatedAt         time.Time      `gorm:"column:created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (documentSQLite) TableName() string { return "documents" }

type userSQLite struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	UserID    string    `gorm:"size:32;column:user_id"`
	Username  string    `gorm:"column:username"`
	Email     string    `gorm:"column:email"`
	FullName  string    `gorm:"column:full_name"`
	Role      string    `gorm:"type:text;column:role"` // ← no enum
	Unit      string    `gorm:"column:unit"`
	IsActive  bool      `gorm:"column:is_active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userSQLite) TableName() string { return "users" }

type signatureLogSQLite struct {
	ID              uint64     `gorm:"primaryKey;column:id"`
	DocumentID      uint64     `gorm:"column:document_id"`
	SignerID        uint64     `gorm:"column:signer_id"`
	SignatureStatus string     `gorm:"type:text;column:signature_status"` // ← no enum
	IsSequential    bool       `gorm:"column:is_sequential"`
	SequenceOrder   int        `gorm:"column:sequence_order"`
	SignatureType   string     `gorm:"column:signature_type"`
	CertificateInfo string     `gorm:"type:text;column:certificate_info"`
	SignatureData   string     `gorm:"column:signature_data"`
	SignedAt        *time.Time `gorm:"column:signed_at"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
}

func (signatureLogSQLite) TableName() string { return "signature_logs" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schema for tables whose domain model carries MySQL enums.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&documentSQLite{},
		&userSQLite{},
		&signatureLogSQLite{},
		&assignment.Assignment{},
		&comment.Comment{},
		&audit.Entry{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeDocument(documentID string, submitterID uint64) *domain.Document {
	return &domain.Document{
		DocumentID:   documentID,
		Title:        "Operating procedure",
		DocumentType: "sop",
		Unit:         "operations",
		Status:       domain.StatusDraft,
		SubmitterID:  submitterID,
	}
}

func TestDocumentCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	documentID := id.NewID32()
	d := makeDocument(documentID, 1)
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByDocumentID(ctx, documentID)
	if err != nil {
		t.Fatalf("GetByDocumentID: %v", err)
	}
	if got.DocumentID != documentID || got.Status != domain.StatusDraft {
		t.Errorf("unexpected document: %+v", got)
	}
}

func TestDocumentSavePersistsTransition(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	documentID := id.NewID32()
	d := makeDocument(documentID, 1)
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}

	now := time.Now().UTC()
	n := domain.Number(d.ID, now.Year())
	reviewer := uint64(42)
	d.Status = domain.StatusReview1
	d.DocumentNumber = &n
	d.SubmittedAt = &now
	d.CurrentReviewerID = &reviewer
	if err := repo.Save(ctx, d); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByDocumentID(ctx, documentID)
	if err != nil {
		t.Fatalf("GetByDocumentID: %v", err)
	}
	if got.Status != domain.StatusReview1 || got.DocumentNumber == nil || *got.DocumentNumber != n {
		t.Errorf("transition not persisted: %+v", got)
	}
	if got.CurrentReviewerID == nil || *got.CurrentReviewerID != reviewer {
		t.Errorf("current reviewer not persisted: %+v", got.CurrentReviewerID)
	}
}

func TestDocumentGetNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)

	_, err := repo.GetByDocumentID(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDocumentDeleteIsSoft(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	documentID := id.NewID32()
	d := makeDocument(documentID, 1)
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, d); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.GetByDocumentID(ctx, documentID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("deleted document still visible, err = %v", err)
	}

	// the row itself survives for the audit trail
	var count int64
	if err := db.Unscoped().Model(&documentSQLite{}).Where("document_id = ?", documentID).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("row count = %d, want 1", count)
	}
}

func seedListFixture(t *testing.T, db *gorm.DB) {
	t.Helper()
	now := time.Now().UTC()
	reviewer := uint64(5)
	rows := []documentSQLite{
		{DocumentID: "a000000000000000000000000000000a", Title: "Budget plan", DocumentType: "plan", Status: "draft", SubmitterID: 1, CreatedAt: now.Add(-4 * time.Hour)},
		{DocumentID: "b000000000000000000000000000000b", Title: "Hiring memo", DocumentType: "memo", Status: "review1", SubmitterID: 1, CurrentReviewerID: &reviewer, CreatedAt: now.Add(-3 * time.Hour)},
		{DocumentID: "c000000000000000000000000000000c", Title: "Vendor contract", DocumentType: "contract", Status: "draft", SubmitterID: 2, CreatedAt: now.Add(-2 * time.Hour)},
		{DocumentID: "d000000000000000000000000000000d", Title: "Old policy", DocumentType: "policy", Status: "archived", SubmitterID: 2, CreatedAt: now.Add(-1 * time.Hour)},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatal(err)
		}
	}
}

func TestDocumentListVisibility(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()
	seedListFixture(t, db)

	tests := []struct {
		name   string
		filter domain.ListFilter
		want   int
	}{
		{"admin sees everything", domain.ListFilter{ViewerID: 9, ViewerRole: user.RoleAdmin}, 4},
		{"submitter sees own documents only", domain.ListFilter{ViewerID: 1, ViewerRole: user.RoleSubmitter}, 2},
		{"reviewer sees assigned plus archive", domain.ListFilter{ViewerID: 5, ViewerRole: user.RoleReviewer1}, 2},
		{"signer with no assignment sees archive only", domain.ListFilter{ViewerID: 8, ViewerRole: user.RoleSigner}, 1},
		{"status filter narrows the scope", domain.ListFilter{ViewerID: 9, ViewerRole: user.RoleAdmin, Status: domain.StatusDraft}, 2},
		{"search matches the title", domain.ListFilter{ViewerID: 9, ViewerRole: user.RoleAdmin, Search: "contract"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, total, err := repo.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(docs) != tt.want || total != int64(tt.want) {
				t.Fatalf("got %d docs (total %d), want %d", len(docs), total, tt.want)
			}
		})
	}
}

func TestDocumentListPagination(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()
	seedListFixture(t, db)

	docs, total, err := repo.List(ctx, domain.ListFilter{ViewerID: 9, ViewerRole: user.RoleAdmin, Page: 2, Limit: 3})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 4 || len(docs) != 1 {
		t.Fatalf("page 2: got %d docs (total %d), want 1 (4)", len(docs), total)
	}
}

func TestDocumentListArchived(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	old := now.AddDate(0, -6, 0)
	recent := now.AddDate(0, 0, -2)
	rows := []documentSQLite{
		{DocumentID: "a000000000000000000000000000000a", Title: "Expense policy", DocumentType: "policy", Status: "archived", SubmitterID: 1, ArchivedAt: &old},
		{DocumentID: "b000000000000000000000000000000b", Title: "Travel policy", DocumentType: "policy", Status: "archived", SubmitterID: 1, ArchivedAt: &recent},
		{DocumentID: "c000000000000000000000000000000c", Title: "Office memo", DocumentType: "memo", Status: "archived", SubmitterID: 2, ArchivedAt: &recent},
		{DocumentID: "d000000000000000000000000000000d", Title: "Live draft", DocumentType: "memo", Status: "draft", SubmitterID: 2},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatal(err)
		}
	}

	docs, total, err := repo.ListArchived(ctx, domain.ListFilter{})
	if err != nil {
		t.Fatalf("ListArchived: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	// newest archive first
	if docs[0].DocumentID == "a000000000000000000000000000000a" {
		t.Fatalf("oldest archive listed first: %+v", docs[0])
	}

	from := now.AddDate(0, -1, 0)
	docs, total, err = repo.ListArchived(ctx, domain.ListFilter{DocumentType: "policy", ArchivedFrom: &from})
	if err != nil {
		t.Fatalf("ListArchived filtered: %v", err)
	}
	if total != 1 || docs[0].DocumentID != "b000000000000000000000000000000b" {
		t.Fatalf("filtered: got %d, %+v", total, docs)
	}
}

func TestDocumentArchiveStats(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	recent := now.AddDate(0, 0, -5)
	old := now.AddDate(-8, 0, 0)
	expired := now.AddDate(-1, 0, 0)
	future := now.AddDate(6, 0, 0)
	rows := []documentSQLite{
		{DocumentID: "a000000000000000000000000000000a", DocumentType: "policy", Status: "archived", ArchivedAt: &recent, RetentionDate: &future},
		{DocumentID: "b000000000000000000000000000000b", DocumentType: "policy", Status: "archived", ArchivedAt: &old, RetentionDate: &expired},
		{DocumentID: "c000000000000000000000000000000c", DocumentType: "memo", Status: "archived", ArchivedAt: &recent, RetentionDate: &future},
		{DocumentID: "d000000000000000000000000000000d", DocumentType: "memo", Status: "draft"},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatal(err)
		}
	}

	stats, err := repo.ArchiveStats(ctx)
	if err != nil {
		t.Fatalf("ArchiveStats: %v", err)
	}
	if stats.TotalArchived != 3 || stats.DocumentTypes != 2 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats.ArchivedLastMonth != 2 || stats.ExpiredRetention != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if len(stats.PerType) != 2 {
		t.Fatalf("per type = %+v", stats.PerType)
	}
}
