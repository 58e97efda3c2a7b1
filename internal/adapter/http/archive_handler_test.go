package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"testing"
	"time"

	domain "docflow-backend/internal/domain/document"
	"docflow-backend/internal/domain/uow"
	"docflow-backend/internal/testutil/assignmentmock"
	"docflow-backend/internal/testutil/auditmock"
	"docflow-backend/internal/testutil/commentmock"
	"docflow-backend/internal/testutil/documentmock"
	"docflow-backend/internal/testutil/signaturemock"
	"docflow-backend/internal/testutil/uowmock"
	"docflow-backend/internal/testutil/usermock"
	uc "docflow-backend/internal/usecase/document"

	"go.uber.org/zap"
)

func newArchiveHandler(docs *documentmock.Repo) *ArchiveHandler {
	r := uow.Repos{
		Documents:   docs,
		Users:       &usermock.Repo{},
		Assignments: &assignmentmock.Repo{},
		Signatures:  &signaturemock.Repo{},
		Comments:    &commentmock.Repo{},
		Audits:      &auditmock.Repo{},
	}
	return NewArchiveHandler(uc.NewUsecase(uowmock.Passthrough(r, nil), zap.NewNop()))
}

func TestArchiveList_DateFiltersFlowIntoRepository(t *testing.T) {
	e := newEchoWithValidator()
	docs := &documentmock.Repo{}
	var got domain.ListFilter
	docs.ListArchivedFn = func(_ context.Context, f domain.ListFilter) ([]domain.Document, int64, error) {
		got = f
		return nil, 0, nil
	}
	h := newArchiveHandler(docs)

	c, rec := newContext(e, stdhttp.MethodGet,
		"/api/archive?document_type=policy&start_date=2026-01-01&end_date=2026-06-30", nil, submitter)

	if err := h.List(c); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got.DocumentType != "policy" || got.ArchivedFrom == nil || got.ArchivedTo == nil {
		t.Fatalf("filter = %+v", got)
	}
	// end_date is widened to cover the whole day
	wantFrom := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.ArchivedFrom.Equal(wantFrom) {
		t.Fatalf("archived_from = %v, want %v", got.ArchivedFrom, wantFrom)
	}
	if got.ArchivedTo.Day() != 30 || got.ArchivedTo.Hour() != 23 {
		t.Fatalf("archived_to not end of day: %v", got.ArchivedTo)
	}
}

func TestArchiveList_RequiresActor(t *testing.T) {
	e := newEchoWithValidator()
	h := newArchiveHandler(&documentmock.Repo{})

	c, rec := newContext(e, stdhttp.MethodGet, "/api/archive", nil, nil)

	if err := h.List(c); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestArchiveStatistics(t *testing.T) {
	e := newEchoWithValidator()
	docs := &documentmock.Repo{}
	docs.ArchiveStatsFn = func(_ context.Context) (*domain.ArchiveStats, error) {
		return &domain.ArchiveStats{
			TotalArchived: 12,
			DocumentTypes: 3,
			PerType:       []domain.TypeCount{{DocumentType: "policy", Count: 7}},
		}, nil
	}
	h := newArchiveHandler(docs)

	c, rec := newContext(e, stdhttp.MethodGet, "/api/archive/statistics", nil, submitter)

	if err := h.Statistics(c); err != nil {
		t.Fatalf("Statistics error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Statistics domain.ArchiveStats `json:"statistics"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body.Statistics.TotalArchived != 12 || len(body.Statistics.PerType) != 1 {
		t.Fatalf("statistics = %+v", body.Statistics)
	}
}
