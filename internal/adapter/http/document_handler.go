package http

import (
	"net/http"
	"time"

	uc "docflow-backend/internal/usecase/document"

	"github.com/labstack/echo/v4"
)

type DocumentHandler struct{ uc *uc.Usecase }

func NewDocumentHandler(u *uc.Usecase) *DocumentHandler { return &DocumentHandler{uc: u} }

type documentReq struct {
	Title        string `json:"title"          validate:"required,max=255"`
	DocumentType string `json:"document_type"  validate:"max=64"`
	Unit         string `json:"unit"           validate:"max=128"`
	Description  string `json:"description"`
	// Canonical date `YYYY-MM-DD`
	ValidDate string `json:"valid_date"     validate:"omitempty,datetime=2006-01-02"`
}

func (h *DocumentHandler) Create(c echo.Context) error {
	var req documentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), uc.CreateInput{
		Title:        req.Title,
		DocumentType: req.DocumentType,
		Unit:         req.Unit,
		Description:  req.Description,
		ValidDate:    parseDate(req.ValidDate),
		Actor:        actor(c),
		Meta:         requestMeta(c),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DocumentHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("document_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DocumentHandler) Update(c echo.Context) error {
	var req documentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Update(c.Request().Context(), uc.UpdateInput{
		DocumentID:   c.Param("document_id"),
		Title:        req.Title,
		DocumentType: req.DocumentType,
		Unit:         req.Unit,
		Description:  req.Description,
		ValidDate:    parseDate(req.ValidDate),
		Actor:        actor(c),
		Meta:         requestMeta(c),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DocumentHandler) Delete(c echo.Context) error {
	err := h.uc.Delete(c.Request().Context(), uc.DeleteInput{
		DocumentID: c.Param("document_id"),
		Actor:      actor(c),
		Meta:       requestMeta(c),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "document deleted"})
}

func (h *DocumentHandler) List(c echo.Context) error {
	dto, err := h.uc.List(c.Request().Context(), uc.ListInput{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 10),
		Actor:  actor(c),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// endOfDay widens an inclusive date upper bound to cover the whole day.
func endOfDay(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	e := t.Add(24*time.Hour - time.Nanosecond)
	return &e
}
