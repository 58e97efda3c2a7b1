package http

import (
	"net/http"

	uc "docflow-backend/internal/usecase/document"

	"github.com/labstack/echo/v4"
)

type ArchiveHandler struct{ uc *uc.Usecase }

func NewArchiveHandler(u *uc.Usecase) *ArchiveHandler { return &ArchiveHandler{uc: u} }

func (h *ArchiveHandler) List(c echo.Context) error {
	dto, err := h.uc.ListArchived(c.Request().Context(), uc.ArchiveListInput{
		Search:       c.QueryParam("search"),
		DocumentType: c.QueryParam("document_type"),
		ArchivedFrom: parseDate(c.QueryParam("start_date")),
		ArchivedTo:   endOfDay(parseDate(c.QueryParam("end_date"))),
		Page:         queryInt(c, "page", 1),
		Limit:        queryInt(c, "limit", 10),
		Actor:        actor(c),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ArchiveHandler) Statistics(c echo.Context) error {
	stats, err := h.uc.ArchiveStats(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"statistics": stats})
}
