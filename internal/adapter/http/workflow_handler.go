package http

import (
	"encoding/json"
	"net/http"

	uc "docflow-backend/internal/usecase/workflow"

	"github.com/labstack/echo/v4"
)

type WorkflowHandler struct{ uc *uc.Usecase }

func NewWorkflowHandler(u *uc.Usecase) *WorkflowHandler { return &WorkflowHandler{uc: u} }

func (h *WorkflowHandler) Submit(c echo.Context) error {
	dto, err := h.uc.Submit(c.Request().Context(), uc.SubmitInput{
		DocumentID: c.Param("document_id"),
		Actor:      actor(c),
		Meta:       requestMeta(c),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type reviewReq struct {
	Action string `json:"action" validate:"required,oneof=approve reject request_changes"`
	Notes  string `json:"notes"`
}

func (h *WorkflowHandler) Review(c echo.Context) error {
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Review(c.Request().Context(), uc.ReviewInput{
		DocumentID: c.Param("document_id"),
		Actor:      actor(c),
		Action:     req.Action,
		Notes:      req.Notes,
		Meta:       requestMeta(c),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type approveReq struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Notes  string `json:"notes"`
}

func (h *WorkflowHandler) Approve(c echo.Context) error {
	var req approveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Approve(c.Request().Context(), uc.ApproveInput{
		DocumentID: c.Param("document_id"),
		Actor:      actor(c),
		Action:     req.Action,
		Notes:      req.Notes,
		Meta:       requestMeta(c),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type signReq struct {
	SignatureType   string          `json:"signature_type"   validate:"required,max=64"`
	CertificateInfo json.RawMessage `json:"certificate_info"`
	SignatureData   string          `json:"signature_data"`
}

func (h *WorkflowHandler) Sign(c echo.Context) error {
	var req signReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Sign(c.Request().Context(), uc.SignInput{
		DocumentID:      c.Param("document_id"),
		Actor:           actor(c),
		SignatureType:   req.SignatureType,
		CertificateInfo: req.CertificateInfo,
		SignatureData:   req.SignatureData,
		Meta:            requestMeta(c),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type commentReq struct {
	Comment        string  `json:"comment" validate:"required"`
	IsInline       bool    `json:"is_inline"`
	InlinePosition *string `json:"inline_position"`
}

func (h *WorkflowHandler) Comment(c echo.Context) error {
	var req commentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Comment(c.Request().Context(), uc.CommentInput{
		DocumentID:     c.Param("document_id"),
		Actor:          actor(c),
		Body:           req.Comment,
		IsInline:       req.IsInline,
		InlinePosition: req.InlinePosition,
		Meta:           requestMeta(c),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *WorkflowHandler) Signatures(c echo.Context) error {
	dtos, err := h.uc.ListSignatures(c.Request().Context(), c.Param("document_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"signatures": dtos})
}
