package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"docflow-backend/internal/adapter/middleware"
	"docflow-backend/internal/domain/audit"
	"docflow-backend/internal/domain/document"
	"docflow-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
)

// writeDomainError maps the workflow error taxonomy onto HTTP codes.
// Everything unknown is an infrastructure failure and stays opaque.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, document.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, document.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, document.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, document.ErrInvalidAction),
		errors.Is(err, document.ErrOutOfSequence),
		errors.Is(err, document.ErrNoPendingSignature),
		errors.Is(err, document.ErrNoReviewerAvailable),
		errors.Is(err, document.ErrNoSignerAvailable):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func actor(c echo.Context) *user.User {
	u, _ := c.Get(middleware.ActorContextKey).(*user.User)
	return u
}

func requestMeta(c echo.Context) audit.RequestMeta {
	return audit.RequestMeta{
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
}

func queryInt(c echo.Context, name string, def int) int {
	if v := c.QueryParam(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// parseDate accepts the canonical YYYY-MM-DD form used by date filters.
func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}
