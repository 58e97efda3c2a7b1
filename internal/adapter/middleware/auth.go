package middleware

import (
	"errors"
	"net/http"
	"strings"

	"docflow-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ActorContextKey is where the resolved actor lives on the echo context.
const ActorContextKey = "actor"

// HeaderActorID carries the caller's public user id. Token issuance and
// verification are an upstream concern; by the time a request reaches
// this service the gateway has already authenticated it.
const HeaderActorID = "X-Actor-Id"

// Actor resolves the acting user and rejects requests from unknown or
// deactivated accounts.
func Actor(users user.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actorID := strings.ToLower(strings.TrimSpace(c.Request().Header.Get(HeaderActorID)))
			if actorID == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + HeaderActorID})
			}
			if !reHex32.MatchString(actorID) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid " + HeaderActorID})
			}

			u, err := users.GetByUserID(c.Request().Context(), actorID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unknown actor"})
				}
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "actor lookup failed"})
			}
			if !u.IsActive {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "actor is deactivated"})
			}

			c.Set(ActorContextKey, u)
			return next(c)
		}
	}
}
