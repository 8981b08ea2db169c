package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"assettrack/internal/domain/permission"

	"github.com/labstack/echo/v4"
)

// ActorContextKey is where the resolved actor identity lives in the echo context.
const ActorContextKey = "actor"

const (
	headerActorID   = "X-Actor-Id"
	headerActorRole = "X-Actor-Role"
)

// Actor resolves the acting identity from trusted gateway headers.
// Session issuance and verification happen upstream; this service only
// consumes the resolved id and role.
func Actor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawID := strings.TrimSpace(c.Request().Header.Get(headerActorID))
			rawRole := strings.TrimSpace(c.Request().Header.Get(headerActorRole))
			if rawID == "" || rawRole == "" {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false,
					"message": "unauthenticated",
					"error":   "missing " + headerActorID + " or " + headerActorRole,
				})
			}
			id, err := strconv.ParseUint(rawID, 10, 64)
			if err != nil || id == 0 {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false,
					"message": "unauthenticated",
					"error":   "invalid " + headerActorID,
				})
			}
			role := permission.Role(rawRole)
			if !role.Valid() {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false,
					"message": "unauthenticated",
					"error":   "invalid " + headerActorRole,
				})
			}
			c.Set(ActorContextKey, permission.Actor{ID: id, Role: role})
			return next(c)
		}
	}
}
