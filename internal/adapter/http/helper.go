package http

import (
	"errors"
	"log"
	"net/http"

	"assettrack/internal/domain/asset"
	"assettrack/internal/domain/permission"
	"assettrack/internal/domain/transaction"
	"assettrack/internal/domain/user"

	"github.com/labstack/echo/v4"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   any    `json:"error,omitempty"`
}

func respondOK(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, Response{Success: true, Message: message, Data: data})
}

func respondErr(c echo.Context, code int, message string, detail any) error {
	return c.JSON(code, Response{Success: false, Message: message, Error: detail})
}

// respondDomainErr maps domain sentinels to HTTP codes. Anything unmatched is
// an unexpected error: generic 500 to the caller, detail to the log.
func respondDomainErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, transaction.ErrNotFound):
		return respondErr(c, http.StatusNotFound, "transaction not found", err.Error())
	case errors.Is(err, asset.ErrNotFound):
		return respondErr(c, http.StatusNotFound, "asset not found", err.Error())
	case errors.Is(err, user.ErrNotFound):
		return respondErr(c, http.StatusNotFound, "user not found", err.Error())
	case errors.Is(err, permission.ErrForbidden):
		return respondErr(c, http.StatusForbidden, "not allowed", err.Error())
	case errors.Is(err, transaction.ErrInvalidTransition),
		errors.Is(err, transaction.ErrInvalidStatus),
		errors.Is(err, transaction.ErrInvalidAction),
		errors.Is(err, transaction.ErrInvalidPriority),
		errors.Is(err, transaction.ErrImmutable),
		errors.Is(err, transaction.ErrPendingExists):
		return respondErr(c, http.StatusBadRequest, err.Error(), err.Error())
	default:
		log.Printf("unexpected error on %s %s: %v", c.Request().Method, c.Path(), err)
		return respondErr(c, http.StatusInternalServerError, "internal error", "internal error")
	}
}
