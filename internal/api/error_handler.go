package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/core/domain"
)

// fieldError is the canonical error item; every error body is an ordered list
// of these.
type fieldError struct {
	Value string `json:"value"`
	Msg   string `json:"msg"`
	Param string `json:"param"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the consistent JSON envelope: [{"value","msg","param"}].
//
// Handlers and gates map most errors themselves with richer value/param
// context; this is the backstop for anything they let through.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, []fieldError{{Value: "", Msg: msg, Param: ""}})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrMissingToken):
		return http.StatusUnauthorized, "Invalid token"
	case errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrUnknownSubject):
		return http.StatusForbidden, "Invalid token"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusBadRequest, "Invalid user"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "Username already exist"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusBadRequest, "Invalid product id"
	case errors.Is(err, domain.ErrNotOwner):
		return http.StatusBadRequest, "Product not owned by user"
	case errors.Is(err, domain.ErrProductExists):
		return http.StatusBadRequest, "ProductName already exist"
	case errors.Is(err, domain.ErrInvalidCoin),
		errors.Is(err, domain.ErrInvalidCost),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInsufficientDeposit):
		return http.StatusBadRequest, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
