package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/authgate/auth-api/internal/api/metrics"
	"github.com/authgate/auth-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the closed auth error taxonomy to deterministic HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known auth errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrWrongCredentials):
		return reject(http.StatusForbidden, "wrong_credentials", "wrong credentials")
	case errors.Is(err, domain.ErrInvalidToken):
		return reject(http.StatusForbidden, "invalid_token", "invalid token")
	case errors.Is(err, domain.ErrExpiredToken):
		return reject(http.StatusForbidden, "expired_token", "token expired")
	case errors.Is(err, domain.ErrNoAuthHeader):
		return reject(http.StatusBadRequest, "missing_header", "missing authorization header")
	case errors.Is(err, domain.ErrInvalidAuthHeader):
		return reject(http.StatusBadRequest, "invalid_header", "invalid authorization header")
	case errors.Is(err, domain.ErrNoPermission):
		return reject(http.StatusUnauthorized, "no_permission", "no permission")
	case errors.Is(err, domain.ErrTooManyAttempts):
		return reject(http.StatusTooManyRequests, "throttled", "too many login attempts")
	}

	// Unexpected error (including token creation failures): log the real
	// cause, return a generic message with no internal detail.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return reject(http.StatusInternalServerError, "internal", "internal server error")
}

func reject(code int, reason, msg string) (int, string) {
	metrics.RequestsRejectedTotal.WithLabelValues(reason).Inc()
	return code, msg
}
