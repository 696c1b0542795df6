package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/authgate/auth-api/internal/api/metrics"
	"github.com/authgate/auth-api/internal/core/domain"
	"github.com/authgate/auth-api/internal/core/ports"
)

// identityKey is the echo context key under which Auth stores the caller's
// identity for downstream handlers.
const identityKey = "identity"

// Auth extracts the bearer token, verifies it, and injects the decoded
// identity into the request context. Failures are returned as domain errors
// and rendered by the central error handler:
//   - missing or shapeless header  -> domain.ErrNoAuthHeader
//   - wrong scheme (not "Bearer")  -> domain.ErrInvalidAuthHeader
//   - verification failures propagate unchanged from the codec
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return domain.ErrNoAuthHeader
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[1] == "" {
				return domain.ErrNoAuthHeader
			}
			if !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrInvalidAuthHeader
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues(verifyResult(err)).Inc()
				return err
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			c.Set(identityKey, domain.Identity{UID: claims.Subject, Role: claims.Role})
			return next(c)
		}
	}
}

// RequireRole admits the request only when the authenticated role equals the
// required one. Strict equality is a deliberate policy: Admin does not
// implicitly satisfy a User route, there is no role hierarchy.
func RequireRole(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(identityKey).(domain.Identity)
			if !ok || identity.Role != required {
				return domain.ErrNoPermission
			}
			return next(c)
		}
	}
}

// IdentityFrom returns the identity stored by Auth, if any.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}

func verifyResult(err error) string {
	if errors.Is(err, domain.ErrExpiredToken) {
		return "expired"
	}
	return "invalid"
}
