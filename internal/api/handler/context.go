package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/authgate/auth-api/internal/api/middleware"
	"github.com/authgate/auth-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any work when it is absent: a missing identity on a
// protected route means the middleware chain is miswired, which must surface
// as a rejection rather than an anonymous admission.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.Identity{}, domain.ErrNoPermission
	}
	return identity, nil
}
