package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/authgate/auth-api/internal/core/domain"
)

// ProfileHandler serves the role-gated demo routes. The handlers only read
// the identity injected by the auth middleware; role checks happen upstream.
type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

type profileResponse struct {
	Message string      `json:"message"`
	UID     string      `json:"uid"`
	Role    domain.Role `json:"role"`
}

// User handles GET /user, requiring role User.
func (h *ProfileHandler) User(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{
		Message: fmt.Sprintf("hello user %s", identity.UID),
		UID:     identity.UID,
		Role:    identity.Role,
	})
}

// Admin handles GET /admin, requiring role Admin.
func (h *ProfileHandler) Admin(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{
		Message: fmt.Sprintf("hello admin %s", identity.UID),
		UID:     identity.UID,
		Role:    identity.Role,
	})
}
