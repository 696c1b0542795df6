package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/authgate/auth-api/internal/api/handler"
	"github.com/authgate/auth-api/internal/api/middleware"
	"github.com/authgate/auth-api/internal/core/domain"
	"github.com/authgate/auth-api/internal/core/ports"
)

// RouterConfig carries the constructed dependencies into the router.
// Redis is nil when the login throttle is disabled.
type RouterConfig struct {
	AuthService ports.AuthService
	Verifier    ports.TokenVerifier
	Redis       *redis.Client
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	e.POST("/login", authHandler.Login)

	// --- Protected routes (one required role each, checked by equality) ---
	auth := middleware.Auth(cfg.Verifier)
	profile := handler.NewProfileHandler()
	e.GET("/user", profile.User, auth, middleware.RequireRole(domain.RoleUser))
	e.GET("/admin", profile.Admin, auth, middleware.RequireRole(domain.RoleAdmin))

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(cfg.Redis).Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
