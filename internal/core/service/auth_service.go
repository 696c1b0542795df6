package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/authgate/auth-api/internal/core/domain"
	"github.com/authgate/auth-api/internal/core/ports"
	"github.com/authgate/auth-api/internal/core/token"
)

const defaultTokenTTL = time.Hour

// AuthService validates credentials against the registry and issues tokens.
// It holds no mutable state; a single instance serves all requests.
type AuthService struct {
	registry ports.UserRegistry
	issuer   ports.TokenIssuer
	limiter  ports.LoginLimiter // nil disables throttling
	tokenTTL time.Duration
	log      zerolog.Logger
}

func NewAuthService(registry ports.UserRegistry, issuer ports.TokenIssuer, limiter ports.LoginLimiter, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		registry: registry,
		issuer:   issuer,
		limiter:  limiter,
		tokenTTL: tokenTTL,
		log:      log,
	}
}

// Login authenticates an email/password pair and returns a signed token.
// A registry miss and a password mismatch both collapse into
// domain.ErrWrongCredentials so responses do not reveal which part failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrWrongCredentials
	}

	if err := s.checkThrottle(ctx, email); err != nil {
		return "", err
	}

	user, err := s.registry.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrWrongCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrWrongCredentials
	}

	claims := token.NewClaims(user.UID, user.Role, time.Now().UTC().Add(s.tokenTTL))
	signed, err := s.issuer.Issue(claims)
	if err != nil {
		return "", err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("login limiter reset failed")
		}
	}

	return signed, nil
}

// checkThrottle consults the limiter when configured. Limiter backend errors
// fail open: losing the throttle must not lock every user out.
func (s *AuthService) checkThrottle(ctx context.Context, email string) error {
	if s.limiter == nil {
		return nil
	}
	allowed, err := s.limiter.Allow(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Msg("login limiter unavailable")
		return nil
	}
	if !allowed {
		return domain.ErrTooManyAttempts
	}
	return nil
}
