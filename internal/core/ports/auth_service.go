package ports

import "context"

// AuthService authenticates credentials and issues a signed bearer token.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// LoginLimiter throttles repeated login attempts per email. Allow reports
// whether another attempt is permitted; Reset clears the counter after a
// successful login.
type LoginLimiter interface {
	Allow(ctx context.Context, email string) (bool, error)
	Reset(ctx context.Context, email string) error
}
