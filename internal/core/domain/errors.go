package domain

import "errors"

// Closed error taxonomy for the authentication pipeline. Every component
// returns one of these sentinels (possibly wrapped); the HTTP error handler
// is the only place they are converted into protocol responses.
var (
	ErrWrongCredentials  = errors.New("wrong credentials")
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token expired")
	ErrNoAuthHeader      = errors.New("missing authorization header")
	ErrInvalidAuthHeader = errors.New("invalid authorization header")
	ErrNoPermission      = errors.New("no permission")
	ErrTokenCreation     = errors.New("token creation failed")
	ErrTooManyAttempts   = errors.New("too many login attempts")
)

// Registry construction and lookup errors. ErrUserNotFound never escapes the
// auth service: a lookup miss is reported to clients as ErrWrongCredentials.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUnknownRole   = errors.New("unknown role")
	ErrDuplicateUser = errors.New("duplicate user")
)
