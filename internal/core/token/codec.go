// Package token encodes and decodes the signed claims that act as the
// session: the server keeps no per-session state, the token is the session.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/authgate/auth-api/internal/core/domain"
)

// Claims is the payload embedded in every issued token.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// NewClaims builds the claims for a login: subject is the user's uid and
// expiresAt must be strictly in the future.
func NewClaims(uid string, role domain.Role, expiresAt time.Time) *Claims {
	return &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
}

// Codec signs and verifies HS256 tokens with a single symmetric secret,
// injected at construction so tests can run with their own key.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue serializes and signs the claims. Signing only fails on internal
// errors, reported as domain.ErrTokenCreation.
func (c *Codec) Issue(claims *Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTokenCreation, err)
	}
	return signed, nil
}

// Verify parses the token, checks the signature, then the expiry. The
// signature is validated before any decoded field is trusted, so a tampered
// payload can never elevate a role. Accepted algorithms are pinned to HS256
// to rule out alg-substitution tokens.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}
	if !parsed.Valid || !claims.Role.Valid() {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
