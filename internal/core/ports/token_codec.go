package ports

import "github.com/authgate/auth-api/internal/core/token"

// TokenIssuer turns claims into a signed token string.
type TokenIssuer interface {
	Issue(claims *token.Claims) (string, error)
}

// TokenVerifier checks a token's signature and expiry and returns the
// decoded claims. Failures are domain.ErrInvalidToken or domain.ErrExpiredToken.
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}
