package ports

import (
	"context"

	"github.com/authgate/auth-api/internal/core/domain"
)

// UserRegistry is the read-only credential store. Implementations are never
// mutated after construction and must be safe for concurrent reads.
type UserRegistry interface {
	// FindByEmail returns domain.ErrUserNotFound on a miss. A miss is a
	// legitimate negative result, not a failure of the registry itself.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
