// Package memory holds the in-process user registry. Accounts are seeded at
// startup and never mutated afterwards, so lookups need no synchronization.
package memory

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/authgate/auth-api/internal/core/domain"
)

// Seed is the raw material for one registry entry. The password arrives in
// plaintext from configuration and is bcrypt-hashed during construction; the
// registry never stores it.
type Seed struct {
	UID      string
	Email    string
	Password string
	Role     string
}

// UserRegistry is a read-only email-keyed user store.
type UserRegistry struct {
	byEmail map[string]*domain.User
}

// NewUserRegistry validates and hashes the seeds. Unknown role strings and
// duplicate uids or emails are construction-time errors so a misconfigured
// registry can never serve requests.
func NewUserRegistry(seeds []Seed) (*UserRegistry, error) {
	byEmail := make(map[string]*domain.User, len(seeds))
	uids := make(map[string]struct{}, len(seeds))

	for _, s := range seeds {
		role, err := domain.ParseRole(s.Role)
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w: %q", s.UID, domain.ErrUnknownRole, s.Role)
		}
		if _, exists := uids[s.UID]; exists {
			return nil, fmt.Errorf("%w: uid %q", domain.ErrDuplicateUser, s.UID)
		}
		if _, exists := byEmail[s.Email]; exists {
			return nil, fmt.Errorf("%w: email %q", domain.ErrDuplicateUser, s.Email)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash seed %q: %w", s.UID, err)
		}

		uids[s.UID] = struct{}{}
		byEmail[s.Email] = &domain.User{
			UID:          s.UID,
			Email:        s.Email,
			PasswordHash: string(hash),
			Role:         role,
		}
	}

	return &UserRegistry{byEmail: byEmail}, nil
}

// FindByEmail performs an exact-match lookup, no case normalization.
func (r *UserRegistry) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// DefaultSeeds returns the built-in development accounts.
func DefaultSeeds() []Seed {
	return []Seed{
		{UID: "1", Email: "kavindu@gmail.com", Password: "1234", Role: "User"},
		{UID: "2", Email: "Shamalka@gmail.com", Password: "4321", Role: "Admin"},
	}
}
