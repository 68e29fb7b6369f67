package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/postcraft/postcraft-api/internal/domain"
)

// UserStore persists user accounts.
type UserStore interface {
	// Create validates and saves a new user, hashing the plaintext
	// password. Returns ErrEmailExists when the email is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID returns the user with the given ID, or ErrUserNotFound.
	// The plaintext password is never populated on reads.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail returns the user registered under email, or
	// ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update writes the complete user record. A non-empty plaintext
	// Password is re-hashed before saving. Returns ErrUserNotFound when
	// the user does not exist and ErrEmailExists when the new email is
	// taken.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes the user, or returns ErrUserNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a UserStore bound to tx. The caller owns the
	// transaction lifecycle.
	WithTx(tx *sql.Tx) UserStore
}
