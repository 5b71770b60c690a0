package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/mkurosawa/kotoba-api/internal/domain"
)

// UserStore defines the interface for learner account persistence.
type UserStore interface {
	// Create saves a new user. The implementation hashes the plaintext
	// password before storing. Returns ErrEmailExists when the email is
	// already taken and domain validation errors for invalid data.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID. Returns ErrUserNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by email. Returns ErrUserNotFound when
	// absent.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// WithTx returns a UserStore bound to the given transaction. The caller
	// owns the transaction lifecycle, typically via RunInTransaction.
	WithTx(tx *sql.Tx) UserStore
}
