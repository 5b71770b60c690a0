package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/mkurosawa/kotoba-api/internal/domain"
)

// ProgressStore persists each learner's progress record. The record is
// written in full after every mutation; partial updates are never issued,
// so a read always observes a complete, consistent snapshot.
type ProgressStore interface {
	// Get retrieves the user's progress record. A user who has never
	// answered anything gets a fresh empty record, not an error.
	Get(ctx context.Context, userID uuid.UUID) (*domain.Progress, error)

	// Save writes the user's complete progress record, creating it on first
	// write. Returns validation errors for records violating the counter
	// invariants.
	Save(ctx context.Context, userID uuid.UUID, progress *domain.Progress) error

	// WithTx returns a ProgressStore bound to the given transaction.
	WithTx(tx *sql.Tx) ProgressStore
}
