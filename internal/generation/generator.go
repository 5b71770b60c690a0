package generation

import (
	"context"

	"github.com/mkurosawa/kotoba-api/internal/domain"
)

// Generator produces a mnemonic hint for a learnable item. This interface
// is the boundary between the quiz engine and the external AI service.
//
// Implementations may block for the duration of the remote call; callers
// invoke them from background workers, never from the answer path.
type Generator interface {
	// GenerateMnemonic creates a mnemonic for the item. Errors are one of
	// the sentinels in errors.go: ErrInvalidCredential for authentication
	// failures, ErrInvalidResponse for malformed payloads, and so on.
	GenerateMnemonic(ctx context.Context, item domain.LearnableItem) (*domain.Mnemonic, error)
}
