package mocks

import (
	"context"
	"sync"

	"github.com/mkurosawa/kotoba-api/internal/domain"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateMnemonicFn allows test cases to mock the GenerateMnemonic behavior
	GenerateMnemonicFn func(ctx context.Context, item domain.LearnableItem) (*domain.Mnemonic, error)

	// Default response values
	Mnemonic *domain.Mnemonic
	Err      error

	// Call tracking for verification
	mu    sync.Mutex
	calls []domain.LearnableItem
}

// GenerateMnemonic implements the generation.Generator interface
func (m *MockGenerator) GenerateMnemonic(
	ctx context.Context,
	item domain.LearnableItem,
) (*domain.Mnemonic, error) {
	m.mu.Lock()
	m.calls = append(m.calls, item)
	m.mu.Unlock()

	if m.GenerateMnemonicFn != nil {
		return m.GenerateMnemonicFn(ctx, item)
	}
	return m.Mnemonic, m.Err
}

// Calls returns the items passed to GenerateMnemonic so far
func (m *MockGenerator) Calls() []domain.LearnableItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.LearnableItem, len(m.calls))
	copy(out, m.calls)
	return out
}
