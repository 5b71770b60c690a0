package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/mkurosawa/kotoba-api/internal/domain"
	"github.com/mkurosawa/kotoba-api/internal/store"
)

// MockProgressStore implements store.ProgressStore for testing. The default
// implementation keeps records in memory and returns a fresh empty record
// for unknown users, matching the real store's contract.
type MockProgressStore struct {
	// Function fields for customizable behavior
	GetFn  func(ctx context.Context, userID uuid.UUID) (*domain.Progress, error)
	SaveFn func(ctx context.Context, userID uuid.UUID, progress *domain.Progress) error

	// Errors returned by the default implementation when set
	GetError  error
	SaveError error

	mu      sync.Mutex
	records map[uuid.UUID]*domain.Progress

	// SaveCallCount tracks how many times Save was called
	SaveCallCount int
}

// NewMockProgressStore creates a new mock store with initialized defaults
func NewMockProgressStore() *MockProgressStore {
	return &MockProgressStore{
		records: make(map[uuid.UUID]*domain.Progress),
	}
}

// Get implements the ProgressStore interface
func (m *MockProgressStore) Get(ctx context.Context, userID uuid.UUID) (*domain.Progress, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, userID)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	record, exists := m.records[userID]
	if !exists {
		return domain.NewProgress(), nil
	}
	return record.Clone(), nil
}

// Save implements the ProgressStore interface
func (m *MockProgressStore) Save(
	ctx context.Context,
	userID uuid.UUID,
	progress *domain.Progress,
) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, userID, progress)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCallCount++

	if m.SaveError != nil {
		return m.SaveError
	}

	m.records[userID] = progress.Clone()
	return nil
}

// Seed stores a record directly, bypassing Save's call tracking
func (m *MockProgressStore) Seed(userID uuid.UUID, progress *domain.Progress) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[userID] = progress.Clone()
}

// WithTx implements the ProgressStore interface. The mock has no transaction
// state, so it returns itself.
func (m *MockProgressStore) WithTx(tx *sql.Tx) store.ProgressStore {
	return m
}
