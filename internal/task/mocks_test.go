package task

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mkurosawa/kotoba-api/internal/domain"
)

// memoryTaskStore is an in-memory TaskStore for runner tests.
type memoryTaskStore struct {
	mu       sync.Mutex
	tasks    map[uuid.UUID]Task
	statuses map[uuid.UUID]TaskStatus
	saveErr  error
}

func newMemoryTaskStore() *memoryTaskStore {
	return &memoryTaskStore{
		tasks:    make(map[uuid.UUID]Task),
		statuses: make(map[uuid.UUID]TaskStatus),
	}
}

func (s *memoryTaskStore) SaveTask(_ context.Context, t Task) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[t.ID()] = t
	s.statuses[t.ID()] = t.Status()
	return nil
}

func (s *memoryTaskStore) UpdateTaskStatus(_ context.Context, taskID uuid.UUID, status TaskStatus, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[taskID] = status
	return nil
}

func (s *memoryTaskStore) GetPendingTasks(_ context.Context) ([]Task, error) {
	return s.byStatus(TaskStatusPending), nil
}

func (s *memoryTaskStore) GetProcessingTasks(_ context.Context, _ time.Duration) ([]Task, error) {
	return s.byStatus(TaskStatusProcessing), nil
}

func (s *memoryTaskStore) byStatus(status TaskStatus) []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Task
	for id, st := range s.statuses {
		if st == status {
			out = append(out, s.tasks[id])
		}
	}
	return out
}

func (s *memoryTaskStore) status(taskID uuid.UUID) TaskStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statuses[taskID]
}

func (s *memoryTaskStore) WithTx(_ *sql.Tx) TaskStore { return s }

// fakeTask records executions and optionally fails.
type fakeTask struct {
	id       uuid.UUID
	execErr  error
	executed chan struct{}
}

func newFakeTask(execErr error) *fakeTask {
	return &fakeTask{id: uuid.New(), execErr: execErr, executed: make(chan struct{}, 1)}
}

func (t *fakeTask) ID() uuid.UUID      { return t.id }
func (t *fakeTask) Type() string       { return "fake" }
func (t *fakeTask) Payload() []byte    { return nil }
func (t *fakeTask) Status() TaskStatus { return TaskStatusPending }

func (t *fakeTask) Execute(_ context.Context) error {
	select {
	case t.executed <- struct{}{}:
	default:
	}
	return t.execErr
}

// fakeGenerator returns a fixed mnemonic or error.
type fakeGenerator struct {
	mnemonic *domain.Mnemonic
	err      error
	calls    int
}

func (g *fakeGenerator) GenerateMnemonic(_ context.Context, _ domain.LearnableItem) (*domain.Mnemonic, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.mnemonic, nil
}

// fakeSink records deliveries and failures.
type fakeSink struct {
	mu        sync.Mutex
	delivered []*domain.Mnemonic
	failures  []domain.HintFailure
}

func (s *fakeSink) DeliverHint(_ context.Context, _, _ uuid.UUID, _ int, m *domain.Mnemonic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delivered = append(s.delivered, m)
}

func (s *fakeSink) FailHint(_ context.Context, _, _ uuid.UUID, _ int, failure domain.HintFailure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure)
}

// fakeCache is a map-backed MnemonicCache.
type fakeCache struct {
	entries map[string]*domain.Mnemonic
	getErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]*domain.Mnemonic)}
}

func (c *fakeCache) Get(_ context.Context, itemID string) (*domain.Mnemonic, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[itemID], nil
}

func (c *fakeCache) Set(_ context.Context, itemID string, m *domain.Mnemonic) error {
	c.entries[itemID] = m
	return nil
}
