package quiz

import (
	"sync"

	"github.com/google/uuid"

	"github.com/mkurosawa/kotoba-api/internal/domain"
)

// Registry holds each learner's single active session. All session access
// goes through a per-user lock, so evaluations of the same progress never
// interleave while readers of other users proceed unblocked.
type Registry struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*sessionEntry
}

type sessionEntry struct {
	mu      sync.Mutex
	session *domain.QuizSession
}

// NewRegistry returns an empty session registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[uuid.UUID]*sessionEntry)}
}

// Start installs a new active session for the user, replacing any previous
// one. An abandoned session's pending hint deliveries no longer match and
// are discarded.
func (r *Registry) Start(userID uuid.UUID, s *domain.QuizSession) {
	r.mu.Lock()
	e, ok := r.entries[userID]
	if !ok {
		e = &sessionEntry{}
		r.entries[userID] = e
	}
	r.mu.Unlock()

	e.mu.Lock()
	e.session = s
	e.mu.Unlock()
}

// End removes the user's active session and releases its registry slot, so
// the map only holds users with a live session.
func (r *Registry) End(userID uuid.UUID) {
	r.mu.Lock()
	e, ok := r.entries[userID]
	if ok {
		delete(r.entries, userID)
	}
	r.mu.Unlock()
	if !ok {
		return
	}

	// A goroutine already inside WithSession still holds the old entry;
	// clearing the session makes it observe the removal.
	e.mu.Lock()
	e.session = nil
	e.mu.Unlock()
}

// WithSession runs fn with the user's active session under its lock.
// Returns ErrNoActiveSession when the user has none; lookups never
// allocate registry state.
func (r *Registry) WithSession(userID uuid.UUID, fn func(s *domain.QuizSession) error) error {
	r.mu.Lock()
	e, ok := r.entries[userID]
	r.mu.Unlock()
	if !ok {
		return ErrNoActiveSession
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return ErrNoActiveSession
	}
	return fn(e.session)
}
