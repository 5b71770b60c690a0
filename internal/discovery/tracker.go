package discovery

import (
	"sync"

	"github.com/mkurosawa/kotoba-api/internal/catalog"
	"github.com/mkurosawa/kotoba-api/internal/domain"
)

// Tracker remembers the last observed pool length per category so that a
// newly revealed item is reported exactly once. Safe for concurrent use.
type Tracker struct {
	mu   sync.Mutex
	seen map[domain.Category]int
}

// NewTracker returns a Tracker with no observed lengths.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[domain.Category]int)}
}

// Observe computes the category's current pool and reports any items revealed
// since the previous observation. On first observation the whole initial pool
// counts as already seen; only subsequent growth is reported as unlocked.
func (t *Tracker) Observe(category domain.Category, cat *catalog.Catalog, progress *domain.Progress) (pool, unlocked []domain.LearnableItem) {
	pool = Pool(category, cat, progress)

	t.mu.Lock()
	defer t.mu.Unlock()

	prev, observed := t.seen[category]
	t.seen[category] = len(pool)
	if !observed || len(pool) <= prev {
		return pool, nil
	}
	return pool, pool[prev:]
}
