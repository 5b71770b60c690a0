package domain

import "errors"

// MasteryThreshold is the success count at which an item becomes mastered.
// Mastery is permanent once reached, even if the success counter later
// regresses below the threshold.
const MasteryThreshold = 3

// Progress-specific validation errors.
var (
	// ErrNegativeCount is returned when a persisted progress record carries
	// a negative counter, which no reachable state can produce.
	ErrNegativeCount = errors.New("progress counters cannot be negative")
)

// Progress is the persisted per-learner mastery record. It tracks which
// items have been mastered, how many successes each item currently has, and
// how many mistakes have been made on items answered incorrectly at least
// once.
//
// Progress is an explicit value passed to the discovery, session, and
// evaluation code; it is never global. Callers own serialization: the whole
// record is persisted after every mutation.
type Progress struct {
	// MasteredIDs is the set of item IDs that have reached MasteryThreshold.
	// Membership is permanent.
	MasteredIDs map[string]bool `json:"mastered_ids"`

	// WeakIDs maps item IDs to a strictly positive mistake count. An item
	// appears here only after at least one incorrect answer.
	WeakIDs map[string]int `json:"weak_ids"`

	// SuccessCounts maps item IDs to their current success counter. Counters
	// are never negative: decrements clamp at zero.
	SuccessCounts map[string]int `json:"success_counts"`
}

// NewProgress returns an empty progress record, the state of a learner who
// has answered nothing yet.
func NewProgress() *Progress {
	return &Progress{
		MasteredIDs:   make(map[string]bool),
		WeakIDs:       make(map[string]int),
		SuccessCounts: make(map[string]int),
	}
}

// Validate checks the record's invariants. It is called after loading a
// persisted record, before the engines consume it.
func (p *Progress) Validate() error {
	for _, n := range p.WeakIDs {
		if n < 0 {
			return ErrNegativeCount
		}
	}
	for _, n := range p.SuccessCounts {
		if n < 0 {
			return ErrNegativeCount
		}
	}
	return nil
}

// normalize ensures all maps are non-nil. Records deserialized from an
// empty or partial payload may arrive with nil maps.
func (p *Progress) normalize() {
	if p.MasteredIDs == nil {
		p.MasteredIDs = make(map[string]bool)
	}
	if p.WeakIDs == nil {
		p.WeakIDs = make(map[string]int)
	}
	if p.SuccessCounts == nil {
		p.SuccessCounts = make(map[string]int)
	}
}

// RecordCorrect applies a correct answer for the given item ID: the success
// counter is incremented, and the item becomes mastered once the counter
// reaches MasteryThreshold. Returns true when this call caused the mastery
// transition (idempotent thereafter).
func (p *Progress) RecordCorrect(id string) (newlyMastered bool) {
	p.normalize()
	p.SuccessCounts[id]++
	if p.SuccessCounts[id] >= MasteryThreshold && !p.MasteredIDs[id] {
		p.MasteredIDs[id] = true
		return true
	}
	return false
}

// RecordIncorrect applies an incorrect answer for the given item ID: the
// mistake count is incremented and the success counter is decremented with a
// floor of zero. Mastery, once attained, is never revoked here.
func (p *Progress) RecordIncorrect(id string) {
	p.normalize()
	p.WeakIDs[id]++
	if p.SuccessCounts[id] > 0 {
		p.SuccessCounts[id]--
	} else {
		// Keep an explicit zero so the asymmetry with mastery is visible
		// in the persisted record.
		p.SuccessCounts[id] = 0
	}
}

// IsMastered reports whether the item has reached the mastery threshold.
func (p *Progress) IsMastered(id string) bool {
	return p.MasteredIDs[id]
}

// MasteredCount returns how many of the given item IDs are mastered.
func (p *Progress) MasteredCount(ids []string) int {
	n := 0
	for _, id := range ids {
		if p.MasteredIDs[id] {
			n++
		}
	}
	return n
}

// SuccessCount returns the current success counter for the item, zero if
// the item has never been answered correctly.
func (p *Progress) SuccessCount(id string) int {
	return p.SuccessCounts[id]
}

// MistakeCount returns the recorded mistake count for the item, zero if the
// item has never been answered incorrectly.
func (p *Progress) MistakeCount(id string) int {
	return p.WeakIDs[id]
}

// Clone returns a deep copy of the record. Engines that hand progress
// snapshots to concurrent readers copy first so the single writer never
// races a reader.
func (p *Progress) Clone() *Progress {
	c := NewProgress()
	for id := range p.MasteredIDs {
		c.MasteredIDs[id] = true
	}
	for id, n := range p.WeakIDs {
		c.WeakIDs[id] = n
	}
	for id, n := range p.SuccessCounts {
		c.SuccessCounts[id] = n
	}
	return c
}
