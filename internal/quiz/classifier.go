package quiz

import "github.com/mkurosawa/kotoba-api/internal/domain"

// Status is the coarse display state of an item.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Proficiency is a display tier derived from the current success counter.
// Unlike mastery it regresses when mistakes decrement the counter.
type Proficiency string

const (
	ProficiencyNone         Proficiency = "none"
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
)

// Tier thresholds on the success counter.
const (
	IntermediateThreshold = 5
	AdvancedThreshold     = 8
)

// ItemStatus classifies an item from the progress snapshot. Mastered items
// are completed regardless of the current counter; otherwise any positive
// counter means in progress.
func ItemStatus(id string, progress *domain.Progress) Status {
	switch {
	case progress.IsMastered(id):
		return StatusCompleted
	case progress.SuccessCount(id) > 0:
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}

// ItemProficiency classifies an item's tier from its success counter alone.
// A mastered item whose counter has been decremented below a threshold
// still shows the lower tier.
func ItemProficiency(id string, progress *domain.Progress) Proficiency {
	n := progress.SuccessCount(id)
	switch {
	case n >= AdvancedThreshold:
		return ProficiencyAdvanced
	case n >= IntermediateThreshold:
		return ProficiencyIntermediate
	case n > 0:
		return ProficiencyBeginner
	default:
		return ProficiencyNone
	}
}
