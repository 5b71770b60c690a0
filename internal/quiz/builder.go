// Package quiz builds randomized sessions from the discovered pools,
// evaluates answers against per-item progress, and classifies items into
// display statuses and proficiency tiers.
package quiz

import (
	"fmt"
	"math/rand"

	"github.com/mkurosawa/kotoba-api/internal/catalog"
	"github.com/mkurosawa/kotoba-api/internal/discovery"
	"github.com/mkurosawa/kotoba-api/internal/domain"
)

// BuildSession assembles a fresh quiz session for the target category.
//
// The general target draws from the combined discovered pools of all four
// character categories and yields up to 20 questions; a single category
// yields up to 10. In review mode the candidate pool is first restricted to
// items with a recorded mistake; an empty review pool fails with
// ErrNoMistakesTracked. The question list is a random permutation of the
// candidate pool truncated to the session length, so every candidate has
// equal selection probability.
func BuildSession(target domain.Category, review bool, progress *domain.Progress, cat *catalog.Catalog, rng *rand.Rand) (*domain.QuizSession, error) {
	var pool []domain.LearnableItem
	length := domain.CategorySessionLength

	switch {
	case target == domain.CategoryGeneral:
		pool = discovery.CombinedPool(cat, progress)
		length = domain.GeneralSessionLength
	case target.IsCharacterCategory():
		pool = discovery.Pool(target, cat, progress)
	default:
		return nil, fmt.Errorf("target %q: %w", target, domain.ErrInvalidCategory)
	}

	if review {
		pool = filterWeak(pool, progress)
		if len(pool) == 0 {
			return nil, ErrNoMistakesTracked
		}
	}

	questions := Shuffle(pool, rng)
	if len(questions) > length {
		questions = questions[:length]
	}

	return domain.NewQuizSession(target, review, questions)
}

func filterWeak(pool []domain.LearnableItem, progress *domain.Progress) []domain.LearnableItem {
	var out []domain.LearnableItem
	for _, item := range pool {
		if progress.MistakeCount(item.ID) > 0 {
			out = append(out, item)
		}
	}
	return out
}
