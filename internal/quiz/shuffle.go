package quiz

import (
	"math/rand"

	"github.com/mkurosawa/kotoba-api/internal/domain"
)

// Shuffle returns a uniformly random permutation of items drawn from the
// given source. The input is never modified; a seeded source makes the
// permutation deterministic.
func Shuffle(items []domain.LearnableItem, rng *rand.Rand) []domain.LearnableItem {
	out := make([]domain.LearnableItem, len(items))
	copy(out, items)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func shuffleStrings(vals []string, rng *rand.Rand) []string {
	out := make([]string, len(vals))
	copy(out, vals)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
