package quiz

import (
	"math/rand"

	"github.com/mkurosawa/kotoba-api/internal/catalog"
	"github.com/mkurosawa/kotoba-api/internal/domain"
)

// distractorCount is the number of wrong options presented per question.
const distractorCount = 3

// Distractors samples up to three wrong answers for the item. Meaning-type
// questions (kanji, vocabulary) draw from the meanings of all kanji and
// vocabulary items; reading-type questions draw from the romaji of all kana.
// Candidates are deduplicated and never include the correct answer. A small
// pool may yield fewer than three.
func Distractors(item domain.LearnableItem, cat *catalog.Catalog, rng *rand.Rand) []string {
	var pool []domain.LearnableItem
	if item.Category == domain.CategoryKanji || item.Category == domain.CategoryVocabulary {
		pool = cat.MeaningPool()
	} else {
		pool = cat.ReadingPool()
	}

	correct := item.ExpectedAnswer()
	seen := map[string]bool{correct: true}
	var candidates []string
	for _, other := range pool {
		if other.ID == item.ID {
			continue
		}
		answer := other.ExpectedAnswer()
		if seen[answer] {
			continue
		}
		seen[answer] = true
		candidates = append(candidates, answer)
	}

	candidates = shuffleStrings(candidates, rng)
	if len(candidates) > distractorCount {
		candidates = candidates[:distractorCount]
	}
	return candidates
}

// Options returns the full shuffled option set for the item: the correct
// answer plus its distractors.
func Options(item domain.LearnableItem, cat *catalog.Catalog, rng *rand.Rand) []string {
	options := append(Distractors(item, cat, rng), item.ExpectedAnswer())
	return shuffleStrings(options, rng)
}
