package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistractors_ReadingQuestion(t *testing.T) {
	t.Parallel()

	cat := mustCatalog(t)
	item, ok := cat.ByID("hiragana-a")
	require.True(t, ok)

	wrong := Distractors(item, cat, testRand())
	require.Len(t, wrong, 3)

	seen := make(map[string]bool)
	for _, w := range wrong {
		assert.NotEqual(t, item.ExpectedAnswer(), w)
		assert.False(t, seen[w], "duplicate distractor %q", w)
		seen[w] = true
	}
}

func TestDistractors_MeaningQuestion(t *testing.T) {
	t.Parallel()

	cat := mustCatalog(t)
	item, ok := cat.ByID("kanji-one")
	require.True(t, ok)

	wrong := Distractors(item, cat, testRand())
	require.Len(t, wrong, 3)

	// Meaning distractors come from the kanji and vocabulary pools.
	valid := make(map[string]bool)
	for _, other := range cat.MeaningPool() {
		valid[other.Meaning] = true
	}
	for _, w := range wrong {
		assert.True(t, valid[w], "distractor %q not a catalog meaning", w)
		assert.NotEqual(t, item.Meaning, w)
	}
}

func TestDistractors_ExcludesDuplicateAnswers(t *testing.T) {
	t.Parallel()

	cat := mustCatalog(t)

	// ぢ and じ share the romaji "ji": the shared reading must not appear
	// as a distractor for either.
	item, ok := cat.ByID("hiragana-dji")
	require.True(t, ok)
	require.Equal(t, "ji", item.Romaji)

	for i := int64(0); i < 20; i++ {
		for _, w := range Distractors(item, cat, seededRand(i)) {
			assert.NotEqual(t, "ji", w)
		}
	}
}

func TestOptions_ContainsCorrectAnswer(t *testing.T) {
	t.Parallel()

	cat := mustCatalog(t)
	item, ok := cat.ByID("vocab-neko")
	require.True(t, ok)

	options := Options(item, cat, testRand())
	require.Len(t, options, 4)
	assert.Contains(t, options, item.Meaning)
}

func TestOptions_SmallPool(t *testing.T) {
	t.Parallel()

	cat := mustCatalog(t)
	item, ok := cat.ByID("hiragana-a")
	require.True(t, ok)

	// Fewer than three distractors is tolerated; the contract never fails
	// on a small pool. The built-in pool always has enough, so exercise the
	// invariant structurally: option count is 1 correct + len(distractors).
	wrong := Distractors(item, cat, testRand())
	options := Options(item, cat, testRand())
	assert.Len(t, options, len(wrong)+1)
}
