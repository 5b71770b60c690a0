package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkurosawa/kotoba-api/internal/domain"
)

func TestNew(t *testing.T) {
	t.Parallel()

	c, err := New()
	require.NoError(t, err, "built-in curriculum must assemble cleanly")
	require.NotNil(t, c)

	t.Run("CategorySizes", func(t *testing.T) {
		t.Parallel()
		// 46 base kana plus 25 dakuten/handakuten forms per syllabary.
		assert.Len(t, c.Items(domain.CategoryHiragana), 71)
		assert.Len(t, c.Items(domain.CategoryKatakana), 71)
		assert.Len(t, c.Items(domain.CategoryKanji), 42)
		assert.Len(t, c.Items(domain.CategoryVocabulary), 40)
	})

	t.Run("UniqueIDs", func(t *testing.T) {
		t.Parallel()
		seen := make(map[string]bool)
		for _, cat := range domain.CharacterCategories {
			for _, item := range c.Items(cat) {
				assert.False(t, seen[item.ID], "duplicate ID %q", item.ID)
				seen[item.ID] = true
			}
		}
	})

	t.Run("CurriculumOrder", func(t *testing.T) {
		t.Parallel()
		hira := c.Items(domain.CategoryHiragana)
		require.NotEmpty(t, hira)
		assert.Equal(t, "hiragana-a", hira[0].ID, "あ opens the hiragana curriculum")

		kata := c.Items(domain.CategoryKatakana)
		require.NotEmpty(t, kata)
		assert.Equal(t, "katakana-a", kata[0].ID)
	})
}

func TestCatalog_ByID(t *testing.T) {
	t.Parallel()

	c, err := New()
	require.NoError(t, err)

	item, ok := c.ByID("hiragana-a")
	require.True(t, ok)
	assert.Equal(t, "あ", item.DisplayForm)
	assert.Equal(t, "a", item.Romaji)

	_, ok = c.ByID("hiragana-nope")
	assert.False(t, ok)
}

func TestCatalog_ItemIDs(t *testing.T) {
	t.Parallel()

	c, err := New()
	require.NoError(t, err)

	ids := c.ItemIDs(domain.CategoryKanji)
	require.Len(t, ids, 42)
	assert.Equal(t, "kanji-one", ids[0])
}

func TestCatalog_Pools(t *testing.T) {
	t.Parallel()

	c, err := New()
	require.NoError(t, err)

	meanings := c.MeaningPool()
	assert.Len(t, meanings, 42+40)
	for _, item := range meanings {
		assert.NotEmpty(t, item.Meaning, "meaning pool entry %q lacks a meaning", item.ID)
	}

	readings := c.ReadingPool()
	assert.Len(t, readings, 71+71)
	for _, item := range readings {
		assert.NotEmpty(t, item.Romaji, "reading pool entry %q lacks romaji", item.ID)
	}
}

func TestCatalog_ExpectedAnswers(t *testing.T) {
	t.Parallel()

	c, err := New()
	require.NoError(t, err)

	// Kana are answered by romaji, kanji and vocabulary by meaning.
	for _, item := range c.ReadingPool() {
		assert.Equal(t, item.Romaji, item.ExpectedAnswer(), "item %q", item.ID)
	}
	for _, item := range c.MeaningPool() {
		assert.Equal(t, item.Meaning, item.ExpectedAnswer(), "item %q", item.ID)
	}
}

func TestCatalog_Grammar(t *testing.T) {
	t.Parallel()

	c, err := New()
	require.NoError(t, err)

	points := c.Grammar()
	require.Len(t, points, 12)
	for _, p := range points {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Structure)
		assert.NotEmpty(t, p.Explanation)
		assert.NotEmpty(t, p.ExampleJP)
		assert.NotEmpty(t, p.ExampleEN)
	}
}
