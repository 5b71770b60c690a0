// Package catalog holds the static curriculum: ordered lists of learnable
// items per category plus the grammar points. The order of each list is the
// curriculum order and is load-bearing: the discovery engine unlocks items
// as a prefix of these lists, so they are never resorted.
package catalog

import (
	"fmt"

	"github.com/mkurosawa/kotoba-api/internal/domain"
)

// Catalog is the read-only content input, loaded once at startup.
type Catalog struct {
	byCategory map[domain.Category][]domain.LearnableItem
	byID       map[string]domain.LearnableItem
	grammar    []domain.GrammarPoint
}

// New assembles the built-in curriculum and verifies its integrity.
func New() (*Catalog, error) {
	c := &Catalog{
		byCategory: map[domain.Category][]domain.LearnableItem{
			domain.CategoryHiragana:   hiragana,
			domain.CategoryKatakana:   katakana,
			domain.CategoryKanji:      kanjiN5,
			domain.CategoryVocabulary: vocabularyN5,
		},
		byID:    make(map[string]domain.LearnableItem),
		grammar: grammarPoints,
	}

	for _, cat := range domain.CharacterCategories {
		for _, item := range c.byCategory[cat] {
			if err := item.Validate(); err != nil {
				return nil, fmt.Errorf("catalog entry %q: %w", item.ID, err)
			}
			if item.Category != cat {
				return nil, fmt.Errorf("catalog entry %q listed under %s but categorized as %s",
					item.ID, cat, item.Category)
			}
			if _, dup := c.byID[item.ID]; dup {
				return nil, fmt.Errorf("duplicate catalog ID %q", item.ID)
			}
			c.byID[item.ID] = item
		}
	}

	return c, nil
}

// Items returns the full ordered list for a category. The returned slice is
// shared; callers must not modify it.
func (c *Catalog) Items(category domain.Category) []domain.LearnableItem {
	return c.byCategory[category]
}

// ItemIDs returns the ordered item IDs for a category.
func (c *Catalog) ItemIDs(category domain.Category) []string {
	items := c.byCategory[category]
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

// ByID looks up a single item anywhere in the catalog.
func (c *Catalog) ByID(id string) (domain.LearnableItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Grammar returns the ordered grammar points.
func (c *Catalog) Grammar() []domain.GrammarPoint {
	return c.grammar
}

// MeaningPool returns every kanji and vocabulary item. Distractors for
// meaning-type questions are drawn from this pool.
func (c *Catalog) MeaningPool() []domain.LearnableItem {
	return concat(c.byCategory[domain.CategoryKanji], c.byCategory[domain.CategoryVocabulary])
}

// ReadingPool returns every hiragana and katakana item. Distractors for
// reading-type questions are drawn from this pool.
func (c *Catalog) ReadingPool() []domain.LearnableItem {
	return concat(c.byCategory[domain.CategoryHiragana], c.byCategory[domain.CategoryKatakana])
}

func concat(a, b []domain.LearnableItem) []domain.LearnableItem {
	out := make([]domain.LearnableItem, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
