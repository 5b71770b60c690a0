// Package discovery computes which prefix of each category's catalog is
// currently unlocked for quizzing. The pool grows by one item for every
// mastery earned within the category and never shrinks.
package discovery

import (
	"github.com/mkurosawa/kotoba-api/internal/catalog"
	"github.com/mkurosawa/kotoba-api/internal/domain"
)

// InitialIntroCount is the number of items visible in a category before any
// mastery has been earned.
const InitialIntroCount = 10

// Pool returns the unlocked prefix of the category's catalog: the first
// InitialIntroCount+masteredInCategory items, capped at the catalog length.
// Catalog order is the curriculum order and is preserved.
func Pool(category domain.Category, cat *catalog.Catalog, progress *domain.Progress) []domain.LearnableItem {
	items := cat.Items(category)
	allowed := InitialIntroCount + progress.MasteredCount(cat.ItemIDs(category))
	if allowed > len(items) {
		allowed = len(items)
	}
	return items[:allowed]
}

// CombinedPool concatenates the unlocked pools of all character categories
// in their fixed curriculum order.
func CombinedPool(cat *catalog.Catalog, progress *domain.Progress) []domain.LearnableItem {
	var out []domain.LearnableItem
	for _, category := range domain.CharacterCategories {
		out = append(out, Pool(category, cat, progress)...)
	}
	return out
}
