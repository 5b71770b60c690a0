// Package lookup builds external dictionary queries for learnable items.
package lookup

import (
	"net/url"

	"github.com/mkurosawa/kotoba-api/internal/domain"
)

const jishoSearchURL = "https://jisho.org/search/"

// QueryURL returns a jisho.org search URL for the given term. Character
// categories append the #kanji fragment so the dictionary opens the
// character detail view instead of a word search.
func QueryURL(term string, category domain.Category) string {
	escaped := url.PathEscape(term)
	if category == domain.CategoryKanji {
		return jishoSearchURL + escaped + "%20%23kanji"
	}
	return jishoSearchURL + escaped
}
