package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkurosawa/kotoba-api/internal/domain"
)

func TestQueryURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		term     string
		category domain.Category
		want     string
	}{
		{
			name:     "hiragana term",
			term:     "あ",
			category: domain.CategoryHiragana,
			want:     "https://jisho.org/search/%E3%81%82",
		},
		{
			name:     "kanji term gets kanji fragment",
			term:     "水",
			category: domain.CategoryKanji,
			want:     "https://jisho.org/search/%E6%B0%B4%20%23kanji",
		},
		{
			name:     "vocabulary term",
			term:     "みず",
			category: domain.CategoryVocabulary,
			want:     "https://jisho.org/search/%E3%81%BF%E3%81%9A",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, QueryURL(tc.term, tc.category))
		})
	}
}
