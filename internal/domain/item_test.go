package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"hiragana", CategoryHiragana, false},
		{"katakana", CategoryKatakana, false},
		{"kanji", CategoryKanji, false},
		{"vocabulary", CategoryVocabulary, false},
		{"grammar", CategoryGrammar, false},
		{"general", CategoryGeneral, false},
		{"", "", true},
		{"Hiragana", "", true},
		{"verbs", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpectedAnswerByCategory(t *testing.T) {
	tests := []struct {
		name string
		item LearnableItem
		want string
	}{
		{
			name: "hiragana quizzed on romaji",
			item: LearnableItem{Category: CategoryHiragana, Romaji: "a", Meaning: "unused"},
			want: "a",
		},
		{
			name: "katakana quizzed on romaji",
			item: LearnableItem{Category: CategoryKatakana, Romaji: "ka"},
			want: "ka",
		},
		{
			name: "kanji quizzed on meaning",
			item: LearnableItem{Category: CategoryKanji, Romaji: "hito", Meaning: "person"},
			want: "person",
		},
		{
			name: "vocabulary quizzed on meaning",
			item: LearnableItem{Category: CategoryVocabulary, Romaji: "neko", Meaning: "cat"},
			want: "cat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.ExpectedAnswer())
		})
	}
}

func TestItemValidate(t *testing.T) {
	valid := LearnableItem{
		ID:          "hiragana-a",
		DisplayForm: "あ",
		Category:    CategoryHiragana,
		Romaji:      "a",
	}
	assert.NoError(t, valid.Validate())

	missingID := valid
	missingID.ID = ""
	assert.ErrorIs(t, missingID.Validate(), ErrItemIDEmpty)

	missingForm := valid
	missingForm.DisplayForm = ""
	assert.ErrorIs(t, missingForm.Validate(), ErrItemDisplayFormEmpty)

	missingAnswer := valid
	missingAnswer.Romaji = ""
	assert.ErrorIs(t, missingAnswer.Validate(), ErrItemAnswerKeyEmpty)

	// A kanji item needs a meaning, not a romaji.
	kanji := LearnableItem{
		ID:          "kanji-hito",
		DisplayForm: "人",
		Category:    CategoryKanji,
		Romaji:      "hito",
	}
	assert.ErrorIs(t, kanji.Validate(), ErrItemAnswerKeyEmpty)
	kanji.Meaning = "person"
	assert.NoError(t, kanji.Validate())

	grammar := valid
	grammar.Category = CategoryGrammar
	assert.ErrorIs(t, grammar.Validate(), ErrInvalidCategory)
}

func TestIsCharacterCategory(t *testing.T) {
	assert.True(t, CategoryHiragana.IsCharacterCategory())
	assert.True(t, CategoryVocabulary.IsCharacterCategory())
	assert.False(t, CategoryGrammar.IsCharacterCategory())
	assert.False(t, CategoryGeneral.IsCharacterCategory())
}
