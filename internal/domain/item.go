package domain

import (
	"errors"
	"fmt"
)

// Category identifies which part of the curriculum a learnable item belongs to.
type Category string

// Known item categories. CategoryGeneral is not a catalog category of its
// own: it is the distinguished quiz target that combines the four character
// categories into a single candidate pool.
const (
	CategoryHiragana   Category = "hiragana"
	CategoryKatakana   Category = "katakana"
	CategoryKanji      Category = "kanji"
	CategoryVocabulary Category = "vocabulary"
	CategoryGrammar    Category = "grammar"
	CategoryGeneral    Category = "general"
)

// CharacterCategories lists the four quizzable catalog categories in the
// fixed curriculum order used when building a combined session pool.
var CharacterCategories = []Category{
	CategoryHiragana,
	CategoryKatakana,
	CategoryKanji,
	CategoryVocabulary,
}

// ParseCategory converts a string into a Category.
// Returns ErrInvalidCategory for unknown values.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryHiragana, CategoryKatakana, CategoryKanji,
		CategoryVocabulary, CategoryGrammar, CategoryGeneral:
		return Category(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// IsCharacterCategory reports whether c is one of the four quizzable
// catalog categories.
func (c Category) IsCharacterCategory() bool {
	switch c {
	case CategoryHiragana, CategoryKatakana, CategoryKanji, CategoryVocabulary:
		return true
	}
	return false
}

// Item-specific validation errors.
var (
	// ErrItemIDEmpty is returned when an item ID is empty.
	ErrItemIDEmpty = errors.New("item ID cannot be empty")

	// ErrItemDisplayFormEmpty is returned when an item has no display form.
	ErrItemDisplayFormEmpty = errors.New("item display form cannot be empty")

	// ErrItemAnswerKeyEmpty is returned when an item is missing the answer
	// field its category requires (meaning for kanji/vocabulary, romaji for
	// the two kana scripts).
	ErrItemAnswerKeyEmpty = errors.New("item answer key cannot be empty")
)

// LearnableItem is an immutable catalog entry: a single character, word, or
// kanji the learner can be quizzed on. Items are owned by the content catalog
// and never mutated at runtime.
type LearnableItem struct {
	// ID is the stable curriculum key for this item, unique across the
	// whole catalog (e.g. "hiragana-a", "kanji-hito").
	ID string `json:"id"`

	// DisplayForm is the character or word as shown to the learner.
	DisplayForm string `json:"display_form"`

	// Category is the catalog category this item belongs to.
	Category Category `json:"category"`

	// Romaji is the romanized reading. It is the expected answer for
	// hiragana and katakana items.
	Romaji string `json:"romaji,omitempty"`

	// Meaning is the English meaning. It is the expected answer for kanji
	// and vocabulary items.
	Meaning string `json:"meaning,omitempty"`

	// Readings holds auxiliary kana readings for kanji items.
	Readings []string `json:"readings,omitempty"`
}

// ExpectedAnswer returns the string a submitted answer is judged against.
// Kanji and vocabulary items are quizzed on meaning; everything else on the
// romanized reading. The rule is fixed and does not vary by quiz mode.
func (i LearnableItem) ExpectedAnswer() string {
	if i.Category == CategoryKanji || i.Category == CategoryVocabulary {
		return i.Meaning
	}
	return i.Romaji
}

// Validate checks that the item carries the fields its category requires.
func (i LearnableItem) Validate() error {
	if i.ID == "" {
		return ErrItemIDEmpty
	}
	if i.DisplayForm == "" {
		return ErrItemDisplayFormEmpty
	}
	if !i.Category.IsCharacterCategory() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, i.Category)
	}
	if i.ExpectedAnswer() == "" {
		return fmt.Errorf("%w: item %s", ErrItemAnswerKeyEmpty, i.ID)
	}
	return nil
}

// GrammarPoint is a read-only grammar lesson entry. Grammar points are
// presented, not quizzed, so they carry no answer key.
type GrammarPoint struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Structure   string `json:"structure"`
	Explanation string `json:"explanation"`
	ExampleJP   string `json:"example_jp"`
	ExampleEN   string `json:"example_en"`
}

// Mnemonic is the hint artifact produced by the external generative service
// after an incorrect answer. The core never interprets the prose content,
// only carries it to the caller.
type Mnemonic struct {
	Character       string `json:"character"`
	Mnemonic        string `json:"mnemonic"`
	ExampleSentence string `json:"example_sentence"`
	Translation     string `json:"translation"`
}
