package catalog

import "github.com/mkurosawa/kotoba-api/internal/domain"

// vocabularyN5 lists common JLPT N5 words in teaching order: people first,
// then everyday objects, places, time words, food, and weather. Vocabulary
// is quizzed on meaning; the romaji is auxiliary display data.
var vocabularyN5 = []domain.LearnableItem{
	{ID: "vocab-watashi", DisplayForm: "わたし", Category: domain.CategoryVocabulary, Romaji: "watashi", Meaning: "I"},
	{ID: "vocab-anata", DisplayForm: "あなた", Category: domain.CategoryVocabulary, Romaji: "anata", Meaning: "you"},
	{ID: "vocab-sensei", DisplayForm: "せんせい", Category: domain.CategoryVocabulary, Romaji: "sensei", Meaning: "teacher"},
	{ID: "vocab-gakusei", DisplayForm: "がくせい", Category: domain.CategoryVocabulary, Romaji: "gakusei", Meaning: "student"},
	{ID: "vocab-tomodachi", DisplayForm: "ともだち", Category: domain.CategoryVocabulary, Romaji: "tomodachi", Meaning: "friend"},
	{ID: "vocab-neko", DisplayForm: "ねこ", Category: domain.CategoryVocabulary, Romaji: "neko", Meaning: "cat"},
	{ID: "vocab-inu", DisplayForm: "いぬ", Category: domain.CategoryVocabulary, Romaji: "inu", Meaning: "dog"},
	{ID: "vocab-sakana", DisplayForm: "さかな", Category: domain.CategoryVocabulary, Romaji: "sakana", Meaning: "fish"},
	{ID: "vocab-hon", DisplayForm: "ほん", Category: domain.CategoryVocabulary, Romaji: "hon", Meaning: "book"},
	{ID: "vocab-kasa", DisplayForm: "かさ", Category: domain.CategoryVocabulary, Romaji: "kasa", Meaning: "umbrella"},
	{ID: "vocab-tokei", DisplayForm: "とけい", Category: domain.CategoryVocabulary, Romaji: "tokei", Meaning: "clock"},
	{ID: "vocab-tsukue", DisplayForm: "つくえ", Category: domain.CategoryVocabulary, Romaji: "tsukue", Meaning: "desk"},
	{ID: "vocab-isu", DisplayForm: "いす", Category: domain.CategoryVocabulary, Romaji: "isu", Meaning: "chair"},
	{ID: "vocab-kuruma", DisplayForm: "くるま", Category: domain.CategoryVocabulary, Romaji: "kuruma", Meaning: "car"},
	{ID: "vocab-densha", DisplayForm: "でんしゃ", Category: domain.CategoryVocabulary, Romaji: "densha", Meaning: "train"},
	{ID: "vocab-eki", DisplayForm: "えき", Category: domain.CategoryVocabulary, Romaji: "eki", Meaning: "station"},
	{ID: "vocab-ie", DisplayForm: "いえ", Category: domain.CategoryVocabulary, Romaji: "ie", Meaning: "house"},
	{ID: "vocab-gakkou", DisplayForm: "がっこう", Category: domain.CategoryVocabulary, Romaji: "gakkou", Meaning: "school"},
	{ID: "vocab-mise", DisplayForm: "みせ", Category: domain.CategoryVocabulary, Romaji: "mise", Meaning: "shop"},
	{ID: "vocab-umi", DisplayForm: "うみ", Category: domain.CategoryVocabulary, Romaji: "umi", Meaning: "sea"},
	{ID: "vocab-okane", DisplayForm: "おかね", Category: domain.CategoryVocabulary, Romaji: "okane", Meaning: "money"},
	{ID: "vocab-jikan", DisplayForm: "じかん", Category: domain.CategoryVocabulary, Romaji: "jikan", Meaning: "time"},
	{ID: "vocab-kyou", DisplayForm: "きょう", Category: domain.CategoryVocabulary, Romaji: "kyou", Meaning: "today"},
	{ID: "vocab-ashita", DisplayForm: "あした", Category: domain.CategoryVocabulary, Romaji: "ashita", Meaning: "tomorrow"},
	{ID: "vocab-kinou", DisplayForm: "きのう", Category: domain.CategoryVocabulary, Romaji: "kinou", Meaning: "yesterday"},
	{ID: "vocab-asa", DisplayForm: "あさ", Category: domain.CategoryVocabulary, Romaji: "asa", Meaning: "morning"},
	{ID: "vocab-hiru", DisplayForm: "ひる", Category: domain.CategoryVocabulary, Romaji: "hiru", Meaning: "noon"},
	{ID: "vocab-yoru", DisplayForm: "よる", Category: domain.CategoryVocabulary, Romaji: "yoru", Meaning: "night"},
	{ID: "vocab-gohan", DisplayForm: "ごはん", Category: domain.CategoryVocabulary, Romaji: "gohan", Meaning: "cooked rice"},
	{ID: "vocab-ocha", DisplayForm: "おちゃ", Category: domain.CategoryVocabulary, Romaji: "ocha", Meaning: "green tea"},
	{ID: "vocab-mizu", DisplayForm: "みず", Category: domain.CategoryVocabulary, Romaji: "mizu", Meaning: "water"},
	{ID: "vocab-niku", DisplayForm: "にく", Category: domain.CategoryVocabulary, Romaji: "niku", Meaning: "meat"},
	{ID: "vocab-yasai", DisplayForm: "やさい", Category: domain.CategoryVocabulary, Romaji: "yasai", Meaning: "vegetable"},
	{ID: "vocab-tamago", DisplayForm: "たまご", Category: domain.CategoryVocabulary, Romaji: "tamago", Meaning: "egg"},
	{ID: "vocab-kudamono", DisplayForm: "くだもの", Category: domain.CategoryVocabulary, Romaji: "kudamono", Meaning: "fruit"},
	{ID: "vocab-tenki", DisplayForm: "てんき", Category: domain.CategoryVocabulary, Romaji: "tenki", Meaning: "weather"},
	{ID: "vocab-ame", DisplayForm: "あめ", Category: domain.CategoryVocabulary, Romaji: "ame", Meaning: "rain"},
	{ID: "vocab-yuki", DisplayForm: "ゆき", Category: domain.CategoryVocabulary, Romaji: "yuki", Meaning: "snow"},
	{ID: "vocab-hana", DisplayForm: "はな", Category: domain.CategoryVocabulary, Romaji: "hana", Meaning: "flower"},
	{ID: "vocab-namae", DisplayForm: "なまえ", Category: domain.CategoryVocabulary, Romaji: "namae", Meaning: "name"},
}
