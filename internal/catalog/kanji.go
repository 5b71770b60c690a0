package catalog

import "github.com/mkurosawa/kotoba-api/internal/domain"

// kanjiN5 lists JLPT N5 kanji in teaching order: numerals first, then
// people and time, then nature and positions. Kanji are quizzed on meaning;
// readings are auxiliary display data.
var kanjiN5 = []domain.LearnableItem{
	{ID: "kanji-one", DisplayForm: "一", Category: domain.CategoryKanji, Meaning: "one", Readings: []string{"いち"}},
	{ID: "kanji-two", DisplayForm: "二", Category: domain.CategoryKanji, Meaning: "two", Readings: []string{"に"}},
	{ID: "kanji-three", DisplayForm: "三", Category: domain.CategoryKanji, Meaning: "three", Readings: []string{"さん"}},
	{ID: "kanji-four", DisplayForm: "四", Category: domain.CategoryKanji, Meaning: "four", Readings: []string{"し", "よん"}},
	{ID: "kanji-five", DisplayForm: "五", Category: domain.CategoryKanji, Meaning: "five", Readings: []string{"ご"}},
	{ID: "kanji-six", DisplayForm: "六", Category: domain.CategoryKanji, Meaning: "six", Readings: []string{"ろく"}},
	{ID: "kanji-seven", DisplayForm: "七", Category: domain.CategoryKanji, Meaning: "seven", Readings: []string{"しち", "なな"}},
	{ID: "kanji-eight", DisplayForm: "八", Category: domain.CategoryKanji, Meaning: "eight", Readings: []string{"はち"}},
	{ID: "kanji-nine", DisplayForm: "九", Category: domain.CategoryKanji, Meaning: "nine", Readings: []string{"きゅう", "く"}},
	{ID: "kanji-ten", DisplayForm: "十", Category: domain.CategoryKanji, Meaning: "ten", Readings: []string{"じゅう"}},
	{ID: "kanji-hundred", DisplayForm: "百", Category: domain.CategoryKanji, Meaning: "hundred", Readings: []string{"ひゃく"}},
	{ID: "kanji-thousand", DisplayForm: "千", Category: domain.CategoryKanji, Meaning: "thousand", Readings: []string{"せん"}},
	{ID: "kanji-person", DisplayForm: "人", Category: domain.CategoryKanji, Meaning: "person", Readings: []string{"ひと", "じん"}},
	{ID: "kanji-day", DisplayForm: "日", Category: domain.CategoryKanji, Meaning: "day", Readings: []string{"ひ", "にち"}},
	{ID: "kanji-month", DisplayForm: "月", Category: domain.CategoryKanji, Meaning: "month", Readings: []string{"つき", "げつ"}},
	{ID: "kanji-fire", DisplayForm: "火", Category: domain.CategoryKanji, Meaning: "fire", Readings: []string{"ひ", "か"}},
	{ID: "kanji-water", DisplayForm: "水", Category: domain.CategoryKanji, Meaning: "water", Readings: []string{"みず", "すい"}},
	{ID: "kanji-tree", DisplayForm: "木", Category: domain.CategoryKanji, Meaning: "tree", Readings: []string{"き", "もく"}},
	{ID: "kanji-gold", DisplayForm: "金", Category: domain.CategoryKanji, Meaning: "gold", Readings: []string{"かね", "きん"}},
	{ID: "kanji-earth", DisplayForm: "土", Category: domain.CategoryKanji, Meaning: "earth", Readings: []string{"つち", "ど"}},
	{ID: "kanji-year", DisplayForm: "年", Category: domain.CategoryKanji, Meaning: "year", Readings: []string{"とし", "ねん"}},
	{ID: "kanji-time", DisplayForm: "時", Category: domain.CategoryKanji, Meaning: "time", Readings: []string{"とき", "じ"}},
	{ID: "kanji-minute", DisplayForm: "分", Category: domain.CategoryKanji, Meaning: "minute", Readings: []string{"ふん", "ぶん"}},
	{ID: "kanji-now", DisplayForm: "今", Category: domain.CategoryKanji, Meaning: "now", Readings: []string{"いま", "こん"}},
	{ID: "kanji-big", DisplayForm: "大", Category: domain.CategoryKanji, Meaning: "big", Readings: []string{"おお", "だい"}},
	{ID: "kanji-small", DisplayForm: "小", Category: domain.CategoryKanji, Meaning: "small", Readings: []string{"ちい", "しょう"}},
	{ID: "kanji-middle", DisplayForm: "中", Category: domain.CategoryKanji, Meaning: "middle", Readings: []string{"なか", "ちゅう"}},
	{ID: "kanji-up", DisplayForm: "上", Category: domain.CategoryKanji, Meaning: "up", Readings: []string{"うえ", "じょう"}},
	{ID: "kanji-down", DisplayForm: "下", Category: domain.CategoryKanji, Meaning: "down", Readings: []string{"した", "か"}},
	{ID: "kanji-left", DisplayForm: "左", Category: domain.CategoryKanji, Meaning: "left", Readings: []string{"ひだり", "さ"}},
	{ID: "kanji-right", DisplayForm: "右", Category: domain.CategoryKanji, Meaning: "right", Readings: []string{"みぎ", "う"}},
	{ID: "kanji-mountain", DisplayForm: "山", Category: domain.CategoryKanji, Meaning: "mountain", Readings: []string{"やま", "さん"}},
	{ID: "kanji-river", DisplayForm: "川", Category: domain.CategoryKanji, Meaning: "river", Readings: []string{"かわ", "せん"}},
	{ID: "kanji-ricefield", DisplayForm: "田", Category: domain.CategoryKanji, Meaning: "rice field", Readings: []string{"た", "でん"}},
	{ID: "kanji-man", DisplayForm: "男", Category: domain.CategoryKanji, Meaning: "man", Readings: []string{"おとこ", "だん"}},
	{ID: "kanji-woman", DisplayForm: "女", Category: domain.CategoryKanji, Meaning: "woman", Readings: []string{"おんな", "じょ"}},
	{ID: "kanji-child", DisplayForm: "子", Category: domain.CategoryKanji, Meaning: "child", Readings: []string{"こ", "し"}},
	{ID: "kanji-study", DisplayForm: "学", Category: domain.CategoryKanji, Meaning: "study", Readings: []string{"がく"}},
	{ID: "kanji-life", DisplayForm: "生", Category: domain.CategoryKanji, Meaning: "life", Readings: []string{"い", "せい"}},
	{ID: "kanji-book", DisplayForm: "本", Category: domain.CategoryKanji, Meaning: "book", Readings: []string{"ほん"}},
	{ID: "kanji-country", DisplayForm: "国", Category: domain.CategoryKanji, Meaning: "country", Readings: []string{"くに", "こく"}},
	{ID: "kanji-language", DisplayForm: "語", Category: domain.CategoryKanji, Meaning: "language", Readings: []string{"ご"}},
}
