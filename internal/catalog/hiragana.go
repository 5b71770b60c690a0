package catalog

import "github.com/mkurosawa/kotoba-api/internal/domain"

// hiragana lists the 46 base kana followed by the 25 voiced (dakuten) and
// semi-voiced (handakuten) forms, in the standard gojūon teaching order.
var hiragana = []domain.LearnableItem{
	{ID: "hiragana-a", DisplayForm: "あ", Category: domain.CategoryHiragana, Romaji: "a"},
	{ID: "hiragana-i", DisplayForm: "い", Category: domain.CategoryHiragana, Romaji: "i"},
	{ID: "hiragana-u", DisplayForm: "う", Category: domain.CategoryHiragana, Romaji: "u"},
	{ID: "hiragana-e", DisplayForm: "え", Category: domain.CategoryHiragana, Romaji: "e"},
	{ID: "hiragana-o", DisplayForm: "お", Category: domain.CategoryHiragana, Romaji: "o"},
	{ID: "hiragana-ka", DisplayForm: "か", Category: domain.CategoryHiragana, Romaji: "ka"},
	{ID: "hiragana-ki", DisplayForm: "き", Category: domain.CategoryHiragana, Romaji: "ki"},
	{ID: "hiragana-ku", DisplayForm: "く", Category: domain.CategoryHiragana, Romaji: "ku"},
	{ID: "hiragana-ke", DisplayForm: "け", Category: domain.CategoryHiragana, Romaji: "ke"},
	{ID: "hiragana-ko", DisplayForm: "こ", Category: domain.CategoryHiragana, Romaji: "ko"},
	{ID: "hiragana-sa", DisplayForm: "さ", Category: domain.CategoryHiragana, Romaji: "sa"},
	{ID: "hiragana-shi", DisplayForm: "し", Category: domain.CategoryHiragana, Romaji: "shi"},
	{ID: "hiragana-su", DisplayForm: "す", Category: domain.CategoryHiragana, Romaji: "su"},
	{ID: "hiragana-se", DisplayForm: "せ", Category: domain.CategoryHiragana, Romaji: "se"},
	{ID: "hiragana-so", DisplayForm: "そ", Category: domain.CategoryHiragana, Romaji: "so"},
	{ID: "hiragana-ta", DisplayForm: "た", Category: domain.CategoryHiragana, Romaji: "ta"},
	{ID: "hiragana-chi", DisplayForm: "ち", Category: domain.CategoryHiragana, Romaji: "chi"},
	{ID: "hiragana-tsu", DisplayForm: "つ", Category: domain.CategoryHiragana, Romaji: "tsu"},
	{ID: "hiragana-te", DisplayForm: "て", Category: domain.CategoryHiragana, Romaji: "te"},
	{ID: "hiragana-to", DisplayForm: "と", Category: domain.CategoryHiragana, Romaji: "to"},
	{ID: "hiragana-na", DisplayForm: "な", Category: domain.CategoryHiragana, Romaji: "na"},
	{ID: "hiragana-ni", DisplayForm: "に", Category: domain.CategoryHiragana, Romaji: "ni"},
	{ID: "hiragana-nu", DisplayForm: "ぬ", Category: domain.CategoryHiragana, Romaji: "nu"},
	{ID: "hiragana-ne", DisplayForm: "ね", Category: domain.CategoryHiragana, Romaji: "ne"},
	{ID: "hiragana-no", DisplayForm: "の", Category: domain.CategoryHiragana, Romaji: "no"},
	{ID: "hiragana-ha", DisplayForm: "は", Category: domain.CategoryHiragana, Romaji: "ha"},
	{ID: "hiragana-hi", DisplayForm: "ひ", Category: domain.CategoryHiragana, Romaji: "hi"},
	{ID: "hiragana-fu", DisplayForm: "ふ", Category: domain.CategoryHiragana, Romaji: "fu"},
	{ID: "hiragana-he", DisplayForm: "へ", Category: domain.CategoryHiragana, Romaji: "he"},
	{ID: "hiragana-ho", DisplayForm: "ほ", Category: domain.CategoryHiragana, Romaji: "ho"},
	{ID: "hiragana-ma", DisplayForm: "ま", Category: domain.CategoryHiragana, Romaji: "ma"},
	{ID: "hiragana-mi", DisplayForm: "み", Category: domain.CategoryHiragana, Romaji: "mi"},
	{ID: "hiragana-mu", DisplayForm: "む", Category: domain.CategoryHiragana, Romaji: "mu"},
	{ID: "hiragana-me", DisplayForm: "め", Category: domain.CategoryHiragana, Romaji: "me"},
	{ID: "hiragana-mo", DisplayForm: "も", Category: domain.CategoryHiragana, Romaji: "mo"},
	{ID: "hiragana-ya", DisplayForm: "や", Category: domain.CategoryHiragana, Romaji: "ya"},
	{ID: "hiragana-yu", DisplayForm: "ゆ", Category: domain.CategoryHiragana, Romaji: "yu"},
	{ID: "hiragana-yo", DisplayForm: "よ", Category: domain.CategoryHiragana, Romaji: "yo"},
	{ID: "hiragana-ra", DisplayForm: "ら", Category: domain.CategoryHiragana, Romaji: "ra"},
	{ID: "hiragana-ri", DisplayForm: "り", Category: domain.CategoryHiragana, Romaji: "ri"},
	{ID: "hiragana-ru", DisplayForm: "る", Category: domain.CategoryHiragana, Romaji: "ru"},
	{ID: "hiragana-re", DisplayForm: "れ", Category: domain.CategoryHiragana, Romaji: "re"},
	{ID: "hiragana-ro", DisplayForm: "ろ", Category: domain.CategoryHiragana, Romaji: "ro"},
	{ID: "hiragana-wa", DisplayForm: "わ", Category: domain.CategoryHiragana, Romaji: "wa"},
	{ID: "hiragana-wo", DisplayForm: "を", Category: domain.CategoryHiragana, Romaji: "wo"},
	{ID: "hiragana-n", DisplayForm: "ん", Category: domain.CategoryHiragana, Romaji: "n"},
	{ID: "hiragana-ga", DisplayForm: "が", Category: domain.CategoryHiragana, Romaji: "ga"},
	{ID: "hiragana-gi", DisplayForm: "ぎ", Category: domain.CategoryHiragana, Romaji: "gi"},
	{ID: "hiragana-gu", DisplayForm: "ぐ", Category: domain.CategoryHiragana, Romaji: "gu"},
	{ID: "hiragana-ge", DisplayForm: "げ", Category: domain.CategoryHiragana, Romaji: "ge"},
	{ID: "hiragana-go", DisplayForm: "ご", Category: domain.CategoryHiragana, Romaji: "go"},
	{ID: "hiragana-za", DisplayForm: "ざ", Category: domain.CategoryHiragana, Romaji: "za"},
	{ID: "hiragana-ji", DisplayForm: "じ", Category: domain.CategoryHiragana, Romaji: "ji"},
	{ID: "hiragana-zu", DisplayForm: "ず", Category: domain.CategoryHiragana, Romaji: "zu"},
	{ID: "hiragana-ze", DisplayForm: "ぜ", Category: domain.CategoryHiragana, Romaji: "ze"},
	{ID: "hiragana-zo", DisplayForm: "ぞ", Category: domain.CategoryHiragana, Romaji: "zo"},
	{ID: "hiragana-da", DisplayForm: "だ", Category: domain.CategoryHiragana, Romaji: "da"},
	{ID: "hiragana-dji", DisplayForm: "ぢ", Category: domain.CategoryHiragana, Romaji: "ji"},
	{ID: "hiragana-dzu", DisplayForm: "づ", Category: domain.CategoryHiragana, Romaji: "zu"},
	{ID: "hiragana-de", DisplayForm: "で", Category: domain.CategoryHiragana, Romaji: "de"},
	{ID: "hiragana-do", DisplayForm: "ど", Category: domain.CategoryHiragana, Romaji: "do"},
	{ID: "hiragana-ba", DisplayForm: "ば", Category: domain.CategoryHiragana, Romaji: "ba"},
	{ID: "hiragana-bi", DisplayForm: "び", Category: domain.CategoryHiragana, Romaji: "bi"},
	{ID: "hiragana-bu", DisplayForm: "ぶ", Category: domain.CategoryHiragana, Romaji: "bu"},
	{ID: "hiragana-be", DisplayForm: "べ", Category: domain.CategoryHiragana, Romaji: "be"},
	{ID: "hiragana-bo", DisplayForm: "ぼ", Category: domain.CategoryHiragana, Romaji: "bo"},
	{ID: "hiragana-pa", DisplayForm: "ぱ", Category: domain.CategoryHiragana, Romaji: "pa"},
	{ID: "hiragana-pi", DisplayForm: "ぴ", Category: domain.CategoryHiragana, Romaji: "pi"},
	{ID: "hiragana-pu", DisplayForm: "ぷ", Category: domain.CategoryHiragana, Romaji: "pu"},
	{ID: "hiragana-pe", DisplayForm: "ぺ", Category: domain.CategoryHiragana, Romaji: "pe"},
	{ID: "hiragana-po", DisplayForm: "ぽ", Category: domain.CategoryHiragana, Romaji: "po"},
}
