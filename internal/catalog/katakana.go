package catalog

import "github.com/mkurosawa/kotoba-api/internal/domain"

// katakana mirrors the hiragana list: 46 base kana plus 25 voiced and
// semi-voiced forms, gojūon order.
var katakana = []domain.LearnableItem{
	{ID: "katakana-a", DisplayForm: "ア", Category: domain.CategoryKatakana, Romaji: "a"},
	{ID: "katakana-i", DisplayForm: "イ", Category: domain.CategoryKatakana, Romaji: "i"},
	{ID: "katakana-u", DisplayForm: "ウ", Category: domain.CategoryKatakana, Romaji: "u"},
	{ID: "katakana-e", DisplayForm: "エ", Category: domain.CategoryKatakana, Romaji: "e"},
	{ID: "katakana-o", DisplayForm: "オ", Category: domain.CategoryKatakana, Romaji: "o"},
	{ID: "katakana-ka", DisplayForm: "カ", Category: domain.CategoryKatakana, Romaji: "ka"},
	{ID: "katakana-ki", DisplayForm: "キ", Category: domain.CategoryKatakana, Romaji: "ki"},
	{ID: "katakana-ku", DisplayForm: "ク", Category: domain.CategoryKatakana, Romaji: "ku"},
	{ID: "katakana-ke", DisplayForm: "ケ", Category: domain.CategoryKatakana, Romaji: "ke"},
	{ID: "katakana-ko", DisplayForm: "コ", Category: domain.CategoryKatakana, Romaji: "ko"},
	{ID: "katakana-sa", DisplayForm: "サ", Category: domain.CategoryKatakana, Romaji: "sa"},
	{ID: "katakana-shi", DisplayForm: "シ", Category: domain.CategoryKatakana, Romaji: "shi"},
	{ID: "katakana-su", DisplayForm: "ス", Category: domain.CategoryKatakana, Romaji: "su"},
	{ID: "katakana-se", DisplayForm: "セ", Category: domain.CategoryKatakana, Romaji: "se"},
	{ID: "katakana-so", DisplayForm: "ソ", Category: domain.CategoryKatakana, Romaji: "so"},
	{ID: "katakana-ta", DisplayForm: "タ", Category: domain.CategoryKatakana, Romaji: "ta"},
	{ID: "katakana-chi", DisplayForm: "チ", Category: domain.CategoryKatakana, Romaji: "chi"},
	{ID: "katakana-tsu", DisplayForm: "ツ", Category: domain.CategoryKatakana, Romaji: "tsu"},
	{ID: "katakana-te", DisplayForm: "テ", Category: domain.CategoryKatakana, Romaji: "te"},
	{ID: "katakana-to", DisplayForm: "ト", Category: domain.CategoryKatakana, Romaji: "to"},
	{ID: "katakana-na", DisplayForm: "ナ", Category: domain.CategoryKatakana, Romaji: "na"},
	{ID: "katakana-ni", DisplayForm: "ニ", Category: domain.CategoryKatakana, Romaji: "ni"},
	{ID: "katakana-nu", DisplayForm: "ヌ", Category: domain.CategoryKatakana, Romaji: "nu"},
	{ID: "katakana-ne", DisplayForm: "ネ", Category: domain.CategoryKatakana, Romaji: "ne"},
	{ID: "katakana-no", DisplayForm: "ノ", Category: domain.CategoryKatakana, Romaji: "no"},
	{ID: "katakana-ha", DisplayForm: "ハ", Category: domain.CategoryKatakana, Romaji: "ha"},
	{ID: "katakana-hi", DisplayForm: "ヒ", Category: domain.CategoryKatakana, Romaji: "hi"},
	{ID: "katakana-fu", DisplayForm: "フ", Category: domain.CategoryKatakana, Romaji: "fu"},
	{ID: "katakana-he", DisplayForm: "ヘ", Category: domain.CategoryKatakana, Romaji: "he"},
	{ID: "katakana-ho", DisplayForm: "ホ", Category: domain.CategoryKatakana, Romaji: "ho"},
	{ID: "katakana-ma", DisplayForm: "マ", Category: domain.CategoryKatakana, Romaji: "ma"},
	{ID: "katakana-mi", DisplayForm: "ミ", Category: domain.CategoryKatakana, Romaji: "mi"},
	{ID: "katakana-mu", DisplayForm: "ム", Category: domain.CategoryKatakana, Romaji: "mu"},
	{ID: "katakana-me", DisplayForm: "メ", Category: domain.CategoryKatakana, Romaji: "me"},
	{ID: "katakana-mo", DisplayForm: "モ", Category: domain.CategoryKatakana, Romaji: "mo"},
	{ID: "katakana-ya", DisplayForm: "ヤ", Category: domain.CategoryKatakana, Romaji: "ya"},
	{ID: "katakana-yu", DisplayForm: "ユ", Category: domain.CategoryKatakana, Romaji: "yu"},
	{ID: "katakana-yo", DisplayForm: "ヨ", Category: domain.CategoryKatakana, Romaji: "yo"},
	{ID: "katakana-ra", DisplayForm: "ラ", Category: domain.CategoryKatakana, Romaji: "ra"},
	{ID: "katakana-ri", DisplayForm: "リ", Category: domain.CategoryKatakana, Romaji: "ri"},
	{ID: "katakana-ru", DisplayForm: "ル", Category: domain.CategoryKatakana, Romaji: "ru"},
	{ID: "katakana-re", DisplayForm: "レ", Category: domain.CategoryKatakana, Romaji: "re"},
	{ID: "katakana-ro", DisplayForm: "ロ", Category: domain.CategoryKatakana, Romaji: "ro"},
	{ID: "katakana-wa", DisplayForm: "ワ", Category: domain.CategoryKatakana, Romaji: "wa"},
	{ID: "katakana-wo", DisplayForm: "ヲ", Category: domain.CategoryKatakana, Romaji: "wo"},
	{ID: "katakana-n", DisplayForm: "ン", Category: domain.CategoryKatakana, Romaji: "n"},
	{ID: "katakana-ga", DisplayForm: "ガ", Category: domain.CategoryKatakana, Romaji: "ga"},
	{ID: "katakana-gi", DisplayForm: "ギ", Category: domain.CategoryKatakana, Romaji: "gi"},
	{ID: "katakana-gu", DisplayForm: "グ", Category: domain.CategoryKatakana, Romaji: "gu"},
	{ID: "katakana-ge", DisplayForm: "ゲ", Category: domain.CategoryKatakana, Romaji: "ge"},
	{ID: "katakana-go", DisplayForm: "ゴ", Category: domain.CategoryKatakana, Romaji: "go"},
	{ID: "katakana-za", DisplayForm: "ザ", Category: domain.CategoryKatakana, Romaji: "za"},
	{ID: "katakana-ji", DisplayForm: "ジ", Category: domain.CategoryKatakana, Romaji: "ji"},
	{ID: "katakana-zu", DisplayForm: "ズ", Category: domain.CategoryKatakana, Romaji: "zu"},
	{ID: "katakana-ze", DisplayForm: "ゼ", Category: domain.CategoryKatakana, Romaji: "ze"},
	{ID: "katakana-zo", DisplayForm: "ゾ", Category: domain.CategoryKatakana, Romaji: "zo"},
	{ID: "katakana-da", DisplayForm: "ダ", Category: domain.CategoryKatakana, Romaji: "da"},
	{ID: "katakana-dji", DisplayForm: "ヂ", Category: domain.CategoryKatakana, Romaji: "ji"},
	{ID: "katakana-dzu", DisplayForm: "ヅ", Category: domain.CategoryKatakana, Romaji: "zu"},
	{ID: "katakana-de", DisplayForm: "デ", Category: domain.CategoryKatakana, Romaji: "de"},
	{ID: "katakana-do", DisplayForm: "ド", Category: domain.CategoryKatakana, Romaji: "do"},
	{ID: "katakana-ba", DisplayForm: "バ", Category: domain.CategoryKatakana, Romaji: "ba"},
	{ID: "katakana-bi", DisplayForm: "ビ", Category: domain.CategoryKatakana, Romaji: "bi"},
	{ID: "katakana-bu", DisplayForm: "ブ", Category: domain.CategoryKatakana, Romaji: "bu"},
	{ID: "katakana-be", DisplayForm: "ベ", Category: domain.CategoryKatakana, Romaji: "be"},
	{ID: "katakana-bo", DisplayForm: "ボ", Category: domain.CategoryKatakana, Romaji: "bo"},
	{ID: "katakana-pa", DisplayForm: "パ", Category: domain.CategoryKatakana, Romaji: "pa"},
	{ID: "katakana-pi", DisplayForm: "ピ", Category: domain.CategoryKatakana, Romaji: "pi"},
	{ID: "katakana-pu", DisplayForm: "プ", Category: domain.CategoryKatakana, Romaji: "pu"},
	{ID: "katakana-pe", DisplayForm: "ペ", Category: domain.CategoryKatakana, Romaji: "pe"},
	{ID: "katakana-po", DisplayForm: "ポ", Category: domain.CategoryKatakana, Romaji: "po"},
}
