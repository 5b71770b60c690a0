package catalog

import "github.com/mkurosawa/kotoba-api/internal/domain"

// grammarPoints is the browsable N5 grammar reference. Grammar is not
// quizzed and carries no progress state.
var grammarPoints = []domain.GrammarPoint{
	{
		ID:          "grammar-wa",
		Title:       "は (wa) - Topic Marker",
		Structure:   "[Topic] は [Comment]",
		Explanation: "Marks the topic of the sentence, what the sentence is about. Written with the hiragana は but pronounced 'wa' when used as a particle.",
		ExampleJP:   "わたしはがくせいです。",
		ExampleEN:   "I am a student.",
	},
	{
		ID:          "grammar-ga",
		Title:       "が (ga) - Subject Marker",
		Structure:   "[Subject] が [Predicate]",
		Explanation: "Marks the grammatical subject, often introducing new information or emphasizing who or what performs the action.",
		ExampleJP:   "ねこがいます。",
		ExampleEN:   "There is a cat.",
	},
	{
		ID:          "grammar-o",
		Title:       "を (o) - Object Marker",
		Structure:   "[Object] を [Verb]",
		Explanation: "Marks the direct object of a verb. Written with the hiragana を, which appears almost exclusively as this particle.",
		ExampleJP:   "みずをのみます。",
		ExampleEN:   "I drink water.",
	},
	{
		ID:          "grammar-ni",
		Title:       "に (ni) - Direction and Time Marker",
		Structure:   "[Place/Time] に [Verb]",
		Explanation: "Marks a destination, a point in time, or the indirect object. One of the most versatile particles.",
		ExampleJP:   "がっこうにいきます。",
		ExampleEN:   "I go to school.",
	},
	{
		ID:          "grammar-de",
		Title:       "で (de) - Location of Action",
		Structure:   "[Place] で [Action Verb]",
		Explanation: "Marks the place where an action happens, or the means by which something is done.",
		ExampleJP:   "えきでともだちにあいます。",
		ExampleEN:   "I meet a friend at the station.",
	},
	{
		ID:          "grammar-no",
		Title:       "の (no) - Possessive Marker",
		Structure:   "[Owner] の [Thing]",
		Explanation: "Connects two nouns, most commonly to show possession or attribution.",
		ExampleJP:   "せんせいのほんです。",
		ExampleEN:   "It is the teacher's book.",
	},
	{
		ID:          "grammar-mo",
		Title:       "も (mo) - Also",
		Structure:   "[Noun] も [Predicate]",
		Explanation: "Replaces は or が to mean 'also' or 'too'.",
		ExampleJP:   "わたしもいきます。",
		ExampleEN:   "I will go too.",
	},
	{
		ID:          "grammar-ka",
		Title:       "か (ka) - Question Marker",
		Structure:   "[Statement] か",
		Explanation: "Turns a statement into a question when placed at the end of a sentence. No question mark is needed.",
		ExampleJP:   "これはほんですか。",
		ExampleEN:   "Is this a book?",
	},
	{
		ID:          "grammar-desu",
		Title:       "です (desu) - Copula",
		Structure:   "[Noun/Adjective] です",
		Explanation: "The polite copula, equivalent to 'is' or 'am'. Ends a polite declarative sentence.",
		ExampleJP:   "きょうはあめです。",
		ExampleEN:   "It is rainy today.",
	},
	{
		ID:          "grammar-masu",
		Title:       "ます (masu) - Polite Verb Ending",
		Structure:   "[Verb stem] ます",
		Explanation: "The polite non-past verb ending. Negative is ません, past is ました.",
		ExampleJP:   "まいにちにほんごをべんきょうします。",
		ExampleEN:   "I study Japanese every day.",
	},
	{
		ID:          "grammar-te",
		Title:       "て-form - Connecting Verbs",
		Structure:   "[Verb て-form], [Verb]",
		Explanation: "Links actions in sequence and forms requests with ください. Conjugation depends on the verb group.",
		ExampleJP:   "えきにいって、でんしゃにのります。",
		ExampleEN:   "I go to the station and take the train.",
	},
	{
		ID:          "grammar-tai",
		Title:       "たい (tai) - Want To",
		Structure:   "[Verb stem] たい",
		Explanation: "Expresses the speaker's desire to do something. Conjugates like an い-adjective.",
		ExampleJP:   "すしをたべたいです。",
		ExampleEN:   "I want to eat sushi.",
	},
}
