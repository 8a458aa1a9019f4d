package services

// stopWords is the frozen English function-word table shared by the
// tokenizer and the vectorizer. Constructed once, read-only afterwards.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"if": true, "then": true, "else": true, "for": true, "on": true, "in": true,
	"at": true, "of": true, "to": true, "from": true, "by": true, "with": true,
	"about": true, "as": true, "into": true, "like": true, "through": true,
	"after": true, "over": true, "between": true, "out": true, "against": true,
	"during": true, "without": true, "before": true, "under": true, "around": true,
	"among": true, "is": true, "am": true, "are": true, "was": true, "were": true,
	"be": true, "being": true, "been": true, "this": true, "that": true,
	"these": true, "those": true, "it": true, "its": true, "i": true, "you": true,
	"he": true, "she": true, "they": true, "we": true, "him": true, "her": true,
	"them": true, "my": true, "your": true, "our": true, "their": true,
	"so": true, "not": true, "no": true, "yes": true, "can": true, "could": true,
	"should": true, "would": true, "will": true, "just": true, "than": true,
	"too": true, "very": true, "also": true, "such": true, "has": true,
	"have": true, "had": true, "one": true, "two": true, "three": true,
	"more": true, "most": true, "many": true, "much": true, "any": true,
	"some": true, "each": true, "other": true, "another": true, "within": true,
	"across": true, "while": true, "where": true, "when": true, "which": true,
	"whose": true, "what": true, "who": true, "whom": true, "why": true,
	"how": true, "onto": true, "ever": true, "said": true, "made": true,
	"make": true, "makes": true, "doing": true, "done": true, "seen": true,
	"used": true, "using": true, "based": true, "according": true,
	"including": true, "include": true, "includes": true, "may": true,
	"might": true,
}

// IsStopWord reports whether the lowercase word carries no discriminative
// value for keyword extraction.
func IsStopWord(word string) bool {
	return stopWords[word]
}
