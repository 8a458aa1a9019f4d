package services

// KeywordService combines the frequency ranker and the corpus-relative
// ranker into a single hybrid keyword extractor.
type KeywordService struct {
	tokenizer *Tokenizer
	frequency *FrequencyRanker
	tfidf     *TFIDFRanker
}

// NewKeywordService creates a hybrid keyword extractor.
func NewKeywordService() *KeywordService {
	return &KeywordService{
		tokenizer: NewTokenizer(),
		frequency: NewFrequencyRanker(),
		tfidf:     NewTFIDFRanker(),
	}
}

// HybridKeywords extracts up to topN keyword strings from text. Terms both
// rankers agree on come first (in frequency-rank order) since agreement of
// the two signals marks the highest-confidence keywords; remaining
// frequency-ranked terms follow, then remaining corpus-relative terms.
func (s *KeywordService) HybridKeywords(text string, topN int) []string {
	if topN <= 0 {
		topN = DefaultTopN
	}

	tokens := s.tokenizer.CleanTokens(text)
	ruleBased := s.frequency.Rank(tokens, topN)
	corpusRelative := s.tfidf.Rank(tokens, topN)

	return mergeRankedLists(ruleBased, corpusRelative, topN)
}

// mergeRankedLists merges two already-capped ranked lists: intersection
// first in rule order, then the rule remainder, then the corpus-relative
// remainder. Duplicates are dropped on first occurrence and the merged
// list is truncated to topN.
func mergeRankedLists(rule, corpusRelative []KeywordResult, topN int) []string {
	inCorpus := make(map[string]bool, len(corpusRelative))
	for _, kw := range corpusRelative {
		inCorpus[kw.Word] = true
	}

	combined := make([]string, 0, topN)
	seen := make(map[string]bool, topN)
	appendTerm := func(word string) {
		if !seen[word] {
			combined = append(combined, word)
			seen[word] = true
		}
	}

	for _, kw := range rule {
		if inCorpus[kw.Word] {
			appendTerm(kw.Word)
		}
	}
	for _, kw := range rule {
		appendTerm(kw.Word)
	}
	for _, kw := range corpusRelative {
		appendTerm(kw.Word)
	}

	if len(combined) > topN {
		combined = combined[:topN]
	}
	return combined
}
