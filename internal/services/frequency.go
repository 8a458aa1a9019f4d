package services

import (
	"sort"
)

// DefaultTopN caps keyword and keyphrase result lists unless the caller
// asks for a different limit.
const DefaultTopN = 20

// KeywordResult represents a ranked term with its score.
type KeywordResult struct {
	Word  string  `json:"word"`
	Count int     `json:"count"`
	Score float64 `json:"score"`
}

// FrequencyRanker performs rule-based keyword extraction by raw term
// frequency.
type FrequencyRanker struct{}

// NewFrequencyRanker creates a frequency ranker.
func NewFrequencyRanker() *FrequencyRanker {
	return &FrequencyRanker{}
}

// Rank returns the topN most frequent tokens, descending by count. Ties
// keep first-occurrence order. Empty input yields an empty list.
func (r *FrequencyRanker) Rank(tokens []string, topN int) []KeywordResult {
	if len(tokens) == 0 {
		return []KeywordResult{}
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	// Build in first-occurrence order so the stable sort preserves it
	// across equal counts.
	results := make([]KeywordResult, 0, len(order))
	for _, word := range order {
		results = append(results, KeywordResult{
			Word:  word,
			Count: counts[word],
			Score: float64(counts[word]),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Count > results[j].Count
	})

	if len(results) > topN {
		results = results[:topN]
	}
	return results
}
