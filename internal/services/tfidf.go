package services

import (
	"sort"
	"strings"
)

// TFIDFRanker produces a second, corpus-relative ranked term list by
// weighting the tokens of a single document against themselves. With a
// one-document corpus the weight degenerates to in-document frequency,
// which deliberately surfaces rare-but-salient terms the raw frequency
// ranker underweights.
type TFIDFRanker struct {
	vectorizer *Vectorizer
}

// NewTFIDFRanker creates a corpus-relative ranker over the shared
// vectorizer.
func NewTFIDFRanker() *TFIDFRanker {
	return &TFIDFRanker{vectorizer: NewVectorizer()}
}

// Rank joins tokens into one document and returns the topN terms descending
// by TF-IDF weight. A degenerate vocabulary yields an empty list rather
// than an error.
func (r *TFIDFRanker) Rank(tokens []string, topN int) []KeywordResult {
	if len(tokens) == 0 {
		return []KeywordResult{}
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	doc := strings.Join(tokens, " ")
	matrix, terms, err := r.vectorizer.FitTransform([]string{doc})
	if err != nil {
		return []KeywordResult{}
	}

	weights := matrix[0]
	results := make([]KeywordResult, 0, len(terms))
	for i, term := range terms {
		if weights[i] == 0 {
			continue
		}
		results = append(results, KeywordResult{Word: term, Score: weights[i]})
	}
	// Stable sort keeps alphabetical vocabulary order across equal weights.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topN {
		results = results[:topN]
	}
	return results
}
