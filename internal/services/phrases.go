package services

import (
	"sort"
	"strings"
)

// PhraseGenerator produces multi-word keyphrase candidates by sliding an
// n-gram window over the stopword-filtered token sequence. Bigrams come
// before trigrams, each group in text order.
type PhraseGenerator struct {
	tokenizer *Tokenizer
}

// NewPhraseGenerator creates a candidate phrase generator.
func NewPhraseGenerator() *PhraseGenerator {
	return &PhraseGenerator{tokenizer: NewTokenizer()}
}

// GenerateCandidates returns the deduplicated bigram and trigram candidates
// from text. Text too short to form any n-gram yields an empty slice.
func (g *PhraseGenerator) GenerateCandidates(text string) []string {
	tokens := g.tokenizer.Tokenize(text)

	phrases := make([]string, 0, 2*len(tokens))
	for i := 0; i+1 < len(tokens); i++ {
		phrases = append(phrases, tokens[i]+" "+tokens[i+1])
	}
	for i := 0; i+2 < len(tokens); i++ {
		phrases = append(phrases, tokens[i]+" "+tokens[i+1]+" "+tokens[i+2])
	}

	unique := make([]string, 0, len(phrases))
	seen := make(map[string]bool, len(phrases))
	for _, p := range phrases {
		cleaned := strings.ToLower(strings.Join(strings.Fields(p), " "))
		if len(strings.Fields(cleaned)) < 2 {
			continue
		}
		if seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		unique = append(unique, cleaned)
	}
	return unique
}

// ReduceRedundantPhrases removes exact duplicates, then keeps phrases
// longest-first, dropping any phrase already contained in a kept one. The
// containment test runs after deduplication and before any truncation so
// the most specific phrasing always survives.
func ReduceRedundantPhrases(phrases []string) []string {
	unique := make([]string, 0, len(phrases))
	seen := make(map[string]bool, len(phrases))
	for _, p := range phrases {
		if !seen[p] {
			seen[p] = true
			unique = append(unique, p)
		}
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return len(strings.Fields(unique[i])) > len(strings.Fields(unique[j]))
	})

	kept := make([]string, 0, len(unique))
	for _, p := range unique {
		contained := false
		for _, k := range kept {
			if strings.Contains(k, p) {
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, p)
		}
	}
	return kept
}
