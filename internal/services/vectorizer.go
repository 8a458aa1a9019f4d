package services

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/floats"
)

// ErrEmptyVocabulary is returned when no term survives filtering, making
// the TF-IDF weighting undefined.
var ErrEmptyVocabulary = errors.New("empty vocabulary: no terms survived filtering")

// Vectorizer builds a TF-IDF vector space over a set of documents. A fresh
// joint space is computed per call; nothing is cached between requests.
type Vectorizer struct {
	stopWords map[string]bool
}

// NewVectorizer creates a vectorizer with the shared stopword table.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{stopWords: stopWords}
}

// FitTransform builds the vocabulary over docs and returns one l2-normalized
// TF-IDF row per document plus the vocabulary in index order. IDF is the
// smoothed variant ln((1+n)/(1+df)) + 1.
func (v *Vectorizer) FitTransform(docs []string) ([][]float64, []string, error) {
	if len(docs) == 0 {
		return nil, nil, ErrEmptyVocabulary
	}

	tokenized := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tokenized[i] = v.tokenize(doc)
		seen := make(map[string]bool)
		for _, term := range tokenized[i] {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}
	if len(df) == 0 {
		return nil, nil, ErrEmptyVocabulary
	}

	// Stable alphabetical vocabulary order, matching the index order the
	// rest of the engine relies on for tie-breaking.
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		index[term] = i
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	matrix := make([][]float64, len(docs))
	for i, tokens := range tokenized {
		row := make([]float64, len(terms))
		for _, term := range tokens {
			row[index[term]] += 1
		}
		for j := range row {
			row[j] *= idf[j]
		}
		if norm := floats.Norm(row, 2); norm > 0 {
			floats.Scale(1/norm, row)
		}
		matrix[i] = row
	}

	return matrix, terms, nil
}

// CosineSimilarity returns the normalized dot product of two rows from the
// same vector space. Rows are already l2-normalized, so a zero-norm vector
// contributes zero similarity.
func (v *Vectorizer) CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	return floats.Dot(a, b)
}

// tokenize performs the vectorizer's own lightweight segmentation: lowercase
// runs of letters or digits, at least two characters, stopwords removed.
func (v *Vectorizer) tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 || v.stopWords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
