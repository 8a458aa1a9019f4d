package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jdkato/prose/v2"
)

const (
	// Word-length bounds applied during base segmentation.
	minTokenLength = 2
	maxTokenLength = 15

	// Keywords additionally require this many characters.
	minKeywordLength = 4
)

// Tokenizer normalizes raw text into lowercase token sequences.
// It is stateless apart from the frozen stopword table and safe for
// concurrent use.
type Tokenizer struct {
	minLength int
	maxLength int
}

// NewTokenizer creates a tokenizer with the default length bounds.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		minLength: minTokenLength,
		maxLength: maxTokenLength,
	}
}

// Tokenize segments text into lowercase alphabetic tokens with stopwords
// removed. Punctuation, digits, and out-of-bounds tokens are dropped.
// Empty or whitespace-only input yields an empty slice, never an error.
func (t *Tokenizer) Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	doc, err := prose.NewDocument(
		text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		// Degenerate input is not an error for callers.
		return []string{}
	}

	tokens := make([]string, 0, len(doc.Tokens()))
	for _, tok := range doc.Tokens() {
		word := strings.ToLower(tok.Text)
		if !t.isCandidate(word) {
			continue
		}
		if stopWords[word] {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// CleanTokens applies the stricter keyword filter on top of Tokenize:
// only tokens of at least four characters survive.
func (t *Tokenizer) CleanTokens(text string) []string {
	tokens := t.Tokenize(text)
	cleaned := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) < minKeywordLength {
			continue
		}
		cleaned = append(cleaned, tok)
	}
	return cleaned
}

// isCandidate reports whether the lowercased token is purely alphabetic
// and within the configured length bounds. Bounds count runes so accented
// words are not penalized for their encoding.
func (t *Tokenizer) isCandidate(word string) bool {
	length := utf8.RuneCountInString(word)
	if length < t.minLength || length > t.maxLength {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
