package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCandidates(t *testing.T) {
	generator := NewPhraseGenerator()

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, generator.GenerateCandidates(""))
	})

	t.Run("single token cannot form a phrase", func(t *testing.T) {
		assert.Empty(t, generator.GenerateCandidates("quantum"))
	})

	t.Run("all stopwords", func(t *testing.T) {
		assert.Empty(t, generator.GenerateCandidates("the of and to"))
	})

	t.Run("bigrams precede trigrams", func(t *testing.T) {
		candidates := generator.GenerateCandidates("machine learning model")
		assert.Equal(t, []string{
			"machine learning",
			"learning model",
			"machine learning model",
		}, candidates)
	})

	t.Run("stopwords removed before windowing", func(t *testing.T) {
		candidates := generator.GenerateCandidates("machine learning and deep learning")
		assert.Contains(t, candidates, "learning deep")
		assert.NotContains(t, candidates, "learning and")
	})

	t.Run("deduplicates candidates", func(t *testing.T) {
		candidates := generator.GenerateCandidates("data model data model")
		seen := make(map[string]bool)
		for _, c := range candidates {
			assert.False(t, seen[c], "duplicate candidate %q", c)
			seen[c] = true
		}
	})

	t.Run("every candidate has at least two words", func(t *testing.T) {
		candidates := generator.GenerateCandidates("supervised learning requires labeled training data")
		require.NotEmpty(t, candidates)
		for _, c := range candidates {
			assert.GreaterOrEqual(t, len(strings.Fields(c)), 2)
		}
	})
}

func TestReduceRedundantPhrases(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "empty input",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "removes exact duplicates",
			input:    []string{"neural network", "neural network"},
			expected: []string{"neural network"},
		},
		{
			name:     "shorter phrase contained in longer is dropped",
			input:    []string{"machine learning", "machine learning model"},
			expected: []string{"machine learning model"},
		},
		{
			name:     "unrelated phrases all kept",
			input:    []string{"data pipeline", "graph database"},
			expected: []string{"data pipeline", "graph database"},
		},
		{
			name:     "longest phrases come first",
			input:    []string{"data pipeline", "stream processing engine"},
			expected: []string{"stream processing engine", "data pipeline"},
		},
		{
			name:     "containment checked against kept set only",
			input:    []string{"deep neural network", "neural network", "network"},
			expected: []string{"deep neural network"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReduceRedundantPhrases(tt.input))
		})
	}
}
