package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencyRank(t *testing.T) {
	ranker := NewFrequencyRanker()

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, ranker.Rank(nil, 10))
		assert.Empty(t, ranker.Rank([]string{}, 10))
	})

	t.Run("orders by descending count", func(t *testing.T) {
		tokens := []string{"beta", "alpha", "beta", "gamma", "beta", "alpha"}
		results := ranker.Rank(tokens, 10)

		assert.Len(t, results, 3)
		assert.Equal(t, "beta", results[0].Word)
		assert.Equal(t, 3, results[0].Count)
		assert.Equal(t, "alpha", results[1].Word)
		assert.Equal(t, 2, results[1].Count)
		assert.Equal(t, "gamma", results[2].Word)
		assert.Equal(t, 1, results[2].Count)
	})

	t.Run("ties keep first occurrence order", func(t *testing.T) {
		tokens := []string{"zulu", "alpha", "zulu", "alpha", "mike"}
		results := ranker.Rank(tokens, 10)

		assert.Equal(t, "zulu", results[0].Word)
		assert.Equal(t, "alpha", results[1].Word)
		assert.Equal(t, "mike", results[2].Word)
	})

	t.Run("caps at topN", func(t *testing.T) {
		tokens := []string{"one", "two", "three", "four", "five"}
		results := ranker.Rank(tokens, 2)
		assert.Len(t, results, 2)
	})

	t.Run("non-positive topN uses default", func(t *testing.T) {
		tokens := []string{"alpha", "beta"}
		results := ranker.Rank(tokens, 0)
		assert.Len(t, results, 2)
	})
}
