package services

import (
	"log"
	"sort"
	"strings"

	"article-analyzer/internal/models"
)

const (
	// DefaultMinSimilarity is the acceptance floor: matches scoring below
	// it are not "similar articles". Empirically tuned.
	DefaultMinSimilarity = 0.80
	// DefaultMaxSimilarity is the near-identical ceiling: matches at or
	// above it are duplicate resubmissions, not useful matches.
	DefaultMaxSimilarity = 0.999
	// DefaultMaxSimilarResults caps one result set.
	DefaultMaxSimilarResults = 3
	// HistoryWindowLimit bounds the history snapshot a caller may pass.
	HistoryWindowLimit = 50

	snippetMaxLength = 220
)

// SimilarityOptions tunes the acceptance band of the deduplicator.
type SimilarityOptions struct {
	MinSimilarity float64
	MaxSimilarity float64
	MaxResults    int
}

// DefaultSimilarityOptions returns the tuned production defaults.
func DefaultSimilarityOptions() SimilarityOptions {
	return SimilarityOptions{
		MinSimilarity: DefaultMinSimilarity,
		MaxSimilarity: DefaultMaxSimilarity,
		MaxResults:    DefaultMaxSimilarResults,
	}
}

// SimilarityService flags near-duplicate submissions against a bounded,
// newest-first history window supplied by the caller. It never reads or
// writes storage itself.
type SimilarityService struct {
	vectorizer *Vectorizer
	logger     *log.Logger
}

// NewSimilarityService creates a similarity deduplicator.
func NewSimilarityService(logger *log.Logger) *SimilarityService {
	return &SimilarityService{
		vectorizer: NewVectorizer(),
		logger:     logger,
	}
}

// FindSimilar vectorizes text jointly with the history contents and
// returns the top matches inside the acceptance band, descending by
// similarity. Empty history, or a degenerate vocabulary, yields an empty
// result without error.
func (s *SimilarityService) FindSimilar(text string, history []models.Article, opts SimilarityOptions) []models.SimilarArticle {
	if len(history) == 0 {
		return []models.SimilarArticle{}
	}
	if len(history) > HistoryWindowLimit {
		history = history[:HistoryWindowLimit]
	}

	docs := make([]string, 0, len(history)+1)
	docs = append(docs, text)
	for _, article := range history {
		docs = append(docs, article.Content)
	}

	matrix, _, err := s.vectorizer.FitTransform(docs)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("Similarity vectorization degenerate, skipping: %v", err)
		}
		return []models.SimilarArticle{}
	}

	sims := make([]float64, len(history))
	for i := range history {
		sims[i] = s.vectorizer.CosineSimilarity(matrix[0], matrix[i+1])
	}

	return selectSimilar(history, sims, opts)
}

// selectSimilar walks history indices in descending similarity order. The
// walk stops outright once a score drops below the floor (the list is
// sorted, so nothing further can qualify), skips scores at or above the
// near-identical ceiling, skips repeated article ids, and stops after
// MaxResults matches.
func selectSimilar(history []models.Article, sims []float64, opts SimilarityOptions) []models.SimilarArticle {
	indices := make([]int, len(sims))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return sims[indices[a]] > sims[indices[b]]
	})

	results := make([]models.SimilarArticle, 0, opts.MaxResults)
	emitted := make(map[string]bool, opts.MaxResults)
	for _, idx := range indices {
		score := sims[idx]
		if score < opts.MinSimilarity {
			break
		}
		if score >= opts.MaxSimilarity {
			continue
		}
		article := history[idx]
		if emitted[article.ID] {
			continue
		}
		results = append(results, models.SimilarArticle{
			ID:         article.ID,
			Similarity: score,
			Snippet:    makeSnippet(article.Content),
		})
		emitted[article.ID] = true
		if len(results) >= opts.MaxResults {
			break
		}
	}
	return results
}

// makeSnippet collapses newlines and truncates the content to the snippet
// limit, marking longer content with an ellipsis. The limit counts runes,
// not bytes, so multi-byte content is never cut mid-character.
func makeSnippet(content string) string {
	snippet := strings.ReplaceAll(content, "\n", " ")
	runes := []rune(snippet)
	if len(runes) > snippetMaxLength {
		snippet = string(runes[:snippetMaxLength]) + "..."
	}
	return snippet
}
