package models

import (
	"time"
)

// Article represents one prior submission in a user's history window.
// The engine only ever sees a bounded, newest-first snapshot of these.
type Article struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// SimilarArticle is one near-duplicate match inside the acceptance band.
type SimilarArticle struct {
	ID         string  `json:"id"`
	Similarity float64 `json:"similarity"`
	Snippet    string  `json:"snippet"`
}

// ExtractionResult bundles the three independent outputs of one analysis call.
type ExtractionResult struct {
	Keywords        []string         `json:"keywords"`
	Keyphrases      []string         `json:"keyphrases"`
	SimilarArticles []SimilarArticle `json:"similar_articles"`
}
