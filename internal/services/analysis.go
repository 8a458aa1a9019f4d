package services

import (
	"log"
	"sync"

	"article-analyzer/internal/models"
)

// AnalysisService is the engine facade: one call produces the keyword,
// keyphrase, and similar-article outputs for a submission. The three
// computations are independent and run concurrently; each is fault-isolated
// and degrades to an empty result on degenerate input.
type AnalysisService struct {
	keywords   *KeywordService
	keyphrases *KeyphraseService
	similarity *SimilarityService
	topN       int
	simOpts    SimilarityOptions
	logger     *log.Logger
}

// NewAnalysisService wires the engine together. scorer may be nil when the
// classifier model is unavailable; keyphrase extraction then yields empty
// results without failing callers.
func NewAnalysisService(scorer PhraseScorer, topN int, minProb float64, simOpts SimilarityOptions, logger *log.Logger) *AnalysisService {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &AnalysisService{
		keywords:   NewKeywordService(),
		keyphrases: NewKeyphraseService(scorer, minProb, logger),
		similarity: NewSimilarityService(logger),
		topN:       topN,
		simOpts:    simOpts,
		logger:     logger,
	}
}

// Analyze runs the three extraction paths over text and the caller's
// history snapshot.
func (s *AnalysisService) Analyze(text string, history []models.Article) models.ExtractionResult {
	var result models.ExtractionResult

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		result.Keywords = s.keywords.HybridKeywords(text, s.topN)
	}()
	go func() {
		defer wg.Done()
		result.Keyphrases = s.keyphrases.HybridKeyphrases(text, s.topN)
	}()
	go func() {
		defer wg.Done()
		result.SimilarArticles = s.similarity.FindSimilar(text, history, s.simOpts)
	}()
	wg.Wait()

	return result
}
