package services

import (
	"log"
	"sort"
)

// DefaultMinProbability is the minimum classifier probability a candidate
// phrase must reach before the fallback policy kicks in. Chosen to match
// the stricter of the two thresholds the model was tuned with.
const DefaultMinProbability = 0.55

// PhraseScorer scores candidate phrases with a positive-class probability
// in [0,1]. Implementations may report a resource as unavailable by
// returning an error; the caller degrades to an empty result.
type PhraseScorer interface {
	ScorePhrases(phrases []string) ([]float64, error)
}

// KeyphraseService extracts multi-word keyphrases by scoring n-gram
// candidates with the pre-trained classifier. When no classifier was
// loaded at startup the service is a constant empty-result function.
type KeyphraseService struct {
	generator *PhraseGenerator
	scorer    PhraseScorer
	minProb   float64
	logger    *log.Logger
}

// NewKeyphraseService creates a keyphrase extractor. scorer may be nil when
// the classifier failed to load.
func NewKeyphraseService(scorer PhraseScorer, minProb float64, logger *log.Logger) *KeyphraseService {
	if minProb <= 0 || minProb >= 1 {
		minProb = DefaultMinProbability
	}
	return &KeyphraseService{
		generator: NewPhraseGenerator(),
		scorer:    scorer,
		minProb:   minProb,
		logger:    logger,
	}
}

type scoredPhrase struct {
	phrase string
	prob   float64
}

// HybridKeyphrases returns up to topN redundancy-reduced keyphrases from
// text. Candidates below minProb are dropped, but when nothing clears the
// bar the top candidates by raw score are used instead, so the result is
// only empty when there were no candidates at all (or no classifier).
func (s *KeyphraseService) HybridKeyphrases(text string, topN int) []string {
	if s.scorer == nil {
		return []string{}
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	candidates := s.generator.GenerateCandidates(text)
	if len(candidates) == 0 {
		return []string{}
	}

	probs, err := s.scorer.ScorePhrases(candidates)
	if err != nil || len(probs) != len(candidates) {
		if s.logger != nil {
			s.logger.Printf("Keyphrase scoring failed, returning no keyphrases: %v", err)
		}
		return []string{}
	}

	scored := make([]scoredPhrase, len(candidates))
	for i, c := range candidates {
		scored[i] = scoredPhrase{phrase: c, prob: probs[i]}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].prob > scored[j].prob
	})

	// Cap the pre-reduction set at 2*topN to bound reduction cost.
	filtered := make([]string, 0, 2*topN)
	for _, sp := range scored {
		if sp.prob < s.minProb {
			continue
		}
		filtered = append(filtered, sp.phrase)
		if len(filtered) >= 2*topN {
			break
		}
	}
	if len(filtered) == 0 {
		// Fallback: surface the best candidates regardless of threshold.
		limit := 2 * topN
		if limit > len(scored) {
			limit = len(scored)
		}
		for _, sp := range scored[:limit] {
			filtered = append(filtered, sp.phrase)
		}
	}

	reduced := ReduceRedundantPhrases(filtered)
	if len(reduced) > topN {
		reduced = reduced[:topN]
	}
	return reduced
}
