// Package classifier loads and applies the pre-trained keyphrase model: a
// logistic regression over 1-2-gram TF-IDF phrase features, exported to a
// JSON model file by the training pipeline. The model is loaded once at
// process start and is read-only afterwards, so a single instance may be
// shared across any number of concurrent requests.
package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
)

// Model is the deserialized keyphrase classifier.
type Model struct {
	Vocabulary   map[string]int `json:"vocabulary"`
	IDF          []float64      `json:"idf"`
	Coefficients []float64      `json:"coefficients"`
	Intercept    float64        `json:"intercept"`
	NgramMin     int            `json:"ngram_min"`
	NgramMax     int            `json:"ngram_max"`
}

// Load reads a model file from disk and validates its shape. Callers are
// expected to treat a load failure as "classifier absent" rather than a
// fatal condition.
func Load(path string) (*Model, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model file: %w", err)
	}
	defer file.Close()

	var model Model
	if err := json.NewDecoder(file).Decode(&model); err != nil {
		return nil, fmt.Errorf("failed to decode model file: %w", err)
	}
	if err := model.Validate(); err != nil {
		return nil, err
	}
	return &model, nil
}

// Validate checks internal consistency of the model weights.
func (m *Model) Validate() error {
	if len(m.Vocabulary) == 0 {
		return fmt.Errorf("model has empty vocabulary")
	}
	if len(m.IDF) != len(m.Vocabulary) || len(m.Coefficients) != len(m.Vocabulary) {
		return fmt.Errorf("model weight shapes disagree: vocabulary=%d idf=%d coefficients=%d",
			len(m.Vocabulary), len(m.IDF), len(m.Coefficients))
	}
	if m.NgramMin < 1 || m.NgramMax < m.NgramMin {
		return fmt.Errorf("invalid ngram range [%d,%d]", m.NgramMin, m.NgramMax)
	}
	return nil
}

// PredictProba returns the positive-class probability for one phrase.
func (m *Model) PredictProba(phrase string) float64 {
	features := m.featurize(phrase)

	// l2 normalization over the sparse TF-IDF features.
	normSq := 0.0
	for _, w := range features {
		normSq += w * w
	}
	activation := m.Intercept
	if normSq > 0 {
		norm := math.Sqrt(normSq)
		for idx, w := range features {
			activation += m.Coefficients[idx] * (w / norm)
		}
	}
	return 1 / (1 + math.Exp(-activation))
}

// ScorePhrases returns the positive-class probability for every phrase, in
// input order. It implements the scoring seam the keyphrase service depends
// on.
func (m *Model) ScorePhrases(phrases []string) ([]float64, error) {
	probs := make([]float64, len(phrases))
	for i, p := range phrases {
		probs[i] = m.PredictProba(p)
	}
	return probs, nil
}

// featurize maps a phrase to sparse TF-IDF weights over the model
// vocabulary, using the configured n-gram range.
func (m *Model) featurize(phrase string) map[int]float64 {
	words := strings.Fields(strings.ToLower(phrase))
	counts := make(map[int]float64)
	for n := m.NgramMin; n <= m.NgramMax; n++ {
		for i := 0; i+n <= len(words); i++ {
			gram := strings.Join(words[i:i+n], " ")
			if idx, ok := m.Vocabulary[gram]; ok {
				counts[idx]++
			}
		}
	}
	for idx := range counts {
		counts[idx] *= m.IDF[idx]
	}
	return counts
}
