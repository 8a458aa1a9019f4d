package classifier

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel() *Model {
	return &Model{
		Vocabulary: map[string]int{
			"machine":          0,
			"learning":         1,
			"machine learning": 2,
		},
		IDF:          []float64{1.0, 1.0, 1.5},
		Coefficients: []float64{2.0, 2.0, 4.0},
		Intercept:    -3.0,
		NgramMin:     1,
		NgramMax:     2,
	}
}

func TestModelValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Model)
		wantErr bool
	}{
		{
			name:   "valid model",
			mutate: func(*Model) {},
		},
		{
			name:    "empty vocabulary",
			mutate:  func(m *Model) { m.Vocabulary = nil },
			wantErr: true,
		},
		{
			name:    "idf shape mismatch",
			mutate:  func(m *Model) { m.IDF = []float64{1.0} },
			wantErr: true,
		},
		{
			name:    "coefficient shape mismatch",
			mutate:  func(m *Model) { m.Coefficients = []float64{1.0} },
			wantErr: true,
		},
		{
			name:    "inverted ngram range",
			mutate:  func(m *Model) { m.NgramMin, m.NgramMax = 2, 1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := testModel()
			tt.mutate(model)
			err := model.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPredictProba(t *testing.T) {
	model := testModel()

	t.Run("known phrase scores above half", func(t *testing.T) {
		prob := model.PredictProba("machine learning")
		assert.Greater(t, prob, 0.5)
	})

	t.Run("out-of-vocabulary phrase falls back to intercept", func(t *testing.T) {
		prob := model.PredictProba("gardening tips")
		assert.Less(t, prob, 0.5)
	})

	t.Run("probabilities stay in range", func(t *testing.T) {
		for _, phrase := range []string{"", "machine", "machine learning", "totally unknown words"} {
			prob := model.PredictProba(phrase)
			assert.GreaterOrEqual(t, prob, 0.0)
			assert.LessOrEqual(t, prob, 1.0)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, model.PredictProba("machine learning"), model.PredictProba("Machine Learning"))
	})
}

func TestScorePhrases(t *testing.T) {
	model := testModel()

	probs, err := model.ScorePhrases([]string{"machine learning", "gardening tips"})
	require.NoError(t, err)
	require.Len(t, probs, 2)
	assert.Greater(t, probs[0], probs[1])
}

func TestLoad(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "model.json")
		data, err := json.Marshal(testModel())
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		model, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, testModel(), model)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid shapes rejected", func(t *testing.T) {
		model := testModel()
		model.IDF = []float64{1.0}
		path := filepath.Join(t.TempDir(), "shape.json")
		data, err := json.Marshal(model)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		_, err = Load(path)
		assert.Error(t, err)
	})
}
