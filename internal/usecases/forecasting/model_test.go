package forecasting

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadModel(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		expectError string
	}{
		{
			name:    "valid artifact",
			content: `{"model_name":"test_v1","feature_cols":["a","b"],"coefficients":[1.5,-0.5],"intercept":2}`,
		},
		{
			name:        "invalid json",
			content:     `{"model_name":`,
			expectError: "failed to parse model artifact",
		},
		{
			name:        "no feature columns",
			content:     `{"model_name":"test_v1","feature_cols":[],"coefficients":[],"intercept":0}`,
			expectError: "has no feature columns",
		},
		{
			name:        "shape mismatch",
			content:     `{"model_name":"test_v1","feature_cols":["a","b"],"coefficients":[1.5],"intercept":0}`,
			expectError: "2 feature columns but 1 coefficients",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			predictor, err := LoadModel(writeArtifact(t, tc.content))

			if tc.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectError)
				assert.Nil(t, predictor)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "test_v1", predictor.Name())
		})
	}
}

func TestLoadModelMissingFile(t *testing.T) {
	predictor, err := LoadModel(filepath.Join(t.TempDir(), "does-not-exist.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read model artifact")
	assert.Nil(t, predictor)
}

func TestLoadModelShippedArtifact(t *testing.T) {
	predictor, err := LoadModel(filepath.Join("..", "..", "..", "models", "walkin_ridge_prod.json"))

	require.NoError(t, err)
	assert.Equal(t, "ridge_v1", predictor.Name())
}

func TestPredict(t *testing.T) {
	predictor, err := LoadModel(writeArtifact(t,
		`{"model_name":"test_v1","feature_cols":["a","b"],"coefficients":[2,3],"intercept":1}`))
	require.NoError(t, err)

	day := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		values   map[string]float64
		expected float64
	}{
		{
			name:     "plain linear combination",
			values:   map[string]float64{"a": 1, "b": 2},
			expected: 9, // 2*1 + 3*2 + 1
		},
		{
			name:     "rounds to the nearest guest",
			values:   map[string]float64{"a": 0.1, "b": 0},
			expected: 1, // 0.2 + 1 = 1.2
		},
		{
			name:     "never predicts negative walk-ins",
			values:   map[string]float64{"a": -10, "b": 0},
			expected: 0,
		},
		{
			name:     "missing columns enter as zero",
			values:   map[string]float64{"a": 3},
			expected: 7, // 2*3 + 0 + 1
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			predictions := predictor.Predict([]*FeatureRow{{Date: day, Values: tc.values}})

			require.Len(t, predictions, 1)
			assert.Equal(t, tc.expected, predictions[0])
		})
	}
}

func TestPredictNoRows(t *testing.T) {
	predictor, err := LoadModel(writeArtifact(t,
		`{"model_name":"test_v1","feature_cols":["a"],"coefficients":[1],"intercept":0}`))
	require.NoError(t, err)

	assert.Nil(t, predictor.Predict(nil))
}
