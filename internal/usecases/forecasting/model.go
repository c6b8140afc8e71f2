package forecasting

import (
	"math"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/nbohlen/walkin-forecast-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ModelArtifact is the trained ridge regression exported by the training
// side: one coefficient per feature column, in column order.
type ModelArtifact struct {
	ModelName    string    `json:"model_name"`
	FeatureCols  []string  `json:"feature_cols"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// Predictor scores feature rows with a loaded model artifact.
type Predictor interface {
	Name() string
	Predict(rows []*FeatureRow) []float64
}

type linearPredictor struct {
	artifact *ModelArtifact
	weights  *mat.VecDense
}

// LoadModel reads a model artifact from disk and validates its shape.
func LoadModel(path string) (Predictor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read model artifact %s", path)
	}

	artifact := &ModelArtifact{}
	if err := json.Unmarshal(raw, artifact); err != nil {
		return nil, errors.Wrapf(err, "failed to parse model artifact %s", path)
	}

	if len(artifact.FeatureCols) == 0 {
		return nil, errors.Errorf("model artifact %s has no feature columns", path)
	}
	if len(artifact.FeatureCols) != len(artifact.Coefficients) {
		return nil, errors.Errorf(
			"model artifact %s is inconsistent: %d feature columns but %d coefficients",
			path, len(artifact.FeatureCols), len(artifact.Coefficients),
		)
	}

	return &linearPredictor{
		artifact: artifact,
		weights:  mat.NewVecDense(len(artifact.Coefficients), artifact.Coefficients),
	}, nil
}

func (p *linearPredictor) Name() string {
	return p.artifact.ModelName
}

// Predict computes X*w + intercept per row, then rounds and clamps at zero.
// Feature columns the pipeline did not produce enter as zero; that keeps an
// older artifact usable after a pipeline change, at reduced accuracy.
func (p *linearPredictor) Predict(rows []*FeatureRow) []float64 {
	if len(rows) == 0 {
		return nil
	}

	cols := p.artifact.FeatureCols
	matrix := mat.NewDense(len(rows), len(cols), nil)

	missing := make(map[string]struct{})
	for i, row := range rows {
		for j, col := range cols {
			value, ok := row.Get(col)
			if !ok {
				missing[col] = struct{}{}
			}
			matrix.Set(i, j, value)
		}
	}

	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for col := range missing {
			names = append(names, col)
		}
		log.L.WithField("columns", names).
			Warn("Model expects feature columns the pipeline did not produce, filled with 0")
	}

	result := mat.NewVecDense(len(rows), nil)
	result.MulVec(matrix, p.weights)

	predictions := make([]float64, len(rows))
	for i := range predictions {
		predictions[i] = math.Max(0, math.Round(result.AtVec(i)+p.artifact.Intercept))
	}

	return predictions
}
