// Package anomaly implements the standardization and isolation-forest
// ensemble used by the outlier check. All randomness is driven by an
// explicit seed so a run is reproducible.
package anomaly

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrNoFeatures indicates the input matrix has zero feature columns, e.g. a
// table with no numeric columns.
var ErrNoFeatures = errors.New("no numeric features to score")

// Scaler standardizes each feature column to zero mean and unit variance.
// Fit learns the parameters from one matrix; Transform applies them.
type Scaler struct {
	Mean []float64
	Std  []float64
}

// Fit computes per-column mean and standard deviation. Columns with zero or
// undefined variance get Std = 1 so Transform maps them to zero instead of
// NaN.
func (s *Scaler) Fit(x [][]float64) error {
	if len(x) == 0 {
		return errors.New("fit scaler: no rows")
	}
	ncol := len(x[0])
	if ncol == 0 {
		return fmt.Errorf("fit scaler: %w", ErrNoFeatures)
	}
	s.Mean = make([]float64, ncol)
	s.Std = make([]float64, ncol)
	col := make([]float64, len(x))
	for j := 0; j < ncol; j++ {
		for i := range x {
			col[i] = x[i][j]
		}
		mean, std := stat.MeanStdDev(col, nil)
		if math.IsNaN(std) || std == 0 {
			std = 1
		}
		s.Mean[j] = mean
		s.Std[j] = std
	}
	return nil
}

// Transform returns a standardized copy of x using the fitted parameters.
func (s *Scaler) Transform(x [][]float64) [][]float64 {
	out := make([][]float64, len(x))
	for i, row := range x {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = (v - s.Mean[j]) / s.Std[j]
		}
	}
	return out
}

// FitTransform fits the scaler on x and returns the standardized copy.
func (s *Scaler) FitTransform(x [][]float64) ([][]float64, error) {
	if err := s.Fit(x); err != nil {
		return nil, err
	}
	return s.Transform(x), nil
}
