package checks

import (
	"fmt"

	"github.com/KaramelBytes/tabcheck-cli/internal/anomaly"
	"github.com/KaramelBytes/tabcheck-cli/internal/dataset"
)

// CheckOutliers is the name of the outlier diagnostic.
const CheckOutliers = "outliers"

// Outliers standardizes the table's numeric columns and scores every row
// with an isolation forest. A table without numeric columns is a check
// failure (anomaly.ErrNoFeatures), not a crash; the run continues.
func Outliers(t *dataset.Table, cfg anomaly.ForestConfig) Result {
	mat, cols := t.NumericMatrix()
	if len(cols) == 0 {
		return errResult(CheckOutliers, fmt.Errorf("outlier detection: %w", anomaly.ErrNoFeatures))
	}
	if len(mat) == 0 {
		return okResult(CheckOutliers, "No outliers detected")
	}

	var scaler anomaly.Scaler
	scaled, err := scaler.FitTransform(mat)
	if err != nil {
		return errResult(CheckOutliers, fmt.Errorf("standardize features: %w", err))
	}

	forest := anomaly.NewIsolationForest(cfg)
	if err := forest.Fit(scaled); err != nil {
		return errResult(CheckOutliers, fmt.Errorf("fit isolation forest: %w", err))
	}
	flagged := 0
	for _, anomalous := range forest.Predict(scaled) {
		if anomalous {
			flagged++
		}
	}

	if flagged == 0 {
		return okResult(CheckOutliers, "No outliers detected")
	}
	res := warnResult(CheckOutliers, fmt.Sprintf("Outliers detected: %d", flagged), flagged)
	res.Details = append(res.Details, fmt.Sprintf("scored columns: %d (%v)", len(cols), cols))
	return res
}
