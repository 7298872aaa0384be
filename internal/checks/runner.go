package checks

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/tabcheck-cli/internal/anomaly"
	"github.com/KaramelBytes/tabcheck-cli/internal/dataset"
)

// Options configures a run over one loaded table.
type Options struct {
	// MissingMarkers are extra cell values treated as missing, in addition
	// to the empty string.
	MissingMarkers []string
	// Forest configures the outlier ensemble.
	Forest anomaly.ForestConfig
}

// RunReport collects the results of one run in execution order.
type RunReport struct {
	ID        string    `yaml:"id"`
	Input     string    `yaml:"input"`
	Rows      int       `yaml:"rows"`
	Columns   int       `yaml:"columns"`
	StartedAt time.Time `yaml:"started_at"`
	Results   []Result  `yaml:"results"`
}

// Warnings reports how many checks ended in WARN or ERROR.
func (r *RunReport) Warnings() int {
	n := 0
	for _, res := range r.Results {
		if res.Status != StatusOK {
			n++
		}
	}
	return n
}

// Run executes the three diagnostics in fixed order: missing values,
// duplicates, outliers. Each check is best-effort; a failure inside one is
// captured as a StatusError result and the next check still runs.
func Run(t *dataset.Table, opt Options) *RunReport {
	rep := &RunReport{
		ID:        uuid.NewString(),
		Input:     t.Name,
		Rows:      t.NumRows(),
		Columns:   t.NumCols(),
		StartedAt: time.Now().UTC(),
	}
	rep.Results = append(rep.Results,
		capture(CheckMissing, func() Result { return Missing(t, opt.MissingMarkers) }),
		capture(CheckDuplicates, func() Result { return Duplicates(t) }),
		capture(CheckOutliers, func() Result { return Outliers(t, opt.Forest) }),
	)
	return rep
}

// capture converts a panicking check into a StatusError result so one
// diagnostic can never take down the rest of the run.
func capture(name string, fn func() Result) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = errResult(name, fmt.Errorf("check panicked: %v", r))
		}
	}()
	return fn()
}
