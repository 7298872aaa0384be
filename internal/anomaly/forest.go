package anomaly

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ForestConfig configures an IsolationForest. Zero values take the defaults
// below.
type ForestConfig struct {
	// Trees is the ensemble size.
	Trees int
	// Subsample is the per-tree sample size; capped at the row count.
	Subsample int
	// Contamination is the assumed fraction of anomalous rows, used to place
	// the score threshold.
	Contamination float64
	// Seed drives all randomness (subsampling and split choices).
	Seed int64
}

const (
	DefaultTrees         = 100
	DefaultSubsample     = 256
	DefaultContamination = 0.01
	DefaultSeed          = 42
)

func (c ForestConfig) withDefaults() ForestConfig {
	if c.Trees <= 0 {
		c.Trees = DefaultTrees
	}
	if c.Subsample <= 0 {
		c.Subsample = DefaultSubsample
	}
	if c.Contamination <= 0 {
		c.Contamination = DefaultContamination
	}
	return c
}

// IsolationForest isolates rows by random axis-aligned splits; rows isolated
// in few splits score close to 1 and are anomalous. Fit builds the ensemble
// and places the decision threshold at the (1 - contamination) quantile of
// the training scores.
type IsolationForest struct {
	cfg       ForestConfig
	trees     []*treeNode
	subsample int
	threshold float64
}

type treeNode struct {
	left, right *treeNode
	feature     int
	split       float64
	size        int
}

// NewIsolationForest returns an unfitted forest for cfg.
func NewIsolationForest(cfg ForestConfig) *IsolationForest {
	return &IsolationForest{cfg: cfg.withDefaults()}
}

// Fit builds the ensemble from x and calibrates the anomaly threshold.
func (f *IsolationForest) Fit(x [][]float64) error {
	if len(x) == 0 {
		return errors.New("fit forest: no rows")
	}
	if len(x[0]) == 0 {
		return fmt.Errorf("fit forest: %w", ErrNoFeatures)
	}
	if f.cfg.Contamination > 0.5 {
		return fmt.Errorf("fit forest: contamination %g out of range (0, 0.5]", f.cfg.Contamination)
	}

	n := len(x)
	f.subsample = f.cfg.Subsample
	if f.subsample > n {
		f.subsample = n
	}
	maxDepth := int(math.Ceil(math.Log2(float64(f.subsample)))) + 1

	rng := rand.New(rand.NewSource(f.cfg.Seed))
	f.trees = make([]*treeNode, f.cfg.Trees)
	for i := range f.trees {
		sample := make([][]float64, f.subsample)
		for j, idx := range rng.Perm(n)[:f.subsample] {
			sample[j] = x[idx]
		}
		f.trees[i] = buildTree(sample, 0, maxDepth, rng)
	}

	scores := f.Score(x)
	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)
	f.threshold = stat.Quantile(1-f.cfg.Contamination, stat.Empirical, sorted, nil)
	return nil
}

// Score returns the anomaly score in (0, 1) for every row of x. The forest
// must be fitted.
func (f *IsolationForest) Score(x [][]float64) []float64 {
	cn := avgPathLength(f.subsample)
	scores := make([]float64, len(x))
	for i, row := range x {
		var sum float64
		for _, t := range f.trees {
			sum += pathLength(t, row, 0)
		}
		mean := sum / float64(len(f.trees))
		scores[i] = math.Exp2(-mean / cn)
	}
	return scores
}

// Predict reports, for every row of x, whether its score exceeds the
// threshold calibrated during Fit.
func (f *IsolationForest) Predict(x [][]float64) []bool {
	scores := f.Score(x)
	out := make([]bool, len(scores))
	for i, s := range scores {
		out[i] = s > f.threshold
	}
	return out
}

func buildTree(rows [][]float64, depth, maxDepth int, rng *rand.Rand) *treeNode {
	if len(rows) <= 1 || depth >= maxDepth {
		return &treeNode{feature: -1, size: len(rows)}
	}
	// Pick a feature with spread; give up after trying all of them.
	ncol := len(rows[0])
	feat := -1
	var lo, hi float64
	for _, j := range rng.Perm(ncol) {
		lo, hi = rows[0][j], rows[0][j]
		for _, r := range rows {
			if r[j] < lo {
				lo = r[j]
			}
			if r[j] > hi {
				hi = r[j]
			}
		}
		if hi > lo {
			feat = j
			break
		}
	}
	if feat < 0 {
		// All remaining rows identical across features.
		return &treeNode{feature: -1, size: len(rows)}
	}

	split := lo + rng.Float64()*(hi-lo)
	var left, right [][]float64
	for _, r := range rows {
		if r[feat] < split {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}
	return &treeNode{
		feature: feat,
		split:   split,
		size:    len(rows),
		left:    buildTree(left, depth+1, maxDepth, rng),
		right:   buildTree(right, depth+1, maxDepth, rng),
	}
}

func pathLength(t *treeNode, row []float64, depth int) float64 {
	if t.feature < 0 {
		return float64(depth) + avgPathLength(t.size)
	}
	if row[t.feature] < t.split {
		return pathLength(t.left, row, depth+1)
	}
	return pathLength(t.right, row, depth+1)
}

// avgPathLength is c(n), the expected path length of an unsuccessful BST
// search over n points; it normalizes depths across subsample sizes.
func avgPathLength(n int) float64 {
	switch {
	case n <= 1:
		return 0
	case n == 2:
		return 1
	default:
		h := math.Log(float64(n-1)) + 0.5772156649015329
		return 2*h - 2*float64(n-1)/float64(n)
	}
}
