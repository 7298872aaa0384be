package checks

import (
	"fmt"

	"github.com/KaramelBytes/tabcheck-cli/internal/dataset"
)

// CheckMissing is the name of the missing-value diagnostic.
const CheckMissing = "missing-values"

// Missing counts cells whose trimmed value is empty or equals one of the
// configured markers. The per-column counts go into Details in column order.
func Missing(t *dataset.Table, markers []string) Result {
	markerSet := make(map[string]struct{}, len(markers))
	for _, m := range markers {
		markerSet[m] = struct{}{}
	}

	perCol := make([]int, t.NumCols())
	total := 0
	for r := 0; r < t.NumRows(); r++ {
		for c := 0; c < t.NumCols(); c++ {
			v := t.Cell(r, c)
			if v == "" {
				perCol[c]++
				total++
				continue
			}
			if _, ok := markerSet[v]; ok {
				perCol[c]++
				total++
			}
		}
	}

	if total == 0 {
		return okResult(CheckMissing, "No missing values detected")
	}
	res := warnResult(CheckMissing, "Warning: Missing values detected", total)
	for c, n := range perCol {
		if n > 0 {
			res.Details = append(res.Details, fmt.Sprintf("%s: %d", t.Columns[c].Name, n))
		}
	}
	return res
}
