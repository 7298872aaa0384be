package checks

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/tabcheck-cli/internal/dataset"
)

// CheckDuplicates is the name of the duplicate-row diagnostic.
const CheckDuplicates = "duplicates"

// Duplicates counts rows whose values all equal an earlier row's. The first
// occurrence is not counted, so a row appearing k times contributes k-1.
func Duplicates(t *dataset.Table) Result {
	seen := make(map[string]struct{}, t.NumRows())
	dups := 0
	for r := 0; r < t.NumRows(); r++ {
		key := rowKey(t, r)
		if _, ok := seen[key]; ok {
			dups++
			continue
		}
		seen[key] = struct{}{}
	}

	if dups == 0 {
		return okResult(CheckDuplicates, "No duplicate records detected")
	}
	res := warnResult(CheckDuplicates, "Warning: Duplicate records detected", dups)
	res.Details = append(res.Details, fmt.Sprintf("Number of duplicates: %d", dups))
	return res
}

func rowKey(t *dataset.Table, row int) string {
	var b strings.Builder
	for c := 0; c < t.NumCols(); c++ {
		if c > 0 {
			// Unit separator keeps "a,b"+"c" distinct from "a"+"b,c".
			b.WriteByte(0x1f)
		}
		b.WriteString(t.Cell(row, c))
	}
	return b.String()
}
