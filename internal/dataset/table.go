package dataset

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Kind is the inferred type of a column, decided by the predominant parsed
// type of its non-empty cells.
type Kind string

const (
	KindNumeric Kind = "numeric"
	KindText    Kind = "text"
	KindEmpty   Kind = "empty"
)

// Column describes one column of a loaded table.
type Column struct {
	Name    string
	Kind    Kind
	Numeric int // cells that parsed as float64
	Text    int // non-empty cells that did not
	Empty   int // cells empty after trimming
}

// Table is an immutable row/column dataset loaded from a delimited file.
// Checks read it; nothing mutates it after Load returns.
type Table struct {
	Name    string
	Columns []Column
	Rows    [][]string
}

// NumRows returns the number of data rows (header excluded).
func (t *Table) NumRows() int { return len(t.Rows) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.Columns) }

// Cell returns the trimmed value at (row, col). Rows are padded to header
// width at load time, so the index is always in range for loaded tables.
func (t *Table) Cell(row, col int) string {
	return strings.TrimSpace(t.Rows[row][col])
}

// NumericMatrix projects the numeric columns into dense float64 rows for
// anomaly scoring. Cells that fail to parse (including empty cells inside an
// otherwise numeric column) are imputed with the column mean so downstream
// standardization stays well-defined. Returns the matrix and the names of the
// projected columns; both are empty when the table has no numeric columns.
func (t *Table) NumericMatrix() ([][]float64, []string) {
	var idx []int
	var names []string
	for i, c := range t.Columns {
		if c.Kind == KindNumeric {
			idx = append(idx, i)
			names = append(names, c.Name)
		}
	}
	if len(idx) == 0 || t.NumRows() == 0 {
		return nil, names
	}

	mat := make([][]float64, t.NumRows())
	for r := range mat {
		mat[r] = make([]float64, len(idx))
	}
	for j, col := range idx {
		var vals []float64
		for r := 0; r < t.NumRows(); r++ {
			if x, ok := parseCell(t.Cell(r, col)); ok {
				mat[r][j] = x
				vals = append(vals, x)
			} else {
				mat[r][j] = math.NaN()
			}
		}
		mean := 0.0
		if len(vals) > 0 {
			mean = stat.Mean(vals, nil)
		}
		for r := 0; r < t.NumRows(); r++ {
			if math.IsNaN(mat[r][j]) {
				mat[r][j] = mean
			}
		}
	}
	return mat, names
}

func parseCell(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
