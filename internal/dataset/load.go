package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Options controls how a delimited file is read.
type Options struct {
	// Delimiter for the file. If 0, it is sniffed from the extension
	// (tab for .tsv, comma otherwise).
	Delimiter rune
}

// Load reads a CSV/TSV file into a Table. The first record is the header.
// Failure modes: ErrNotFound for a missing path, ErrEmpty for a file with no
// header, and *ParseError for malformed records.
func Load(path string, opt Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	r := csv.NewReader(f)
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
		}
		return nil, &ParseError{Row: 1, Err: err}
	}
	ncol := len(header)
	if ncol == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}

	t := &Table{Name: filepath.Base(path), Columns: make([]Column, ncol)}
	for i, h := range header {
		t.Columns[i].Name = strings.TrimSpace(h)
	}

	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &ParseError{Row: len(t.Rows) + 2, Err: err}
		}
		// Normalize short rows to header width.
		if len(rec) < ncol {
			tmp := make([]string, ncol)
			copy(tmp, rec)
			rec = tmp
		}
		row := make([]string, ncol)
		copy(row, rec)
		t.Rows = append(t.Rows, row)

		for j := 0; j < ncol; j++ {
			v := strings.TrimSpace(row[j])
			switch {
			case v == "":
				t.Columns[j].Empty++
			default:
				if _, ok := parseCell(v); ok {
					t.Columns[j].Numeric++
				} else {
					t.Columns[j].Text++
				}
			}
		}
	}

	for j := range t.Columns {
		t.Columns[j].Kind = inferKind(t.Columns[j])
	}
	return t, nil
}

// inferKind picks the predominant parsed type, the same majority rule the
// analyzer applies per cell stream.
func inferKind(c Column) Kind {
	switch {
	case c.Numeric > 0 && c.Numeric >= c.Text:
		return KindNumeric
	case c.Text > 0:
		return KindText
	default:
		return KindEmpty
	}
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}
