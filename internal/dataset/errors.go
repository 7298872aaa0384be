package dataset

import (
	"errors"
	"fmt"
)

// Load failures are fatal for a run: no check can execute without a table.
var (
	// ErrNotFound indicates the dataset file does not exist.
	ErrNotFound = errors.New("dataset not found")
	// ErrEmpty indicates the file exists but contains no data.
	ErrEmpty = errors.New("no data found in dataset")
)

// ParseError reports a malformed record with its 1-based row number
// (the header counts as row 1).
type ParseError struct {
	Row int
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse dataset row %d: %v", e.Row, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
