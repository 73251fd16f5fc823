package ingest

import (
	"fmt"
	"io/fs"
)

// SourceNotFoundError reports that the dataset file does not exist.
// Without a primary dataset nothing can be rendered, so callers treat it as fatal.
type SourceNotFoundError struct {
	Path string // resolved absolute path
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source dataset not found at %s", e.Path)
}

// Unwrap lets errors.Is(err, fs.ErrNotExist) match.
func (e *SourceNotFoundError) Unwrap() error { return fs.ErrNotExist }

// MissingColumnError reports a required column absent from the header.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found", e.Column)
}

// DuplicateColumnError reports two header cells that normalize to the same name.
type DuplicateColumnError struct {
	Column string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("column %q appears more than once", e.Column)
}

// RowError wraps a structural problem with one source row (1-based, header is row 1).
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
