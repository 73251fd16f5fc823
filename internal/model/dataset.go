package model

import "time"

// Table is a parsed tabular source: a header and rows of raw cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// DateBounds holds the earliest and latest issued-at calendar dates of a
// dataset, each taken in the location of its own timestamp.
type DateBounds struct {
	Min   time.Time
	Max   time.Time
	Valid bool // false when the dataset has no rows
}

// NormalizeStats counts the recoveries made while normalizing a table.
type NormalizeStats struct {
	RowsRead    int
	RowsDropped int            // rows without a parseable issued-at
	Defaulted   map[string]int // column -> cells replaced by the default
}

// Dataset is the normalized, immutable record set of one source snapshot.
// Callers must not modify Records.
type Dataset struct {
	Source      string
	Fingerprint string
	Columns     []string
	Records     []Record
	Bounds      DateBounds
	Stats       NormalizeStats
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.Records) }

// Table renders the dataset back into canonical cells.
func (d *Dataset) Table() Table {
	rows := make([][]string, len(d.Records))
	for i, r := range d.Records {
		rows[i] = r.Row(d.Columns)
	}
	header := make([]string, len(d.Columns))
	copy(header, d.Columns)
	return Table{Header: header, Rows: rows}
}

// ComputeBounds returns the first and last calendar dates of records. Dates
// are compared the way filters compare them, so a range spanning the bounds
// contains every record even when timestamps carry different offsets.
func ComputeBounds(records []Record) DateBounds {
	if len(records) == 0 {
		return DateBounds{}
	}
	first := records[0].Day()
	b := DateBounds{Min: first, Max: first, Valid: true}
	for _, r := range records[1:] {
		d := r.Day()
		if d.Before(b.Min) {
			b.Min = d
		}
		if d.After(b.Max) {
			b.Max = d
		}
	}
	return b
}
