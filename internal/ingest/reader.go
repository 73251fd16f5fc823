package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cfdilens/cfdilens/internal/model"
)

// Reader parses a tabular source into a raw table.
type Reader interface {
	Read(r io.Reader) (model.Table, error)
	Format() string
}

// Registry holds readers keyed by format name (the file extension).
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader. Panics on duplicate format.
func (r *Registry) Register(rd Reader) {
	key := strings.ToLower(rd.Format())
	if _, ok := r.readers[key]; ok {
		panic("duplicate reader format: " + key)
	}
	r.readers[key] = rd
}

// Get returns the reader for format, or nil.
func (r *Registry) Get(format string) Reader {
	return r.readers[strings.ToLower(format)]
}

// ForPath returns the reader matching the extension of path, or nil.
func (r *Registry) ForPath(path string) Reader {
	return r.Get(strings.TrimPrefix(filepath.Ext(path), "."))
}

// DefaultRegistry returns a registry with the CSV and XLSX readers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVReader{})
	r.Register(&XLSXReader{})
	return r
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVReader reads comma-separated files with a header row.
type CSVReader struct{}

// Format returns the reader name.
func (c *CSVReader) Format() string { return "csv" }

// Read parses CSV content. Short rows are padded with empty cells; rows wider
// than the header are rejected.
func (c *CSVReader) Read(r io.Reader) (model.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.Table{}, fmt.Errorf("reading CSV: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return model.Table{}, fmt.Errorf("reading CSV: %w", err)
	}
	return tableFromRecords(records)
}

// tableFromRecords splits header from data rows and squares the rows off.
func tableFromRecords(records [][]string) (model.Table, error) {
	if len(records) == 0 {
		return model.Table{}, nil
	}
	header := records[0]
	rows := make([][]string, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) > len(header) {
			return model.Table{}, &RowError{
				Row: i + 2,
				Err: fmt.Errorf("expected %d fields, got %d", len(header), len(rec)),
			}
		}
		if len(rec) < len(header) {
			padded := make([]string, len(header))
			copy(padded, rec)
			rec = padded
		}
		rows = append(rows, rec)
	}
	return model.Table{Header: header, Rows: rows}, nil
}
