package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/cfdilens/cfdilens/internal/model"
)

// XLSXReader reads the first sheet of an Excel workbook.
type XLSXReader struct{}

// Format returns the reader name.
func (x *XLSXReader) Format() string { return "xlsx" }

// Read parses the first sheet. Cells come back with their display formatting,
// so date cells must use one of the accepted timestamp layouts.
func (x *XLSXReader) Read(r io.Reader) (model.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return model.Table{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return model.Table{}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return model.Table{}, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}

	// Blank rows carry no issued-at and would be dropped anyway.
	var records [][]string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		records = append(records, row)
	}
	return tableFromRecords(records)
}
