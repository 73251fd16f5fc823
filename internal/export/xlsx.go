package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/cfdilens/cfdilens/internal/filter"
	"github.com/cfdilens/cfdilens/internal/model"
)

// WriteXLSX writes the set to a single-sheet workbook. Amounts are stored as
// numbers when float64 holds them exactly, otherwise as their canonical text;
// every other cell keeps its canonical text.
func WriteXLSX(w io.Writer, fs filter.FilteredSet) error {
	f := excelize.NewFile()
	defer f.Close()

	// A new workbook starts with "Sheet1".
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for i, h := range fs.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, r := range fs.Records {
		row := i + 2
		for j, c := range fs.Columns {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return err
			}
			var v any = r.Cell(c)
			if c == model.ColAmount {
				v = amountValue(r.Amount)
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", row, err)
			}
		}
	}

	if len(fs.Columns) > 0 {
		last, err := excelize.ColumnNumberToName(len(fs.Columns))
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, "A", last, 18); err != nil {
			return fmt.Errorf("sizing columns: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

func amountValue(d decimal.Decimal) any {
	f := d.InexactFloat64()
	if decimal.NewFromFloat(f).Equal(d) {
		return f
	}
	return d.String()
}
