package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cfdilens/cfdilens/internal/filter"
)

const bom = "\ufeff"

// WriteCSV writes the set's columns as the header, then one canonical row
// per record.
func WriteCSV(w io.Writer, fs filter.FilteredSet, opts Options) error {
	if opts.BOM {
		if _, err := io.WriteString(w, bom); err != nil {
			return fmt.Errorf("writing BOM: %w", err)
		}
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(fs.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range fs.Records {
		if err := cw.Write(r.Row(fs.Columns)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
