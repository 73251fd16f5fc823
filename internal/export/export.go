// Package export serializes a filtered record set to CSV or XLSX.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cfdilens/cfdilens/internal/filter"
)

// Supported formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// SheetName is the worksheet holding exported rows.
const SheetName = "Reporte"

// Options tune the output.
type Options struct {
	BOM bool // prefix CSV output with a UTF-8 byte order mark
}

// FileName returns the download name for an export made at now.
func FileName(now time.Time, format string) string {
	return "Reporte_" + now.Format("20060102") + "." + strings.ToLower(format)
}

// Write serializes fs in format.
func Write(w io.Writer, format string, fs filter.FilteredSet, opts Options) error {
	switch strings.ToLower(format) {
	case FormatCSV:
		return WriteCSV(w, fs, opts)
	case FormatXLSX:
		return WriteXLSX(w, fs)
	default:
		return fmt.Errorf("unsupported export format %q (want csv or xlsx)", format)
	}
}
