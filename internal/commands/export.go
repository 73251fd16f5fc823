package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cfdilens/cfdilens/internal/export"
	"github.com/cfdilens/cfdilens/internal/filter"
)

func newExportCommand(g *globalFlags) *cobra.Command {
	var ff filterFlags
	var format string
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the selected invoices to CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.open(cmd)
			if err != nil {
				return err
			}
			ds, err := s.load()
			if err != nil {
				return err
			}
			c, err := ff.criteria(cmd, ds)
			if err != nil {
				return err
			}
			fs := filter.Apply(ds, c)

			if format == "" {
				format = s.cfg.Export.Format
			}
			opts := export.Options{BOM: s.cfg.Export.BOM}

			if out == "-" {
				return export.Write(cmd.OutOrStdout(), format, fs, opts)
			}
			if out == "" {
				out = filepath.Join(s.root, s.cfg.Export.Dir, export.FileName(time.Now(), format))
			}
			if err := writeExport(out, format, fs, opts); err != nil {
				return err
			}

			s.log.Info().Str("path", out).Str("format", format).Int("rows", fs.Len()).Msg("export written")
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", fs.Len(), out)
			return nil
		},
	}

	ff.register(cmd)
	cmd.Flags().StringVar(&format, "format", "", "csv or xlsx (default: from config)")
	cmd.Flags().StringVar(&out, "out", "", "output file, - for stdout (default: Reporte_YYYYMMDD.<ext> under the export dir)")

	return cmd
}

func writeExport(path, format string, fs filter.FilteredSet, opts export.Options) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := export.Write(f, format, fs, opts); err != nil {
		os.Remove(path)
		return fmt.Errorf("exporting: %w", err)
	}
	return nil
}
