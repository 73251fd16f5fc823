package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/cfdilens/cfdilens/internal/analytics"
	"github.com/cfdilens/cfdilens/internal/filter"
)

func newReportCommand(g *globalFlags) *cobra.Command {
	var ff filterFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the analytics report for the selected invoices",
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
			rep := analytics.Build(fs, analytics.Options{
				TopSmall:     s.cfg.Report.TopSmall,
				TopLarge:     s.cfg.Report.TopLarge,
				ExplorerRows: s.cfg.Report.ExplorerRows,
			})
			s.log.Debug().
				Str("range", c.Range.String()).
				Int("entities", len(c.Entities)).
				Int("rows", fs.Len()).
				Msg("report built")

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}
			return renderReport(cmd.OutOrStdout(), rep)
		},
	}

	ff.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}
