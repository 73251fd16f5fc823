package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cfdilens/cfdilens/internal/filter"
)

type optionsJSON struct {
	From     string   `json:"from,omitempty"`
	To       string   `json:"to,omitempty"`
	Entities []string `json:"entities"`
	Statuses []string `json:"statuses"`
}

func newOptionsCommand(g *globalFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the values available to filter on",
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

			ch := filter.Options(ds)
			out := optionsJSON{Entities: ch.Entities, Statuses: ch.Statuses}
			if ch.Bounds.Valid {
				out.From = ch.Bounds.Min.Format(dateFormat)
				out.To = ch.Bounds.Max.Format(dateFormat)
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			if !ch.Bounds.Valid {
				fmt.Fprintln(w, "Dataset has no rows.")
				return nil
			}
			fmt.Fprintf(w, "Dates: %s to %s\n", out.From, out.To)
			fmt.Fprintf(w, "\nStatuses (%d):\n", len(out.Statuses))
			for _, st := range out.Statuses {
				fmt.Fprintf(w, "  %s\n", st)
			}
			fmt.Fprintf(w, "\nEntities (%d):\n", len(out.Entities))
			for _, e := range out.Entities {
				fmt.Fprintf(w, "  %s\n", e)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}
