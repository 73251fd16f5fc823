package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cfdilens/cfdilens/internal/filter"
	"github.com/cfdilens/cfdilens/internal/model"
)

const dateFormat = "2006-01-02"

// filterFlags are the selection flags shared by report and export.
type filterFlags struct {
	from     string
	to       string
	entities []string
	statuses []string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "first date, YYYY-MM-DD (default: earliest in dataset)")
	cmd.Flags().StringVar(&f.to, "to", "", "last date, YYYY-MM-DD (default: latest in dataset)")
	cmd.Flags().StringArrayVar(&f.entities, "entity", nil, "keep only this entity (repeatable)")
	cmd.Flags().StringArrayVar(&f.statuses, "status", nil, "keep only this status (repeatable, default: all)")
}

// criteria starts from the dataset's defaults and narrows by the flags given.
func (f *filterFlags) criteria(cmd *cobra.Command, ds *model.Dataset) (filter.Criteria, error) {
	c, err := filter.DefaultCriteria(ds)
	if err != nil && !errors.Is(err, filter.ErrEmptyDataset) {
		return filter.Criteria{}, err
	}

	if f.from != "" {
		d, err := time.Parse(dateFormat, f.from)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("invalid --from: %w", err)
		}
		c.Range.Start = d
	}
	if f.to != "" {
		d, err := time.Parse(dateFormat, f.to)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("invalid --to: %w", err)
		}
		c.Range.End = d
	}
	// A one-sided range on an empty dataset collapses onto the given date.
	if c.Range.Start.IsZero() {
		c.Range.Start = c.Range.End
	}
	if c.Range.End.IsZero() {
		c.Range.End = c.Range.Start
	}

	c.Entities = f.entities
	if cmd.Flags().Changed("status") {
		c.Statuses = append([]string{}, f.statuses...)
	}
	return c, nil
}
