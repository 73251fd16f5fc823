package analytics

import (
	"github.com/cfdilens/cfdilens/internal/filter"
)

// Options sizes the ranked and tabular sections of a report.
type Options struct {
	TopSmall     int
	TopLarge     int
	ExplorerRows int
}

// DefaultOptions matches the dashboard: top 5 and top 10 entities.
func DefaultOptions() Options {
	return Options{TopSmall: 5, TopLarge: 10, ExplorerRows: 20}
}

// Report gathers every aggregate of one filtered set.
type Report struct {
	From       string         `json:"from"`
	To         string         `json:"to"`
	NoData     bool           `json:"no_data"` // the filters matched nothing
	Summary    Summary        `json:"summary"`
	Spread     Spread         `json:"spread"`
	Thresholds Thresholds     `json:"quintile_thresholds"`
	Quintiles  [5]Bucket      `json:"quintiles"`
	Weekly     []WeekTotal    `json:"weekly"`
	TopSmall   []EntityTotal  `json:"top_small"`
	TopLarge   []EntityTotal  `json:"top_large"`
	Types      []TypeTotal    `json:"types"`
	Hierarchy  []PaymentNode  `json:"hierarchy"`
	Duplicates DuplicateAudit `json:"duplicates"`
	Explorer   Explorer       `json:"explorer"`
}

// Build computes the report for fs.
func Build(fs filter.FilteredSet, opts Options) Report {
	recs := fs.Records
	return Report{
		From:       fs.Criteria.Range.Start.Format("2006-01-02"),
		To:         fs.Criteria.Range.End.Format("2006-01-02"),
		NoData:     fs.Empty(),
		Summary:    Summarize(recs),
		Spread:     Dispersion(recs),
		Thresholds: QuintileThresholds(recs),
		Quintiles:  Quintiles(recs).Buckets,
		Weekly:     Weekly(recs),
		TopSmall:   TopEntities(recs, opts.TopSmall),
		TopLarge:   TopEntities(recs, opts.TopLarge),
		Types:      ByType(recs),
		Hierarchy:  Hierarchy(recs),
		Duplicates: Duplicates(recs),
		Explorer:   Explore(fs, opts.ExplorerRows),
	}
}
