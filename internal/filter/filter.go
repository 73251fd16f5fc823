package filter

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/cfdilens/cfdilens/internal/model"
)

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range from one or two dates. A single date collapses
// both bounds onto it.
func NewDateRange(dates ...time.Time) (DateRange, error) {
	switch len(dates) {
	case 1:
		d := model.DayOf(dates[0])
		return DateRange{Start: d, End: d}, nil
	case 2:
		return DateRange{Start: model.DayOf(dates[0]), End: model.DayOf(dates[1])}, nil
	default:
		return DateRange{}, fmt.Errorf("date range needs 1 or 2 dates, got %d", len(dates))
	}
}

// Contains reports whether the calendar date of t lies within the range.
func (r DateRange) Contains(t time.Time) bool {
	d := model.DayOf(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

func (r DateRange) String() string {
	return r.Start.Format("2006-01-02") + " to " + r.End.Format("2006-01-02")
}

// Criteria are the user predicates, combined with AND.
type Criteria struct {
	Range DateRange
	// Entities is an allow-list of entity names. Empty means every entity.
	Entities []string
	// Statuses is an allow-list of statuses. Nil means every status; a
	// non-nil empty list lets nothing through.
	Statuses []string
}

// ErrEmptyDataset is returned when default criteria are requested for a
// dataset without rows, which has no date bounds to seed the range.
var ErrEmptyDataset = errors.New("dataset has no rows")

// DefaultCriteria spans the dataset's full date bounds with no narrowing.
func DefaultCriteria(ds *model.Dataset) (Criteria, error) {
	if !ds.Bounds.Valid {
		return Criteria{}, ErrEmptyDataset
	}
	r, err := NewDateRange(ds.Bounds.Min, ds.Bounds.Max)
	if err != nil {
		return Criteria{}, err
	}
	return Criteria{Range: r}, nil
}

// FilteredSet is the record view produced by Apply. It owns its records.
type FilteredSet struct {
	Columns  []string
	Records  []model.Record
	Criteria Criteria
}

// Len returns the number of records.
func (fs FilteredSet) Len() int { return len(fs.Records) }

// Empty reports whether the filters matched nothing.
func (fs FilteredSet) Empty() bool { return len(fs.Records) == 0 }

// Apply projects the dataset through c. The dataset is not modified.
func Apply(ds *model.Dataset, c Criteria) FilteredSet {
	entities := toSet(c.Entities)
	var statuses map[string]bool
	if c.Statuses != nil {
		statuses = toSet(c.Statuses)
	}

	var out []model.Record
	for _, r := range ds.Records {
		if !c.Range.Contains(r.IssuedAt) {
			continue
		}
		if statuses != nil && !statuses[r.Status] {
			continue
		}
		if len(entities) > 0 && !entities[r.Entity] {
			continue
		}
		out = append(out, r.Clone())
	}

	cols := make([]string, len(ds.Columns))
	copy(cols, ds.Columns)
	return FilteredSet{Columns: cols, Records: out, Criteria: c}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// Choices lists the values a caller can pick filters from.
type Choices struct {
	Bounds   model.DateBounds
	Entities []string // sorted
	Statuses []string // first-seen order
}

// Options returns the filter choices offered for ds.
func Options(ds *model.Dataset) Choices {
	seenEntity := make(map[string]bool)
	seenStatus := make(map[string]bool)
	var ch Choices
	for _, r := range ds.Records {
		if !seenEntity[r.Entity] {
			seenEntity[r.Entity] = true
			ch.Entities = append(ch.Entities, r.Entity)
		}
		if !seenStatus[r.Status] {
			seenStatus[r.Status] = true
			ch.Statuses = append(ch.Statuses, r.Status)
		}
	}
	sort.Strings(ch.Entities)
	ch.Bounds = ds.Bounds
	return ch
}
