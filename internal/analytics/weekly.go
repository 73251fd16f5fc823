package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cfdilens/cfdilens/internal/model"
)

// WeekTotal is the summed amount of one calendar week.
type WeekTotal struct {
	WeekEnding time.Time       `json:"week_ending"` // the Sunday closing the week
	Count      int             `json:"count"`
	Total      decimal.Decimal `json:"total"`
}

// WeekEnding returns the Sunday on or after the calendar date of t. Weeks run
// Monday through Sunday and are labeled by their Sunday.
func WeekEnding(t time.Time) time.Time {
	d := model.DayOf(t)
	return d.AddDate(0, 0, (7-int(d.Weekday()))%7)
}

// Weekly sums amounts per week in time order. Only weeks with records appear.
func Weekly(records []model.Record) []WeekTotal {
	index := make(map[time.Time]int)
	var weeks []WeekTotal
	for _, r := range records {
		end := WeekEnding(r.IssuedAt)
		i, ok := index[end]
		if !ok {
			i = len(weeks)
			index[end] = i
			weeks = append(weeks, WeekTotal{WeekEnding: end})
		}
		weeks[i].Count++
		weeks[i].Total = weeks[i].Total.Add(r.Amount)
	}
	sort.Slice(weeks, func(a, b int) bool { return weeks[a].WeekEnding.Before(weeks[b].WeekEnding) })
	return weeks
}

// FillWeeks inserts zero weeks between the first and last entry of a sorted
// weekly series.
func FillWeeks(weeks []WeekTotal) []WeekTotal {
	if len(weeks) == 0 {
		return nil
	}
	out := make([]WeekTotal, 0, len(weeks))
	for i, w := range weeks {
		if i > 0 {
			for gap := weeks[i-1].WeekEnding.AddDate(0, 0, 7); gap.Before(w.WeekEnding); gap = gap.AddDate(0, 0, 7) {
				out = append(out, WeekTotal{WeekEnding: gap})
			}
		}
		out = append(out, w)
	}
	return out
}
