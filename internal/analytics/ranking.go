package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cfdilens/cfdilens/internal/model"
)

// EntityTotal is the summed amount of one counter-party.
type EntityTotal struct {
	Entity string          `json:"entity"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// TopEntities groups by entity and returns the n largest totals, descending.
// Equal totals are ordered by entity name. n <= 0 returns every group.
func TopEntities(records []model.Record, n int) []EntityTotal {
	index := make(map[string]int)
	var groups []EntityTotal
	for _, r := range records {
		i, ok := index[r.Entity]
		if !ok {
			i = len(groups)
			index[r.Entity] = i
			groups = append(groups, EntityTotal{Entity: r.Entity})
		}
		groups[i].Count++
		groups[i].Total = groups[i].Total.Add(r.Amount)
	}

	sort.Slice(groups, func(a, b int) bool {
		if c := groups[a].Total.Cmp(groups[b].Total); c != 0 {
			return c > 0
		}
		return groups[a].Entity < groups[b].Entity
	})
	if n > 0 && len(groups) > n {
		groups = groups[:n]
	}
	return groups
}

// Ascending returns a reversed copy of groups, for charts that draw the
// largest bar last.
func Ascending(groups []EntityTotal) []EntityTotal {
	out := make([]EntityTotal, len(groups))
	for i, g := range groups {
		out[len(groups)-1-i] = g
	}
	return out
}
