package analytics

import (
	"sort"

	"github.com/cfdilens/cfdilens/internal/filter"
	"github.com/cfdilens/cfdilens/internal/model"
)

// ExplorerColumns are the columns of the detail view, in display order.
var ExplorerColumns = []string{
	model.ColUUID,
	model.ColFolio,
	model.ColIssuedAt,
	model.ColEntity,
	model.ColAmount,
	model.ColPaymentMethod,
	model.ColStatus,
}

// Explorer is the detail table: present explorer columns, rows by amount descending.
type Explorer struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Total   int        `json:"total"` // rows before the limit
}

// Explore builds the detail view of fs. limit <= 0 keeps every row.
func Explore(fs filter.FilteredSet, limit int) Explorer {
	present := make(map[string]bool, len(fs.Columns))
	for _, c := range fs.Columns {
		present[c] = true
	}
	var cols []string
	for _, c := range ExplorerColumns {
		if present[c] {
			cols = append(cols, c)
		}
	}

	order := make([]int, len(fs.Records))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return fs.Records[order[a]].Amount.GreaterThan(fs.Records[order[b]].Amount)
	})
	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}

	rows := make([][]string, len(order))
	for i, idx := range order {
		rows[i] = fs.Records[idx].Row(cols)
	}
	return Explorer{Columns: cols, Rows: rows, Total: len(fs.Records)}
}
