package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cfdilens/cfdilens/internal/model"
)

// DuplicateGroup is a set of records sharing entity, amount and calendar date.
type DuplicateGroup struct {
	Entity  string          `json:"entity"`
	Amount  decimal.Decimal `json:"amount"`
	Date    time.Time       `json:"date"`
	Indexes []int           `json:"indexes"` // positions in the input slice
}

// DuplicateAudit flags every member of each duplicate group, not only the
// repeats after the first.
type DuplicateAudit struct {
	Flags  []bool           `json:"-"`
	Count  int              `json:"count"`
	Groups []DuplicateGroup `json:"groups"`
}

type duplicateKey struct {
	entity string
	amount string
	day    time.Time
}

// Duplicates finds records whose (entity, amount, issued date) appears more than once.
func Duplicates(records []model.Record) DuplicateAudit {
	audit := DuplicateAudit{Flags: make([]bool, len(records))}

	index := make(map[duplicateKey]int)
	var groups []DuplicateGroup
	for i, r := range records {
		// String drops trailing zeros, so 100 and 100.00 share a key.
		k := duplicateKey{entity: r.Entity, amount: r.Amount.String(), day: r.Day()}
		g, ok := index[k]
		if !ok {
			g = len(groups)
			index[k] = g
			groups = append(groups, DuplicateGroup{Entity: r.Entity, Amount: r.Amount, Date: r.Day()})
		}
		groups[g].Indexes = append(groups[g].Indexes, i)
	}

	for _, g := range groups {
		if len(g.Indexes) < 2 {
			continue
		}
		for _, i := range g.Indexes {
			audit.Flags[i] = true
		}
		audit.Count += len(g.Indexes)
		audit.Groups = append(audit.Groups, g)
	}
	return audit
}
