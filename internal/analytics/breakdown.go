package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cfdilens/cfdilens/internal/model"
)

// TypeTotal is the composition of the set by document type.
type TypeTotal struct {
	Type    model.DocumentType `json:"type"`
	Label   string             `json:"label"`
	Count   int                `json:"count"`
	Total   decimal.Decimal    `json:"total"`
	Percent decimal.Decimal    `json:"percent"`
}

// ByType sums amounts per document type, largest first.
func ByType(records []model.Record) []TypeTotal {
	index := make(map[model.DocumentType]int)
	var out []TypeTotal
	total := decimal.Zero
	for _, r := range records {
		i, ok := index[r.Type]
		if !ok {
			i = len(out)
			index[r.Type] = i
			out = append(out, TypeTotal{Type: r.Type, Label: r.Type.Label()})
		}
		out[i].Count++
		out[i].Total = out[i].Total.Add(r.Amount)
		total = total.Add(r.Amount)
	}
	if !total.IsZero() {
		hundred := decimal.NewFromInt(100)
		for i := range out {
			out[i].Percent = out[i].Total.Mul(hundred).Div(total)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		if c := out[a].Total.Cmp(out[b].Total); c != 0 {
			return c > 0
		}
		return out[a].Type < out[b].Type
	})
	return out
}

// StatusNode is one status under a payment method.
type StatusNode struct {
	Status string          `json:"status"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// PaymentNode is one payment method with its status breakdown.
type PaymentNode struct {
	Method   string          `json:"method"`
	Count    int             `json:"count"`
	Total    decimal.Decimal `json:"total"`
	Statuses []StatusNode    `json:"statuses"`
}

// Hierarchy nests amounts as payment method -> status, largest first at each level.
func Hierarchy(records []model.Record) []PaymentNode {
	methods := make(map[string]int)
	statuses := make(map[string]map[string]int)
	var out []PaymentNode
	for _, r := range records {
		m, ok := methods[r.PaymentMethod]
		if !ok {
			m = len(out)
			methods[r.PaymentMethod] = m
			statuses[r.PaymentMethod] = make(map[string]int)
			out = append(out, PaymentNode{Method: r.PaymentMethod})
		}
		node := &out[m]
		node.Count++
		node.Total = node.Total.Add(r.Amount)

		s, ok := statuses[r.PaymentMethod][r.Status]
		if !ok {
			s = len(node.Statuses)
			statuses[r.PaymentMethod][r.Status] = s
			node.Statuses = append(node.Statuses, StatusNode{Status: r.Status})
		}
		node.Statuses[s].Count++
		node.Statuses[s].Total = node.Statuses[s].Total.Add(r.Amount)
	}

	for i := range out {
		st := out[i].Statuses
		sort.SliceStable(st, func(a, b int) bool { return st[a].Total.GreaterThan(st[b].Total) })
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Total.GreaterThan(out[b].Total) })
	return out
}
