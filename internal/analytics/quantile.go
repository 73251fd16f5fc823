package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cfdilens/cfdilens/internal/model"
)

// Percentile returns the p-th quantile (0 <= p <= 1) of values using linear
// interpolation between closest ranks. values need not be sorted.
func Percentile(values []decimal.Decimal, p float64) decimal.NullDecimal {
	if len(values) == 0 {
		return decimal.NullDecimal{}
	}
	sorted := make([]decimal.Decimal, len(values))
	copy(sorted, values)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })
	return decimal.NewNullDecimal(percentileSorted(sorted, p))
}

func percentileSorted(sorted []decimal.Decimal, p float64) decimal.Decimal {
	pos := decimal.NewFromFloat(p).Mul(decimal.NewFromInt(int64(len(sorted) - 1)))
	lo := pos.Floor()
	i := int(lo.IntPart())
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos.Sub(lo)
	return sorted[i].Add(sorted[i+1].Sub(sorted[i]).Mul(frac))
}

// Thresholds are the 20/40/60/80th percentiles of amounts.
type Thresholds [4]decimal.NullDecimal

// QuintileThresholds computes the display thresholds between quintiles.
func QuintileThresholds(records []model.Record) Thresholds {
	var t Thresholds
	values := amounts(records)
	for i, p := range []float64{0.2, 0.4, 0.6, 0.8} {
		t[i] = Percentile(values, p)
	}
	return t
}

// Bucket is one quintile of the record set.
type Bucket struct {
	Label   string          `json:"label"`
	Count   int             `json:"count"`
	Sum     decimal.Decimal `json:"sum"`
	Percent decimal.Decimal `json:"percent"` // share of the total sum, 0-100
}

// QuintileSplit is the equal-frequency partition of a record set.
type QuintileSplit struct {
	Buckets [5]Bucket `json:"buckets"`
	// Assignment[i] is the bucket index (0-4) of records[i].
	Assignment []int `json:"-"`
}

// Quintiles ranks records by amount (ties keep input order) and assigns rank i
// of n to bucket floor(i*5/n), so bucket sizes differ by at most one.
func Quintiles(records []model.Record) QuintileSplit {
	var q QuintileSplit
	for i := range q.Buckets {
		q.Buckets[i] = Bucket{Label: "Q" + string(rune('1'+i))}
	}

	n := len(records)
	ranked := make([]int, n)
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return records[ranked[a]].Amount.LessThan(records[ranked[b]].Amount)
	})

	q.Assignment = make([]int, n)
	total := decimal.Zero
	for rank, idx := range ranked {
		b := rank * 5 / n
		q.Assignment[idx] = b
		q.Buckets[b].Count++
		q.Buckets[b].Sum = q.Buckets[b].Sum.Add(records[idx].Amount)
		total = total.Add(records[idx].Amount)
	}

	if !total.IsZero() {
		hundred := decimal.NewFromInt(100)
		for i := range q.Buckets {
			q.Buckets[i].Percent = q.Buckets[i].Sum.Mul(hundred).Div(total)
		}
	}
	return q
}

func amounts(records []model.Record) []decimal.Decimal {
	out := make([]decimal.Decimal, len(records))
	for i, r := range records {
		out[i] = r.Amount
	}
	return out
}
