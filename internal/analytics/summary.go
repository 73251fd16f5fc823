package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/cfdilens/cfdilens/internal/model"
)

// Summary holds the volume figures of a record set.
type Summary struct {
	Count   int             `json:"count"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
	Mean    decimal.Decimal `json:"mean"` // zero when Count is zero
}

// Summarize sums income (type I) and expense (type E) and averages every amount.
func Summarize(records []model.Record) Summary {
	s := Summary{Count: len(records)}
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
		switch r.Type {
		case model.TypeIncome:
			s.Income = s.Income.Add(r.Amount)
		case model.TypeExpense:
			s.Expense = s.Expense.Add(r.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expense)
	if s.Count > 0 {
		s.Mean = total.Div(decimal.NewFromInt(int64(s.Count)))
	}
	return s
}

// Spread holds dispersion statistics. Max, Min and Range need at least one
// record; Std is the sample standard deviation and needs at least two.
type Spread struct {
	Max   decimal.NullDecimal `json:"max"`
	Min   decimal.NullDecimal `json:"min"`
	Range decimal.NullDecimal `json:"range"`
	Std   decimal.NullDecimal `json:"std"`
}

// Dispersion computes the spread of amounts.
func Dispersion(records []model.Record) Spread {
	var s Spread
	if len(records) == 0 {
		return s
	}

	lo, hi := records[0].Amount, records[0].Amount
	total := decimal.Zero
	for _, r := range records {
		lo = decimal.Min(lo, r.Amount)
		hi = decimal.Max(hi, r.Amount)
		total = total.Add(r.Amount)
	}
	s.Max = decimal.NewNullDecimal(hi)
	s.Min = decimal.NewNullDecimal(lo)
	s.Range = decimal.NewNullDecimal(hi.Sub(lo))

	n := len(records)
	if n < 2 {
		return s
	}
	mean := total.Div(decimal.NewFromInt(int64(n)))
	sq := decimal.Zero
	for _, r := range records {
		d := r.Amount.Sub(mean)
		sq = sq.Add(d.Mul(d))
	}
	variance := sq.Div(decimal.NewFromInt(int64(n - 1)))
	s.Std = decimal.NewNullDecimal(sqrt(variance))
	return s
}

const sqrtPlaces = 24

// sqrt is Newton's method in decimal space, so amounts too large for float64
// still have a spread. d must not be negative.
func sqrt(d decimal.Decimal) decimal.Decimal {
	if d.Sign() <= 0 {
		return decimal.Zero
	}
	// Start at 10^(k/2) where d has k integer digits.
	digits := int(d.NumDigits()) + int(d.Exponent())
	x := decimal.New(1, int32(digits/2))
	two := decimal.NewFromInt(2)
	for range 200 {
		next := x.Add(d.DivRound(x, sqrtPlaces)).DivRound(two, sqrtPlaces)
		if next.Equal(x) {
			break
		}
		x = next
	}
	return x.Round(sqrtPlaces / 2)
}
