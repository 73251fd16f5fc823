package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cfdilens/cfdilens/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func rec(typ model.DocumentType, amount string, at time.Time) model.Record {
	return model.Record{
		Entity:        "Acme",
		Amount:        dec(amount),
		Type:          typ,
		IssuedAt:      at,
		Status:        model.DefaultStatus,
		PaymentMethod: model.DefaultPaymentMethod,
	}
}

func withEntity(r model.Record, entity string) model.Record {
	r.Entity = entity
	return r
}

func amountsOf(vals ...int64) []model.Record {
	out := make([]model.Record, len(vals))
	for i, v := range vals {
		out[i] = model.Record{Entity: "E", Amount: decimal.NewFromInt(v), Type: model.TypeIncome, IssuedAt: date(2024, 1, 1)}
	}
	return out
}
