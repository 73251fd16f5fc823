package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentTypeLabel(t *testing.T) {
	tests := []struct {
		typ  DocumentType
		want string
	}{
		{TypeIncome, "Ingresos (I)"},
		{TypeExpense, "Egresos (E)"},
		{TypeTransfer, "Traslados (T)"},
		{"P", "P"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.Label(), "Label(%q)", tt.typ)
	}
}

func TestRecordCell(t *testing.T) {
	r := Record{
		UUID:          "abc",
		Folio:         "F-1",
		IssuedAt:      time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC),
		Entity:        "Acme",
		Amount:        decimal.RequireFromString("1250.50"),
		Type:          TypeExpense,
		Status:        "cancelado",
		PaymentMethod: "PPD",
		Extra:         map[string]string{"rfc": "XAXX010101000"},
	}

	cols := []string{ColUUID, ColFolio, ColIssuedAt, ColEntity, ColAmount, ColType, ColStatus, ColPaymentMethod, "rfc", "missing"}
	got := r.Row(cols)
	assert.Equal(t, []string{"abc", "F-1", "2024-01-02 10:30:00", "Acme", "1250.5", "E", "cancelado", "PPD", "XAXX010101000", ""}, got)
}

func TestFormatTimestamp(t *testing.T) {
	utc := time.Date(2024, 3, 4, 5, 6, 7, 500_000_000, time.UTC)
	assert.Equal(t, "2024-03-04 05:06:07.5", FormatTimestamp(utc))

	zone := time.FixedZone("CST", -6*3600)
	local := time.Date(2024, 3, 4, 5, 6, 7, 0, zone)
	s := FormatTimestamp(local)
	assert.Equal(t, "2024-03-04T05:06:07-06:00", s)

	back, err := time.Parse(time.RFC3339Nano, s)
	require.NoError(t, err)
	assert.True(t, back.Equal(local))
}

func TestDayOf_KeepsLocalDate(t *testing.T) {
	zone := time.FixedZone("CST", -6*3600)
	late := time.Date(2024, 1, 31, 23, 0, 0, 0, zone)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), DayOf(late))
}

func TestClone_CopiesExtra(t *testing.T) {
	r := Record{Extra: map[string]string{"a": "1"}}
	c := r.Clone()
	c.Extra["a"] = "2"
	assert.Equal(t, "1", r.Extra["a"])
}

func TestComputeBounds(t *testing.T) {
	assert.False(t, ComputeBounds(nil).Valid)

	recs := []Record{
		{IssuedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{IssuedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{IssuedAt: time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)},
	}
	b := ComputeBounds(recs)
	assert.True(t, b.Valid)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), b.Min)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), b.Max)
}

func TestComputeBounds_MixedOffsets(t *testing.T) {
	plus5 := time.FixedZone("+05", 5*60*60)
	recs := []Record{
		// Earliest instant, but its local calendar date is the 2nd.
		{IssuedAt: time.Date(2024, 1, 2, 1, 0, 0, 0, plus5)},
		{IssuedAt: time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)},
	}
	b := ComputeBounds(recs)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), b.Min)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), b.Max)
}

func TestDatasetTable(t *testing.T) {
	ds := &Dataset{
		Columns: []string{ColEntity, ColAmount},
		Records: []Record{
			{Entity: "Acme", Amount: decimal.NewFromInt(10)},
			{Entity: "Beta", Amount: decimal.NewFromInt(20)},
		},
	}
	tbl := ds.Table()
	assert.Equal(t, []string{"nombre", "total"}, tbl.Header)
	assert.Equal(t, [][]string{{"Acme", "10"}, {"Beta", "20"}}, tbl.Rows)
	assert.Equal(t, 2, ds.Len())
}
