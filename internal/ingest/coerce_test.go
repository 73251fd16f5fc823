package ingest

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfdilens/cfdilens/internal/model"
)

func coercionFor(t *testing.T, column string) Coercion {
	t.Helper()
	for _, c := range Coercions {
		if c.Column == column {
			return c
		}
	}
	t.Fatalf("no coercion for %s", column)
	return Coercion{}
}

func TestIsMissing(t *testing.T) {
	for _, s := range []string{"", "  ", "NaN", "nan", "NA", "N/A", "null", "None", "<NA>", " #N/A "} {
		assert.True(t, IsMissing(s), "%q should be missing", s)
	}
	for _, s := range []string{"0", "Acme", "vigente", "-"} {
		assert.False(t, IsMissing(s), "%q should not be missing", s)
	}
}

func TestCoerceAmount(t *testing.T) {
	c := coercionFor(t, model.ColAmount)
	tests := []struct {
		cell string
		want string
		ok   bool
	}{
		{"1000", "1000", true},
		{" 12.50 ", "12.5", true},
		{"-300.25", "-300.25", true},
		{"1e3", "1000", true},
		{"", "0", false},
		{"NaN", "0", false},
		{"$1,000.00", "0", false},
		{"abc", "0", false},
		{"inf", "0", false},
	}
	for _, tt := range tests {
		var rec model.Record
		ok := c.Apply(&rec, tt.cell)
		assert.Equal(t, tt.ok, ok, "cell %q", tt.cell)
		assert.True(t, rec.Amount.Equal(decimal.RequireFromString(tt.want)), "cell %q: got %s", tt.cell, rec.Amount)
	}
}

func TestCoerceIssuedAt(t *testing.T) {
	c := coercionFor(t, model.ColIssuedAt)
	tests := []struct {
		cell string
		want time.Time
	}{
		{"2024-01-05T10:20:30", time.Date(2024, 1, 5, 10, 20, 30, 0, time.UTC)},
		{"2024-01-05 10:20:30.250", time.Date(2024, 1, 5, 10, 20, 30, 250_000_000, time.UTC)},
		{"2024-01-05", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"2024/01/05", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"01/05/2024", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"2024-01-05T10:20:30Z", time.Date(2024, 1, 5, 10, 20, 30, 0, time.UTC)},
	}
	for _, tt := range tests {
		var rec model.Record
		require.True(t, c.Apply(&rec, tt.cell), "cell %q should parse", tt.cell)
		assert.True(t, tt.want.Equal(rec.IssuedAt), "cell %q: got %s", tt.cell, rec.IssuedAt)
	}

	for _, bad := range []string{"", "NaT", "not a date", "2024-13-45"} {
		var rec model.Record
		assert.False(t, c.Apply(&rec, bad), "cell %q should fail", bad)
		assert.True(t, rec.IssuedAt.IsZero())
	}
}

func TestCoerceIssuedAt_WithOffset(t *testing.T) {
	got, ok := ParseTimestamp("2024-01-05T23:30:00-06:00")
	require.True(t, ok)
	_, offset := got.Zone()
	assert.Equal(t, -6*3600, offset)
	assert.Equal(t, 5, got.Day())
}

func TestCoerceText(t *testing.T) {
	tests := []struct {
		column string
		cell   string
		want   func(model.Record) string
		expect string
		ok     bool
	}{
		{model.ColEntity, "Acme SA", func(r model.Record) string { return r.Entity }, "Acme SA", true},
		{model.ColEntity, "", func(r model.Record) string { return r.Entity }, "N/A", false},
		{model.ColType, "e", func(r model.Record) string { return string(r.Type) }, "E", true},
		{model.ColType, "", func(r model.Record) string { return string(r.Type) }, "I", false},
		{model.ColType, "p", func(r model.Record) string { return string(r.Type) }, "P", true},
		{model.ColStatus, "cancelado", func(r model.Record) string { return r.Status }, "cancelado", true},
		{model.ColStatus, "NaN", func(r model.Record) string { return r.Status }, "vigente", false},
		{model.ColPaymentMethod, "PPD", func(r model.Record) string { return r.PaymentMethod }, "PPD", true},
		{model.ColPaymentMethod, " ", func(r model.Record) string { return r.PaymentMethod }, "PUE", false},
	}
	for _, tt := range tests {
		c := coercionFor(t, tt.column)
		var rec model.Record
		ok := c.Apply(&rec, tt.cell)
		assert.Equal(t, tt.ok, ok, "%s %q", tt.column, tt.cell)
		assert.Equal(t, tt.expect, tt.want(rec), "%s %q", tt.column, tt.cell)
	}
}

func TestRequiredColumns(t *testing.T) {
	assert.ElementsMatch(t, []string{"total", "fecha_timbrado", "nombre", "tipo", "estatus", "metodo_pago"}, RequiredColumns())
}
