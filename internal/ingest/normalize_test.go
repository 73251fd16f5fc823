package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfdilens/cfdilens/internal/model"
)

const sampleCSV = ` UUID ,Folio,Fecha_Timbrado,NOMBRE,Total,tipo,Estatus,Metodo_Pago,RFC
u1,F1,2024-01-01 09:00:00,Acme,1000,i,vigente,PUE,AAA010101AAA
u2,F2,2024-01-02 10:30:00,Beta,300,E,vigente,PPD,BBB010101BBB
u3,F3,not-a-date,Gamma,50,I,vigente,PUE,CCC010101CCC
u4,F4,2024-01-03,,abc,,,,
u5,F5,,Delta,10,I,cancelado,PUE,DDD010101DDD
`

func loadSample(t *testing.T) *model.Dataset {
	t.Helper()
	tbl, err := (&CSVReader{}).Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	ds, err := Normalize(tbl)
	require.NoError(t, err)
	return ds
}

func TestNormalize_Columns(t *testing.T) {
	ds := loadSample(t)
	assert.Equal(t, []string{"uuid", "folio", "fecha_timbrado", "nombre", "total", "tipo", "estatus", "metodo_pago", "rfc"}, ds.Columns)
}

func TestNormalize_DropsUndatedRows(t *testing.T) {
	ds := loadSample(t)
	require.Equal(t, 3, ds.Len())
	assert.Equal(t, 5, ds.Stats.RowsRead)
	assert.Equal(t, 2, ds.Stats.RowsDropped)

	for i, r := range ds.Records {
		assert.False(t, r.IssuedAt.IsZero(), "record %d has no issued-at", i)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	ds := loadSample(t)
	r := ds.Records[2]
	assert.Equal(t, "u4", r.UUID)
	assert.Equal(t, "N/A", r.Entity)
	assert.True(t, r.Amount.IsZero(), "unparseable total becomes zero, row kept")
	assert.Equal(t, model.TypeIncome, r.Type)
	assert.Equal(t, "vigente", r.Status)
	assert.Equal(t, "PUE", r.PaymentMethod)
	assert.Equal(t, "", r.Extra["rfc"])

	assert.Equal(t, 1, ds.Stats.Defaulted["total"])
	assert.Equal(t, 1, ds.Stats.Defaulted["nombre"])
	assert.Equal(t, 1, ds.Stats.Defaulted["tipo"])
	assert.Zero(t, ds.Stats.Defaulted["fecha_timbrado"], "undated rows count as dropped, not defaulted")
}

func TestNormalize_UppercasesType(t *testing.T) {
	ds := loadSample(t)
	assert.Equal(t, model.TypeIncome, ds.Records[0].Type)
	assert.Equal(t, model.TypeExpense, ds.Records[1].Type)
}

func TestNormalize_PassesExtraColumns(t *testing.T) {
	ds := loadSample(t)
	assert.Equal(t, "AAA010101AAA", ds.Records[0].Extra["rfc"])
	assert.Equal(t, "F2", ds.Records[1].Folio)
}

func TestNormalize_Bounds(t *testing.T) {
	ds := loadSample(t)
	require.True(t, ds.Bounds.Valid)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ds.Bounds.Min)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), ds.Bounds.Max)
}

func TestNormalize_AllRowsDropped(t *testing.T) {
	tbl := model.Table{
		Header: []string{"fecha_timbrado", "nombre", "total", "tipo", "estatus", "metodo_pago"},
		Rows:   [][]string{{"bad", "Acme", "1", "I", "vigente", "PUE"}},
	}
	ds, err := Normalize(tbl)
	require.NoError(t, err)
	assert.Zero(t, ds.Len())
	assert.False(t, ds.Bounds.Valid)
}

func TestNormalize_MissingColumn(t *testing.T) {
	tbl := model.Table{Header: []string{"fecha_timbrado", "nombre", "tipo", "estatus", "metodo_pago"}}
	_, err := Normalize(tbl)
	require.Error(t, err)

	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "total", missing.Column)
}

func TestNormalize_OptionalIDColumns(t *testing.T) {
	tbl := model.Table{
		Header: []string{"fecha_timbrado", "nombre", "total", "tipo", "estatus", "metodo_pago"},
		Rows:   [][]string{{"2024-01-01", "Acme", "1", "I", "vigente", "PUE"}},
	}
	ds, err := Normalize(tbl)
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Empty(t, ds.Records[0].UUID)
	assert.Nil(t, ds.Records[0].Extra)
}

func TestNormalize_Idempotent(t *testing.T) {
	first := loadSample(t)
	second, err := Normalize(first.Table())
	require.NoError(t, err)

	assert.Equal(t, first.Columns, second.Columns)
	assert.Equal(t, first.Table(), second.Table())
	assert.Equal(t, first.Bounds, second.Bounds)
	assert.Zero(t, second.Stats.RowsDropped)
	for i := range first.Records {
		assert.True(t, first.Records[i].Amount.Equal(second.Records[i].Amount))
		assert.True(t, first.Records[i].IssuedAt.Equal(second.Records[i].IssuedAt))
	}
}
