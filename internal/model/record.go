package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Canonical column names, after header normalization.
const (
	ColUUID          = "uuid"
	ColFolio         = "folio"
	ColIssuedAt      = "fecha_timbrado"
	ColEntity        = "nombre"
	ColAmount        = "total"
	ColType          = "tipo"
	ColStatus        = "estatus"
	ColPaymentMethod = "metodo_pago"
)

// Defaults substituted for missing cells.
const (
	DefaultEntity        = "N/A"
	DefaultType          = TypeIncome
	DefaultStatus        = "vigente"
	DefaultPaymentMethod = "PUE"
)

// DocumentType is the CFDI voucher type. Values outside the known set are kept as-is.
type DocumentType string

const (
	TypeIncome   DocumentType = "I"
	TypeExpense  DocumentType = "E"
	TypeTransfer DocumentType = "T"
)

// Label returns the display name used by the type composition view.
func (t DocumentType) Label() string {
	switch t {
	case TypeIncome:
		return "Ingresos (I)"
	case TypeExpense:
		return "Egresos (E)"
	case TypeTransfer:
		return "Traslados (T)"
	default:
		return string(t)
	}
}

// Record is one fiscal document of the dataset.
type Record struct {
	UUID          string
	Folio         string
	IssuedAt      time.Time
	Entity        string
	Amount        decimal.Decimal
	Type          DocumentType
	Status        string
	PaymentMethod string
	Extra         map[string]string // columns outside the canonical set, raw
}

// Day returns the calendar date of IssuedAt at midnight UTC.
func (r Record) Day() time.Time {
	return DayOf(r.IssuedAt)
}

// Cell returns the canonical text rendering of column.
func (r Record) Cell(column string) string {
	switch column {
	case ColUUID:
		return r.UUID
	case ColFolio:
		return r.Folio
	case ColIssuedAt:
		return FormatTimestamp(r.IssuedAt)
	case ColEntity:
		return r.Entity
	case ColAmount:
		return r.Amount.String()
	case ColType:
		return string(r.Type)
	case ColStatus:
		return r.Status
	case ColPaymentMethod:
		return r.PaymentMethod
	default:
		return r.Extra[column]
	}
}

// Row renders the record as one cell per column.
func (r Record) Row(columns []string) []string {
	row := make([]string, len(columns))
	for i, c := range columns {
		row[i] = r.Cell(c)
	}
	return row
}

// Clone returns a copy that shares no maps with r.
func (r Record) Clone() Record {
	if r.Extra != nil {
		extra := make(map[string]string, len(r.Extra))
		for k, v := range r.Extra {
			extra[k] = v
		}
		r.Extra = extra
	}
	return r
}

// DayOf truncates t to its calendar date, keeping the date as seen in t's location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatTimestamp renders t so that it parses back to the same instant.
func FormatTimestamp(t time.Time) string {
	if t.Location() == time.UTC {
		return t.Format("2006-01-02 15:04:05.999999999")
	}
	return t.Format(time.RFC3339Nano)
}
