package ingest

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cfdilens/cfdilens/internal/model"
)

// naTokens are the cell values read as missing, the common dataframe NA markers.
var naTokens = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

// IsMissing reports whether a raw cell counts as absent.
func IsMissing(cell string) bool {
	return naTokens[strings.TrimSpace(cell)]
}

// timestampLayouts are tried in order. Fractional seconds are accepted after
// the seconds field even when the layout omits them.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"1/2/06 15:04",
	"1/2/2006",
}

// ParseTimestamp parses an issued-at cell. Values without a zone are UTC.
func ParseTimestamp(cell string) (time.Time, bool) {
	if IsMissing(cell) {
		return time.Time{}, false
	}
	s := strings.TrimSpace(cell)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseAmount parses a monetary cell. Anything non-numeric becomes zero.
func ParseAmount(cell string) (decimal.Decimal, bool) {
	if IsMissing(cell) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.TrimSpace(cell))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// textOr returns the trimmed cell, or def when the cell is missing.
func textOr(cell, def string) (string, bool) {
	if IsMissing(cell) {
		return def, false
	}
	return strings.TrimSpace(cell), true
}

// Coercion converts one canonical column into its Record field.
type Coercion struct {
	Column string
	// Apply sets the field from cell. It returns false when the cell was
	// missing or unparseable and the default was substituted.
	Apply func(rec *model.Record, cell string) bool
}

// Coercions is the per-column coercion table. Entries touch disjoint fields,
// so their order does not matter.
var Coercions = []Coercion{
	{Column: model.ColAmount, Apply: func(rec *model.Record, cell string) bool {
		var ok bool
		rec.Amount, ok = ParseAmount(cell)
		return ok
	}},
	{Column: model.ColIssuedAt, Apply: func(rec *model.Record, cell string) bool {
		var ok bool
		rec.IssuedAt, ok = ParseTimestamp(cell)
		return ok
	}},
	{Column: model.ColEntity, Apply: func(rec *model.Record, cell string) bool {
		var ok bool
		rec.Entity, ok = textOr(cell, model.DefaultEntity)
		return ok
	}},
	{Column: model.ColType, Apply: func(rec *model.Record, cell string) bool {
		s, ok := textOr(cell, string(model.DefaultType))
		rec.Type = model.DocumentType(strings.ToUpper(s))
		return ok
	}},
	{Column: model.ColStatus, Apply: func(rec *model.Record, cell string) bool {
		var ok bool
		rec.Status, ok = textOr(cell, model.DefaultStatus)
		return ok
	}},
	{Column: model.ColPaymentMethod, Apply: func(rec *model.Record, cell string) bool {
		var ok bool
		rec.PaymentMethod, ok = textOr(cell, model.DefaultPaymentMethod)
		return ok
	}},
}

// RequiredColumns lists the columns the coercion table reads.
func RequiredColumns() []string {
	cols := make([]string, len(Coercions))
	for i, c := range Coercions {
		cols[i] = c.Column
	}
	return cols
}
