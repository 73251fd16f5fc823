package ingest

import (
	"github.com/cfdilens/cfdilens/internal/model"
)

// Normalize turns a raw table into a Dataset: header normalized, every
// required column coerced, rows without an issued-at dropped.
func Normalize(tbl model.Table) (*model.Dataset, error) {
	header, err := NormalizeHeader(tbl.Header)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[h] = i
	}
	for _, c := range RequiredColumns() {
		if _, ok := index[c]; !ok {
			return nil, &MissingColumnError{Column: c}
		}
	}

	canonical := map[string]bool{model.ColUUID: true, model.ColFolio: true}
	for _, c := range Coercions {
		canonical[c.Column] = true
	}
	var extras []int
	for i, h := range header {
		if !canonical[h] {
			extras = append(extras, i)
		}
	}

	stats := model.NormalizeStats{
		RowsRead:  len(tbl.Rows),
		Defaulted: make(map[string]int),
	}
	records := make([]model.Record, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		var rec model.Record
		if i, ok := index[model.ColUUID]; ok {
			rec.UUID = cell(row, i)
		}
		if i, ok := index[model.ColFolio]; ok {
			rec.Folio = cell(row, i)
		}
		dated := true
		for _, c := range Coercions {
			if c.Apply(&rec, cell(row, index[c.Column])) {
				continue
			}
			if c.Column == model.ColIssuedAt {
				dated = false
				continue
			}
			stats.Defaulted[c.Column]++
		}
		if !dated {
			stats.RowsDropped++
			continue
		}
		if len(extras) > 0 {
			rec.Extra = make(map[string]string, len(extras))
			for _, i := range extras {
				rec.Extra[header[i]] = cell(row, i)
			}
		}
		records = append(records, rec)
	}

	return &model.Dataset{
		Columns: header,
		Records: records,
		Bounds:  model.ComputeBounds(records),
		Stats:   stats,
	}, nil
}

// cell returns row[i], treating cells past the end of a short row as empty.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
