package ingest

import "strings"

// NormalizeColumn canonicalizes a header cell: BOM stripped, trimmed, lowercased.
// Applying it twice gives the same result as applying it once.
func NormalizeColumn(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeHeader normalizes every column name and rejects collisions.
func NormalizeHeader(header []string) ([]string, error) {
	out := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		n := NormalizeColumn(h)
		if seen[n] {
			return nil, &DuplicateColumnError{Column: n}
		}
		seen[n] = true
		out[i] = n
	}
	return out, nil
}
