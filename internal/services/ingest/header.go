package ingest

import (
	"strings"
)

// headerScanLimit bounds the header search: header rows live near the top,
// and scanning deeper turns data rows into false candidates.
const headerScanLimit = 15

// Field is one logical column of an entity schema: a name and the header
// keywords that hint at it.
type Field struct {
	Name  string
	Hints []string
}

// Schema is the ordered field list for one entity type. Order matters: when
// two fields could claim the same generic header, the earlier field wins and
// the later one must find another column. Keeping the tie-break as list order
// keeps it auditable.
type Schema []Field

// ColumnMap is the result of header resolution: a field→column-index map plus
// the header row's position in the scanned block.
type ColumnMap struct {
	headerRow int
	cols      map[string]int
}

// HeaderRow returns the index of the resolved header row, -1 when the block
// had no usable rows at all.
func (m ColumnMap) HeaderRow() int { return m.headerRow }

// Col returns the column index for a field, -1 when the field is absent.
func (m ColumnMap) Col(field string) int {
	if idx, ok := m.cols[field]; ok {
		return idx
	}
	return -1
}

// Cell returns the row's cell for a field, "" when the field is absent or
// the row is too short. Trailing-cell truncation is normal in exported rows.
func (m ColumnMap) Cell(row []string, field string) string {
	idx := m.Col(field)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// normalizeHeader lower-cases and strips everything but letters and digits,
// so "Avg. Cost ($)" and "avg cost" compare equal.
func normalizeHeader(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Resolve locates the most likely header row in the block and maps every
// schema field onto a column index. Resolution is keyword-driven and
// order-independent: columns may appear in any order under any of the hinted
// wordings. A field with no matching header resolves to -1 and its parser
// falls back to a default instead of failing.
func Resolve(rows [][]string, schema Schema) ColumnMap {
	m := ColumnMap{headerRow: -1, cols: make(map[string]int)}

	headerIdx := findHeaderRow(rows, schema)
	if headerIdx < 0 {
		return m
	}
	m.headerRow = headerIdx

	headers := make([]string, len(rows[headerIdx]))
	for i, h := range rows[headerIdx] {
		headers[i] = normalizeHeader(h)
	}

	// Claim columns in schema order: exact match across all headers first,
	// then first substring match, skipping columns already claimed.
	claimed := make(map[int]bool)
	for _, field := range schema {
		if idx := matchColumn(headers, field.Hints, claimed); idx >= 0 {
			m.cols[field.Name] = idx
			claimed[idx] = true
		}
	}
	return m
}

func matchColumn(headers []string, hints []string, claimed map[int]bool) int {
	for _, hint := range hints {
		want := normalizeHeader(hint)
		for i, h := range headers {
			if !claimed[i] && h != "" && h == want {
				return i
			}
		}
	}
	for _, hint := range hints {
		want := normalizeHeader(hint)
		for i, h := range headers {
			if !claimed[i] && h != "" && strings.Contains(h, want) {
				return i
			}
		}
	}
	return -1
}

// findHeaderRow scans the top of the block for a row that looks like a
// header: at least two non-empty cells (single-cell rows are sheet titles)
// and at least one cell matching a schema keyword, exact match preferred.
// When nothing qualifies the first non-empty row anywhere is the fallback:
// a mislabeled header beats no header for a tolerant parser.
func findHeaderRow(rows [][]string, schema Schema) int {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}

	exact := -1
	partial := -1
	for i := 0; i < limit; i++ {
		if countNonEmpty(rows[i]) < 2 {
			continue
		}
		switch matchStrength(rows[i], schema) {
		case 2:
			if exact < 0 {
				exact = i
			}
		case 1:
			if partial < 0 {
				partial = i
			}
		}
		if exact >= 0 {
			break
		}
	}
	if exact >= 0 {
		return exact
	}
	if partial >= 0 {
		return partial
	}

	for i, row := range rows {
		if countNonEmpty(row) > 0 {
			return i
		}
	}
	return -1
}

// matchStrength reports how well a row matches the schema keywords:
// 2 for an exact token hit, 1 for a substring hit, 0 for none.
func matchStrength(row []string, schema Schema) int {
	strength := 0
	for _, cell := range row {
		h := normalizeHeader(cell)
		if h == "" {
			continue
		}
		for _, field := range schema {
			for _, hint := range field.Hints {
				want := normalizeHeader(hint)
				if h == want {
					return 2
				}
				if strings.Contains(h, want) && strength < 1 {
					strength = 1
				}
			}
		}
	}
	return strength
}

func countNonEmpty(row []string) int {
	n := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			n++
		}
	}
	return n
}

// isBlankRow reports whether every cell is empty after trimming.
func isBlankRow(row []string) bool {
	return countNonEmpty(row) == 0
}
