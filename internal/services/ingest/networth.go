package ingest

import (
	"github.com/findosh/sheetfolio/internal/models"
)

var netWorthSchema = Schema{
	{Name: "date", Hints: []string{"date", "month"}},
	{Name: "value", Hints: []string{"net worth", "networth", "value", "total", "amount"}},
}

// NetWorthParser parses rows of the net-worth log tab.
type NetWorthParser struct {
	cols ColumnMap
}

// NewNetWorthParser resolves the net-worth schema against the block's header.
func NewNetWorthParser(rows [][]string) *NetWorthParser {
	return &NetWorthParser{cols: Resolve(rows, netWorthSchema)}
}

// HeaderRow exposes the resolved header position for row iteration.
func (p *NetWorthParser) HeaderRow() int { return p.cols.HeaderRow() }

// Parse converts one data row into a NetWorthEntry, or nil for unusable rows.
// An entry without a parseable date is meaningless as a log point, so a bad
// date voids the row here.
func (p *NetWorthParser) Parse(row []string, rowIdx int) *models.NetWorthEntry {
	iso, ok := ParseDate(p.cols.Cell(row, "date"))
	if !ok {
		return nil
	}
	value := ParseAmount(p.cols.Cell(row, "value"))
	return models.NewNetWorthEntry(iso, value)
}
