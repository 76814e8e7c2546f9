package ingest

import (
	"strings"

	"github.com/findosh/sheetfolio/internal/models"
)

var accountSchema = Schema{
	{Name: "name", Hints: []string{"name", "account"}},
	{Name: "type", Hints: []string{"type", "kind"}},
	{Name: "brand", Hints: []string{"brand", "bank", "issuer", "institution"}},
	{Name: "balance", Hints: []string{"balance", "value", "amount"}},
}

// AccountParser parses rows of the accounts tab.
type AccountParser struct {
	cols ColumnMap
}

// NewAccountParser resolves the account schema against the block's header.
func NewAccountParser(rows [][]string) *AccountParser {
	return &AccountParser{cols: Resolve(rows, accountSchema)}
}

// HeaderRow exposes the resolved header position for row iteration.
func (p *AccountParser) HeaderRow() int { return p.cols.HeaderRow() }

// Parse converts one data row into an Account, or nil for unusable rows.
func (p *AccountParser) Parse(row []string, rowIdx int) *models.Account {
	name := p.cols.Cell(row, "name")
	balance := ParseAmount(p.cols.Cell(row, "balance"))
	if name == "" && balance.IsZero() {
		return nil
	}

	a := models.NewAccount(name)
	a.Type = p.cols.Cell(row, "type")
	a.Brand = p.cols.Cell(row, "brand")
	a.Balance = balance
	a.Kind = inferKind(a.Type, a.Brand, a.Name)
	a.SourceRow = rowIdx
	return a
}

// inferKind decides credit vs. debit from the combined type/brand/name text;
// sheets rarely carry an explicit transaction-type column.
func inferKind(texts ...string) models.TransactionKind {
	combined := strings.ToLower(strings.Join(texts, " "))
	for _, w := range creditKeywords {
		if strings.Contains(combined, w) {
			return models.KindCredit
		}
	}
	return models.KindDebit
}
