package ingest

import (
	"github.com/findosh/sheetfolio/internal/models"
)

var debtSchema = Schema{
	{Name: "name", Hints: []string{"name", "debt", "loan", "description"}},
	{Name: "amount", Hints: []string{"amount", "balance", "owed", "value"}},
	{Name: "rate", Hints: []string{"rate", "interest", "apr"}},
	{Name: "payment", Hints: []string{"payment", "monthly", "minimum"}},
}

// DebtParser parses rows of the debts tab.
type DebtParser struct {
	cols ColumnMap
}

// NewDebtParser resolves the debt schema against the block's header.
func NewDebtParser(rows [][]string) *DebtParser {
	return &DebtParser{cols: Resolve(rows, debtSchema)}
}

// HeaderRow exposes the resolved header position for row iteration.
func (p *DebtParser) HeaderRow() int { return p.cols.HeaderRow() }

// Parse converts one data row into a Debt, or nil for unusable rows.
// Rate keeps the raw sheet magnitude; see models.Debt.RatePercent.
func (p *DebtParser) Parse(row []string, rowIdx int) *models.Debt {
	name := p.cols.Cell(row, "name")
	amount := ParseAmount(p.cols.Cell(row, "amount"))
	if name == "" && amount.IsZero() {
		return nil
	}

	d := models.NewDebt(name)
	d.Amount = amount.Abs()
	d.Rate = ParseAmount(p.cols.Cell(row, "rate"))
	d.MonthlyPayment = ParseAmount(p.cols.Cell(row, "payment")).Abs()
	return d
}
