package models

import (
	"github.com/shopspring/decimal"
)

// MonthsPerYear is the width of the ledger grid: one figure per reporting month.
const MonthsPerYear = 12

// LedgerItem is a single budget line: a label plus its 12 monthly figures.
type LedgerItem struct {
	Name    string                         `json:"name"`
	Monthly [MonthsPerYear]decimal.Decimal `json:"monthly"`
	Total   decimal.Decimal                `json:"total"`
}

// SumMonthly recomputes Total from the monthly figures.
func (i *LedgerItem) SumMonthly() {
	total := decimal.Zero
	for _, v := range i.Monthly {
		total = total.Add(v)
	}
	i.Total = total
}

// LedgerCategory groups an ordered run of ledger items under one heading.
// Invariant: Total equals the sum of the items' totals.
type LedgerCategory struct {
	Name  string          `json:"name"`
	Items []LedgerItem    `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// SumItems recomputes Total from the attached items.
func (c *LedgerCategory) SumItems() {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Total)
	}
	c.Total = total
}

// Budget is a parsed monthly ledger grid: the 12 period labels from the
// header row and the category tree beneath it.
type Budget struct {
	Months     [MonthsPerYear]string `json:"months"`
	Categories []LedgerCategory      `json:"categories"`
}

// Total returns the grand total across all categories.
func (b *Budget) Total() decimal.Decimal {
	total := decimal.Zero
	for _, c := range b.Categories {
		total = total.Add(c.Total)
	}
	return total
}

// IncomeEntry is a date-stamped income scalar.
type IncomeEntry struct {
	Date   string          `json:"date"` // ISO date
	Amount decimal.Decimal `json:"amount"`
}

// ExpenseEntry is a date-stamped expense total with a per-category breakdown.
// Invariant: Total equals the sum of the breakdown values.
type ExpenseEntry struct {
	Date       string                     `json:"date"` // ISO date
	Total      decimal.Decimal            `json:"total"`
	Categories map[string]decimal.Decimal `json:"categories"`
}

// Cashflow pairs the income and expense time series extracted from one sheet.
type Cashflow struct {
	Income   []IncomeEntry  `json:"income"`
	Expenses []ExpenseEntry `json:"expenses"`
}
