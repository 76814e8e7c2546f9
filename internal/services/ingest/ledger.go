package ingest

import (
	"strings"

	"github.com/findosh/sheetfolio/internal/models"
	"github.com/shopspring/decimal"
)

// findMonthHeader locates the budget grid's header row: among the first
// headerScanLimit rows, the row whose best 12-column window contains the most
// month-name-prefixed cells. Returns the row index, the window's first column
// and the 12 period labels. ok is false when no row has at least two
// month-like cells, which is below any plausible grid.
func findMonthHeader(rows [][]string) (rowIdx, colStart int, months [models.MonthsPerYear]string, ok bool) {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}

	bestCount := 0
	bestRow, bestCol := -1, -1
	for i := 0; i < limit; i++ {
		row := rows[i]
		for start := 0; start < len(row); start++ {
			count := 0
			for j := start; j < start+models.MonthsPerYear && j < len(row); j++ {
				if monthIndex(row[j]) > 0 {
					count++
				}
			}
			if count > bestCount {
				bestCount = count
				bestRow, bestCol = i, start
			}
		}
	}
	if bestCount < 2 {
		return -1, -1, months, false
	}

	for j := 0; j < models.MonthsPerYear; j++ {
		if bestCol+j < len(rows[bestRow]) {
			months[j] = strings.TrimSpace(rows[bestRow][bestCol+j])
		}
	}
	return bestRow, bestCol, months, true
}

// monthlyValues reads the 12 figures of a row's month window.
func monthlyValues(row []string, colStart int) (vals [models.MonthsPerYear]decimal.Decimal, anyNonZero bool) {
	for j := 0; j < models.MonthsPerYear; j++ {
		idx := colStart + j
		if idx >= len(row) {
			break
		}
		v := ParseAmount(row[idx])
		vals[j] = v
		if !v.IsZero() {
			anyNonZero = true
		}
	}
	return vals, anyNonZero
}

// rowLabel returns the first non-empty cell before the month window, which is
// where grid labels live regardless of indentation columns.
func rowLabel(row []string, colStart int) string {
	end := colStart
	if end > len(row) {
		end = len(row)
	}
	for i := 0; i < end; i++ {
		if s := strings.TrimSpace(row[i]); s != "" {
			return s
		}
	}
	return ""
}

// isReservedLabel reports whether a label is a summary line, not data.
func isReservedLabel(label string) bool {
	l := strings.ToLower(strings.TrimSpace(label))
	for _, r := range reservedLabels {
		if l == r || strings.HasPrefix(l, r+" ") || strings.HasPrefix(l, r+":") {
			return true
		}
	}
	return false
}

// isDeniedName reports whether an untrusted label may not become a map key.
func isDeniedName(label string) bool {
	return deniedNames[strings.ToLower(strings.TrimSpace(label))]
}

// ParseBudget reconstructs the two-level category → line-item tree from a
// monthly budget grid. After the month header, a non-reserved row with no
// non-zero monthly figure opens a category; rows with figures are items
// attached to the current category. A blank row or the next category header
// closes the run. Items appearing before any header land in a synthetic
// "Uncategorized" category rather than vanishing.
func ParseBudget(rows [][]string) *models.Budget {
	budget := &models.Budget{}

	headerRow, colStart, months, ok := findMonthHeader(rows)
	if !ok {
		return budget
	}
	budget.Months = months

	var current *models.LedgerCategory
	closeCurrent := func() {
		if current != nil {
			current.SumItems()
			budget.Categories = append(budget.Categories, *current)
			current = nil
		}
	}

	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			closeCurrent()
			continue
		}

		label := rowLabel(row, colStart)
		if label == "" || isReservedLabel(label) || isDeniedName(label) {
			continue
		}

		vals, anyNonZero := monthlyValues(row, colStart)
		if !anyNonZero {
			closeCurrent()
			current = &models.LedgerCategory{Name: label}
			continue
		}

		if current == nil {
			current = &models.LedgerCategory{Name: "Uncategorized"}
		}
		item := models.LedgerItem{Name: label, Monthly: vals}
		item.SumMonthly()
		current.Items = append(current.Items, item)
	}
	closeCurrent()
	return budget
}

// ParseIncomeSources extracts the flat income list that shares the grid's
// shape: the same month header, but every qualifying row is an item under a
// single synthetic "Income Sources" category. Parsing stops at the first
// blank row once at least one item exists, or at an explicit total/expense
// section marker.
func ParseIncomeSources(rows [][]string) *models.Budget {
	budget := &models.Budget{}

	headerRow, colStart, months, ok := findMonthHeader(rows)
	if !ok {
		return budget
	}
	budget.Months = months

	category := models.LedgerCategory{Name: "Income Sources"}
	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			if len(category.Items) > 0 {
				break
			}
			continue
		}

		label := rowLabel(row, colStart)
		if label == "" || isDeniedName(label) {
			continue
		}
		if isReservedLabel(label) || strings.Contains(strings.ToLower(label), "expense") {
			break
		}

		vals, _ := monthlyValues(row, colStart)
		item := models.LedgerItem{Name: label, Monthly: vals}
		item.SumMonthly()
		category.Items = append(category.Items, item)
	}
	category.SumItems()
	budget.Categories = []models.LedgerCategory{category}
	return budget
}
