package ingest

import (
	"sort"
	"strings"

	"github.com/findosh/sheetfolio/internal/models"
	"github.com/shopspring/decimal"
)

// dateProbeWidth is how many leading cells are probed when deciding whether a
// row is a date header row.
const dateProbeWidth = 6

// dateRow is a row whose cells anchor columns to calendar dates.
type dateRow struct {
	index int
	dates map[int]string // column -> ISO date
}

// findDateRows scans the whole block (cashflow sheets repeat date headers per
// section) for rows where at least two of the first six cells parse as dates.
func findDateRows(rows [][]string) []dateRow {
	var out []dateRow
	for i, row := range rows {
		dates := make(map[int]string)
		probe := len(row)
		if probe > dateProbeWidth {
			probe = dateProbeWidth
		}
		hits := 0
		for c := 0; c < probe; c++ {
			if iso, ok := ParseDate(row[c]); ok {
				hits++
				dates[c] = iso
			}
		}
		if hits < 2 {
			continue
		}
		// The probe found a date header; resolve the rest of the row too.
		for c := probe; c < len(row); c++ {
			if iso, ok := ParseDate(row[c]); ok {
				dates[c] = iso
			}
		}
		out = append(out, dateRow{index: i, dates: dates})
	}
	return out
}

// anchorFor returns the most recent date row preceding a value row, nil when
// none exists. Nearest-preceding anchoring tolerates sheets with several
// interleaved date sections.
func anchorFor(dateRows []dateRow, valueRow int) *dateRow {
	var anchor *dateRow
	for i := range dateRows {
		if dateRows[i].index < valueRow {
			anchor = &dateRows[i]
		} else {
			break
		}
	}
	return anchor
}

// incomePriority ranks an income-row candidate: 2 for a "total" label, 1 for
// any other income label, 0 for a non-candidate.
func incomePriority(label string) int {
	l := strings.ToLower(label)
	if !strings.Contains(l, "income") || strings.Contains(l, "net") {
		return 0
	}
	if strings.Contains(l, "total") {
		return 2
	}
	return 1
}

// ExtractCashflow pulls the flat income and expense time series out of a
// transaction-summary sheet: date header rows anchor the columns, one income
// row supplies the income series, and every other labeled row with non-zero
// figures contributes a per-category expense breakdown. Best effort on
// unusually shaped sheets; a sheet with no anchors yields an empty result.
func ExtractCashflow(rows [][]string) *models.Cashflow {
	cf := &models.Cashflow{}

	dateRows := findDateRows(rows)
	if len(dateRows) == 0 {
		return cf
	}
	isDateRow := make(map[int]bool, len(dateRows))
	for _, dr := range dateRows {
		isDateRow[dr.index] = true
	}

	incomeIdx := -1
	incomeRank := 0
	for i, row := range rows {
		if isDateRow[i] || len(row) == 0 {
			continue
		}
		if rank := incomePriority(strings.TrimSpace(row[0])); rank > incomeRank {
			incomeIdx = i
			incomeRank = rank
		}
	}

	if incomeIdx >= 0 {
		if anchor := anchorFor(dateRows, incomeIdx); anchor != nil {
			row := rows[incomeIdx]
			for c := 1; c < len(row); c++ {
				date, ok := anchor.dates[c]
				if !ok || strings.TrimSpace(row[c]) == "" {
					continue
				}
				cf.Income = append(cf.Income, models.IncomeEntry{
					Date:   date,
					Amount: ParseAmount(row[c]),
				})
			}
		}
	}

	byDate := make(map[string]*models.ExpenseEntry)
	for i, row := range rows {
		if isDateRow[i] || i == incomeIdx || len(row) == 0 {
			continue
		}
		label := strings.TrimSpace(row[0])
		if label == "" || isReservedLabel(label) || isDeniedName(label) ||
			incomePriority(label) > 0 {
			continue
		}
		anchor := anchorFor(dateRows, i)
		if anchor == nil {
			continue
		}

		hasValue := false
		for c := 1; c < len(row); c++ {
			if _, ok := anchor.dates[c]; ok && !ParseAmount(row[c]).IsZero() {
				hasValue = true
				break
			}
		}
		if !hasValue {
			continue
		}

		for c := 1; c < len(row); c++ {
			date, ok := anchor.dates[c]
			if !ok || strings.TrimSpace(row[c]) == "" {
				continue
			}
			v := ParseAmount(row[c])
			entry := byDate[date]
			if entry == nil {
				entry = &models.ExpenseEntry{Date: date, Categories: make(map[string]decimal.Decimal)}
				byDate[date] = entry
			}
			entry.Categories[label] = entry.Categories[label].Add(v)
			entry.Total = entry.Total.Add(v)
		}
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	for _, d := range dates {
		cf.Expenses = append(cf.Expenses, *byDate[d])
	}
	return cf
}
