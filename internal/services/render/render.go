// Package render writes plain-text reports for parsed and reconciled data.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/findosh/sheetfolio/internal/models"
	"github.com/shopspring/decimal"
)

// FormatMoney renders a decimal amount in a currency's display convention
// ("$1,234.56", "1.234,56 €"). Unknown codes fall back to a bare USD-style
// format via go-money's default currency handling.
func FormatMoney(d decimal.Decimal, code string) string {
	cur := money.New(0, code).Currency()
	// Round to the currency's minor unit first; Shift+IntPart alone would
	// truncate sub-cent amounts.
	minor := d.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// Holdings renders the reconciled holdings table. Synthetic holdings are
// flagged: they have no price yet and their zero market value is not a loss.
func Holdings(holdings []models.Holding, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %14s %14s %16s %s\n", "TICKER", "QUANTITY", "AVG COST", "MARKET VALUE", "NOTES")
	for _, h := range holdings {
		notes := h.AccountName
		if h.Synthetic {
			notes = "synthetic (awaiting price)"
		}
		fmt.Fprintf(&b, "%-10s %14s %14s %16s %s\n",
			h.Ticker,
			h.Quantity.String(),
			FormatMoney(h.AvgCost, currency),
			FormatMoney(h.MarketValue, currency),
			notes,
		)
	}
	fmt.Fprintf(&b, "%-10s %14s %14s %16s\n", "TOTAL", "", "",
		FormatMoney(models.TotalMarketValue(holdings), currency))
	return b.String()
}

// Assets renders per-category asset totals.
func Assets(assets []*models.Asset, currency string) string {
	totals := models.AssetTotals(assets)

	var b strings.Builder
	fmt.Fprintf(&b, "%-22s %16s\n", "CATEGORY", "VALUE")
	grand := decimal.Zero
	for _, cat := range models.AllAssetCategories() {
		total, ok := totals[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%-22s %16s\n", cat.DisplayName(), FormatMoney(total, currency))
		grand = grand.Add(total)
	}
	fmt.Fprintf(&b, "%-22s %16s\n", "TOTAL", FormatMoney(grand, currency))
	return b.String()
}

// Budget renders category totals of a parsed ledger grid.
func Budget(budget *models.Budget, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-26s %6s %16s\n", "CATEGORY", "ITEMS", "TOTAL")
	for _, c := range budget.Categories {
		fmt.Fprintf(&b, "%-26s %6d %16s\n", c.Name, len(c.Items), FormatMoney(c.Total, currency))
	}
	fmt.Fprintf(&b, "%-26s %6s %16s\n", "TOTAL", "", FormatMoney(budget.Total(), currency))
	return b.String()
}

// Debts renders the debt summary with rates normalized for display: the
// model preserves the raw "5" vs "0.05" magnitude, the report shows percent.
func Debts(debts []*models.Debt, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-24s %16s %8s %14s\n", "DEBT", "OWED", "RATE", "PAYMENT")
	for _, d := range debts {
		fmt.Fprintf(&b, "%-24s %16s %7s%% %14s\n",
			d.Name,
			FormatMoney(d.Amount, currency),
			d.RatePercent().StringFixed(2),
			FormatMoney(d.MonthlyPayment, currency),
		)
	}
	return b.String()
}

// Cashflow renders the extracted income/expense series in date order.
func Cashflow(cf *models.Cashflow, currency string) string {
	var b strings.Builder

	b.WriteString("INCOME\n")
	for _, e := range cf.Income {
		fmt.Fprintf(&b, "  %s %16s\n", e.Date, FormatMoney(e.Amount, currency))
	}

	b.WriteString("EXPENSES\n")
	for _, e := range cf.Expenses {
		fmt.Fprintf(&b, "  %s %16s\n", e.Date, FormatMoney(e.Total, currency))
		names := make([]string, 0, len(e.Categories))
		for name := range e.Categories {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "    %-22s %14s\n", name, FormatMoney(e.Categories[name], currency))
		}
	}
	return b.String()
}
