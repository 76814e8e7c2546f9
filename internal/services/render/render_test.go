package render

import (
	"strings"
	"testing"

	"github.com/findosh/sheetfolio/internal/models"
	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount string
		code   string
		want   string
	}{
		{"1234.56", "USD", "$1,234.56"},
		{"-500", "USD", "-$500.00"},
		{"0", "USD", "$0.00"},
		// Sub-cent amounts round rather than truncate.
		{"153.336", "USD", "$153.34"},
		{"153.334", "USD", "$153.33"},
		{"-153.336", "USD", "-$153.34"},
	}

	for _, tt := range tests {
		got := FormatMoney(decimal.RequireFromString(tt.amount), tt.code)
		if got != tt.want {
			t.Errorf("FormatMoney(%s, %s) = %q, want %q", tt.amount, tt.code, got, tt.want)
		}
	}
}

func TestHoldings_FlagsSynthetic(t *testing.T) {
	holdings := []models.Holding{
		{Ticker: "AAPL", Quantity: decimal.NewFromInt(10), MarketValue: decimal.NewFromInt(1755), AccountName: "Brokerage"},
		{Ticker: "ETH", Quantity: decimal.NewFromInt(2), Synthetic: true},
	}

	out := Holdings(holdings, "USD")
	if !strings.Contains(out, "synthetic (awaiting price)") {
		t.Errorf("report must flag synthetic holdings:\n%s", out)
	}
	if !strings.Contains(out, "Brokerage") {
		t.Errorf("report must show the account name:\n%s", out)
	}
	if !strings.Contains(out, "$1,755.00") {
		t.Errorf("report must show formatted totals:\n%s", out)
	}
}

func TestDebts_NormalizesRateForDisplay(t *testing.T) {
	five := models.NewDebt("Car Loan")
	five.Rate = decimal.RequireFromString("5")
	fraction := models.NewDebt("Mortgage")
	fraction.Rate = decimal.RequireFromString("0.05")

	out := Debts([]*models.Debt{five, fraction}, "USD")
	if strings.Count(out, "5.00%") != 2 {
		t.Errorf("both 5 and 0.05 must render as 5.00%%:\n%s", out)
	}
}

func TestBudget_Totals(t *testing.T) {
	budget := &models.Budget{
		Categories: []models.LedgerCategory{
			{Name: "Housing", Total: decimal.NewFromInt(1200), Items: make([]models.LedgerItem, 2)},
		},
	}

	out := Budget(budget, "USD")
	if !strings.Contains(out, "Housing") || !strings.Contains(out, "$1,200.00") {
		t.Errorf("budget report missing content:\n%s", out)
	}
}
