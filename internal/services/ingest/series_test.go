package ingest

import (
	"testing"

	"github.com/shopspring/decimal"
)

// The golden shape: one date header row, an income row, expense category rows.
func cashflowRows() [][]string {
	return [][]string{
		{"Summary"},
		{"", "2024-01-01", "2024-02-01", "2024-03-01"},
		{"Total Income", "5800", "5000", "5650"},
		{"Groceries", "400", "410", "395"},
		{"Transport", "120", "0", "80"},
		{"TOTAL", "520", "410", "475"},
	}
}

func TestExtractCashflow(t *testing.T) {
	cf := ExtractCashflow(cashflowRows())

	if len(cf.Income) != 3 {
		t.Fatalf("expected 3 income entries, got %d", len(cf.Income))
	}
	if cf.Income[0].Date != "2024-01-01" || !cf.Income[0].Amount.Equal(decimal.RequireFromString("5800")) {
		t.Errorf("income[0] = %+v", cf.Income[0])
	}

	if len(cf.Expenses) != 3 {
		t.Fatalf("expected 3 expense entries, got %d", len(cf.Expenses))
	}
	jan := cf.Expenses[0]
	if jan.Date != "2024-01-01" {
		t.Errorf("expenses[0].Date = %q", jan.Date)
	}
	if !jan.Total.Equal(decimal.RequireFromString("520")) {
		t.Errorf("expenses[0].Total = %s, want 520", jan.Total)
	}
	if !jan.Categories["Groceries"].Equal(decimal.RequireFromString("400")) {
		t.Errorf("groceries = %s, want 400", jan.Categories["Groceries"])
	}
}

func TestExtractCashflow_TotalEqualsBreakdownSum(t *testing.T) {
	cf := ExtractCashflow(cashflowRows())

	for _, e := range cf.Expenses {
		sum := decimal.Zero
		for _, v := range e.Categories {
			sum = sum.Add(v)
		}
		if !e.Total.Equal(sum) {
			t.Errorf("%s: total %s != breakdown sum %s", e.Date, e.Total, sum)
		}
	}
}

func TestExtractCashflow_IncomeRowPriority(t *testing.T) {
	rows := [][]string{
		{"", "2024-01-01", "2024-02-01"},
		{"Side Income", "100", "100"},
		{"Net Income", "999", "999"},
		{"Total Income", "5800", "5000"},
	}

	cf := ExtractCashflow(rows)
	if len(cf.Income) != 2 {
		t.Fatalf("expected 2 income entries, got %d", len(cf.Income))
	}
	// "total" outranks the plain income label; "net" rows never qualify.
	if !cf.Income[0].Amount.Equal(decimal.RequireFromString("5800")) {
		t.Errorf("income amount = %s, want 5800 from the Total Income row", cf.Income[0].Amount)
	}
}

func TestExtractCashflow_NearestPrecedingAnchor(t *testing.T) {
	// Two date sections: each value row pairs with the date row closest above it.
	rows := [][]string{
		{"", "2024-01-01", "2024-02-01"},
		{"Groceries", "400", "410"},
		{"", ""},
		{"", "2024-03-01", "2024-04-01"},
		{"Groceries", "395", "405"},
	}

	cf := ExtractCashflow(rows)
	if len(cf.Expenses) != 4 {
		t.Fatalf("expected 4 expense entries, got %d", len(cf.Expenses))
	}
	if cf.Expenses[2].Date != "2024-03-01" {
		t.Errorf("expenses[2].Date = %q, want 2024-03-01 (second section anchor)", cf.Expenses[2].Date)
	}
	if !cf.Expenses[2].Total.Equal(decimal.RequireFromString("395")) {
		t.Errorf("expenses[2].Total = %s, want 395", cf.Expenses[2].Total)
	}
}

func TestExtractCashflow_DeniedLabels(t *testing.T) {
	rows := [][]string{
		{"", "2024-01-01", "2024-02-01"},
		{"__proto__", "400", "410"},
		{"Groceries", "395", "405"},
	}

	cf := ExtractCashflow(rows)
	for _, e := range cf.Expenses {
		if _, ok := e.Categories["__proto__"]; ok {
			t.Fatalf("denylisted label must not become a breakdown key")
		}
	}
}

func TestExtractCashflow_NoAnchors(t *testing.T) {
	rows := [][]string{
		{"Groceries", "395", "405"},
		{"Transport", "10", "20"},
	}

	cf := ExtractCashflow(rows)
	if len(cf.Income) != 0 || len(cf.Expenses) != 0 {
		t.Errorf("sheet without date rows must yield an empty result, got %+v", cf)
	}
}
