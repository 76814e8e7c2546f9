package ingest

import (
	"testing"

	"github.com/shopspring/decimal"
)

func budgetRows() [][]string {
	return [][]string{
		{"2024 Budget"},
		{"Category", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		{"Housing", "", "", "", "", "", "", "", "", "", "", "", ""},
		{"Rent", "1200", "1200", "1200", "1200", "1200", "1200", "1200", "1200", "1200", "1200", "1200", "1200"},
		{"Utilities", "80", "90", "85", "0", "0", "0", "0", "0", "0", "0", "0", "0"},
		{"", "", "", "", "", "", "", "", "", "", "", "", ""},
		{"Food", "", "", "", "", "", "", "", "", "", "", "", ""},
		{"Groceries", "400", "410", "395", "0", "0", "0", "0", "0", "0", "0", "0", "0"},
		{"TOTAL", "1680", "1700", "1680", "0", "0", "0", "0", "0", "0", "0", "0", "0"},
	}
}

func TestParseBudget(t *testing.T) {
	budget := ParseBudget(budgetRows())

	if budget.Months[0] != "Jan" || budget.Months[11] != "Dec" {
		t.Fatalf("months = %v", budget.Months)
	}
	if len(budget.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(budget.Categories))
	}

	housing := budget.Categories[0]
	if housing.Name != "Housing" || len(housing.Items) != 2 {
		t.Fatalf("housing = %q with %d items", housing.Name, len(housing.Items))
	}
	if !housing.Items[0].Total.Equal(decimal.RequireFromString("14400")) {
		t.Errorf("rent total = %s, want 14400", housing.Items[0].Total)
	}
	if !housing.Total.Equal(decimal.RequireFromString("14655")) {
		t.Errorf("housing total = %s, want 14655", housing.Total)
	}

	food := budget.Categories[1]
	if food.Name != "Food" || len(food.Items) != 1 {
		t.Fatalf("food = %q with %d items", food.Name, len(food.Items))
	}
}

func TestParseBudget_CategoryTotalInvariant(t *testing.T) {
	budget := ParseBudget(budgetRows())

	for _, c := range budget.Categories {
		itemSum := decimal.Zero
		for _, item := range c.Items {
			monthSum := decimal.Zero
			for _, v := range item.Monthly {
				monthSum = monthSum.Add(v)
			}
			if !item.Total.Equal(monthSum) {
				t.Errorf("item %s: total %s != monthly sum %s", item.Name, item.Total, monthSum)
			}
			itemSum = itemSum.Add(item.Total)
		}
		if !c.Total.Equal(itemSum) {
			t.Errorf("category %s: total %s != item sum %s", c.Name, c.Total, itemSum)
		}
	}
}

func TestParseBudget_ReservedAndDeniedLabels(t *testing.T) {
	rows := [][]string{
		{"Category", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		{"Housing", "", "", "", "", "", "", "", "", "", "", "", ""},
		{"__proto__", "66", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0"},
		{"constructor", "13", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0"},
		{"Rent", "1200", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0"},
		{"TOTAL", "1279", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0"},
	}

	budget := ParseBudget(rows)
	if len(budget.Categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(budget.Categories))
	}
	if len(budget.Categories[0].Items) != 1 || budget.Categories[0].Items[0].Name != "Rent" {
		t.Fatalf("denylisted and reserved rows must be excluded, got %+v", budget.Categories[0].Items)
	}
}

func TestParseBudget_OrphanItemsGetSyntheticCategory(t *testing.T) {
	rows := [][]string{
		{"Category", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		{"Rent", "1200", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0"},
	}

	budget := ParseBudget(rows)
	if len(budget.Categories) != 1 || budget.Categories[0].Name != "Uncategorized" {
		t.Fatalf("orphan item must land in Uncategorized, got %+v", budget.Categories)
	}
}

func TestParseBudget_NoMonthHeader(t *testing.T) {
	rows := [][]string{
		{"Name", "Value"},
		{"Rent", "1200"},
	}

	budget := ParseBudget(rows)
	if len(budget.Categories) != 0 {
		t.Errorf("no month header: expected empty budget, got %d categories", len(budget.Categories))
	}
}

func TestParseIncomeSources(t *testing.T) {
	rows := [][]string{
		{"Income", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		{"Salary", "5000", "5000", "5000", "0", "0", "0", "0", "0", "0", "0", "0", "0"},
		{"Freelance", "800", "0", "650", "0", "0", "0", "0", "0", "0", "0", "0", "0"},
		{"", "", "", "", "", "", "", "", "", "", "", "", ""},
		{"Expenses", "", "", "", "", "", "", "", "", "", "", "", ""},
		{"Rent", "1200", "1200", "1200", "0", "0", "0", "0", "0", "0", "0", "0", "0"},
	}

	budget := ParseIncomeSources(rows)
	if len(budget.Categories) != 1 {
		t.Fatalf("expected the single synthetic category, got %d", len(budget.Categories))
	}
	cat := budget.Categories[0]
	if cat.Name != "Income Sources" {
		t.Errorf("category name = %q", cat.Name)
	}
	if len(cat.Items) != 2 {
		t.Fatalf("expected 2 items (stops at blank row), got %d", len(cat.Items))
	}
	if !cat.Total.Equal(decimal.RequireFromString("16450")) {
		t.Errorf("income total = %s, want 16450", cat.Total)
	}
}

func TestParseIncomeSources_StopsAtExpenseMarker(t *testing.T) {
	rows := [][]string{
		{"Income", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		{"Salary", "5000", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0"},
		{"Expenses", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0"},
		{"Rent", "1200", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0"},
	}

	budget := ParseIncomeSources(rows)
	if len(budget.Categories[0].Items) != 1 {
		t.Fatalf("expected parsing to stop at the expense marker, got %d items", len(budget.Categories[0].Items))
	}
}
