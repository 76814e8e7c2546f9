package ingest

import (
	"testing"
)

var testSchema = Schema{
	{Name: "name", Hints: []string{"name", "item"}},
	{Name: "action", Hints: []string{"action", "transaction"}},
	{Name: "value", Hints: []string{"value", "amount", "balance"}},
	{Name: "fee", Hints: []string{"fee", "transaction"}},
}

func TestResolve_BasicHeader(t *testing.T) {
	rows := [][]string{
		{"Name", "Value", "Fee"},
		{"Rent", "1200", "0"},
	}

	m := Resolve(rows, testSchema)
	if m.HeaderRow() != 0 {
		t.Fatalf("HeaderRow() = %d, want 0", m.HeaderRow())
	}
	if got := m.Col("name"); got != 0 {
		t.Errorf("Col(name) = %d, want 0", got)
	}
	if got := m.Col("value"); got != 1 {
		t.Errorf("Col(value) = %d, want 1", got)
	}
	if got := m.Col("fee"); got != 2 {
		t.Errorf("Col(fee) = %d, want 2", got)
	}
	if got := m.Col("action"); got != -1 {
		t.Errorf("Col(action) = %d, want -1 for absent field", got)
	}
}

func TestResolve_OrderIndependence(t *testing.T) {
	original := [][]string{
		{"Name", "Value", "Fee"},
		{"Rent", "1200", "5"},
	}
	swapped := [][]string{
		{"Fee", "Name", "Value"},
		{"5", "Rent", "1200"},
	}

	mo := Resolve(original, testSchema)
	ms := Resolve(swapped, testSchema)

	for _, field := range []string{"name", "value", "fee"} {
		wantCell := mo.Cell(original[1], field)
		gotCell := ms.Cell(swapped[1], field)
		if wantCell != gotCell {
			t.Errorf("field %s: original resolves %q, swapped resolves %q", field, wantCell, gotCell)
		}
	}
}

func TestResolve_SkipsTitleRows(t *testing.T) {
	rows := [][]string{
		{"My Assets 2024"},
		{""},
		{"Item", "Balance"},
		{"Savings", "100"},
	}

	m := Resolve(rows, testSchema)
	if m.HeaderRow() != 2 {
		t.Errorf("HeaderRow() = %d, want 2 (title row must not win)", m.HeaderRow())
	}
}

func TestResolve_FallbackFirstNonEmptyRow(t *testing.T) {
	rows := [][]string{
		{"", ""},
		{"colA", "colB"},
		{"x", "y"},
	}

	m := Resolve(rows, testSchema)
	if m.HeaderRow() != 1 {
		t.Errorf("HeaderRow() = %d, want 1 (first non-empty fallback)", m.HeaderRow())
	}
}

func TestResolve_EmptyBlock(t *testing.T) {
	m := Resolve(nil, testSchema)
	if m.HeaderRow() != -1 {
		t.Errorf("HeaderRow() = %d, want -1 for empty block", m.HeaderRow())
	}
	if got := m.Col("name"); got != -1 {
		t.Errorf("Col(name) = %d, want -1", got)
	}
}

func TestResolve_ClaimOrder(t *testing.T) {
	// A single "Transaction" header matches both the action and fee hints;
	// the schema declares action first, so it claims the column and fee must
	// go without.
	rows := [][]string{
		{"Name", "Transaction", "Amount"},
		{"AAPL", "buy", "100"},
	}

	m := Resolve(rows, testSchema)
	if got := m.Col("action"); got != 1 {
		t.Errorf("Col(action) = %d, want 1", got)
	}
	if got := m.Col("fee"); got != -1 {
		t.Errorf("Col(fee) = %d, want -1 (column already claimed)", got)
	}
}

func TestResolve_ExactBeatsSubstring(t *testing.T) {
	// "Total Value" contains "value" but the exact "Value" header must win.
	rows := [][]string{
		{"Name", "Total Value", "Value"},
		{"x", "1", "2"},
	}

	m := Resolve(rows, testSchema)
	if got := m.Col("value"); got != 2 {
		t.Errorf("Col(value) = %d, want 2 (exact match preferred)", got)
	}
}

func TestResolve_HeaderBeyondScanLimit(t *testing.T) {
	var rows [][]string
	for i := 0; i < 20; i++ {
		rows = append(rows, []string{"", ""})
	}
	rows = append(rows, []string{"Name", "Value"})

	// The real header sits past the 15-row scan window, so the fallback
	// picks the first non-empty row, which happens to be it.
	m := Resolve(rows, testSchema)
	if m.HeaderRow() != 20 {
		t.Errorf("HeaderRow() = %d, want 20", m.HeaderRow())
	}
}

func TestCell_ShortRow(t *testing.T) {
	rows := [][]string{
		{"Name", "Value"},
	}
	m := Resolve(rows, testSchema)
	if got := m.Cell([]string{"only-name"}, "value"); got != "" {
		t.Errorf("Cell on short row = %q, want empty", got)
	}
}
