package ingest

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"$1,234.56", "1234.56"},
		{"(500)", "-500"},
		{"", "0"},
		{"  $ 42.00 ", "42"},
		{"-12.5", "-12.5"},
		{"($1,000.25)", "-1000.25"},
		{"1 234,56 garbage", "123456"},
		{"n/a", "0"},
		{"--", "0"},
		{"abc", "0"},
		{"12%", "12"},
	}

	for _, tt := range tests {
		got := ParseAmount(tt.in)
		want := decimal.RequireFromString(tt.want)
		if !got.Equal(want) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tt.in, got, want)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-03-05", "2024-03-05", true},
		{"2024/3/5", "2024-03-05", true},
		{"2024.03.05", "2024-03-05", true},
		{"03/05/2024", "2024-03-05", true},
		{"3-5-2024", "2024-03-05", true},
		{"Mar-24", "2024-03-01", true},
		{"jan-25", "2025-01-01", true},
		{"January 2025", "2025-01-01", true},
		{"March 5, 2024", "2024-03-05", true},
		{"5 March 2024", "2024-03-05", true},
		{"", "", false},
		{"not a date", "", false},
		{"1970-01-01", "", false}, // before the 1990 floor
		{"13/45/2024", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseDate(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseDate(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseDate_NoTimezoneShift(t *testing.T) {
	// The canonical string is built from components, so the resolved day must
	// match the input regardless of the host timezone.
	got, ok := ParseDate("2024-01-01")
	if !ok || got != "2024-01-01" {
		t.Errorf("ParseDate(2024-01-01) = (%q, %v), want (2024-01-01, true)", got, ok)
	}
	got, ok = ParseDate("12/31/2024")
	if !ok || got != "2024-12-31" {
		t.Errorf("ParseDate(12/31/2024) = (%q, %v), want (2024-12-31, true)", got, ok)
	}
}

func TestNormalizeTicker(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ETHEREUM", "ETH"},
		{"Ethereum (ETH)", "ETH"},
		{"ETH-USD", "ETH"},
		{"aapl", "AAPL"},
		{"BRK.B", "BRK"},
		{"BTC/CAD", "BTC"},
		{"Bitcoin", "BTC"},
		{"", "UNKNOWN"},
		{"   ", "UNKNOWN"},
		{"(cash)", "UNKNOWN"},
		{"VTI", "VTI"},
	}

	for _, tt := range tests {
		got := NormalizeTicker(tt.in, DefaultAliases)
		if got != tt.want {
			t.Errorf("NormalizeTicker(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
