// Package ingest turns raw spreadsheet rows into typed domain records.
//
// Input is whatever the fetch layer hands over: human-edited cells with
// currency symbols, stray formatting and drifting column orders. The package
// degrades gracefully instead of failing a sync on one dirty cell.
package ingest

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseAmount coerces a raw cell into a decimal. Currency symbols, thousands
// separators and percent signs are stripped; a value wrapped in parentheses
// is negative. Empty or unparseable input yields zero, never an error.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" || cleaned == "-" || cleaned == "." {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	if negative && d.IsPositive() {
		d = d.Neg()
	}
	return d
}

// minYear rejects garbage that parses as an ancient date (serial numbers,
// stray integers).
const minYear = 1990

// ParseDate coerces a raw cell into a canonical ISO YYYY-MM-DD string.
// Accepted layouts, in order: ISO (YYYY-M-D with -, / or . separators),
// US (M-D-YYYY), a month-name token ("jan-25", "January 2025"), then a small
// set of generic layouts. Two-digit years expand into the 2000s. The result
// is built from Y/M/D components directly, never through a UTC round-trip,
// so the calendar day cannot shift with the host timezone.
// ok is false when nothing matched; callers decide whether that voids the row.
func ParseDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	parts := splitDate(s)
	switch len(parts) {
	case 3:
		if len(parts[0]) == 4 {
			if iso, ok := makeISO(parts[0], parts[1], parts[2]); ok {
				return iso, true
			}
		} else if len(parts[2]) == 4 {
			// "5 March 2024" fails here with day and month swapped; the
			// generic layouts below pick it up.
			if iso, ok := makeISO(parts[2], parts[0], parts[1]); ok {
				return iso, true
			}
		}
	case 2:
		if m := monthIndex(parts[0]); m > 0 {
			if y, err := strconv.Atoi(parts[1]); err == nil {
				if y < 100 {
					y += 2000
				}
				if y >= minYear {
					return fmt.Sprintf("%04d-%02d-01", y, m), true
				}
			}
		}
	}

	// Generic fallback for spelled-out layouts.
	for _, layout := range []string{"January 2, 2006", "Jan 2, 2006", "2 January 2006", "January 2 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			if y >= minYear {
				return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d), true
			}
		}
	}

	return "", false
}

func splitDate(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '/' || r == '.' || r == ' ' || r == ','
	})
}

func makeISO(ys, ms, ds string) (string, bool) {
	y, err := strconv.Atoi(ys)
	if err != nil || y < minYear {
		return "", false
	}
	m, err := strconv.Atoi(ms)
	if err != nil {
		// month may be spelled out, as in "2025-Jan-05"
		m = monthIndex(ms)
	}
	d, err2 := strconv.Atoi(ds)
	if err2 != nil || m < 1 || m > 12 || d < 1 || d > 31 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d), true
}

// monthIndex returns 1..12 for a month-name prefix, 0 otherwise.
func monthIndex(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return 0
	}
	for i, name := range monthNames {
		if strings.HasPrefix(s, name) {
			return i + 1
		}
	}
	return 0
}

// NormalizeTicker reduces a raw symbol cell to a bare exchange symbol:
// upper-cased, parenthetical suffix removed, truncated at the first -, . or /
// separator, then mapped through the alias table by exact match first and
// prefix match second. A cell that normalizes to nothing becomes the
// UnknownTicker sentinel so blank and formatting rows stay identifiable.
func NormalizeTicker(s string, aliases AliasTable) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "("); i >= 0 {
		s = s[:i]
	}
	s = strings.ToUpper(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-./"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return UnknownTicker
	}

	if mapped, ok := aliases[s]; ok {
		return mapped
	}
	// Sorted scan keeps prefix resolution deterministic across invocations.
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if strings.HasPrefix(s, name) {
			return aliases[name]
		}
	}
	return s
}
