package ingest

import (
	"github.com/findosh/sheetfolio/internal/models"
)

// Per-tab entry points. Each constructs the row parser once (resolving the
// header) and loops the data rows through it; rows the parser rejects are
// dropped silently. All functions are stateless and deterministic: parsing
// the same block twice yields structurally identical output.

// ParseAssets parses the asset tab.
func ParseAssets(rows [][]string) []*models.Asset {
	p := NewAssetParser(rows)
	var out []*models.Asset
	for i := p.HeaderRow() + 1; i >= 0 && i < len(rows); i++ {
		if a := p.Parse(rows[i], i); a != nil {
			out = append(out, a)
		}
	}
	return out
}

// ParsePositions parses the static investment snapshot tab.
func ParsePositions(rows [][]string, aliases AliasTable) []*models.Position {
	p := NewPositionParser(rows, aliases)
	var out []*models.Position
	for i := p.HeaderRow() + 1; i >= 0 && i < len(rows); i++ {
		if pos := p.Parse(rows[i], i); pos != nil {
			out = append(out, pos)
		}
	}
	return out
}

// ParseTrades parses the trade ledger tab.
func ParseTrades(rows [][]string, aliases AliasTable) []*models.Trade {
	p := NewTradeParser(rows, aliases)
	var out []*models.Trade
	for i := p.HeaderRow() + 1; i >= 0 && i < len(rows); i++ {
		if t := p.Parse(rows[i], i); t != nil {
			out = append(out, t)
		}
	}
	return out
}

// ParseAccounts parses the accounts tab.
func ParseAccounts(rows [][]string) []*models.Account {
	p := NewAccountParser(rows)
	var out []*models.Account
	for i := p.HeaderRow() + 1; i >= 0 && i < len(rows); i++ {
		if a := p.Parse(rows[i], i); a != nil {
			out = append(out, a)
		}
	}
	return out
}

// ParseSubscriptions parses the recurring-payments tab.
func ParseSubscriptions(rows [][]string) []*models.Subscription {
	p := NewSubscriptionParser(rows)
	var out []*models.Subscription
	for i := p.HeaderRow() + 1; i >= 0 && i < len(rows); i++ {
		if s := p.Parse(rows[i], i); s != nil {
			out = append(out, s)
		}
	}
	return out
}

// ParseNetWorth parses the net-worth log tab.
func ParseNetWorth(rows [][]string) []*models.NetWorthEntry {
	p := NewNetWorthParser(rows)
	var out []*models.NetWorthEntry
	for i := p.HeaderRow() + 1; i >= 0 && i < len(rows); i++ {
		if e := p.Parse(rows[i], i); e != nil {
			out = append(out, e)
		}
	}
	return out
}

// ParseDebts parses the debts tab.
func ParseDebts(rows [][]string) []*models.Debt {
	p := NewDebtParser(rows)
	var out []*models.Debt
	for i := p.HeaderRow() + 1; i >= 0 && i < len(rows); i++ {
		if d := p.Parse(rows[i], i); d != nil {
			out = append(out, d)
		}
	}
	return out
}
