// Package reconcile merges the static investment snapshot with the trade
// ledger into one authoritative set of current holdings.
//
// The two inputs describe the same reality at different granularities: the
// snapshot is user-maintained and updated occasionally, the ledger is
// append-only and updated per transaction. Where both speak, the ledger wins
// on quantity and cost; the snapshot contributes price and account metadata.
package reconcile

import (
	"sort"

	"github.com/findosh/sheetfolio/internal/models"
	"github.com/findosh/sheetfolio/internal/services/ingest"
	"github.com/shopspring/decimal"
)

// tradeTotals is the fold of one ticker's trade history: net quantity and the
// weighted average cost of the buys. Sells reduce quantity without touching
// the average, matching average-cost accounting.
type tradeTotals struct {
	quantity decimal.Decimal
	avgCost  decimal.Decimal
}

// foldTrades reduces the ledger to per-ticker totals. Unresolvable tickers
// are skipped: they originate from blank or formatting rows, not real trades.
func foldTrades(trades []*models.Trade) map[string]*tradeTotals {
	totals := make(map[string]*tradeTotals)

	for _, t := range trades {
		if !usableTicker(t.Ticker) {
			continue
		}
		agg := totals[t.Ticker]
		if agg == nil {
			agg = &tradeTotals{quantity: decimal.Zero, avgCost: decimal.Zero}
			totals[t.Ticker] = agg
		}

		if t.Side == models.SideSell {
			agg.quantity = agg.quantity.Sub(t.Quantity)
			continue
		}
		newQty := agg.quantity.Add(t.Quantity)
		if newQty.IsPositive() {
			held := agg.avgCost.Mul(agg.quantity)
			bought := t.Price.Mul(t.Quantity)
			agg.avgCost = held.Add(bought).Div(newQty)
		} else {
			agg.avgCost = t.Price
		}
		agg.quantity = newQty
	}
	return totals
}

// Holdings reconciles the snapshot against the trade ledger. For every
// snapshot ticker the result keeps price, account and class metadata but
// prefers trade-derived quantity and cost when trades exist. Tickers with
// trade history and no snapshot row become synthetic holdings, priceless
// until a price feed supplies one, so a newly traded instrument appears
// immediately. Tickers with no trades pass through unchanged. The function
// never fails; unresolvable tickers are excluded without comment.
func Holdings(positions []*models.Position, trades []*models.Trade) []models.Holding {
	totals := foldTrades(trades)

	var out []models.Holding
	seen := make(map[string]bool)
	for _, pos := range positions {
		if !usableTicker(pos.Ticker) || seen[pos.Ticker] {
			continue
		}
		seen[pos.Ticker] = true

		h := models.Holding{
			Ticker:       pos.Ticker,
			Name:         pos.Name,
			Quantity:     pos.Quantity,
			AvgCost:      pos.AvgCost,
			CurrentPrice: pos.CurrentPrice,
			AccountName:  pos.AccountName,
			AssetClass:   pos.AssetClass,
		}
		if agg, ok := totals[pos.Ticker]; ok {
			h.Quantity = agg.quantity
			h.AvgCost = agg.avgCost
		}
		h.MarketValue = h.Quantity.Mul(h.CurrentPrice)
		out = append(out, h)
	}

	// Synthetic holdings for tickers the snapshot has not caught up with,
	// sorted for deterministic output.
	var missing []string
	for ticker := range totals {
		if !seen[ticker] {
			missing = append(missing, ticker)
		}
	}
	sort.Strings(missing)
	for _, ticker := range missing {
		agg := totals[ticker]
		out = append(out, models.Holding{
			Ticker:       ticker,
			Name:         ticker,
			Quantity:     agg.quantity,
			AvgCost:      agg.avgCost,
			CurrentPrice: decimal.Zero,
			MarketValue:  decimal.Zero,
			Synthetic:    true,
		})
	}
	return out
}

func usableTicker(ticker string) bool {
	return ticker != "" && ticker != ingest.UnknownTicker
}
