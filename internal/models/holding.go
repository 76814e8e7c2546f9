package models

import (
	"github.com/shopspring/decimal"
)

// Holding is the reconciled, trade-authoritative view of one position: the
// static snapshot's metadata overlaid with quantity and cost derived from the
// trade ledger. It is computed on demand and never persisted.
type Holding struct {
	Ticker       string          `json:"ticker"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	AvgCost      decimal.Decimal `json:"avg_cost"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	MarketValue  decimal.Decimal `json:"market_value"`
	AccountName  string          `json:"account_name"`
	AssetClass   string          `json:"asset_class"`

	// Synthetic marks a holding generated from trade history alone, with no
	// matching snapshot row. It carries no price until a price feed supplies one.
	Synthetic bool `json:"synthetic"`
}

// GainLoss returns the unrealized gain against average cost.
func (h *Holding) GainLoss() decimal.Decimal {
	return h.MarketValue.Sub(h.AvgCost.Mul(h.Quantity))
}

// TotalMarketValue sums market value across holdings.
func TotalMarketValue(holdings []Holding) decimal.Decimal {
	total := decimal.Zero
	for _, h := range holdings {
		total = total.Add(h.MarketValue)
	}
	return total
}

// AssetTotals sums asset values per category.
func AssetTotals(assets []*Asset) map[AssetCategory]decimal.Decimal {
	totals := make(map[AssetCategory]decimal.Decimal)
	for _, a := range assets {
		totals[a.Category] = totals[a.Category].Add(a.Value)
	}
	return totals
}
