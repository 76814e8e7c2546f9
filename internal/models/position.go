package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Position is a static investment snapshot row: one ticker as the sheet owner
// last recorded it. Quantity and cost here are user-maintained and may lag the
// trade ledger; reconciliation prefers trade-derived figures when trades exist.
type Position struct {
	ID           uuid.UUID       `json:"id"`
	Ticker       string          `json:"ticker"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	AvgCost      decimal.Decimal `json:"avg_cost"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	AccountName  string          `json:"account_name"`
	AssetClass   string          `json:"asset_class"`
	MarketValue  decimal.Decimal `json:"market_value"`
}

// NewPosition creates a position with a generated identity
func NewPosition(ticker string) *Position {
	return &Position{
		ID:           uuid.New(),
		Ticker:       ticker,
		Quantity:     decimal.Zero,
		AvgCost:      decimal.Zero,
		CurrentPrice: decimal.Zero,
		MarketValue:  decimal.Zero,
	}
}

// CalculateMarketValue fills MarketValue from quantity and price when the
// sheet did not carry a pre-computed value column.
func (p *Position) CalculateMarketValue() {
	p.MarketValue = p.Quantity.Mul(p.CurrentPrice)
}
