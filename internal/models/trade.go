package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradeSide is the direction of a trade
type TradeSide string

const (
	SideBuy  TradeSide = "BUY"
	SideSell TradeSide = "SELL"
)

// Trade is one row of the trade ledger. Quantity is always non-negative; the
// sign of the position change is carried by Side.
type Trade struct {
	ID          uuid.UUID       `json:"id"`
	Date        string          `json:"date"` // ISO date, "" when unparseable
	Ticker      string          `json:"ticker"`
	Side        TradeSide       `json:"side"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
	Fee         decimal.Decimal `json:"fee"`
	MarketPrice decimal.Decimal `json:"market_price"` // price at entry time, zero when absent

	SourceRow int `json:"source_row"`
}

// NewTrade creates a trade with a generated identity
func NewTrade(ticker string) *Trade {
	return &Trade{
		ID:          uuid.New(),
		Ticker:      ticker,
		Side:        SideBuy,
		Quantity:    decimal.Zero,
		Price:       decimal.Zero,
		Total:       decimal.Zero,
		Fee:         decimal.Zero,
		MarketPrice: decimal.Zero,
		SourceRow:   -1,
	}
}

// SignedQuantity returns the position change: positive for buys, negative for sells.
func (t *Trade) SignedQuantity() decimal.Decimal {
	if t.Side == SideSell {
		return t.Quantity.Neg()
	}
	return t.Quantity
}

// FillDerived completes the total≈quantity×price triangle: whichever of the
// three the sheet omitted is derived from the other two. A total present in
// the source is kept as-is even when it disagrees slightly with qty×price.
func (t *Trade) FillDerived() {
	switch {
	case t.Total.IsZero() && !t.Quantity.IsZero() && !t.Price.IsZero():
		t.Total = t.Quantity.Mul(t.Price)
	case t.Price.IsZero() && !t.Quantity.IsZero() && !t.Total.IsZero():
		t.Price = t.Total.Div(t.Quantity)
	case t.Quantity.IsZero() && !t.Price.IsZero() && !t.Total.IsZero():
		t.Quantity = t.Total.Div(t.Price).Abs()
	}
}
