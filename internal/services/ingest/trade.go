package ingest

import (
	"strings"

	"github.com/findosh/sheetfolio/internal/models"
)

// "action" claims ahead of "fee": a generic "Transaction" header matches both,
// and it is the action column users mean by it.
var tradeSchema = Schema{
	{Name: "date", Hints: []string{"date", "time"}},
	{Name: "ticker", Hints: []string{"ticker", "symbol", "stock"}},
	{Name: "action", Hints: []string{"action", "side", "buy/sell", "type", "transaction"}},
	{Name: "quantity", Hints: []string{"quantity", "shares", "units", "qty"}},
	{Name: "price", Hints: []string{"price", "unit price"}},
	{Name: "total", Hints: []string{"total", "amount", "consideration", "value"}},
	{Name: "fee", Hints: []string{"fee", "commission"}},
	{Name: "market", Hints: []string{"market price", "market"}},
}

// TradeParser parses rows of the trade ledger tab.
type TradeParser struct {
	cols    ColumnMap
	aliases AliasTable
}

// NewTradeParser resolves the trade schema against the block's header.
func NewTradeParser(rows [][]string, aliases AliasTable) *TradeParser {
	return &TradeParser{cols: Resolve(rows, tradeSchema), aliases: aliases}
}

// HeaderRow exposes the resolved header position for row iteration.
func (p *TradeParser) HeaderRow() int { return p.cols.HeaderRow() }

// Parse converts one data row into a Trade, or nil for unusable rows.
// Quantity is stored non-negative; a negative quantity in the source flips
// the side instead when no explicit action column settles it.
func (p *TradeParser) Parse(row []string, rowIdx int) *models.Trade {
	rawTicker := p.cols.Cell(row, "ticker")
	quantity := ParseAmount(p.cols.Cell(row, "quantity"))
	total := ParseAmount(p.cols.Cell(row, "total"))
	if rawTicker == "" && quantity.IsZero() && total.IsZero() {
		return nil
	}

	t := models.NewTrade(NormalizeTicker(rawTicker, p.aliases))
	t.SourceRow = rowIdx
	if iso, ok := ParseDate(p.cols.Cell(row, "date")); ok {
		t.Date = iso
	}
	t.Side = inferSide(p.cols.Cell(row, "action"), quantity.IsNegative())
	t.Quantity = quantity.Abs()
	t.Price = ParseAmount(p.cols.Cell(row, "price")).Abs()
	t.Total = total.Abs()
	t.Fee = ParseAmount(p.cols.Cell(row, "fee")).Abs()
	t.MarketPrice = ParseAmount(p.cols.Cell(row, "market")).Abs()
	t.FillDerived()
	return t
}

func inferSide(action string, negativeQty bool) models.TradeSide {
	action = strings.ToLower(action)
	switch {
	case strings.Contains(action, "sell"), strings.Contains(action, "sold"):
		return models.SideSell
	case strings.Contains(action, "buy"), strings.Contains(action, "bought"):
		return models.SideBuy
	case negativeQty:
		return models.SideSell
	default:
		return models.SideBuy
	}
}
