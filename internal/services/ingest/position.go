package ingest

import (
	"github.com/findosh/sheetfolio/internal/models"
)

// Schema order is the claim order: "value" hints overlap the price and cost
// columns, so those claim first and the market-value column takes what is left.
var positionSchema = Schema{
	{Name: "ticker", Hints: []string{"ticker", "symbol", "stock"}},
	{Name: "name", Hints: []string{"name", "description", "company", "security"}},
	{Name: "quantity", Hints: []string{"quantity", "shares", "units", "qty"}},
	{Name: "cost", Hints: []string{"avg cost", "average cost", "cost basis", "cost", "book"}},
	{Name: "price", Hints: []string{"current price", "price", "last"}},
	{Name: "account", Hints: []string{"account", "broker", "platform"}},
	{Name: "class", Hints: []string{"class", "type", "category"}},
	{Name: "value", Hints: []string{"market value", "value", "total"}},
}

// PositionParser parses rows of the static investment snapshot tab.
type PositionParser struct {
	cols    ColumnMap
	aliases AliasTable
}

// NewPositionParser resolves the snapshot schema against the block's header.
func NewPositionParser(rows [][]string, aliases AliasTable) *PositionParser {
	return &PositionParser{cols: Resolve(rows, positionSchema), aliases: aliases}
}

// HeaderRow exposes the resolved header position for row iteration.
func (p *PositionParser) HeaderRow() int { return p.cols.HeaderRow() }

// Parse converts one data row into a Position, or nil for unusable rows.
func (p *PositionParser) Parse(row []string, rowIdx int) *models.Position {
	rawTicker := p.cols.Cell(row, "ticker")
	quantity := ParseAmount(p.cols.Cell(row, "quantity"))
	value := ParseAmount(p.cols.Cell(row, "value"))
	if rawTicker == "" && quantity.IsZero() && value.IsZero() {
		return nil
	}

	pos := models.NewPosition(NormalizeTicker(rawTicker, p.aliases))
	pos.Name = p.cols.Cell(row, "name")
	pos.Quantity = quantity
	pos.AvgCost = ParseAmount(p.cols.Cell(row, "cost"))
	pos.CurrentPrice = ParseAmount(p.cols.Cell(row, "price"))
	pos.AccountName = p.cols.Cell(row, "account")
	pos.AssetClass = p.cols.Cell(row, "class")
	pos.MarketValue = value
	if pos.MarketValue.IsZero() {
		pos.CalculateMarketValue()
	}
	return pos
}
