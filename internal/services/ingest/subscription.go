package ingest

import (
	"strings"

	"github.com/findosh/sheetfolio/internal/models"
)

var subscriptionSchema = Schema{
	{Name: "name", Hints: []string{"name", "service", "subscription"}},
	{Name: "amount", Hints: []string{"amount", "cost", "price", "value"}},
	{Name: "cadence", Hints: []string{"frequency", "cycle", "period", "cadence"}},
	{Name: "next", Hints: []string{"next", "renewal", "renews", "date"}},
}

// SubscriptionParser parses rows of the recurring-payments tab.
type SubscriptionParser struct {
	cols ColumnMap
}

// NewSubscriptionParser resolves the subscription schema against the block's header.
func NewSubscriptionParser(rows [][]string) *SubscriptionParser {
	return &SubscriptionParser{cols: Resolve(rows, subscriptionSchema)}
}

// HeaderRow exposes the resolved header position for row iteration.
func (p *SubscriptionParser) HeaderRow() int { return p.cols.HeaderRow() }

// Parse converts one data row into a Subscription, or nil for unusable rows.
func (p *SubscriptionParser) Parse(row []string, rowIdx int) *models.Subscription {
	name := p.cols.Cell(row, "name")
	amount := ParseAmount(p.cols.Cell(row, "amount"))
	if name == "" && amount.IsZero() {
		return nil
	}

	s := models.NewSubscription(name)
	s.Amount = amount.Abs()
	s.SourceRow = rowIdx
	if cadence := strings.ToLower(p.cols.Cell(row, "cadence")); cadence != "" {
		s.Cadence = cadence
	}
	if iso, ok := ParseDate(p.cols.Cell(row, "next")); ok {
		s.NextDate = iso
	}
	return s
}
