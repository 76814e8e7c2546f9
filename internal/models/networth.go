package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NetWorthEntry is one logged net-worth snapshot: a date and a value.
type NetWorthEntry struct {
	ID    uuid.UUID       `json:"id"`
	Date  string          `json:"date"` // ISO date
	Value decimal.Decimal `json:"value"`
}

// NewNetWorthEntry creates an entry with a generated identity
func NewNetWorthEntry(date string, value decimal.Decimal) *NetWorthEntry {
	return &NetWorthEntry{
		ID:    uuid.New(),
		Date:  date,
		Value: value,
	}
}
