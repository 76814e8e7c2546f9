package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Subscription is one row of the recurring-payments tab.
type Subscription struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Cadence  string          `json:"cadence"`            // raw cycle text: "monthly", "yearly", ...
	NextDate string          `json:"next_date,omitempty"` // ISO date of the next renewal, "" when absent

	SourceRow int `json:"source_row"`
}

// NewSubscription creates a subscription with a generated identity
func NewSubscription(name string) *Subscription {
	return &Subscription{
		ID:        uuid.New(),
		Name:      name,
		Amount:    decimal.Zero,
		Cadence:   "monthly",
		SourceRow: -1,
	}
}

// MonthlyAmount normalizes the subscription cost to a per-month figure for
// the common cadences; unrecognized cadence text is treated as monthly.
func (s *Subscription) MonthlyAmount() decimal.Decimal {
	switch s.Cadence {
	case "yearly", "annual", "annually":
		return s.Amount.Div(decimal.NewFromInt(12))
	case "weekly":
		// 52 weeks over 12 months
		return s.Amount.Mul(decimal.NewFromInt(52)).Div(decimal.NewFromInt(12))
	case "quarterly":
		return s.Amount.Div(decimal.NewFromInt(3))
	default:
		return s.Amount
	}
}
