package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Debt is one row of the debts tab. Rate keeps the raw magnitude from the
// sheet: users write both "5" and "0.05" for five percent, and the two are
// only reconciled at display time so the source value survives a round-trip.
type Debt struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	Rate           decimal.Decimal `json:"rate"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
}

// NewDebt creates a debt with a generated identity
func NewDebt(name string) *Debt {
	return &Debt{
		ID:             uuid.New(),
		Name:           name,
		Amount:         decimal.Zero,
		Rate:           decimal.Zero,
		MonthlyPayment: decimal.Zero,
	}
}

// RatePercent returns the interest rate as a percentage regardless of whether
// the sheet stored "5" or "0.05" for five percent. Rates of 1 or below are
// taken as fractions; anything above 1 is already a percentage.
func (d *Debt) RatePercent() decimal.Decimal {
	if d.Rate.LessThanOrEqual(decimal.NewFromInt(1)) {
		return d.Rate.Mul(decimal.NewFromInt(100))
	}
	return d.Rate
}
