package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind classifies an account by how transactions against it move money
type TransactionKind string

const (
	KindCredit TransactionKind = "credit"
	KindDebit  TransactionKind = "debit"
)

// Account is one row of the accounts tab: a bank or card account the user
// tracks balances against.
type Account struct {
	ID      uuid.UUID       `json:"id"`
	Name    string          `json:"name"`
	Type    string          `json:"type"`  // raw type text from the sheet
	Brand   string          `json:"brand"` // bank / card network text
	Balance decimal.Decimal `json:"balance"`
	Kind    TransactionKind `json:"kind"`

	SourceRow int `json:"source_row"`
}

// NewAccount creates an account with a generated identity
func NewAccount(name string) *Account {
	return &Account{
		ID:        uuid.New(),
		Name:      name,
		Balance:   decimal.Zero,
		Kind:      KindDebit,
		SourceRow: -1,
	}
}
