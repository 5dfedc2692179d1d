package models

import "time"

// TransactionType classifies a timeline row as money in or money out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// TransactionCategory names the ledger a timeline row came from.
type TransactionCategory string

const (
	CategoryPayment TransactionCategory = "payment"
	CategoryExpense TransactionCategory = "expense"
	CategoryOther   TransactionCategory = "other"
)

// Transaction is one row of the unified statement view. It is a read model
// projected from the three ledgers, never persisted.
type Transaction struct {
	ID       string              `json:"id"`
	Type     TransactionType     `json:"type"`
	Category TransactionCategory `json:"category"`
	Title    string              `json:"title"`
	Amount   float64             `json:"amount"`
	Date     time.Time           `json:"date"`
	Image    *string             `json:"image"`
}
