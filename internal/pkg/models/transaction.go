package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind classifies a transaction's effect on the balance
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Valid reports whether the kind is one of the closed set
func (k TransactionKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction represents a single income or expense record owned by a user
type Transaction struct {
	ID         uuid.UUID       `json:"id" bson:"_id" db:"id"`
	OwnerID    uuid.UUID       `json:"owner_id" bson:"owner_id" db:"owner_id"`
	Title      string          `json:"title" bson:"title" db:"title"`
	Amount     float64         `json:"amount" bson:"amount" db:"amount"`
	Kind       TransactionKind `json:"kind" bson:"kind" db:"kind"`
	Category   string          `json:"category" bson:"category" db:"category"`
	OccurredAt time.Time       `json:"occurred_at" bson:"occurred_at" db:"occurred_at"`
	CreatedAt  time.Time       `json:"created_at" bson:"created_at" db:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" bson:"updated_at" db:"updated_at"`
}

// CreateTransactionRequest represents a request to record a new transaction.
// OccurredAt is optional and defaults to the time of creation.
type CreateTransactionRequest struct {
	Title      string          `json:"title" validate:"required"`
	Amount     float64         `json:"amount" validate:"required"`
	Kind       TransactionKind `json:"kind" validate:"required"`
	Category   string          `json:"category" validate:"required"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// TransactionPatch represents a partial update to a transaction. A zero
// value means "keep the stored value"; an explicit zero amount or empty
// string is therefore ignored, not applied.
type TransactionPatch struct {
	Title      string          `json:"title"`
	Amount     float64         `json:"amount"`
	Kind       TransactionKind `json:"kind"`
	Category   string          `json:"category"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Summary holds the caller's aggregate totals for dashboard display
type Summary struct {
	TotalIncome       float64            `json:"total_income"`
	TotalExpense      float64            `json:"total_expense"`
	Balance           float64            `json:"balance"`
	ExpenseByCategory map[string]float64 `json:"expense_by_category"`
}

// MonthlyTotal holds income and expense totals for one calendar month
type MonthlyTotal struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}
