package models

import "time"

// TransactionType represents the direction of a transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the supported transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a single dated financial movement. The category is
// referenced by CategoryID only; callers that need the category resolve it
// through the category store.
type Transaction struct {
	Base
	Amount      float64         `gorm:"not null" json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Type        TransactionType `gorm:"not null" json:"type"`
	CategoryID  int64           `gorm:"not null;index" json:"category_id"`
}

// TransactionDetail is a transaction joined with its category.
type TransactionDetail struct {
	Transaction
	Category Category `json:"category"`
}
