package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// TransactionStatusPending is the status every new transaction starts in.
const TransactionStatusPending = "pending"

// Transaction represents a single posting against a bank account.
// Amount is always positive, in integer cents; the sign of its balance
// contribution is determined by Type.
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	AccountID   uint            `gorm:"not null;index" json:"account_id"`
	CategoryID  uint            `gorm:"not null" json:"category_id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Status      string          `gorm:"not null;default:'pending'" json:"status"`

	// Relationships
	Account  Account  `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// SignedAmount returns the transaction's contribution to its account
// balance: +Amount for income, -Amount for expense.
func (t *Transaction) SignedAmount() int64 {
	if t.Type == TransactionTypeExpense {
		return -t.Amount
	}
	return t.Amount
}
