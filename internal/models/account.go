package models

// AccountType represents the type of bank account
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeCredit   AccountType = "credit"
)

// Account represents a bank account in the system.
//
// Balance is materialized rather than recomputed on read: every
// transaction create/update/delete adjusts it by the transaction's
// signed amount. All monetary values are integer cents.
type Account struct {
	Base
	UserID   uint        `gorm:"not null;index" json:"user_id"`
	Name     string      `gorm:"not null" json:"name"`
	Type     AccountType `gorm:"not null" json:"type"`
	BankName string      `gorm:"not null" json:"bank_name"`
	Balance  int64       `gorm:"type:bigint;not null;default:0" json:"balance"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"transactions,omitempty"`
}
