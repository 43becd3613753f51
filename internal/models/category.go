package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a transaction category. Categories are shared
// across users.
type Category struct {
	Base
	Name string       `gorm:"uniqueIndex;not null" json:"name"`
	Type CategoryType `gorm:"not null" json:"type"`

	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
}
