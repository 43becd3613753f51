package services

import (
	"time"

	"gorm.io/gorm"

	"budgetbuddy/internal/models"
)

// UserUpdateFields holds the optional fields for a partial user update.
// Nil fields retain their prior value.
type UserUpdateFields struct {
	Username *string
	Email    *string
	Password *string
}

// Empty reports whether no updatable field was supplied.
func (f UserUpdateFields) Empty() bool {
	return f.Username == nil && f.Email == nil && f.Password == nil
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, email, password string) (*models.User, error)
	GetUsers() ([]models.User, error)
	GetUserByID(id uint) (*models.User, error)
	UpdateUser(id uint, fields UserUpdateFields) (*models.User, error)
	DeleteUser(id uint) error
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(userID uint, name string, accountType models.AccountType, bankName string, openingBalance int64) (*models.Account, error)
	GetUserAccounts(userID uint) ([]models.Account, error)
	GetAccountByID(userID, accountID uint) (*models.Account, error)

	// ApplyBalanceDelta adjusts an account balance by delta cents as part of
	// the caller's database transaction. The arithmetic happens in the
	// database so concurrent adjustments cannot lose updates.
	ApplyBalanceDelta(tx *gorm.DB, accountID uint, delta int64) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(name string, categoryType models.CategoryType) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	GetCategoryByID(id uint) (*models.Category, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	UserID    *uint
	AccountID *uint
	Type      *models.TransactionType
	FromDate  *time.Time
	ToDate    *time.Time
}

// TransactionUpdateFields holds the optional fields for a partial
// transaction update. Nil fields retain their prior value. The account a
// transaction belongs to is not updatable.
type TransactionUpdateFields struct {
	Amount      *int64
	Type        *models.TransactionType
	Date        *time.Time
	Description *string
	Status      *string
}

// Empty reports whether no updatable field was supplied.
func (f TransactionUpdateFields) Empty() bool {
	return f.Amount == nil && f.Type == nil && f.Date == nil &&
		f.Description == nil && f.Status == nil
}

// TransactionDetail is a transaction row joined with its user, category,
// and account names.
type TransactionDetail struct {
	TransactionID uint                   `json:"transaction_id"`
	Date          time.Time              `json:"date"`
	Amount        int64                  `json:"amount"`
	Description   string                 `json:"description"`
	Type          models.TransactionType `json:"type"`
	Status        string                 `json:"status"`
	Username      string                 `json:"username"`
	Email         string                 `json:"email"`
	CategoryName  string                 `json:"category_name"`
	AccountName   string                 `json:"account_name"`
}

// TransactionServicer defines the contract for the ledger: transaction
// mutations and the balance adjustments they imply.
type TransactionServicer interface {
	CreateTransaction(userID, accountID, categoryID uint, transactionType models.TransactionType, amount int64, description string, date time.Time) (*models.Transaction, error)
	UpdateTransaction(transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error)
	DeleteTransaction(transactionID uint) error
	GetTransactionByID(transactionID uint) (*models.Transaction, error)
	GetTransactions(filter TransactionFilter) ([]models.Transaction, error)
	GetAccountTransactions(userID, accountID uint, filter TransactionFilter) ([]models.Transaction, error)
	GetTransactionDetails() ([]TransactionDetail, error)
}

// GoalWithProgress is a goal together with its read-time progress.
type GoalWithProgress struct {
	models.Goal
	CurrentAmount int64 `json:"current_amount"`
	IsOverBudget  bool  `json:"is_over_budget"`
}

// GoalUpdateFields holds the optional fields for a partial goal update.
type GoalUpdateFields struct {
	Name          *string
	TargetAmount  *int64
	CurrentAmount *int64
	Type          *models.GoalType
	Period        *models.GoalPeriod
	StartDate     *time.Time
	EndDate       *time.Time
}

// Empty reports whether no updatable field was supplied.
func (f GoalUpdateFields) Empty() bool {
	return f.Name == nil && f.TargetAmount == nil && f.CurrentAmount == nil &&
		f.Type == nil && f.Period == nil && f.StartDate == nil && f.EndDate == nil
}

// GoalServicer defines the contract for goal-related business logic.
type GoalServicer interface {
	CreateGoal(userID uint, name string, targetAmount int64, goalType models.GoalType, period models.GoalPeriod, startDate time.Time) (*models.Goal, error)
	GetUserGoals(userID uint) ([]GoalWithProgress, error)
	GetGoalByID(goalID uint) (*models.Goal, error)
	UpdateGoal(goalID uint, fields GoalUpdateFields) (*models.Goal, error)
	DeleteGoal(goalID uint) error
}

// MonthlySummary aggregates a user's transactions for one calendar month.
type MonthlySummary struct {
	MonthStart   string `json:"month_start"`
	TotalIncome  int64  `json:"total_income"`
	TotalExpense int64  `json:"total_expense"`
	NetChange    int64  `json:"net_change"`
}

// CategorySpending aggregates a user's expenses for one category.
type CategorySpending struct {
	CategoryName     string `json:"category_name"`
	TotalSpent       int64  `json:"total_spent"`
	TransactionCount int64  `json:"transaction_count"`
}

// ReportServicer defines the contract for derived aggregate queries.
type ReportServicer interface {
	GetMonthlySummary(userID uint) ([]MonthlySummary, error)
	GetSpendingByCategory(userID uint) ([]CategorySpending, error)
}
