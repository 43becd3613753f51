package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "budgetbuddy/internal/errors"
	"budgetbuddy/internal/models"
)

// transactionService maintains the ledger invariant: an account's stored
// balance always equals the sum of signed amounts of the transactions
// referencing it. Every mutation pairs its row write with a balance
// adjustment inside one database transaction, so the pair either commits
// together or not at all.
type transactionService struct {
	db             *gorm.DB
	accountService AccountServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, accountService AccountServicer) TransactionServicer {
	return &transactionService{
		db:             db,
		accountService: accountService,
	}
}

// signedAmount returns the balance contribution of an amount/type pair.
func signedAmount(amount int64, transactionType models.TransactionType) int64 {
	if transactionType == models.TransactionTypeExpense {
		return -amount
	}
	return amount
}

// CreateTransaction inserts a new pending transaction and posts its signed
// amount to the referenced account's balance. Both writes happen in one
// database transaction.
func (s *transactionService) CreateTransaction(
	userID, accountID, categoryID uint,
	transactionType models.TransactionType,
	amount int64,
	description string,
	date time.Time,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	switch transactionType {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		return nil, apperrors.ErrInvalidTransactionType
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction date is required")
	}
	if accountID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account ID is required")
	}
	if categoryID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category ID is required")
	}

	// The account must exist and belong to the posting user.
	if _, err := s.accountService.GetAccountByID(userID, accountID); err != nil {
		return nil, err
	}

	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	transaction := &models.Transaction{
		UserID:      userID,
		AccountID:   accountID,
		CategoryID:  categoryID,
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		Date:        date,
		Status:      models.TransactionStatusPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return s.accountService.ApplyBalanceDelta(tx, accountID, transaction.SignedAmount())
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// UpdateTransaction applies a partial update to a transaction and
// reconciles the account balance: the old signed amount is withdrawn and
// the resulting signed amount posted, collapsed into a single in-database
// increment of (new - old). Absent fields retain their prior value; the
// owning account is not updatable.
func (s *transactionService) UpdateTransaction(transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error) {
	if fields.Amount != nil && *fields.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if fields.Type != nil {
		switch *fields.Type {
		case models.TransactionTypeIncome, models.TransactionTypeExpense:
		default:
			return nil, apperrors.ErrInvalidTransactionType
		}
	}

	if _, err := s.GetTransactionByID(transactionID); err != nil {
		return nil, err
	}

	// Rejecting the empty update before any write means the balance is
	// untouched; no compensating undo is needed.
	if fields.Empty() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var current models.Transaction
		if err := tx.First(&current, transactionID).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		oldSigned := current.SignedAmount()

		updates := make(map[string]interface{})
		newAmount := current.Amount
		newType := current.Type
		if fields.Amount != nil {
			newAmount = *fields.Amount
			updates["amount"] = *fields.Amount
		}
		if fields.Type != nil {
			newType = *fields.Type
			updates["type"] = *fields.Type
		}
		if fields.Date != nil {
			updates["date"] = *fields.Date
		}
		if fields.Description != nil {
			updates["description"] = *fields.Description
		}
		if fields.Status != nil {
			updates["status"] = *fields.Status
		}

		if err := tx.Model(&current).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		delta := signedAmount(newAmount, newType) - oldSigned
		return s.accountService.ApplyBalanceDelta(tx, current.AccountID, delta)
	})
	if err != nil {
		return nil, err
	}

	return s.GetTransactionByID(transactionID)
}

// DeleteTransaction deletes a transaction and reverses its signed amount
// from the account balance, both in one database transaction.
func (s *transactionService) DeleteTransaction(transactionID uint) error {
	transaction, err := s.GetTransactionByID(transactionID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return s.accountService.ApplyBalanceDelta(tx, transaction.AccountID, -transaction.SignedAmount())
	})
}

// GetTransactionByID retrieves a transaction by ID.
func (s *transactionService) GetTransactionByID(transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.First(&transaction, transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// GetTransactions retrieves transactions matching the filter, newest first.
func (s *transactionService) GetTransactions(filter TransactionFilter) ([]models.Transaction, error) {
	q := applyTransactionFilters(s.db.Model(&models.Transaction{}), filter)

	var transactions []models.Transaction
	if err := q.Order("date DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetAccountTransactions retrieves transactions for one of the user's
// accounts, newest first.
func (s *transactionService) GetAccountTransactions(userID, accountID uint, filter TransactionFilter) ([]models.Transaction, error) {
	// First verify the account belongs to the user.
	if _, err := s.accountService.GetAccountByID(userID, accountID); err != nil {
		return nil, err
	}

	filter.UserID = &userID
	filter.AccountID = &accountID
	return s.GetTransactions(filter)
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.AccountID != nil {
		q = q.Where("account_id = ?", *f.AccountID)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	return q
}

// GetTransactionDetails retrieves all transactions joined with user,
// category, and account names, newest first.
func (s *transactionService) GetTransactionDetails() ([]TransactionDetail, error) {
	var details []TransactionDetail
	err := s.db.Model(&models.Transaction{}).
		Select(`transactions.id AS transaction_id,
			transactions.date,
			transactions.amount,
			transactions.description,
			transactions.type,
			transactions.status,
			users.username,
			users.email,
			categories.name AS category_name,
			accounts.name AS account_name`).
		Joins("JOIN users ON users.id = transactions.user_id").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Joins("JOIN accounts ON accounts.id = transactions.account_id").
		Order("transactions.date DESC").
		Scan(&details).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return details, nil
}
