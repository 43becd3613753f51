package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "budgetbuddy/internal/errors"
	"budgetbuddy/internal/models"
)

// accountService handles account-related business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// CreateAccount creates a new bank account for a user.
func (s *accountService) CreateAccount(userID uint, name string, accountType models.AccountType, bankName string, openingBalance int64) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}
	if bankName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "bank name is required")
	}
	switch accountType {
	case models.AccountTypeChecking, models.AccountTypeSavings, models.AccountTypeCredit:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account type must be checking, savings, or credit")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	account := &models.Account{
		UserID:   userID,
		Name:     name,
		Type:     accountType,
		BankName: bankName,
		Balance:  openingBalance,
	}
	if err := s.db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return account, nil
}

// GetUserAccounts returns all accounts for a user ordered by name.
func (s *accountService) GetUserAccounts(userID uint) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.Where("user_id = ?", userID).Order("name").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return accounts, nil
}

// GetAccountByID retrieves an account by ID for a specific user.
func (s *accountService) GetAccountByID(userID, accountID uint) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ? AND user_id = ?", accountID, userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// ApplyBalanceDelta adjusts an account's balance by delta cents within the
// caller's database transaction. The increment runs as a single UPDATE with
// in-database arithmetic, so concurrent adjustments to the same account
// serialize on the row and no update is lost. A failed or zero-row update
// surfaces as a consistency error, rolling back the caller's transaction.
func (s *accountService) ApplyBalanceDelta(tx *gorm.DB, accountID uint, delta int64) error {
	res := tx.Model(&models.Account{}).
		Where("id = ?", accountID).
		Update("balance", gorm.Expr("balance + ?", delta))
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrLedgerConsistency, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrLedgerConsistency
	}
	return nil
}
