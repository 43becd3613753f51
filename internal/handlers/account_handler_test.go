package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "budgetbuddy/internal/errors"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/services"
	"gorm.io/gorm"
)

// --- mock account service ---

type mockAccountService struct {
	createAccountFn   func(userID uint, name string, accountType models.AccountType, bankName string, openingBalance int64) (*models.Account, error)
	getUserAccountsFn func(userID uint) ([]models.Account, error)
	getAccountByIDFn  func(userID, accountID uint) (*models.Account, error)
}

func (m *mockAccountService) CreateAccount(userID uint, name string, accountType models.AccountType, bankName string, openingBalance int64) (*models.Account, error) {
	if m.createAccountFn != nil {
		return m.createAccountFn(userID, name, accountType, bankName, openingBalance)
	}
	return &models.Account{}, nil
}

func (m *mockAccountService) GetUserAccounts(userID uint) ([]models.Account, error) {
	if m.getUserAccountsFn != nil {
		return m.getUserAccountsFn(userID)
	}
	return []models.Account{}, nil
}

func (m *mockAccountService) GetAccountByID(userID, accountID uint) (*models.Account, error) {
	if m.getAccountByIDFn != nil {
		return m.getAccountByIDFn(userID, accountID)
	}
	return &models.Account{}, nil
}

func (m *mockAccountService) ApplyBalanceDelta(_ *gorm.DB, _ uint, _ int64) error {
	return nil
}

var _ services.AccountServicer = (*mockAccountService)(nil)

func setupAccountRouter(handler *AccountHandler) *gin.Engine {
	r := gin.New()
	r.POST("/accounts", handler.CreateAccount)
	r.GET("/accounts", handler.GetUserAccounts)
	r.GET("/accounts/:id", handler.GetAccountByID)
	return r
}

// --- tests ---

func TestAccountHandler_CreateAccount(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		acctSvc := &mockAccountService{
			createAccountFn: func(userID uint, name string, accountType models.AccountType, bankName string, balance int64) (*models.Account, error) {
				return &models.Account{
					Base:     models.Base{ID: 3},
					UserID:   userID,
					Name:     name,
					Type:     accountType,
					BankName: bankName,
					Balance:  balance,
				}, nil
			},
		}
		r := setupAccountRouter(NewAccountHandler(acctSvc))

		rec := doRequest(r, "POST", "/accounts",
			`{"user_id":1,"account_name":"Everyday","account_type":"checking","bank_name":"First National","balance":100000}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["account_id"].(float64) != 3 {
			t.Errorf("expected account_id 3, got %v", result["account_id"])
		}
	})

	t.Run("returns 400 on invalid account type", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}))

		rec := doRequest(r, "POST", "/accounts",
			`{"user_id":1,"account_name":"Everyday","account_type":"brokerage","bank_name":"First National"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing bank name", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}))

		rec := doRequest(r, "POST", "/accounts",
			`{"user_id":1,"account_name":"Everyday","account_type":"checking"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when user not found", func(t *testing.T) {
		acctSvc := &mockAccountService{
			createAccountFn: func(uint, string, models.AccountType, string, int64) (*models.Account, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		r := setupAccountRouter(NewAccountHandler(acctSvc))

		rec := doRequest(r, "POST", "/accounts",
			`{"user_id":999,"account_name":"Everyday","account_type":"checking","bank_name":"First National"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestAccountHandler_GetUserAccounts(t *testing.T) {
	t.Run("requires user_id", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}))

		rec := doRequest(r, "GET", "/accounts", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns accounts", func(t *testing.T) {
		acctSvc := &mockAccountService{
			getUserAccountsFn: func(userID uint) ([]models.Account, error) {
				return []models.Account{
					{Base: models.Base{ID: 1}, UserID: userID, Name: "Everyday", Balance: 5000},
				}, nil
			},
		}
		r := setupAccountRouter(NewAccountHandler(acctSvc))

		rec := doRequest(r, "GET", "/accounts?user_id=1", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}

func TestAccountHandler_GetAccountByID(t *testing.T) {
	t.Run("returns 404 for foreign account", func(t *testing.T) {
		acctSvc := &mockAccountService{
			getAccountByIDFn: func(_, _ uint) (*models.Account, error) {
				return nil, apperrors.ErrAccountNotFound
			},
		}
		r := setupAccountRouter(NewAccountHandler(acctSvc))

		rec := doRequest(r, "GET", "/accounts/1?user_id=2", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ACCOUNT_NOT_FOUND")
	})

	t.Run("returns account", func(t *testing.T) {
		acctSvc := &mockAccountService{
			getAccountByIDFn: func(userID, accountID uint) (*models.Account, error) {
				return &models.Account{Base: models.Base{ID: accountID}, UserID: userID, Balance: 85000}, nil
			},
		}
		r := setupAccountRouter(NewAccountHandler(acctSvc))

		rec := doRequest(r, "GET", "/accounts/1?user_id=1", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["balance"].(float64) != 85000 {
			t.Errorf("expected balance 85000, got %v", result["balance"])
		}
	})
}
