package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetbuddy/internal/errors"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/services"
)

// AccountHandler handles bank-account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccountRequest represents the request payload for creating a bank account
type CreateAccountRequest struct {
	UserID   uint               `json:"user_id" binding:"required"`
	Name     string             `json:"account_name" binding:"required,max=100"`
	Type     models.AccountType `json:"account_type" binding:"required,account_type"`
	BankName string             `json:"bank_name" binding:"required,max=100"`
	Balance  int64              `json:"balance" binding:"omitempty"`
}

// CreateAccount handles the creation of a new bank account
// @Summary     Create a bank account
// @Description Create a new bank account for a user, optionally with an opening balance (cents)
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       request body CreateAccountRequest true "Account details"
// @Success     201 {object} MessageResponse "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.accountService.CreateAccount(req.UserID, req.Name, req.Type, req.BankName, req.Balance)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Bank account created successfully",
		"account_id": account.ID,
	})
}

// GetUserAccounts handles the retrieval of a user's bank accounts
// @Summary     List accounts
// @Description Get all bank accounts for a user
// @Tags        accounts
// @Produce     json
// @Param       user_id query int true "User ID"
// @Success     200 {array} models.Account "Accounts"
// @Failure     400 {object} ErrorResponse "Missing or invalid user_id"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [get]
func (h *AccountHandler) GetUserAccounts(c *gin.Context) {
	userID, err := parseUserIDQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accounts, err := h.accountService.GetUserAccounts(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// GetAccountByID handles the retrieval of a single bank account
// @Summary     Get account by ID
// @Description Get one of a user's bank accounts by ID
// @Tags        accounts
// @Produce     json
// @Param       id      path  int true "Account ID"
// @Param       user_id query int true "User ID"
// @Success     200 {object} models.Account "Account"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id} [get]
func (h *AccountHandler) GetAccountByID(c *gin.Context) {
	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	userID, err := parseUserIDQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.GetAccountByID(userID, accountID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}
